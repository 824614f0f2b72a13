// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cai

import "encoding/json"

// GetAssetLabels retrieve the labels map from a resource data JSON document
func GetAssetLabels(dataJSON json.RawMessage) (map[string]string, error) {
	var data struct {
		Labels map[string]string `json:"labels"`
	}
	err := json.Unmarshal(dataJSON, &data)
	if err != nil {
		return nil, err
	}
	return data.Labels, nil
}

// GetAssetLabelValue retrieve a label value from a label key, e.g. the team owning the asset
func GetAssetLabelValue(labelKey string, dataJSON json.RawMessage) (string, error) {
	labels, err := GetAssetLabels(dataJSON)
	if err != nil {
		return "", err
	}
	return labels[labelKey], nil
}
