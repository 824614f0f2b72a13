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

import (
	"encoding/json"
	"time"
)

// FeedMessage Cloud Asset Inventory real time feed message
type FeedMessage struct {
	Asset           Asset  `json:"asset"`
	PriorAsset      *Asset `json:"priorAsset,omitempty"`
	PriorAssetState string `json:"priorAssetState,omitempty"`
	Window          Window `json:"window"`
	Deleted         bool   `json:"deleted"`
}

// Asset Cloud Asset Metadata
type Asset struct {
	Name       string    `json:"name"`
	AssetType  string    `json:"assetType"`
	Ancestors  []string  `json:"ancestors,omitempty"`
	UpdateTime time.Time `json:"updateTime,omitempty"`
	Resource   *Resource `json:"resource,omitempty"`
}

// Resource representation of the asset, Data is the service specific JSON document
type Resource struct {
	Version       string          `json:"version,omitempty"`
	DiscoveryName string          `json:"discoveryName,omitempty"`
	Parent        string          `json:"parent,omitempty"`
	Location      string          `json:"location,omitempty"`
	Data          json.RawMessage `json:"data,omitempty"`
}

// Window Cloud Asset Inventory feed message time window
type Window struct {
	StartTime time.Time `json:"startTime" firestore:"startTime"`
}

// Parent of the asset resource, empty when the feed carries no resource
func (asset Asset) Parent() string {
	if asset.Resource == nil {
		return ""
	}
	return asset.Resource.Parent
}

// Labels of the asset resource, nil when the resource or its labels are absent
func (asset Asset) Labels() (map[string]string, error) {
	if asset.Resource == nil || len(asset.Resource.Data) == 0 {
		return nil, nil
	}
	return GetAssetLabels(asset.Resource.Data)
}
