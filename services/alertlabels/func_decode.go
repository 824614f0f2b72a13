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

package alertlabels

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BrunoReboul/cas/utilities/cai"
)

// Notice kinds
const (
	KindInformational = "informational"
	KindAsset         = "asset"
)

// Notice what a feed message says about the labels of an asset
type Notice struct {
	Kind             string            `json:"kind"`
	Message          string            `json:"message,omitempty"`
	AssetType        string            `json:"assetType,omitempty"`
	Name             string            `json:"name,omitempty"`
	Parent           string            `json:"parent,omitempty"`
	Deleted          bool              `json:"deleted,omitempty"`
	Labels           map[string]string `json:"labels,omitempty"`
	MissingLabels    bool              `json:"missingLabels"`
	MissingMandatory []string          `json:"missingMandatory,omitempty"`
}

// NeedsAlert the asset exists and has no label or misses a mandatory one
func (notice Notice) NeedsAlert() bool {
	return notice.Kind == KindAsset && !notice.Deleted && (notice.MissingLabels || len(notice.MissingMandatory) > 0)
}

// DecodeError the payload looks like JSON but cannot be decoded
type DecodeError struct {
	Raw   []byte
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("json.Unmarshal %v raw payload: %s", e.Cause, string(e.Raw))
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// noAssetMessage informational message of a well formed JSON payload that is not an object
const noAssetMessage = "JSON without an asset"

// Decode reads a base64 decoded Pub/Sub payload
// A payload not starting with { or [ is an informational message, like the feed creation confirmation
// A well formed JSON array carries no asset and is informational too
func Decode(data []byte) (Notice, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
		return Notice{
			Kind:    KindInformational,
			Message: string(data),
		}, nil
	}
	if trimmed[0] == '[' {
		var anything []interface{}
		if err := json.Unmarshal(trimmed, &anything); err != nil {
			return Notice{}, &DecodeError{Raw: data, Cause: err}
		}
		return Notice{
			Kind:    KindInformational,
			Message: noAssetMessage,
		}, nil
	}
	var feedMessage cai.FeedMessage
	if err := json.Unmarshal(trimmed, &feedMessage); err != nil {
		return Notice{}, &DecodeError{Raw: data, Cause: err}
	}
	labels, err := feedMessage.Asset.Labels()
	if err != nil {
		return Notice{}, &DecodeError{Raw: data, Cause: err}
	}
	return Notice{
		Kind:          KindAsset,
		AssetType:     feedMessage.Asset.AssetType,
		Name:          feedMessage.Asset.Name,
		Parent:        feedMessage.Asset.Parent(),
		Deleted:       feedMessage.Deleted,
		Labels:        labels,
		MissingLabels: len(labels) == 0,
	}, nil
}
