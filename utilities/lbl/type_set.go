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

package lbl

// Set labels to be applied on one resource, key to value
type Set map[string]string

// Merge returns a new map: current labels overwritten and completed by set, other current labels kept
func Merge(current map[string]string, set Set) map[string]string {
	merged := make(map[string]string, len(current)+len(set))
	for key, value := range current {
		merged[key] = value
	}
	for key, value := range set {
		merged[key] = value
	}
	return merged
}
