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

import "regexp"

// RequirementsURL documents the label grammar
const RequirementsURL = "https://cloud.google.com/resource-manager/docs/labels-overview#requirements"

// KeyPattern label key grammar
const KeyPattern = `^[a-z][a-z0-9_-]{0,62}$`

// ValuePattern label value grammar
const ValuePattern = `^[a-z0-9_-]{0,62}$`

var (
	keyRegexp   = regexp.MustCompile(KeyPattern)
	valueRegexp = regexp.MustCompile(ValuePattern)
)

// IsValidKey returns true when key matches KeyPattern
func IsValidKey(key string) bool {
	return keyRegexp.MatchString(key)
}

// IsValidValue returns true when value matches ValuePattern
func IsValidValue(value string) bool {
	return valueRegexp.MatchString(value)
}
