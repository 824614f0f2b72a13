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

package gfs

import "testing"

func TestUnitDocumentPath(t *testing.T) {
	got := DocumentPath(DefaultCollectionID, "5f0c4f2e-9a57-4b53-9d2c-0e1b6a3c2d10")
	want := "labelRuns/5f0c4f2e-9a57-4b53-9d2c-0e1b6a3c2d10"
	if got != want {
		t.Errorf("Want %s got %s", want, got)
	}
}
