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

package grm

import "testing"

func TestUnitProjectName(t *testing.T) {
	var testCases = []struct {
		name      string
		projectID string
		want      string
	}{
		{name: "projectID", projectID: "my-project", want: "projects/my-project"},
		{name: "resourceName", projectID: "projects/my-project", want: "projects/my-project"},
		{name: "projectNumber", projectID: "123456789012", want: "projects/123456789012"},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ProjectName(tc.projectID); got != tc.want {
				t.Errorf("Want %s got %s", tc.want, got)
			}
		})
	}
}
