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

package str

import (
	"testing"
)

func TestUnitFind(t *testing.T) {
	var testCases = []struct {
		name  string
		slice []string
		val   string
		want  bool
	}{
		{
			name:  "present",
			slice: []string{"p1", "p2", "p3"},
			val:   "p3",
			want:  true,
		},
		{
			name:  "absent",
			slice: []string{"p1", "p2", "p3"},
			val:   "p4",
		},
		{
			name:  "emptySlice",
			slice: []string{},
			val:   "p1",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Find(tc.slice, tc.val); got != tc.want {
				t.Errorf("Want %v got %v for '%s' in %v", tc.want, got, tc.val, tc.slice)
			}
		})
	}
}

func TestUnitFlattenMapStringString(t *testing.T) {
	var testCases = []struct {
		name string
		ma   map[string]string
		want string
	}{
		{
			name: "emptyMap",
			ma:   map[string]string{},
			want: "",
		},
		{
			name: "oneLabel",
			ma:   map[string]string{"team": "eng"},
			want: `team="eng"`,
		},
		{
			name: "sortedByKey",
			ma:   map[string]string{"team": "ops", "env": ""},
			want: `env="", team="ops"`,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FlattenMapStringString(tc.ma); got != tc.want {
				t.Errorf("Want '%s' have '%s'", tc.want, got)
			}
		})
	}
}
