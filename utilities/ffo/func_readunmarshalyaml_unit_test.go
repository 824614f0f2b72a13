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

package ffo

import (
	"os"
	"path/filepath"
	"testing"
)

func TestUnitReadUnmarshalYAML(t *testing.T) {
	type settings struct {
		ProjectID string   `yaml:"projectID"`
		Keys      []string `yaml:"keys"`
	}
	dir := t.TempDir()
	var testCases = []struct {
		name      string
		content   string
		wantErr   bool
		wantValue string
	}{
		{
			name:      "valid",
			content:   "projectID: cas-prd\nkeys:\n  - team\n",
			wantValue: "cas-prd",
		},
		{
			name:    "unknownField",
			content: "projectId: cas-prd\n",
			wantErr: true,
		},
		{
			name:    "notYAML",
			content: "projectID: [cas",
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatalf("os.WriteFile %v", err)
			}
			var s settings
			err := ReadUnmarshalYAML(path, &s)
			if tc.wantErr {
				if err == nil {
					t.Errorf("Want an error got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Want no error got %v", err)
			}
			if s.ProjectID != tc.wantValue {
				t.Errorf("Want %s got %s", tc.wantValue, s.ProjectID)
			}
		})
	}

	var s settings
	if err := ReadUnmarshalYAML(filepath.Join(dir, "missing.yaml"), &s); err == nil {
		t.Errorf("Want an error on a missing file")
	}
}
