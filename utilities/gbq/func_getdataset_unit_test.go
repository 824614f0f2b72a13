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

package gbq

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestUnitIsNotFound(t *testing.T) {
	var testCases = []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "googleapi404",
			err:  fmt.Errorf("wrapped %w", &googleapi.Error{Code: 404, Message: "Not found: Dataset cas:assets"}),
			want: true,
		},
		{
			name: "googleapi403",
			err:  &googleapi.Error{Code: 403, Message: "Access Denied"},
		},
		{
			name: "notFoundText",
			err:  errors.New("rpc error: code = NotFound desc = dataset"),
			want: true,
		},
		{
			name: "other",
			err:  errors.New("connection reset"),
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsNotFound(tc.err); got != tc.want {
				t.Errorf("Want %v got %v for %v", tc.want, got, tc.err)
			}
		})
	}
}

func TestUnitLabelValue(t *testing.T) {
	if got := LabelValue("Assets_Inventory"); got != "assets_inventory" {
		t.Errorf("Want assets_inventory got %s", got)
	}
	if got := LabelValue(strings.Repeat("a", 80)); len(got) != 63 {
		t.Errorf("Want 63 characters got %d", len(got))
	}
}
