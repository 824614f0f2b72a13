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

import (
	"strings"
	"testing"
)

func TestUnitIsValidKey(t *testing.T) {
	var testCases = []struct {
		name string
		key  string
		want bool
	}{
		{name: "dashed", key: "team-owner", want: true},
		{name: "underscored", key: "cost_center_01", want: true},
		{name: "oneLetter", key: "a", want: true},
		{name: "sixtyThreeChars", key: "a" + strings.Repeat("b", 62), want: true},
		{name: "sixtyFourChars", key: "a" + strings.Repeat("b", 63), want: false},
		{name: "upperCase", key: "Team", want: false},
		{name: "startsWithDigit", key: "0team", want: false},
		{name: "startsWithDash", key: "-team", want: false},
		{name: "empty", key: "", want: false},
		{name: "space", key: "team owner", want: false},
		{name: "unnamed", key: "Unnamed: 3", want: false},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsValidKey(tc.key); got != tc.want {
				t.Errorf("IsValidKey(%q) want %v got %v", tc.key, tc.want, got)
			}
		})
	}
}

func TestUnitIsValidValue(t *testing.T) {
	var testCases = []struct {
		name  string
		value string
		want  bool
	}{
		{name: "simple", value: "eng", want: true},
		{name: "startsWithDigit", value: "0eng", want: true},
		{name: "dash", value: "-", want: true},
		{name: "empty", value: "", want: true},
		{name: "sixtyTwoChars", value: strings.Repeat("x", 62), want: true},
		{name: "sixtyThreeChars", value: strings.Repeat("x", 63), want: false},
		{name: "upperCase", value: "Eng", want: false},
		{name: "dot", value: "v1.2", want: false},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsValidValue(tc.value); got != tc.want {
				t.Errorf("IsValidValue(%q) want %v got %v", tc.value, tc.want, got)
			}
		})
	}
}
