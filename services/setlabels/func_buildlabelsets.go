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

package setlabels

import (
	"github.com/BrunoReboul/cas/utilities/lbl"
	"github.com/BrunoReboul/cas/utilities/tab"
)

// BuildLabelSets returns the label set of each row, keyed by resource id, and the ids in row order
func BuildLabelSets(table *tab.LabelTable) (map[string]lbl.Set, []string) {
	sets := make(map[string]lbl.Set, len(table.Rows))
	for _, row := range table.Rows {
		sets[row.ID()] = table.LabelSet(row)
	}
	return sets, table.IDs()
}
