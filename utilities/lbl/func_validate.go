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
	"fmt"
	"strings"
)

// unnamedMarker is the header given to empty CSV column names
const unnamedMarker = "Unnamed"

// Table is the read only view of a label table needed to validate it
type Table interface {
	LabelColumns() []string
	LabelCells() []Cell
	IDCells() []Cell
}

// Cell a label table cell
type Cell struct {
	Column  string
	Value   string
	Present bool
}

// Validate checks every label key and every present cell value, identifiers included, and reports all violations
func Validate(table Table) (report Report) {
	for _, key := range table.LabelColumns() {
		if strings.Contains(key, unnamedMarker) {
			report.warn(fmt.Sprintf("found empty column '%s' in the csv", key))
		}
		if !IsValidKey(key) {
			report.fail(fmt.Sprintf("label key '%s' does not follow the pattern %s, refer %s", key, KeyPattern, RequirementsURL))
		}
	}
	for _, cell := range table.IDCells() {
		if !cell.Present {
			continue
		}
		if !IsValidValue(cell.Value) {
			report.fail(fmt.Sprintf("resource identifier '%s' in column '%s' does not follow the pattern %s, refer %s", cell.Value, cell.Column, ValuePattern, RequirementsURL))
		}
	}
	for _, cell := range table.LabelCells() {
		if !cell.Present {
			continue
		}
		if !IsValidValue(cell.Value) {
			report.fail(fmt.Sprintf("label value '%s' in column '%s' does not follow the pattern %s, refer %s", cell.Value, cell.Column, ValuePattern, RequirementsURL))
		}
	}
	return report
}
