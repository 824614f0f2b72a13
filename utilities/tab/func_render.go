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

package tab

import (
	"io"

	"github.com/fatih/color"
	"github.com/rodaine/table"
)

// Render prints the table for operator review, absent cells are shown as NaN
func Render(w io.Writer, labelTable *LabelTable) {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	headers := make([]interface{}, 0, len(labelTable.Columns))
	for _, column := range labelTable.Columns {
		headers = append(headers, column)
	}
	tbl := table.New(headers...).WithWriter(w)
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)
	for _, row := range labelTable.Rows {
		values := make([]interface{}, 0, len(labelTable.Columns))
		for _, column := range labelTable.Columns {
			cell := row.Get(column)
			if cell.Present {
				values = append(values, cell.Value)
			} else {
				values = append(values, "NaN")
			}
		}
		tbl.AddRow(values...)
	}
	tbl.Print()
}
