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

import "github.com/BrunoReboul/cas/utilities/lbl"

// Cell a table cell, Present is false for an empty cell
type Cell struct {
	Value   string
	Present bool
}

// Row one resource and its label cells, indexed by column name
type Row struct {
	id    string
	cells map[string]Cell
}

// ID the resource identifier, read from the first column
func (row Row) ID() string {
	return row.id
}

// Get returns the cell of a column, absent when the column is unknown
func (row Row) Get(column string) Cell {
	return row.cells[column]
}

// LabelTable parsed label table, not modified after load
type LabelTable struct {
	Columns []string
	Rows    []Row
}

// IDColumn the resource identifier column name
func (table *LabelTable) IDColumn() string {
	if len(table.Columns) == 0 {
		return ""
	}
	return table.Columns[0]
}

// LabelColumns all columns except the identifier one, in file order
func (table *LabelTable) LabelColumns() []string {
	if len(table.Columns) < 2 {
		return nil
	}
	return table.Columns[1:]
}

// LabelCells every cell of the label columns, row by row
func (table *LabelTable) LabelCells() []lbl.Cell {
	var cells []lbl.Cell
	for _, row := range table.Rows {
		for _, column := range table.LabelColumns() {
			cell := row.Get(column)
			cells = append(cells, lbl.Cell{Column: column, Value: cell.Value, Present: cell.Present})
		}
	}
	return cells
}

// IDCells every cell of the identifier column, row by row
func (table *LabelTable) IDCells() []lbl.Cell {
	cells := make([]lbl.Cell, 0, len(table.Rows))
	for _, row := range table.Rows {
		cells = append(cells, lbl.Cell{Column: table.IDColumn(), Value: row.id, Present: row.id != ""})
	}
	return cells
}

// IDs resource identifiers in row order
func (table *LabelTable) IDs() []string {
	ids := make([]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		ids = append(ids, row.id)
	}
	return ids
}

// LabelSet labels of one row: label columns with a present cell
func (table *LabelTable) LabelSet(row Row) lbl.Set {
	set := make(lbl.Set)
	for _, column := range table.LabelColumns() {
		cell := row.Get(column)
		if !cell.Present {
			continue
		}
		set[column] = cell.Value
	}
	return set
}
