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
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BrunoReboul/cas/utilities/gcs"
)

// Load checks the input exists, then reads and parses it
func Load(ctx context.Context, store gcs.Store, uri string) (*LabelTable, error) {
	location, err := gcs.ParseLocation(uri)
	if err != nil {
		return nil, err
	}
	found, err := store.Exists(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("store.Exists %v", err)
	}
	if !found {
		return nil, &InputNotFoundError{URI: uri}
	}
	reader, err := store.NewReader(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("store.NewReader %v", err)
	}
	defer reader.Close()
	return Parse(reader)
}

// Parse reads a header row and data rows
// Names and values are kept verbatim, whitespace included, only a leading byte order mark is dropped
func Parse(r io.Reader) (*LabelTable, error) {
	csvReader := csv.NewReader(r)
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &RowError{Line: 1, Reason: "missing header row"}
		}
		return nil, fmt.Errorf("csv header %w", err)
	}
	var table LabelTable
	seen := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if first, ok := seen[name]; ok {
			return nil, &DuplicateColumnError{Column: name, First: first, Second: i}
		}
		seen[name] = i
		table.Columns = append(table.Columns, name)
	}

	ids := make(map[string]int)
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv row %w", err)
		}
		line, _ := csvReader.FieldPos(0)
		if isBlank(record) {
			continue
		}
		if len(record) > len(table.Columns) {
			return nil, &RowError{Line: line, Reason: fmt.Sprintf("%d fields for %d columns", len(record), len(table.Columns))}
		}
		row := Row{cells: make(map[string]Cell, len(table.Columns))}
		for i, column := range table.Columns {
			var cell Cell
			if i < len(record) {
				cell = Cell{Value: record[i], Present: record[i] != ""}
			}
			row.cells[column] = cell
		}
		row.id = row.cells[table.IDColumn()].Value
		if row.id == "" {
			return nil, &RowError{Line: line, Reason: fmt.Sprintf("empty resource identifier in column '%s'", table.IDColumn())}
		}
		if firstLine, ok := ids[row.id]; ok {
			return nil, &RowError{Line: line, Reason: fmt.Sprintf("resource '%s' already listed on line %d", row.id, firstLine)}
		}
		ids[row.id] = line
		table.Rows = append(table.Rows, row)
	}
	return &table, nil
}

func isBlank(record []string) bool {
	for _, field := range record {
		if field != "" {
			return false
		}
	}
	return true
}
