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

/*
Package tab loads the label table, a comma separated file with a header row

The first column holds the resource identifiers, conventionally named project_id.
The other columns are label keys, their cells the label values. An empty cell means no label.

	project_id,team,env
	p1,eng,
	p2,ops,prd

Column and row order are preserved. Empty header cells are named "Unnamed: <index>" so the
label validator can warn about them. Duplicate column names are rejected.
*/
package tab
