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

// Package setlabels synchronizes cloud project labels with a CSV file
//
// The first CSV column holds the project ids, the other column names are label keys.
// A run loads and previews the file, validates every key and value, then, after an
// operator confirmation for each phase:
//
// - clears all labels of the projects that currently carry labels
//
// - merges the label set of each row into its project
//
// Clearing always completes for every listed project before applying starts.
// A failure on one project is reported in the run summary and does not stop the batch.
package setlabels
