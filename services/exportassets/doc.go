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

// Package exportassets exports the Cloud Asset Inventory of a project or an organization to a BigQuery table
//
// Triggered by a scheduled Pub/Sub message, it requests the export, waits for its completion and logs the result.
//
// Settings come from settings.yaml when deployed with the function, then environment variables override them:
//
// - PROJECT_ID hosting project of the BigQuery dataset, exported project when PARENT is blank
//
// - BIGQUERY_DATASET destination dataset, created when missing
//
// - BIGQUERY_TABLE destination table, overwritten at each export
//
// - PARENT organization ID to export the whole organization, a full resource name like folders/<ID> or projects/<ID> is also accepted and used as is
package exportassets
