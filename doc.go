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
Package cas CAS Cost Attribution Solution

## What

Keep Google Cloud labels, the key value pairs used to attribute costs, accurate and complete.

- `cmd/setlabels` synchronizes project labels with a CSV file: validate every key and value, clear the labels in place, then apply the labels of the file
- `services/alertlabels` cloud function: check the labels of each asset changed, as reported by a Cloud Asset Inventory real time feed, and alert on missing labels
- `services/exportassets` cloud function: export the asset inventory to a BigQuery table on schedule, to report on labels coverage

## Why

- Billing exports break down costs by label: an unlabeled resource is an unattributed cost
- The label grammar is strict, see https://cloud.google.com/resource-manager/docs/labels-overview#requirements
*/
package cas
