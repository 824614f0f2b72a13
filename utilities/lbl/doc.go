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
Package lbl label grammar and label sets

Keys and values follow the resource manager requirements
https://cloud.google.com/resource-manager/docs/labels-overview#requirements

- key: starts with a lowercase letter, then up to 62 lowercase letters, digits, underscores or dashes
- value: up to 62 lowercase letters, digits, underscores or dashes, may be empty

Validate scans a whole label table and counts every violation, it never stops at the first one.
*/
package lbl
