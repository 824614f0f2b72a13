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
Package services structure

Cloud function services share a consistent structure

## Two functions and one type

### `Initialize` function

- Goal
  - Optimize cloud function performance by reducing the invocation latency
- Implementation
  - Is executed once per cloud function instance as a cold start
  - Reads `settings.yaml` once, situated on the environment, validated with `utilities/validater`
  - Caches objects expensive to create, like clients and the prepared OPA query
  - A failure is logged as `init_failed` and makes each invocation stop without retry

### `Global` type

- A `struct` carrying cached objects and settings prepared by `Initialize` and used by `EntryPoint`

### `EntryPoint` function

- Goal
  - Execute operations to be performed each time the cloud function is invoked
- Implementation
  - Starts with `gcf.InitialRetryCheck`: events older than the retry time out are dropped
  - Returns an error only for transient failures, to get the event retried
  - Logs one JSON `logging.Entry` per step

`setlabels` is run from the command line instead: a `Synchronizer` gets its collaborators injected.
*/
package services
