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

package setlabels

import "fmt"

// ResourceLookupError reading the current labels of a resource failed
type ResourceLookupError struct {
	ResourceID string
	Cause      error
}

func (e *ResourceLookupError) Error() string {
	return fmt.Sprintf("lookup labels of %s failed %v", e.ResourceID, e.Cause)
}

func (e *ResourceLookupError) Unwrap() error {
	return e.Cause
}

// ResourceUpdateError the platform rejected a clear or apply update
type ResourceUpdateError struct {
	ResourceID string
	Phase      string
	Cause      error
}

func (e *ResourceUpdateError) Error() string {
	return fmt.Sprintf("%s labels of %s failed %v", e.Phase, e.ResourceID, e.Cause)
}

func (e *ResourceUpdateError) Unwrap() error {
	return e.Cause
}
