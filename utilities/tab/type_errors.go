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
	"fmt"

	"github.com/BrunoReboul/cas/utilities/gcs"
)

// InputNotFoundError the input location does not resolve to an object
type InputNotFoundError struct {
	URI string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("object not found at %s, please provide a valid URI in pattern: %s", e.URI, gcs.ExpectedPattern)
}

// DuplicateColumnError the header names the same column twice
type DuplicateColumnError struct {
	Column string
	First  int
	Second int
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("duplicate column '%s' at positions %d and %d", e.Column, e.First+1, e.Second+1)
}

// RowError a data row cannot be used
type RowError struct {
	Line   int
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}
