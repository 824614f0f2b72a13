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

package lbl

import (
	"fmt"
	"strings"
)

// Report outcome of a label table validation
type Report struct {
	Warnings int
	Errors   int
	Messages []string
}

func (report *Report) warn(msg string) {
	report.Warnings++
	report.Messages = append(report.Messages, "WARNING: "+msg)
}

func (report *Report) fail(msg string) {
	report.Errors++
	report.Messages = append(report.Messages, "ERROR: "+msg)
}

// Err returns a *ValidationError when at least one error was found
func (report Report) Err() error {
	if report.Errors == 0 {
		return nil
	}
	return &ValidationError{Report: report}
}

// ValidationError aggregates every key and value violation found in a table
type ValidationError struct {
	Report Report
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("label validation failed with %d error(s) and %d warning(s): %s",
		e.Report.Errors,
		e.Report.Warnings,
		strings.Join(e.Report.Messages, "; "))
}
