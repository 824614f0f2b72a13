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

import (
	"fmt"
	"io"
	"time"

	"github.com/BrunoReboul/cas/utilities/lbl"
)

// Outcome of one resource in one phase, Err nil when it succeeded
type Outcome struct {
	ResourceID string `json:"resourceID" firestore:"resourceID"`
	Phase      string `json:"phase" firestore:"phase"`
	Err        error  `json:"-" firestore:"-"`
	Cause      string `json:"cause,omitempty" firestore:"cause,omitempty"`
}

func failure(resourceID string, phase string, err error) Outcome {
	return Outcome{
		ResourceID: resourceID,
		Phase:      phase,
		Err:        err,
		Cause:      err.Error(),
	}
}

// PhaseSummary accounting of one phase
type PhaseSummary struct {
	Phase     string    `json:"phase" firestore:"phase"`
	Asked     bool      `json:"asked" firestore:"asked"`
	Confirmed bool      `json:"confirmed" firestore:"confirmed"`
	Succeeded []string  `json:"succeeded" firestore:"succeeded"`
	Failed    []Outcome `json:"failed" firestore:"failed"`
}

func (p *PhaseSummary) record(resourceID string, err error) {
	if err != nil {
		p.Failed = append(p.Failed, failure(resourceID, p.Phase, err))
		return
	}
	p.Succeeded = append(p.Succeeded, resourceID)
}

// Summary of a run
type Summary struct {
	RunID       string       `json:"runID" firestore:"runID"`
	URI         string       `json:"uri" firestore:"uri"`
	Environment string       `json:"environment,omitempty" firestore:"environment,omitempty"`
	StartTime   time.Time    `json:"startTime" firestore:"startTime"`
	EndTime     time.Time    `json:"endTime" firestore:"endTime"`
	Report      lbl.Report   `json:"report" firestore:"report"`
	Aborted     bool         `json:"aborted" firestore:"aborted"`
	Labeled     []string     `json:"labeled" firestore:"labeled"`
	Lookup      PhaseSummary `json:"lookup" firestore:"lookup"`
	Clear       PhaseSummary `json:"clear" firestore:"clear"`
	Apply       PhaseSummary `json:"apply" firestore:"apply"`
}

func newSummary(runID string, uri string, environment string) *Summary {
	return &Summary{
		RunID:       runID,
		URI:         uri,
		Environment: environment,
		StartTime:   time.Now(),
		Lookup:      PhaseSummary{Phase: PhaseLookup},
		Clear:       PhaseSummary{Phase: PhaseClear},
		Apply:       PhaseSummary{Phase: PhaseApply},
	}
}

// Failures all failed outcomes in phase order
func (s *Summary) Failures() []Outcome {
	var failures []Outcome
	failures = append(failures, s.Lookup.Failed...)
	failures = append(failures, s.Clear.Failed...)
	failures = append(failures, s.Apply.Failed...)
	return failures
}

// Print writes the per phase counts and the failed resources
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "Run %s summary\n", s.RunID)
	if s.Aborted {
		fmt.Fprintf(w, "aborted: %d validation error(s), %d warning(s)\n", s.Report.Errors, s.Report.Warnings)
		return
	}
	for _, phase := range []PhaseSummary{s.Lookup, s.Clear, s.Apply} {
		status := "done"
		switch {
		case phase.Phase == PhaseLookup:
		case !phase.Asked:
			status = "not needed"
		case !phase.Confirmed:
			status = "skipped"
		}
		fmt.Fprintf(w, "%-7s %-10s succeeded %d failed %d\n", phase.Phase, status, len(phase.Succeeded), len(phase.Failed))
	}
	for _, outcome := range s.Failures() {
		fmt.Fprintf(w, "FAILED %s %s: %s\n", outcome.Phase, outcome.ResourceID, outcome.Cause)
	}
}
