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
	"context"
	"fmt"
	"time"

	"github.com/BrunoReboul/cas/utilities/lbl"
	"github.com/BrunoReboul/cas/utilities/logging"
	"github.com/BrunoReboul/cas/utilities/str"
	"github.com/BrunoReboul/cas/utilities/tab"
	"github.com/google/uuid"
)

// Run loads the CSV at uri and synchronizes the labels it describes
// A failed validation returns a *lbl.ValidationError before any resource is read or changed
func (s *Synchronizer) Run(ctx context.Context, uri string) (*Summary, error) {
	summary := newSummary(uuid.New().String(), uri, s.Environment)
	out := s.out()

	table, err := tab.Load(ctx, s.Store, uri)
	if err != nil {
		s.log(summary, "", "ERROR", "load_failed", err.Error(), "")
		return summary, err
	}
	fmt.Fprintf(out, "Preview of %s\n", uri)
	tab.Render(out, table)

	summary.Report = lbl.Validate(table)
	for _, msg := range summary.Report.Messages {
		fmt.Fprintln(out, msg)
	}
	fmt.Fprintf(out, "%d warning(s) %d error(s)\n", summary.Report.Warnings, summary.Report.Errors)
	if err = summary.Report.Err(); err != nil {
		summary.Aborted = true
		summary.EndTime = time.Now()
		summary.Print(out)
		s.log(summary, "", "WARNING", "validation_failed", err.Error(), "")
		s.record(ctx, summary)
		return summary, err
	}

	summary.Labeled, summary.Lookup.Failed = s.ListLabeledResources(ctx, table)
	summary.Lookup.Succeeded = succeeded(table.IDs(), summary.Lookup.Failed)
	for _, outcome := range summary.Lookup.Failed {
		fmt.Fprintf(out, "ERROR: %s\n", outcome.Cause)
		s.log(summary, outcome.ResourceID, "ERROR", "lookup_failed", outcome.Cause, "")
	}

	if len(summary.Labeled) > 0 {
		fmt.Fprintf(out, "%d resource(s) already have labels:\n", len(summary.Labeled))
		for _, resourceID := range summary.Labeled {
			fmt.Fprintln(out, resourceID)
		}
		summary.Clear.Asked = true
		summary.Clear.Confirmed, err = s.Confirmer.Confirm(PhaseClear, "Do you want to clear all labels of these resources?")
		if err != nil {
			return summary, fmt.Errorf("confirm %s %w", PhaseClear, err)
		}
		if summary.Clear.Confirmed {
			for _, resourceID := range summary.Labeled {
				err := s.ClearLabels(ctx, resourceID)
				summary.Clear.record(resourceID, err)
				s.logOutcome(summary, PhaseClear, resourceID, err, "")
			}
		}
	}

	sets, resourceIDs := BuildLabelSets(table)
	fmt.Fprintln(out, "Labels to apply:")
	for _, resourceID := range resourceIDs {
		fmt.Fprintf(out, "%s: %s\n", resourceID, str.FlattenMapStringString(sets[resourceID]))
	}
	summary.Apply.Asked = true
	summary.Apply.Confirmed, err = s.Confirmer.Confirm(PhaseApply, "Do you want to apply these labels?")
	if err != nil {
		return summary, fmt.Errorf("confirm %s %w", PhaseApply, err)
	}
	if summary.Apply.Confirmed {
		for _, resourceID := range resourceIDs {
			labels := str.FlattenMapStringString(sets[resourceID])
			err := s.ApplyLabels(ctx, resourceID, sets[resourceID])
			summary.Apply.record(resourceID, err)
			s.logOutcome(summary, PhaseApply, resourceID, err, labels)
		}
	}

	summary.EndTime = time.Now()
	summary.Print(out)
	s.log(summary, "", "NOTICE", "finish", fmt.Sprintf("cleared %d applied %d failed %d",
		len(summary.Clear.Succeeded),
		len(summary.Apply.Succeeded),
		len(summary.Failures())), "")
	s.record(ctx, summary)
	return summary, nil
}

func succeeded(resourceIDs []string, failures []Outcome) []string {
	failed := make([]string, 0, len(failures))
	for _, outcome := range failures {
		failed = append(failed, outcome.ResourceID)
	}
	var ok []string
	for _, resourceID := range resourceIDs {
		if !str.Find(failed, resourceID) {
			ok = append(ok, resourceID)
		}
	}
	return ok
}

func (s *Synchronizer) logOutcome(summary *Summary, phase string, resourceID string, err error, labels string) {
	if err != nil {
		fmt.Fprintf(s.out(), "ERROR: %v\n", err)
		s.log(summary, resourceID, "ERROR", phase+"_failed", err.Error(), labels)
		return
	}
	fmt.Fprintf(s.out(), "%s %s done\n", phase, resourceID)
	s.log(summary, resourceID, "NOTICE", phase+"_done", "", labels)
}

func (s *Synchronizer) log(summary *Summary, resourceID string, severity string, message string, description string, labels string) {
	now := time.Now()
	s.Audit.Log(logging.Entry{
		MicroserviceName: MicroserviceName,
		Environment:      summary.Environment,
		Severity:         severity,
		Message:          message,
		Description:      description,
		Now:              &now,
		RunID:            summary.RunID,
		ResourceID:       resourceID,
		Labels:           labels,
	})
}

func (s *Synchronizer) record(ctx context.Context, summary *Summary) {
	if s.Recorder == nil {
		return
	}
	if err := s.Recorder.RecordRun(ctx, summary.RunID, summary); err != nil {
		s.log(summary, "", "WARNING", "record_failed", err.Error(), "")
	}
}
