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

	"github.com/BrunoReboul/cas/utilities/lbl"
	"github.com/BrunoReboul/cas/utilities/tab"
)

// ListLabeledResources returns, in row order, the resources that currently carry at least one label
func (s *Synchronizer) ListLabeledResources(ctx context.Context, table *tab.LabelTable) (labeled []string, failures []Outcome) {
	for _, resourceID := range table.IDs() {
		labels, err := s.Labeler.GetLabels(ctx, resourceID)
		if err != nil {
			failures = append(failures, failure(resourceID, PhaseLookup, &ResourceLookupError{ResourceID: resourceID, Cause: err}))
			continue
		}
		if len(labels) > 0 {
			labeled = append(labeled, resourceID)
		}
	}
	return labeled, failures
}

// ClearLabels removes every label of the resource
func (s *Synchronizer) ClearLabels(ctx context.Context, resourceID string) error {
	if _, err := s.Labeler.GetLabels(ctx, resourceID); err != nil {
		return &ResourceLookupError{ResourceID: resourceID, Cause: err}
	}
	if err := s.Labeler.SetLabels(ctx, resourceID, map[string]string{}); err != nil {
		return &ResourceUpdateError{ResourceID: resourceID, Phase: PhaseClear, Cause: err}
	}
	return nil
}

// ApplyLabels merges the set into the current labels of the resource, labels not in the set are kept
func (s *Synchronizer) ApplyLabels(ctx context.Context, resourceID string, set lbl.Set) error {
	current, err := s.Labeler.GetLabels(ctx, resourceID)
	if err != nil {
		return &ResourceLookupError{ResourceID: resourceID, Cause: err}
	}
	if err := s.Labeler.SetLabels(ctx, resourceID, lbl.Merge(current, set)); err != nil {
		return &ResourceUpdateError{ResourceID: resourceID, Phase: PhaseApply, Cause: err}
	}
	return nil
}
