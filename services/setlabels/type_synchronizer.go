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
	"io"

	"github.com/BrunoReboul/cas/utilities/gcs"
	"github.com/BrunoReboul/cas/utilities/logging"
)

// Phases of a run, also used as confirmation keys
const (
	PhaseLookup = "lookup"
	PhaseClear  = "clear"
	PhaseApply  = "apply"
)

// MicroserviceName used in log entries
const MicroserviceName = "setlabels"

// Labeler reads and fully replaces the labels of a resource
type Labeler interface {
	GetLabels(ctx context.Context, resourceID string) (map[string]string, error)
	SetLabels(ctx context.Context, resourceID string, labels map[string]string) error
}

// Confirmer decides whether a destructive phase proceeds
type Confirmer interface {
	Confirm(phase string, question string) (bool, error)
}

// Recorder persists the summary of a run
type Recorder interface {
	RecordRun(ctx context.Context, runID string, record interface{}) error
}

// Synchronizer runs the load, validate, clear, apply workflow
type Synchronizer struct {
	Labeler     Labeler
	Confirmer   Confirmer
	Store       gcs.Store
	Out         io.Writer
	Audit       *logging.AuditLogger
	Recorder    Recorder
	Environment string
}

func (s *Synchronizer) out() io.Writer {
	if s.Out == nil {
		return io.Discard
	}
	return s.Out
}
