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

package gfs

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/BrunoReboul/cas/utilities/erm"
	"google.golang.org/api/option"
)

// DefaultCollectionID where run documents are written when none is configured
const DefaultCollectionID = "labelRuns"

// RunRecorder writes one document per run
type RunRecorder struct {
	client       *firestore.Client
	CollectionID string
	Retries      int
	WaitSec      time.Duration
}

// NewRunRecorder firestore client on projectID
func NewRunRecorder(ctx context.Context, projectID string, collectionID string, opts ...option.ClientOption) (*RunRecorder, error) {
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore.NewClient %v", err)
	}
	if collectionID == "" {
		collectionID = DefaultCollectionID
	}
	return &RunRecorder{
		client:       client,
		CollectionID: collectionID,
		Retries:      3,
		WaitSec:      2,
	}, nil
}

// DocumentPath of a run
func DocumentPath(collectionID string, runID string) string {
	return collectionID + "/" + runID
}

// RecordRun sets the run document, retrying on transient errors
func (recorder *RunRecorder) RecordRun(ctx context.Context, runID string, record interface{}) error {
	documentPath := DocumentPath(recorder.CollectionID, runID)
	return erm.Retry(recorder.Retries, recorder.WaitSec, func() error {
		_, err := recorder.client.Doc(documentPath).Set(ctx, record)
		if err != nil {
			return fmt.Errorf("firestoreClient.Doc(documentPath).Set %s %w", documentPath, err)
		}
		return nil
	})
}

// Close releases the firestore client
func (recorder *RunRecorder) Close() error {
	return recorder.client.Close()
}
