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

package gcf

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/functions/metadata"
	"github.com/BrunoReboul/cas/utilities/logging"
)

// InitialRetryCheck performs initial controls
// 1) return true and metadata when controls are passed
// 2) return false when controls failed:
// - 2a) with an error to retry the cloud function entry point function
// - 2b) with nil to stop the cloud function entry point function
func InitialRetryCheck(ctxEvent context.Context, initFailed bool, retryTimeOutSeconds int64) (bool, *metadata.Metadata, error) {
	eventMetadata, err := metadata.FromContext(ctxEvent)
	if err != nil {
		// Assume an error on the function invoker and try again.
		return false, eventMetadata, fmt.Errorf("metadata.FromContext: %v", err)
	}
	if initFailed {
		log.Println(logging.Entry{
			Severity:           "CRITICAL",
			Message:            "noretry",
			Description:        "init function failed",
			TriggeringPubsubID: eventMetadata.EventID,
		})
		return false, eventMetadata, nil
	}
	now := time.Now()
	if IsExpired(eventMetadata.Timestamp, now, retryTimeOutSeconds) {
		log.Println(logging.Entry{
			Severity:                   "CRITICAL",
			Message:                    "noretry",
			Description:                "Pubsub message too old",
			TriggeringPubsubID:         eventMetadata.EventID,
			TriggeringPubsubTimestamp:  &eventMetadata.Timestamp,
			TriggeringPubsubAgeSeconds: now.Sub(eventMetadata.Timestamp).Seconds(),
			Now:                        &now,
		})
		return false, eventMetadata, nil
	}
	return true, eventMetadata, nil
}

// IsExpired the event is older than the retry time out
func IsExpired(eventTimestamp time.Time, now time.Time, retryTimeOutSeconds int64) bool {
	return now.After(eventTimestamp.Add(time.Duration(retryTimeOutSeconds) * time.Second))
}
