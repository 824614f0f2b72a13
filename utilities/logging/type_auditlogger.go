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

package logging

import (
	"context"
	"fmt"
	"log"

	cloudlogging "cloud.google.com/go/logging"
	"google.golang.org/api/option"
)

// AuditLogName is the Cloud Logging log id receiving label mutation records
const AuditLogName = "cas_label_audit"

// AuditLogger mirrors entries to the local log and, when a project is set, to Cloud Logging
type AuditLogger struct {
	client *cloudlogging.Client
	logger *cloudlogging.Logger
}

// NewAuditLogger returns a local only logger when projectID is empty
func NewAuditLogger(ctx context.Context, projectID string, opts ...option.ClientOption) (*AuditLogger, error) {
	var auditLogger AuditLogger
	if projectID == "" {
		return &auditLogger, nil
	}
	client, err := cloudlogging.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("cloudlogging.NewClient %v", err)
	}
	auditLogger.client = client
	auditLogger.logger = client.Logger(AuditLogName)
	return &auditLogger, nil
}

// Log prints the entry and buffers it for Cloud Logging
func (a *AuditLogger) Log(entry Entry) {
	log.Println(entry)
	if a == nil || a.logger == nil {
		return
	}
	a.logger.Log(cloudlogging.Entry{
		Severity: cloudlogging.ParseSeverity(entry.Severity),
		Payload:  entry,
	})
}

// Close flushes buffered entries
func (a *AuditLogger) Close() error {
	if a == nil || a.client == nil {
		return nil
	}
	return a.client.Close()
}
