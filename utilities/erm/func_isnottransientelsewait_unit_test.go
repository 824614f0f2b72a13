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

package erm

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestUnitIsNotTransientElseWait(t *testing.T) {
	var testCases = []struct {
		name                   string
		err                    error
		shouldNotFindTransient bool
	}{
		{
			name:                   "err403",
			err:                    fmt.Errorf("403 forbidden"),
			shouldNotFindTransient: true,
		},
		{
			name:                   "err500",
			err:                    fmt.Errorf("500 Internal Server Error"),
			shouldNotFindTransient: false,
		},
		{
			name:                   "err503",
			err:                    fmt.Errorf("503 Service Unavailable"),
			shouldNotFindTransient: false,
		},
		{
			name:                   "err511",
			err:                    fmt.Errorf("511 Network Authentication Required"),
			shouldNotFindTransient: false,
		},
		{
			name:                   "grpcUnavailable",
			err:                    status.Error(codes.Unavailable, "connection reset"),
			shouldNotFindTransient: false,
		},
		{
			name:                   "grpcAborted",
			err:                    status.Error(codes.Aborted, "concurrent policy changes"),
			shouldNotFindTransient: false,
		},
		{
			name:                   "grpcPermissionDenied",
			err:                    status.Error(codes.PermissionDenied, "caller does not have permission"),
			shouldNotFindTransient: true,
		},
		{
			name:                   "grpcNotFound",
			err:                    status.Error(codes.NotFound, "project not found"),
			shouldNotFindTransient: true,
		},
		{
			name:                   "grpcWrappedUnavailable",
			err:                    fmt.Errorf("projectsClient.GetProject %w", status.Error(codes.Unavailable, "x")),
			shouldNotFindTransient: false,
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := IsNotTransientElseWait(tc.err, 0)
			if tc.shouldNotFindTransient != result {
				if tc.shouldNotFindTransient {
					t.Errorf("Should NOT find transient in %v", tc.err)
				} else {
					t.Errorf("Should find transient in %v", tc.err)
				}
			}
		})
	}
}

func TestUnitRetry(t *testing.T) {
	var testCases = []struct {
		name      string
		retries   int
		errs      []error
		wantCalls int
		wantErr   bool
	}{
		{name: "firstTimeOK", retries: 3, errs: []error{nil}, wantCalls: 1},
		{name: "transientThenOK", retries: 3, errs: []error{status.Error(codes.Unavailable, "x"), nil}, wantCalls: 2},
		{name: "permanentStops", retries: 3, errs: []error{status.Error(codes.PermissionDenied, "x")}, wantCalls: 1, wantErr: true},
		{name: "transientExhausted", retries: 2, errs: []error{errors.New("503"), errors.New("503"), nil}, wantCalls: 2, wantErr: true},
		{name: "zeroRetriesCallsOnce", retries: 0, errs: []error{errors.New("503")}, wantCalls: 1, wantErr: true},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			calls := 0
			err := Retry(tc.retries, 0, func() error {
				err := tc.errs[calls]
				calls++
				return err
			})
			if calls != tc.wantCalls {
				t.Errorf("Want %d calls got %d", tc.wantCalls, calls)
			}
			if (err != nil) != tc.wantErr {
				t.Errorf("Want error %v got %v", tc.wantErr, err)
			}
		})
	}
}
