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
	"log"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var transientErrors = []string{"500", "501", "502", "503", "504", "505", "506", "507", "508", "510", "511"}

var transientCodes = []codes.Code{codes.Unavailable, codes.Internal, codes.DeadlineExceeded, codes.Aborted, codes.ResourceExhausted}

// IsTransient is true for gRPC transient codes and for 5xx HTTP errors
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var grpcError interface{ GRPCStatus() *status.Status }
	if errors.As(err, &grpcError) {
		code := grpcError.GRPCStatus().Code()
		for _, transientCode := range transientCodes {
			if code == transientCode {
				return true
			}
		}
		return false
	}
	erroMessage := err.Error()
	for _, transientError := range transientErrors {
		if strings.Contains(erroMessage, transientError) {
			return true
		}
	}
	return false
}

// IsNotTransientElseWait check is the error is transient and wait if it is
func IsNotTransientElseWait(err error, waitSec time.Duration) (isNotTransient bool) {
	isNotTransient = !IsTransient(err)
	if !isNotTransient {
		log.Printf("Transient error, wait %d sec and retry %s", waitSec, err.Error())
		time.Sleep(waitSec * time.Second)
	}
	return isNotTransient
}

// Retry calls f up to retries times while it fails with a transient error
func Retry(retries int, waitSec time.Duration, f func() error) (err error) {
	if retries < 1 {
		retries = 1
	}
	for i := 0; i < retries; i++ {
		err = f()
		if err == nil {
			return nil
		}
		if i == retries-1 || IsNotTransientElseWait(err, waitSec) {
			return err
		}
	}
	return err
}
