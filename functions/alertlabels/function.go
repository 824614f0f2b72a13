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

// Package p contains a background cloud function that checks the labels of assets reported by a real time feed
package p

import (
	"context"

	"github.com/BrunoReboul/cas/services/alertlabels"
	"github.com/BrunoReboul/cas/utilities/gps"
)

var global alertlabels.Global
var ctx = context.Background()

// EntryPoint is the function to be executed for each cloud function occurence
func EntryPoint(ctxEvent context.Context, PubSubMessage gps.PubSubMessage) error {
	return alertlabels.EntryPoint(ctxEvent, PubSubMessage, &global)
}

func init() {
	// a failed init is logged and makes each occurence stop without retry
	_ = alertlabels.Initialize(ctx, &global)
}
