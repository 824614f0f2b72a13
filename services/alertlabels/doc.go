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

// Package alertlabels checks labels of assets reported by a Cloud Asset Inventory feed
//
// Triggered by a Pub/Sub message from a real time feed, it:
//
// - logs informational messages, like the feed configuration confirmation, without checking them
//
// - logs a WARNING when the asset carries no label or lacks a mandatory label key
//
// - optionally publishes the missing label notice to a Pub/Sub topic
//
// A payload that cannot be decoded is logged with its raw content and not retried.
//
// Instance settings are read from settings.yaml:
//
//	environmentName: prd
//	instanceName: alertlabels_prd
//	solution:
//	  hosting:
//	    projectIDs:
//	      prd: cas-prd
//	    pubsub:
//	      topicNames:
//	        missingLabels: cas-missing-labels
//	  labeling:
//	    mandatoryKeys:
//	      - team
//	      - cost_center
//	service:
//	  retryTimeOutSeconds: 600
//	  publishNotices: true
package alertlabels
