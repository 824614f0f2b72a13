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

package alertlabels

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	pubsub "cloud.google.com/go/pubsub/apiv1"
	"github.com/BrunoReboul/cas/utilities/ffo"
	"github.com/BrunoReboul/cas/utilities/gcf"
	"github.com/BrunoReboul/cas/utilities/gps"
	"github.com/BrunoReboul/cas/utilities/logging"
	"github.com/BrunoReboul/cas/utilities/pol"
	"github.com/BrunoReboul/cas/utilities/solution"
	"github.com/BrunoReboul/cas/utilities/str"
	"github.com/BrunoReboul/cas/utilities/validater"
	"github.com/google/uuid"
)

// MicroserviceName used in log entries
const MicroserviceName = "alertlabels"

// Global structure for global variables to optimize the cloud function performances
type Global struct {
	ctx                   context.Context
	environment           string
	initFailed            bool
	instanceName          string
	policy                *pol.Policy
	projectID             string
	pubsubPublisherClient *pubsub.PublisherClient
	retryTimeOutSeconds   int64
	topicName             string
	PubSubID              string
}

// Initialize is to be executed in the init() function of the cloud function to optimize the cold start
func Initialize(ctx context.Context, global *Global) (err error) {
	log.SetFlags(0)
	var instanceSettings InstanceSettings
	err = ffo.ReadUnmarshalYAML(solution.PathToFunctionCode+solution.SettingsFileName, &instanceSettings)
	if err != nil {
		global.initFailed = true
		log.Println(logging.Entry{
			MicroserviceName: MicroserviceName,
			Severity:         "CRITICAL",
			Message:          "init_failed",
			Description:      fmt.Sprintf("ReadUnmarshalYAML %s %v", solution.SettingsFileName, err),
		})
		return err
	}
	return initialize(ctx, global, instanceSettings)
}

func initialize(ctx context.Context, global *Global, instanceSettings InstanceSettings) (err error) {
	global.ctx = ctx
	initID := uuid.New().String()
	instanceSettings.Solution.Situate(instanceSettings.EnvironmentName)

	global.environment = instanceSettings.EnvironmentName
	global.instanceName = instanceSettings.InstanceName
	global.projectID = instanceSettings.Solution.Hosting.ProjectID
	global.retryTimeOutSeconds = instanceSettings.Service.RetryTimeOutSeconds
	global.topicName = instanceSettings.Solution.Hosting.Pubsub.TopicNames.MissingLabels

	log.Println(logging.Entry{
		MicroserviceName: MicroserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          "coldstart",
		InitID:           initID,
	})

	fail := func(description string, err error) error {
		global.initFailed = true
		log.Println(logging.Entry{
			MicroserviceName: MicroserviceName,
			InstanceName:     global.instanceName,
			Environment:      global.environment,
			Severity:         "CRITICAL",
			Message:          "init_failed",
			Description:      fmt.Sprintf("%s %v", description, err),
			InitID:           initID,
		})
		return err
	}

	if err = validater.ValidateStruct(&instanceSettings, "alertlabels"); err != nil {
		return fail("validater.ValidateStruct", err)
	}
	global.policy, err = pol.NewPolicy(ctx, instanceSettings.Solution.Labeling.MandatoryKeys)
	if err != nil {
		return fail("pol.NewPolicy", err)
	}
	if instanceSettings.Service.PublishNotices {
		if global.projectID == "" || global.topicName == "" {
			return fail("publishNotices", fmt.Errorf("requires a hosting projectID and a missingLabels topic name"))
		}
		// services are initialized with context.Background() because it should
		// persist between function invocations.
		global.pubsubPublisherClient, err = pubsub.NewPublisherClient(ctx)
		if err != nil {
			return fail("pubsub.NewPublisherClient", err)
		}
	}
	return nil
}

// EntryPoint is the function to be executed for each cloud function occurence
func EntryPoint(ctxEvent context.Context, PubSubMessage gps.PubSubMessage, global *Global) error {
	ok, metadata, err := gcf.InitialRetryCheck(ctxEvent, global.initFailed, global.retryTimeOutSeconds)
	if !ok {
		return err
	}
	global.PubSubID = metadata.EventID
	start := time.Now()

	notice, err := Decode(PubSubMessage.Data)
	if err != nil {
		global.log("CRITICAL", "noretry", err.Error())
		return nil
	}
	if notice.Kind == KindInformational {
		global.log("INFO", "informational", fmt.Sprintf("ignored pubsub message: %s", notice.Message))
		return nil
	}
	if !notice.Deleted {
		notice.MissingMandatory, err = global.policy.MissingLabels(global.ctx, notice.Labels)
		if err != nil {
			global.log("CRITICAL", "noretry", fmt.Sprintf("policy.MissingLabels %v", err))
			return nil
		}
	}

	global.log("INFO", "asset", fmt.Sprintf("Asset Type: %s | Name: %s | Parent: %s | Labels: %d %s",
		notice.AssetType,
		notice.Name,
		notice.Parent,
		len(notice.Labels),
		str.FlattenMapStringString(notice.Labels)))

	if notice.NeedsAlert() {
		description := fmt.Sprintf("Resource with missing Label - Name: %s | Asset Type: %s | Parent: %s",
			notice.Name,
			notice.AssetType,
			notice.Parent)
		if len(notice.MissingMandatory) > 0 {
			description = fmt.Sprintf("%s | Missing mandatory keys: %s", description, strings.Join(notice.MissingMandatory, ","))
		}
		global.log("WARNING", "missing_label", description)

		if global.pubsubPublisherClient != nil {
			noticeJSON, err := json.Marshal(notice)
			if err != nil {
				global.log("CRITICAL", "noretry", fmt.Sprintf("json.Marshal(notice) %v", err))
				return nil
			}
			messageID, err := gps.Publish(global.ctx, global.pubsubPublisherClient, global.projectID, global.topicName, noticeJSON,
				map[string]string{"assetType": notice.AssetType, "origin": MicroserviceName})
			if err != nil {
				global.log("CRITICAL", "redo_on_transient", err.Error())
				return err
			}
			global.log("INFO", "published", fmt.Sprintf("notice published to %s id %s", global.topicName, messageID))
		}
	}

	now := time.Now()
	log.Println(logging.Entry{
		MicroserviceName:          MicroserviceName,
		InstanceName:              global.instanceName,
		Environment:               global.environment,
		Severity:                  "NOTICE",
		Message:                   "finish",
		Now:                       &now,
		ResourceID:                notice.Name,
		TriggeringPubsubID:        global.PubSubID,
		TriggeringPubsubTimestamp: &metadata.Timestamp,
		LatencySeconds:            now.Sub(start).Seconds(),
	})
	return nil
}

func (global *Global) log(severity string, message string, description string) {
	log.Println(logging.Entry{
		MicroserviceName:   MicroserviceName,
		InstanceName:       global.instanceName,
		Environment:        global.environment,
		Severity:           severity,
		Message:            message,
		Description:        description,
		TriggeringPubsubID: global.PubSubID,
	})
}
