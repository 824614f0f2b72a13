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

package exportassets

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	asset "cloud.google.com/go/asset/apiv1"
	"cloud.google.com/go/bigquery"
	"github.com/BrunoReboul/cas/utilities/ffo"
	"github.com/BrunoReboul/cas/utilities/gbq"
	"github.com/BrunoReboul/cas/utilities/gcf"
	"github.com/BrunoReboul/cas/utilities/gps"
	"github.com/BrunoReboul/cas/utilities/logging"
	"github.com/BrunoReboul/cas/utilities/solution"
	"github.com/BrunoReboul/cas/utilities/validater"
	"github.com/google/uuid"
	assetpb "google.golang.org/genproto/googleapis/cloud/asset/v1"
)

// MicroserviceName used in log entries
const MicroserviceName = "exportassets"

// DefaultRetryTimeOutSeconds when the settings do not set one
const DefaultRetryTimeOutSeconds = 600

// Global structure for global variables to optimize the cloud function performances
type Global struct {
	ctx                 context.Context
	assetClient         *asset.Client
	environment         string
	initFailed          bool
	instanceName        string
	request             *assetpb.ExportAssetsRequest
	retryTimeOutSeconds int64
	PubSubID            string
}

// Initialize is to be executed in the init() function of the cloud function to optimize the cold start
func Initialize(ctx context.Context, global *Global) (err error) {
	log.SetFlags(0)
	global.ctx = ctx
	initID := uuid.New().String()

	var instanceSettings InstanceSettings
	settingsPath := solution.PathToFunctionCode + solution.SettingsFileName
	if _, err = os.Stat(settingsPath); err == nil {
		if err = ffo.ReadUnmarshalYAML(settingsPath, &instanceSettings); err != nil {
			return global.initFail(initID, "ffo.ReadUnmarshalYAML", err)
		}
	}
	instanceSettings.Solution.Situate(instanceSettings.EnvironmentName)
	global.environment = instanceSettings.EnvironmentName
	global.instanceName = instanceSettings.InstanceName
	global.retryTimeOutSeconds = instanceSettings.Service.RetryTimeOutSeconds
	if global.retryTimeOutSeconds == 0 {
		global.retryTimeOutSeconds = DefaultRetryTimeOutSeconds
	}
	log.Println(logging.Entry{
		MicroserviceName: MicroserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          "coldstart",
		InitID:           initID,
	})

	exportSettings := NewExportSettings(instanceSettings.Solution)
	exportSettings.ApplyEnv(os.LookupEnv)
	if err = validater.ValidateStruct(exportSettings, "exportassets"); err != nil {
		return global.initFail(initID, "validater.ValidateStruct", err)
	}
	global.request, err = BuildRequest(exportSettings)
	if err != nil {
		return global.initFail(initID, "BuildRequest", err)
	}

	bigQueryClient, err := bigquery.NewClient(ctx, exportSettings.ProjectID)
	if err != nil {
		return global.initFail(initID, "bigquery.NewClient", err)
	}
	defer bigQueryClient.Close()
	if _, err = gbq.GetDataset(ctx, bigQueryClient, exportSettings.Dataset, exportSettings.DatasetLocation); err != nil {
		return global.initFail(initID, "gbq.GetDataset", err)
	}

	// services are initialized with context.Background() because it should
	// persist between function invocations.
	global.assetClient, err = asset.NewClient(ctx)
	if err != nil {
		return global.initFail(initID, "asset.NewClient", err)
	}
	return nil
}

func (global *Global) initFail(initID string, call string, err error) error {
	global.initFailed = true
	log.Println(logging.Entry{
		MicroserviceName: MicroserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "CRITICAL",
		Message:          "init_failed",
		Description:      fmt.Sprintf("%s %v", call, err),
		InitID:           initID,
	})
	return err
}

// EntryPoint is the function to be executed for each cloud function occurence
func EntryPoint(ctxEvent context.Context, PubSubMessage gps.PubSubMessage, global *Global) error {
	ok, metadata, err := gcf.InitialRetryCheck(ctxEvent, global.initFailed, global.retryTimeOutSeconds)
	if !ok {
		return err
	}
	global.PubSubID = metadata.EventID
	start := time.Now()

	operation, err := global.assetClient.ExportAssets(global.ctx, global.request)
	if err != nil {
		global.log("CRITICAL", "redo_on_transient", fmt.Sprintf("assetClient.ExportAssets %v", err))
		return err
	}
	global.log("INFO", "export_requested", fmt.Sprintf("gcloud asset operations describe %s parent %s", operation.Name(), global.request.Parent))

	response, err := operation.Wait(global.ctx)
	if err != nil {
		global.log("CRITICAL", "redo_on_transient", fmt.Sprintf("operation.Wait %s %v", operation.Name(), err))
		return err
	}
	now := time.Now()
	log.Println(logging.Entry{
		MicroserviceName:          MicroserviceName,
		InstanceName:              global.instanceName,
		Environment:               global.environment,
		Severity:                  "NOTICE",
		Message:                   "finish",
		Description:               DescribeOutput(response),
		Now:                       &now,
		TriggeringPubsubID:        global.PubSubID,
		TriggeringPubsubTimestamp: &metadata.Timestamp,
		LatencySeconds:            now.Sub(start).Seconds(),
	})
	return nil
}

// DescribeOutput where the export landed
func DescribeOutput(response *assetpb.ExportAssetsResponse) string {
	destination := response.GetOutputConfig().GetBigqueryDestination()
	if destination == nil {
		return fmt.Sprintf("export done read time %v", response.GetReadTime().AsTime())
	}
	return fmt.Sprintf("export done to %s table %s read time %v",
		destination.GetDataset(),
		destination.GetTable(),
		response.GetReadTime().AsTime())
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
