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
	"github.com/BrunoReboul/cas/utilities/solution"
)

// Environment variables overriding the settings file
const (
	EnvProjectID = "PROJECT_ID"
	EnvDataset   = "BIGQUERY_DATASET"
	EnvTable     = "BIGQUERY_TABLE"
	EnvParent    = "PARENT"
)

// DefaultContentType exported when none is set
const DefaultContentType = "RESOURCE"

// InstanceSettings instance specific settings
type InstanceSettings struct {
	EnvironmentName string            `yaml:"environmentName"`
	InstanceName    string            `yaml:"instanceName"`
	Solution        solution.Settings `yaml:"solution"`
	Service         struct {
		RetryTimeOutSeconds int64 `yaml:"retryTimeOutSeconds"`
	} `yaml:"service"`
}

// ExportSettings what to export and where
type ExportSettings struct {
	ProjectID       string   `valid:"isNotZeroValue"`
	Dataset         string   `valid:"isNotZeroValue"`
	Table           string   `valid:"isNotZeroValue"`
	DatasetLocation string   `valid:"-"`
	Parent          string   `valid:"-"`
	ContentType     string   `valid:"-"`
	AssetTypes      []string `valid:"-"`
}

// NewExportSettings from the situated solution settings
func NewExportSettings(settings solution.Settings) ExportSettings {
	return ExportSettings{
		ProjectID:       settings.Hosting.ProjectID,
		Dataset:         settings.Hosting.Bigquery.Dataset.Name,
		Table:           settings.Hosting.Bigquery.Table.Name,
		DatasetLocation: settings.Hosting.Bigquery.Dataset.Location,
		Parent:          settings.Hosting.OrganizationID,
		ContentType:     settings.Export.ContentType,
		AssetTypes:      settings.Export.AssetTypes,
	}
}

// ApplyEnv overrides settings with the non empty environment variables
// PARENT is applied even when blank so that an empty PARENT selects the project scope
func (exportSettings *ExportSettings) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if value, ok := lookupEnv(EnvProjectID); ok && value != "" {
		exportSettings.ProjectID = value
	}
	if value, ok := lookupEnv(EnvDataset); ok && value != "" {
		exportSettings.Dataset = value
	}
	if value, ok := lookupEnv(EnvTable); ok && value != "" {
		exportSettings.Table = value
	}
	if value, ok := lookupEnv(EnvParent); ok {
		exportSettings.Parent = value
	}
}
