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
	"fmt"
	"strings"

	assetpb "google.golang.org/genproto/googleapis/cloud/asset/v1"
)

// Scope resource name of the exported perimeter
// organizations/<PARENT> when PARENT is not blank, projects/<PROJECT_ID> otherwise
// A PARENT already holding a resource type, organizations/<ID>, folders/<ID> or projects/<ID>, is used as is
func Scope(exportSettings ExportSettings) string {
	parent := strings.TrimSpace(exportSettings.Parent)
	if parent == "" {
		return "projects/" + exportSettings.ProjectID
	}
	if strings.Contains(parent, "/") {
		return parent
	}
	return "organizations/" + parent
}

// BuildRequest export request to the BigQuery table, replacing its content
func BuildRequest(exportSettings ExportSettings) (*assetpb.ExportAssetsRequest, error) {
	if exportSettings.ProjectID == "" || exportSettings.Dataset == "" || exportSettings.Table == "" {
		return nil, fmt.Errorf("%s, %s and %s are required, got '%s' '%s' '%s'",
			EnvProjectID, EnvDataset, EnvTable,
			exportSettings.ProjectID, exportSettings.Dataset, exportSettings.Table)
	}
	contentTypeName := strings.ToUpper(strings.TrimSpace(exportSettings.ContentType))
	if contentTypeName == "" {
		contentTypeName = DefaultContentType
	}
	contentType, ok := assetpb.ContentType_value[contentTypeName]
	if !ok || contentType == int32(assetpb.ContentType_CONTENT_TYPE_UNSPECIFIED) {
		return nil, fmt.Errorf("unsupported content type '%s'", exportSettings.ContentType)
	}
	return &assetpb.ExportAssetsRequest{
		Parent:      Scope(exportSettings),
		AssetTypes:  exportSettings.AssetTypes,
		ContentType: assetpb.ContentType(contentType),
		OutputConfig: &assetpb.OutputConfig{
			Destination: &assetpb.OutputConfig_BigqueryDestination{
				BigqueryDestination: &assetpb.BigQueryDestination{
					Dataset: fmt.Sprintf("projects/%s/datasets/%s", exportSettings.ProjectID, exportSettings.Dataset),
					Table:   exportSettings.Table,
					Force:   true,
				},
			},
		},
	}, nil
}
