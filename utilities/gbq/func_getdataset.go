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

package gbq

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"cloud.google.com/go/bigquery"
	"github.com/BrunoReboul/cas/utilities/logging"
	"google.golang.org/api/googleapi"
)

// DatasetDescription set on datasets created by GetDataset
const DatasetDescription = "Cost Attribution Solution asset inventory"

// GetDataset returns the dataset, creating it when not found and labeling it with its name
func GetDataset(ctx context.Context, bigQueryClient *bigquery.Client, datasetName string, location string) (dataset *bigquery.Dataset, err error) {
	dataset = bigQueryClient.Dataset(datasetName)
	datasetMetadata, err := dataset.Metadata(ctx)
	if err != nil {
		if !IsNotFound(err) {
			return nil, fmt.Errorf("dataset.Metadata %s %v", datasetName, err)
		}
		err = dataset.Create(ctx, &bigquery.DatasetMetadata{
			Name:        datasetName,
			Location:    location,
			Description: DatasetDescription,
			Labels:      map[string]string{"name": LabelValue(datasetName)},
		})
		if err != nil {
			// deal with concurrent executions
			if strings.Contains(strings.ToLower(err.Error()), "already exists") {
				return dataset, nil
			}
			return nil, fmt.Errorf("dataset.Create %s %v", datasetName, err)
		}
		log.Println(logging.Entry{
			Severity: "NOTICE",
			Message:  fmt.Sprintf("created dataset %s", datasetName),
		})
		return dataset, nil
	}
	if datasetMetadata.Labels["name"] != LabelValue(datasetName) {
		var datasetMetadataToUpdate bigquery.DatasetMetadataToUpdate
		datasetMetadataToUpdate.SetLabel("name", LabelValue(datasetName))
		_, err = dataset.Update(ctx, datasetMetadataToUpdate, "")
		if err != nil {
			return nil, fmt.Errorf("dataset.Update labels %s %v", datasetName, err)
		}
		log.Println(logging.Entry{
			Severity: "INFO",
			Message:  fmt.Sprintf("updated dataset labels %s", datasetName),
		})
	}
	return dataset, nil
}

// IsNotFound googleapi 404 or a notfound error text
func IsNotFound(err error) bool {
	var apiError *googleapi.Error
	if errors.As(err, &apiError) {
		return apiError.Code == http.StatusNotFound
	}
	return strings.Contains(strings.ToLower(strings.Replace(err.Error(), " ", "", -1)), "notfound")
}

// LabelValue dataset names allow upper case and are up to 1024 characters, label values do not
func LabelValue(datasetName string) string {
	value := strings.ToLower(datasetName)
	if len(value) > 63 {
		value = value[:63]
	}
	return value
}
