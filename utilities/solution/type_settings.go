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

package solution

const (
	// PathToFunctionCode where the cloud function runtime mounts the source code
	PathToFunctionCode = "./serverless_function_source_code/"
	// SettingsFileName instance settings deployed with each cloud function
	SettingsFileName = "settings.yaml"
)

// Settings settings common to all services / all instances
type Settings struct {
	Hosting struct {
		OrganizationID  string            `yaml:"organizationID,omitempty"`
		OrganizationIDs map[string]string `yaml:"organizationIDs"`
		ProjectID       string            `yaml:"projectID,omitempty"`
		ProjectIDs      map[string]string `yaml:"projectIDs"`
		Stackdriver     struct {
			ProjectID  string            `yaml:"projectID,omitempty"`
			ProjectIDs map[string]string `yaml:"projectIDs"`
		} `yaml:"stackdriver"`
		GCS struct {
			Buckets struct {
				LabelsCSV struct {
					Name  string            `yaml:"name,omitempty"`
					Names map[string]string `yaml:"names"`
				} `yaml:"labelsCSV"`
			} `yaml:"buckets"`
		} `yaml:"gcs"`
		Bigquery struct {
			Dataset struct {
				Name     string `yaml:"name"`
				Location string `yaml:"location"`
			} `yaml:"dataset"`
			Table struct {
				Name string `yaml:"name"`
			} `yaml:"table"`
		} `yaml:"bigquery"`
		Pubsub struct {
			TopicNames struct {
				MissingLabels string `yaml:"missingLabels"`
			} `yaml:"topicNames"`
		} `yaml:"pubsub"`
		FireStore struct {
			CollectionIDs struct {
				LabelRuns string `yaml:"labelRuns"`
			} `yaml:"collectionIDs"`
		} `yaml:"firestore"`
	} `yaml:"hosting"`
	Labeling struct {
		MandatoryKeys []string `yaml:"mandatoryKeys" valid:"isLabelKey"`
	} `yaml:"labeling"`
	Export struct {
		ContentType string   `yaml:"contentType,omitempty"`
		AssetTypes  []string `yaml:"assetTypes,omitempty"`
	} `yaml:"export"`
}
