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

// Situate set settings from settings based on a given situation
// Situation is the environment name (string)
// Set settings are: organizationID, projectID, Stackdriver projectID, labels CSV bucket name
// A value already set is kept when the environment has no entry
func (settings *Settings) Situate(environmentName string) {
	situate(&settings.Hosting.OrganizationID, settings.Hosting.OrganizationIDs, environmentName)
	situate(&settings.Hosting.ProjectID, settings.Hosting.ProjectIDs, environmentName)
	situate(&settings.Hosting.Stackdriver.ProjectID, settings.Hosting.Stackdriver.ProjectIDs, environmentName)
	situate(&settings.Hosting.GCS.Buckets.LabelsCSV.Name, settings.Hosting.GCS.Buckets.LabelsCSV.Names, environmentName)
}

func situate(field *string, values map[string]string, environmentName string) {
	if value, ok := values[environmentName]; ok {
		*field = value
	}
}
