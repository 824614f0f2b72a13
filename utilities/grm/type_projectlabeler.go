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

package grm

import (
	"context"
	"fmt"
	"strings"
	"time"

	resourcemanager "cloud.google.com/go/resourcemanager/apiv3"
	"github.com/BrunoReboul/cas/utilities/erm"
	"google.golang.org/api/option"
	resourcemanagerpb "google.golang.org/genproto/googleapis/cloud/resourcemanager/v3"
	"google.golang.org/protobuf/types/known/fieldmaskpb"
)

// Retries number of attempts on transient errors
const Retries = 5

// labelsFieldMask limits project updates to the labels field, the whole label map is replaced
var labelsFieldMask = &fieldmaskpb.FieldMask{Paths: []string{"labels"}}

// ProjectLabeler reads and replaces project labels with the resource manager v3 API
type ProjectLabeler struct {
	client  *resourcemanager.ProjectsClient
	Retries int
	WaitSec time.Duration
}

// NewProjectLabeler creates the projects client
func NewProjectLabeler(ctx context.Context, opts ...option.ClientOption) (*ProjectLabeler, error) {
	client, err := resourcemanager.NewProjectsClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("resourcemanager.NewProjectsClient %v", err)
	}
	return &ProjectLabeler{
		client:  client,
		Retries: Retries,
		WaitSec: 5,
	}, nil
}

// ProjectName resource name of a project from its id, a resource name is returned as is
func ProjectName(projectID string) string {
	if strings.HasPrefix(projectID, "projects/") {
		return projectID
	}
	return "projects/" + projectID
}

// GetLabels returns the current project labels, never nil
func (labeler *ProjectLabeler) GetLabels(ctx context.Context, projectID string) (map[string]string, error) {
	var project *resourcemanagerpb.Project
	err := erm.Retry(labeler.Retries, labeler.WaitSec, func() (err error) {
		project, err = labeler.client.GetProject(ctx, &resourcemanagerpb.GetProjectRequest{
			Name: ProjectName(projectID),
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("grm GetProject %s %w", projectID, err)
	}
	labels := make(map[string]string, len(project.Labels))
	for key, value := range project.Labels {
		labels[key] = value
	}
	return labels, nil
}

// SetLabels replaces the full label map of a project and waits for the operation to complete
func (labeler *ProjectLabeler) SetLabels(ctx context.Context, projectID string, labels map[string]string) error {
	err := erm.Retry(labeler.Retries, labeler.WaitSec, func() error {
		operation, err := labeler.client.UpdateProject(ctx, &resourcemanagerpb.UpdateProjectRequest{
			Project: &resourcemanagerpb.Project{
				Name:   ProjectName(projectID),
				Labels: labels,
			},
			UpdateMask: labelsFieldMask,
		})
		if err != nil {
			return err
		}
		_, err = operation.Wait(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("grm UpdateProject %s %w", projectID, err)
	}
	return nil
}

// Close closes the projects client
func (labeler *ProjectLabeler) Close() error {
	return labeler.client.Close()
}
