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

package gps

import (
	"context"
	"fmt"

	pubsub "cloud.google.com/go/pubsub/apiv1"
	pubsubpb "google.golang.org/genproto/googleapis/pubsub/v1"
)

// TopicPath full topic resource name
func TopicPath(projectID string, topicName string) string {
	return fmt.Sprintf("projects/%s/topics/%s", projectID, topicName)
}

// BuildPublishRequest one message request
func BuildPublishRequest(projectID string, topicName string, data []byte, attributes map[string]string) *pubsubpb.PublishRequest {
	return &pubsubpb.PublishRequest{
		Topic: TopicPath(projectID, topicName),
		Messages: []*pubsubpb.PubsubMessage{
			{
				Data:       data,
				Attributes: attributes,
			},
		},
	}
}

// Publish sends one message and returns its id
// No retry as already implemented in the GO client
func Publish(ctx context.Context, client *pubsub.PublisherClient, projectID string, topicName string, data []byte, attributes map[string]string) (string, error) {
	response, err := client.Publish(ctx, BuildPublishRequest(projectID, topicName, data, attributes))
	if err != nil {
		return "", fmt.Errorf("client.Publish %s %v", topicName, err)
	}
	if len(response.MessageIds) == 0 {
		return "", fmt.Errorf("client.Publish %s returned no message id", topicName)
	}
	return response.MessageIds[0], nil
}
