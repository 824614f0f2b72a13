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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/functions/metadata"
	"github.com/BrunoReboul/cas/utilities/gps"
)

const (
	unlabeledProject = `{"asset":{"name":"//cloudresourcemanager.googleapis.com/projects/p1","assetType":"cloudresourcemanager.googleapis.com/Project","resource":{"parent":"//cloudresourcemanager.googleapis.com/folders/123","data":{"labels":{}}}}}`
	labeledProject   = `{"asset":{"name":"//cloudresourcemanager.googleapis.com/projects/p2","assetType":"cloudresourcemanager.googleapis.com/Project","resource":{"parent":"//cloudresourcemanager.googleapis.com/folders/123","data":{"labels":{"team":"eng","env":"prd"}}}}}`
	partlyLabeled    = `{"asset":{"name":"//cloudresourcemanager.googleapis.com/projects/p3","assetType":"cloudresourcemanager.googleapis.com/Project","resource":{"parent":"//cloudresourcemanager.googleapis.com/folders/123","data":{"labels":{"env":"prd"}}}}}`
	deletedProject   = `{"asset":{"name":"//cloudresourcemanager.googleapis.com/projects/p4","assetType":"cloudresourcemanager.googleapis.com/Project"},"deleted":true}`
	feedConfirmation = `You have successfully configured real time feed 'organizations/123/feeds/cas' in organization 'organizations/123'.`
)

func TestUnitDecode(t *testing.T) {
	var testCases = []struct {
		name      string
		data      string
		want      Notice
		wantAlert bool
		wantErr   bool
	}{
		{
			name: "informational",
			data: feedConfirmation,
			want: Notice{Kind: KindInformational, Message: feedConfirmation},
		},
		{
			name: "emptyLabels",
			data: unlabeledProject,
			want: Notice{
				Kind:          KindAsset,
				AssetType:     "cloudresourcemanager.googleapis.com/Project",
				Name:          "//cloudresourcemanager.googleapis.com/projects/p1",
				Parent:        "//cloudresourcemanager.googleapis.com/folders/123",
				Labels:        map[string]string{},
				MissingLabels: true,
			},
			wantAlert: true,
		},
		{
			name: "labeled",
			data: labeledProject,
			want: Notice{
				Kind:      KindAsset,
				AssetType: "cloudresourcemanager.googleapis.com/Project",
				Name:      "//cloudresourcemanager.googleapis.com/projects/p2",
				Parent:    "//cloudresourcemanager.googleapis.com/folders/123",
				Labels:    map[string]string{"team": "eng", "env": "prd"},
			},
		},
		{
			name: "absentLabels",
			data: `{"asset":{"name":"n","assetType":"t","resource":{"parent":"p","data":{}}}}`,
			want: Notice{
				Kind:          KindAsset,
				AssetType:     "t",
				Name:          "n",
				Parent:        "p",
				MissingLabels: true,
			},
			wantAlert: true,
		},
		{
			name: "deleted",
			data: deletedProject,
			want: Notice{
				Kind:          KindAsset,
				AssetType:     "cloudresourcemanager.googleapis.com/Project",
				Name:          "//cloudresourcemanager.googleapis.com/projects/p4",
				Deleted:       true,
				MissingLabels: true,
			},
		},
		{
			name:    "malformedJSON",
			data:    `{"asset": {"name": `,
			wantErr: true,
		},
		{
			name:    "labelsNotAMap",
			data:    `{"asset":{"name":"n","resource":{"data":{"labels":["team"]}}}}`,
			wantErr: true,
		},
		{
			name: "wellFormedArray",
			data: `[1, 2]`,
			want: Notice{Kind: KindInformational, Message: "JSON without an asset"},
		},
		{
			name:    "malformedArray",
			data:    `[1, 2`,
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Decode([]byte(tc.data))
			if tc.wantErr {
				var decodeError *DecodeError
				if !errors.As(err, &decodeError) {
					t.Fatalf("Want *DecodeError got %v", err)
				}
				if string(decodeError.Raw) != tc.data {
					t.Errorf("Want raw payload kept got %s", string(decodeError.Raw))
				}
				return
			}
			if err != nil {
				t.Fatalf("Want no error got %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Want %+v got %+v", tc.want, got)
			}
			if got.NeedsAlert() != tc.wantAlert {
				t.Errorf("Want alert %v got %v", tc.wantAlert, got.NeedsAlert())
			}
		})
	}
}

func TestUnitEntryPoint(t *testing.T) {
	var instanceSettings InstanceSettings
	instanceSettings.EnvironmentName = "tst"
	instanceSettings.InstanceName = "alertlabels_tst"
	instanceSettings.Service.RetryTimeOutSeconds = 600
	instanceSettings.Solution.Labeling.MandatoryKeys = []string{"team"}

	var testCases = []struct {
		name         string
		data         string
		age          time.Duration
		wantContains []string
		wantAbsent   []string
	}{
		{
			name:         "missingLabel",
			data:         unlabeledProject,
			wantContains: []string{"Resource with missing Label - Name: //cloudresourcemanager.googleapis.com/projects/p1 | Asset Type: cloudresourcemanager.googleapis.com/Project | Parent: //cloudresourcemanager.googleapis.com/folders/123", `"severity":"WARNING"`},
		},
		{
			name:         "labeled",
			data:         labeledProject,
			wantContains: []string{"Labels: 2"},
			wantAbsent:   []string{"missing_label"},
		},
		{
			name:         "missingMandatory",
			data:         partlyLabeled,
			wantContains: []string{"missing_label", "Missing mandatory keys: team"},
		},
		{
			name:         "informational",
			data:         feedConfirmation,
			wantContains: []string{"ignored pubsub message"},
			wantAbsent:   []string{"missing_label"},
		},
		{
			name:         "arrayIsInformational",
			data:         `[{"asset":{}}]`,
			wantContains: []string{"ignored pubsub message", "JSON without an asset"},
			wantAbsent:   []string{"missing_label", "noretry"},
		},
		{
			name:         "decodeError",
			data:         `{"asset": `,
			wantContains: []string{"noretry", "raw payload"},
		},
		{
			name:         "deleted",
			data:         deletedProject,
			wantAbsent:   []string{"missing_label"},
			wantContains: []string{"finish"},
		},
		{
			name:         "tooOld",
			data:         unlabeledProject,
			age:          time.Hour,
			wantContains: []string{"Pubsub message too old"},
			wantAbsent:   []string{"missing_label"},
		},
	}

	var buffer bytes.Buffer
	log.SetOutput(&buffer)
	defer log.SetOutput(os.Stderr)

	var global Global
	if err := initialize(context.Background(), &global, instanceSettings); err != nil {
		t.Fatalf("initialize %v", err)
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buffer.Reset()
			ctxEvent := metadata.NewContext(context.Background(), &metadata.Metadata{
				EventID:   "42",
				Timestamp: time.Now().Add(-tc.age),
			})
			err := EntryPoint(ctxEvent, gps.PubSubMessage{Data: []byte(tc.data)}, &global)
			if err != nil {
				t.Fatalf("Want no error got %v", err)
			}
			logs := buffer.String()
			for _, want := range tc.wantContains {
				if !strings.Contains(logs, want) {
					t.Errorf("Want logs to contain '%s' got %s", want, logs)
				}
			}
			for _, absent := range tc.wantAbsent {
				if strings.Contains(logs, absent) {
					t.Errorf("Want logs not to contain '%s' got %s", absent, logs)
				}
			}
		})
	}
}

func TestUnitEntryPointInitFailed(t *testing.T) {
	var buffer bytes.Buffer
	log.SetOutput(&buffer)
	defer log.SetOutput(os.Stderr)

	var instanceSettings InstanceSettings
	instanceSettings.InstanceName = "alertlabels_tst"
	instanceSettings.Solution.Labeling.MandatoryKeys = []string{"Team"}
	var global Global
	if err := initialize(context.Background(), &global, instanceSettings); err == nil {
		t.Fatalf("Want a settings validation error")
	}
	ctxEvent := metadata.NewContext(context.Background(), &metadata.Metadata{EventID: "43", Timestamp: time.Now()})
	if err := EntryPoint(ctxEvent, gps.PubSubMessage{Data: []byte(unlabeledProject)}, &global); err != nil {
		t.Errorf("Want no retry once init failed got %v", err)
	}
	if strings.Contains(buffer.String(), "missing_label") {
		t.Errorf("Want no check once init failed")
	}
}

func TestUnitNoticeJSON(t *testing.T) {
	notice, err := Decode([]byte(partlyLabeled))
	if err != nil {
		t.Fatalf("Decode %v", err)
	}
	notice.MissingMandatory = []string{"team"}
	b, err := json.Marshal(notice)
	if err != nil {
		t.Fatalf("json.Marshal %v", err)
	}
	if !strings.Contains(string(b), `"missingMandatory":["team"]`) {
		t.Errorf("Want missing mandatory keys in the published notice got %s", string(b))
	}
}
