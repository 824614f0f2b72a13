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

package gcs

import (
	"context"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestUnitParseLocation(t *testing.T) {
	var testCases = []struct {
		name       string
		uri        string
		want       Location
		wantString string
		wantErr    bool
	}{
		{
			name:       "gcsObject",
			uri:        "gs://cost_attribution/project_labels.csv",
			want:       Location{Bucket: "cost_attribution", Object: "project_labels.csv"},
			wantString: "gs://cost_attribution/project_labels.csv",
		},
		{
			name:       "gcsNestedObject",
			uri:        " gs://bucket/folder/labels.csv ",
			want:       Location{Bucket: "bucket", Object: "folder/labels.csv"},
			wantString: "gs://bucket/folder/labels.csv",
		},
		{
			name:       "fileURI",
			uri:        "file:///tmp/labels.csv",
			want:       Location{Path: "/tmp/labels.csv"},
			wantString: "/tmp/labels.csv",
		},
		{
			name:       "plainPath",
			uri:        "labels.csv",
			want:       Location{Path: "labels.csv"},
			wantString: "labels.csv",
		},
		{name: "empty", uri: "  ", wantErr: true},
		{name: "bucketOnly", uri: "gs://bucket", wantErr: true},
		{name: "bucketSlash", uri: "gs://bucket/", wantErr: true},
		{name: "folder", uri: "gs://bucket/folder/", wantErr: true},
		{name: "noBucket", uri: "gs:///labels.csv", wantErr: true},
		{name: "otherScheme", uri: "s3://bucket/labels.csv", wantErr: true},
		{name: "emptyFileURI", uri: "file://", wantErr: true},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLocation(tc.uri)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidLocation) {
					t.Errorf("Want ErrInvalidLocation got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Want no error got %v", err)
			}
			if got != tc.want {
				t.Errorf("Want %+v got %+v", tc.want, got)
			}
			if got.String() != tc.wantString {
				t.Errorf("Want string %s got %s", tc.wantString, got.String())
			}
		})
	}
}

func TestUnitFileStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.csv")
	if err := ioutil.WriteFile(path, []byte("project_id,team\np1,eng\n"), 0644); err != nil {
		t.Fatal(err)
	}
	var store FileStore

	found, err := store.Exists(ctx, Location{Path: path})
	if err != nil || !found {
		t.Errorf("Want existing file found, got %v %v", found, err)
	}
	found, err = store.Exists(ctx, Location{Path: filepath.Join(dir, "missing.csv")})
	if err != nil || found {
		t.Errorf("Want missing file not found, got %v %v", found, err)
	}
	found, err = store.Exists(ctx, Location{Path: dir})
	if err != nil || found {
		t.Errorf("Want folder not found, got %v %v", found, err)
	}
	found, _ = store.Exists(ctx, Location{Bucket: "b", Object: "o"})
	if found {
		t.Errorf("Want gs location not found in the file store")
	}

	reader, err := store.NewReader(ctx, Location{Path: path})
	if err != nil {
		t.Fatalf("NewReader %v", err)
	}
	defer reader.Close()
	content, err := ioutil.ReadAll(reader)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "project_id,team\np1,eng\n" {
		t.Errorf("Unexpected content %q", content)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}
