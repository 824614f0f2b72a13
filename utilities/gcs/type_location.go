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
	"errors"
	"fmt"
	"strings"
)

// Scheme prefix of a Google Cloud Storage URI
const Scheme = "gs://"

// ExpectedPattern is reported to the operator when a location cannot be used
const ExpectedPattern = "gs://<bucket-name>/<object-path>"

// ErrInvalidLocation the URI does not follow ExpectedPattern
var ErrInvalidLocation = errors.New("invalid location, expected " + ExpectedPattern)

// Location of an input object
type Location struct {
	Bucket string
	Object string
	// Path is set instead of Bucket and Object for local files
	Path string
}

// IsLocal is true for a local file location
func (location Location) IsLocal() bool {
	return location.Path != ""
}

func (location Location) String() string {
	if location.IsLocal() {
		return location.Path
	}
	return Scheme + location.Bucket + "/" + location.Object
}

// ParseLocation splits a gs:// URI into bucket and object names. file:// URIs and plain paths are local
func ParseLocation(uri string) (location Location, err error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return location, fmt.Errorf("empty URI: %w", ErrInvalidLocation)
	}
	if strings.HasPrefix(uri, "file://") {
		location.Path = strings.TrimPrefix(uri, "file://")
		if location.Path == "" {
			return location, fmt.Errorf("%s: %w", uri, ErrInvalidLocation)
		}
		return location, nil
	}
	if !strings.Contains(uri, "://") {
		location.Path = uri
		return location, nil
	}
	if !strings.HasPrefix(uri, Scheme) {
		return location, fmt.Errorf("%s: %w", uri, ErrInvalidLocation)
	}
	parts := strings.SplitN(strings.TrimPrefix(uri, Scheme), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" || strings.HasSuffix(parts[1], "/") {
		return location, fmt.Errorf("%s: %w", uri, ErrInvalidLocation)
	}
	location.Bucket = parts[0]
	location.Object = parts[1]
	return location, nil
}
