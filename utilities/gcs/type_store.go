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
	"fmt"
	"io"
	"os"

	"cloud.google.com/go/storage"
)

// Store reports if an object exists and reads it
type Store interface {
	Exists(ctx context.Context, location Location) (bool, error)
	NewReader(ctx context.Context, location Location) (io.ReadCloser, error)
}

// Bucket Store backed by Google Cloud Storage, local locations are read from the file system
type Bucket struct {
	client *storage.Client
	local  FileStore
}

// NewBucket wraps a storage client
func NewBucket(client *storage.Client) *Bucket {
	return &Bucket{client: client}
}

// Exists checks object attributes, a missing bucket or object is not an error
func (b *Bucket) Exists(ctx context.Context, location Location) (bool, error) {
	if location.IsLocal() {
		return b.local.Exists(ctx, location)
	}
	_, err := b.client.Bucket(location.Bucket).Object(location.Object).Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("object.Attrs %s %v", location, err)
	}
	return true, nil
}

// NewReader opens the object content
func (b *Bucket) NewReader(ctx context.Context, location Location) (io.ReadCloser, error) {
	if location.IsLocal() {
		return b.local.NewReader(ctx, location)
	}
	reader, err := b.client.Bucket(location.Bucket).Object(location.Object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("object.NewReader %s %v", location, err)
	}
	return reader, nil
}

// FileStore Store on the local file system, gs:// locations are never found
type FileStore struct{}

// Exists stats a regular file
func (FileStore) Exists(ctx context.Context, location Location) (bool, error) {
	if !location.IsLocal() {
		return false, nil
	}
	info, err := os.Stat(location.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// NewReader opens the file
func (FileStore) NewReader(ctx context.Context, location Location) (io.ReadCloser, error) {
	if !location.IsLocal() {
		return nil, fmt.Errorf("%s is not a local file", location)
	}
	return os.Open(location.Path)
}
