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

package cas

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const docDotGoName = "doc.go"

var levelOneFolders = []string{"services", "utilities"}

// TestUnitDocDotGo each package of a level one folder documents itself in a doc.go file
func TestUnitDocDotGo(t *testing.T) {
	for _, levelOneFolder := range levelOneFolders {
		entries, err := os.ReadDir(levelOneFolder)
		if err != nil {
			t.Fatal(err)
		}
		for _, entry := range entries {
			if !entry.IsDir() || entry.Name() == "testdata" {
				continue
			}
			path := filepath.Join(levelOneFolder, entry.Name())
			packageName := entry.Name()
			t.Run(path, func(t *testing.T) {
				t.Parallel()
				file, err := parser.ParseFile(token.NewFileSet(), filepath.Join(path, docDotGoName), nil, parser.PackageClauseOnly|parser.ParseComments)
				if err != nil {
					t.Fatalf("missing or invalid %s file: %v", docDotGoName, err)
				}
				if file.Name.Name != packageName {
					t.Errorf("want package %s got %s", packageName, file.Name.Name)
				}
				if file.Doc == nil || !strings.HasPrefix(file.Doc.Text(), "Package "+packageName) {
					t.Errorf("%s should start with a 'Package %s' comment", docDotGoName, packageName)
				}
			})
		}
	}
}
