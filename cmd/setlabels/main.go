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

// setlabels synchronizes the labels of cloud projects with a CSV file
//
//	setlabels --uri gs://<bucket-name>/<object-path> [--environment prd] [--settings cas.yaml]
//
// Without --uri the URI is asked. Clearing and applying are each confirmed on the terminal,
// or with --batch from the --clear and --apply flags.
// A file failing label validation aborts the run before any change and exits 0.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
