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

package ask

import (
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
)

// Prompt asks the operator on a terminal
type Prompt struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// Confirm y/n selection, interrupting the prompt means no
func (p Prompt) Confirm(phase string, question string) (bool, error) {
	ask := promptui.Select{
		Label:  fmt.Sprintf("%s [y/n]", question),
		Items:  []string{"y", "n"},
		Stdin:  p.Stdin,
		Stdout: p.Stdout,
	}
	_, result, err := ask.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return false, nil
		}
		return false, fmt.Errorf("prompt %s failed %v", phase, err)
	}
	return result == "y", nil
}

// Input free text answer checked by validate before it is accepted
func (p Prompt) Input(label string, validate func(string) error) (string, error) {
	ask := promptui.Prompt{
		Label:    label,
		Validate: validate,
		Stdin:    p.Stdin,
		Stdout:   p.Stdout,
	}
	return ask.Run()
}

// Batch answers confirmations without a terminal, phases not listed are declined
type Batch map[string]bool

// Confirm returns the preset answer of the phase
func (b Batch) Confirm(phase string, question string) (bool, error) {
	return b[phase], nil
}
