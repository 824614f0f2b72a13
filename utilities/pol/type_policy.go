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

package pol

import (
	"context"
	"fmt"
	"sort"

	"github.com/open-policy-agent/opa/rego"
)

// MandatoryLabelsModule reports each mandatory key that is absent or empty in input.labels
const MandatoryLabelsModule = `package cas.labels

missing[key] {
	key := input.mandatory[_]
	not has_value(key)
}

has_value(key) {
	value := input.labels[key]
	value != ""
}
`

const missingQuery = "data.cas.labels.missing"

// Policy prepared once, evaluated for each asset
type Policy struct {
	Mandatory []string
	query     rego.PreparedEvalQuery
}

// NewPolicy compiles the mandatory labels module
func NewPolicy(ctx context.Context, mandatory []string) (*Policy, error) {
	query, err := rego.New(
		rego.Query(missingQuery),
		rego.Module("mandatory_labels.rego", MandatoryLabelsModule),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("rego.PrepareForEval %v", err)
	}
	return &Policy{
		Mandatory: mandatory,
		query:     query,
	}, nil
}

// MissingLabels sorted mandatory keys the labels do not carry
func (policy *Policy) MissingLabels(ctx context.Context, labels map[string]string) ([]string, error) {
	if len(policy.Mandatory) == 0 {
		return nil, nil
	}
	if labels == nil {
		labels = map[string]string{}
	}
	resultSet, err := policy.query.Eval(ctx, rego.EvalInput(map[string]interface{}{
		"mandatory": policy.Mandatory,
		"labels":    labels,
	}))
	if err != nil {
		return nil, fmt.Errorf("rego.Eval %v", err)
	}
	if len(resultSet) == 0 || len(resultSet[0].Expressions) == 0 {
		return nil, nil
	}
	values, ok := resultSet[0].Expressions[0].Value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected rego result type %T", resultSet[0].Expressions[0].Value)
	}
	var missing []string
	for _, value := range values {
		key, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected rego value type %T", value)
		}
		missing = append(missing, key)
	}
	sort.Strings(missing)
	return missing, nil
}
