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

package validater

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/BrunoReboul/cas/utilities/lbl"
)

const tagKeyName = "valid"

// validater interface
type validater interface {
	validate(interface{}) (bool, error)
}

// defaultValidater is always valid
type defaultValidater struct {
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v defaultValidater) validate(val interface{}) (bool, error) {
	return true, nil
}

// isNotZeroValueValidater do not accept zero value
type isNotZeroValueValidater struct {
}

func (v isNotZeroValueValidater) validate(value interface{}) (bool, error) {
	kind := reflect.TypeOf(value).Kind()
	switch kind {
	case reflect.String:
		if len(value.(string)) == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	case reflect.Int64:
		if value.(int64) == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	case reflect.Slice, reflect.Map:
		if reflect.ValueOf(value).Len() == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	default:
		return false, fmt.Errorf("Unmanaged kind by 'isNotZeroValueValidater' %s", kind)
	}
	return true, nil
}

// isLabelKeyValidater accepts strings matching the label key pattern
type isLabelKeyValidater struct {
}

func (v isLabelKeyValidater) validate(value interface{}) (bool, error) {
	switch typed := value.(type) {
	case string:
		if !lbl.IsValidKey(typed) {
			return false, fmt.Errorf("'%s' does not match %s", typed, lbl.KeyPattern)
		}
	case []string:
		var invalids []string
		for _, key := range typed {
			if !lbl.IsValidKey(key) {
				invalids = append(invalids, key)
			}
		}
		if len(invalids) > 0 {
			return false, fmt.Errorf("%v do not match %s", invalids, lbl.KeyPattern)
		}
	default:
		return false, fmt.Errorf("Unmanaged type by 'isLabelKeyValidater' %T", value)
	}
	return true, nil
}

func getValidater(tagValue string) validater {
	switch strings.Split(tagValue, ",")[0] {
	case "isNotZeroValue":
		return isNotZeroValueValidater{}
	case "isLabelKey":
		return isLabelKeyValidater{}
	}
	return defaultValidater{}
}

// getValidationErrors recursively loop through a struct to find validation errors
func getValidationErrors(structure interface{}, pedigree string) []error {
	errs := []error{}
	if structure == nil {
		return errs
	}
	value := reflect.ValueOf(structure)
	if value.Kind() == reflect.Interface || value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return []error{fmt.Errorf("type %s is not a struct", value.Kind())}
	}

	for i := 0; i < value.NumField(); i++ {
		valueField := value.Field(i)
		typeField := value.Type().Field(i)
		tagValue := typeField.Tag.Get(tagKeyName)
		if tagValue == "-" || !typeField.IsExported() {
			continue
		}
		if valueField.Kind() == reflect.Interface {
			valueField = valueField.Elem()
		}
		// time.Time is a struct with only unexported fields, it is validated as a leaf
		if valueField.Kind() == reflect.Struct && valueField.Type().String() != "time.Time" ||
			(valueField.Kind() == reflect.Ptr && valueField.Elem().Kind() == reflect.Struct) {
			errs = append(errs, getValidationErrors(valueField.Interface(), fmt.Sprintf("%s/%s", pedigree, typeField.Name))...)
			continue
		}
		if !valueField.IsValid() {
			continue
		}
		ok, err := getValidater(tagValue).validate(valueField.Interface())
		if !ok {
			errs = append(errs, fmt.Errorf("Validater error %s '%s' %v", pedigree, typeField.Name, err))
		}
	}
	return errs
}

// ValidateStruct validates the fields of a struct, the error lists every failed field
func ValidateStruct(structure interface{}, pedigree string) error {
	errs := getValidationErrors(structure, pedigree)
	if len(errs) > 0 {
		return fmt.Errorf("settings validation failed: %w", errors.Join(errs...))
	}
	return nil
}
