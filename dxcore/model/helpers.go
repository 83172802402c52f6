/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package model

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns all validation errors
// encountered, rather than stopping at the first one.
//
// Each failure is wrapped with the model's position in the slice and its
// type name, so that a machine document with several broken rotor entries
// reports every one of them in a single pass. The individual errors are
// aggregated with an rxmerr.Collector and remain reachable through
// errors.Is / errors.As on the returned error.
//
// Empty slices are valid and yield nil.
//
// Example:
//
//	if err := ValidateAll(doc.Rotors); err != nil {
//	    return fmt.Errorf("rotor catalog: %w", err)
//	}
func ValidateAll[T Model](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// MustValidate validates a model and panics if validation fails.
//
// Callers MUST only use MustValidate where an invalid model is a programming
// error: package-level tables of built-in declarations and test setup.
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// ToJSON validates m and serializes it to JSON.
//
// If validation fails the validation error is returned and nothing is
// encoded.
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot serialize invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML validates m and serializes it to YAML.
//
// If validation fails the validation error is returned and nothing is
// encoded.
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot serialize invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromYAML decodes data into m and validates the result.
//
// Decoding errors and validation errors are both wrapped with %w, so typed
// errors from the dxenigma errors package stay inspectable. On failure the
// contents of *m are unspecified and MUST NOT be used.
func FromYAML[T Model](data []byte, m *T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}
