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

// Package model defines the contracts shared by dxenigma's serializable
// value types: enum-like values such as rotor.Kind and the declarative
// records that describe a machine in configuration documents (rotor
// declarations, machine documents).
//
// Runtime components (alphabets, permutations, rotors, machines) are not
// Model types. They are built from validated declarations and are never
// serialized directly; a Model is the form in which a machine description
// crosses a file or API boundary.
//
// Every Model validates itself, round-trips through JSON and YAML, renders a
// log-safe string, names its type, and reports whether it is empty. The
// generic helpers in this package (ValidateAll, MustValidate, ToJSON,
// ToYAML, FromYAML) rely on that contract.
//
// Model types are immutable value types unless documented otherwise.
// Concurrent reads are safe; unmarshaling mutates the receiver and requires
// exclusive access.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for dxenigma declaration types.
//
// Implementations MUST satisfy all embedded interfaces. Marshal methods MUST
// refuse to encode an instance that fails Validate, and unmarshal methods
// MUST validate the decoded instance before returning.
//
// Example implementation:
//
//	type RotorDecl struct {
//	    Name string
//	}
//
//	func (d RotorDecl) Validate() error {
//	    if d.Name == "" {
//	        return &errors.ValidationError{Type: "RotorDecl", Field: "Name", Reason: "must not be empty"}
//	    }
//	    return nil
//	}
//
//	func (d RotorDecl) TypeName() string { return "RotorDecl" }
//	func (d RotorDecl) IsZero() bool     { return d.Name == "" }
//	func (d RotorDecl) Redacted() string { return d.String() }
//	func (d RotorDecl) String() string   { return "RotorDecl{Name:" + d.Name + "}" }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*RotorDecl)(nil)
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// Validate MUST check every invariant of the receiver and return nil if and
// only if the instance is usable. When validation fails, the error SHOULD be
// a *errors.ValidationError naming the offending field so that configuration
// mistakes can be located ("RotorDecl.Notches: symbol '!' not in alphabet"
// rather than "invalid rotor").
//
// Validate MUST be fast, deterministic and free of side effects. It MUST NOT
// mutate the receiver.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants. It
	// returns nil if the instance is valid.
	Validate() error
}

// Serializable defines the contract for types that can be serialized to and
// deserialized from JSON and YAML.
//
// Machine descriptions are usually written by hand in YAML; JSON is used for
// machine-readable export. Both forms MUST round-trip. Implementations SHOULD
// use the local type alias pattern to avoid recursive calls into their own
// marshal methods:
//
//	func (d RotorDecl) MarshalYAML() (interface{}, error) {
//	    if err := d.Validate(); err != nil {
//	        return nil, err
//	    }
//	    type alias RotorDecl
//	    return (alias)(d), nil
//	}
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide string
// representations for logging and debugging.
//
// Redacted returns a form suitable for production logs. Rotor wirings and
// plugboard pairs are key material of the simulated machine, so Redacted
// SHOULD omit them while keeping identifying information such as names and
// kinds. String MAY include everything and is meant for debugging and tests.
type Loggable interface {
	// Redacted returns a log-safe string representation.
	Redacted() string

	// String returns a complete, human-readable representation.
	String() string
}

// Identifiable defines the contract for types that can identify themselves
// by a canonical type name.
//
// TypeName MUST return a constant CamelCase name without package prefix,
// for example "Kind" or "RotorDecl". It is used in error messages produced
// by the generic helpers.
type Identifiable interface {
	// TypeName returns the canonical name of this model type.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// are in a zero or empty state.
//
// IsZero MUST return true if and only if the instance carries no meaningful
// data. Note that for enum-like types the zero value is usually a valid
// constant, so IsZero returning true does not imply an invalid value.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or empty state.
	IsZero() bool
}
