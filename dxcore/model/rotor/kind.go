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

package rotor

import (
	"encoding/json"

	"dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Kind selects how a rotor behaves in a machine slot.
//
// All kinds share a wiring permutation and a setting. Kind decides whether
// the rotor can be stepped by a pawl, whether it has notches, and whether
// the signal may pass through it in both directions.
type Kind int

const (
	// KindFixed is a rotor without a ratchet. Its setting can be chosen when
	// the machine is set up but never changes while a message is processed.
	KindFixed Kind = iota

	// KindMoving is a rotor with a ratchet and one or more notches. It
	// advances one position whenever the stepping mechanism selects it.
	KindMoving

	// KindReflector is a fixed rotor with a single position that turns the
	// signal back through the stack. It only supports a forward pass and
	// always occupies slot 0.
	KindReflector
)

// String constants for Kind values used in serialization, parsing, and
// human-facing output.
//
// These names MAY be persisted in configuration documents. Changing them is
// a breaking change for any consumer that relies on textual configuration.
const (
	KindFixedStr     = "fixed"
	KindMovingStr    = "moving"
	KindReflectorStr = "reflector"
)

// ParseKind converts a textual representation into a Kind value.
//
// Besides the canonical lowercase names it accepts the capitalized and
// upper-case variants and the single-letter type codes used by the text
// configuration format:
//
//	"fixed",     "Fixed",     "FIXED",     "N" -> KindFixed
//	"moving",    "Moving",    "MOVING",    "M" -> KindMoving
//	"reflector", "Reflector", "REFLECTOR", "R" -> KindReflector
//
// Any other input yields a *ParseError.
func ParseKind(s string) (Kind, error) {
	switch s {
	case KindFixedStr, "Fixed", "FIXED", "N":
		return KindFixed, nil
	case KindMovingStr, "Moving", "MOVING", "M":
		return KindMoving, nil
	case KindReflectorStr, "Reflector", "REFLECTOR", "R":
		return KindReflector, nil
	default:
		return KindFixed, &errors.ParseError{Type: "Kind", Value: s}
	}
}

// String returns the canonical lowercase name, or "unknown" for values
// outside the defined constants.
func (k Kind) String() string {
	switch k {
	case KindFixed:
		return KindFixedStr
	case KindMoving:
		return KindMovingStr
	case KindReflector:
		return KindReflectorStr
	default:
		return "unknown"
	}
}

// Code returns the single-letter type code used by the text configuration
// format ("N", "M" or "R"), or "?" for invalid values.
func (k Kind) Code() string {
	switch k {
	case KindFixed:
		return "N"
	case KindMoving:
		return "M"
	case KindReflector:
		return "R"
	default:
		return "?"
	}
}

// Valid reports whether the Kind value is one of the defined constants.
func (k Kind) Valid() bool {
	return k == KindFixed || k == KindMoving || k == KindReflector
}

// TypeName returns "Kind".
func (k Kind) TypeName() string {
	return "Kind"
}

// Redacted returns the same string representation as String().
func (k Kind) Redacted() string {
	return k.String()
}

// IsZero reports whether the Kind has its zero value, KindFixed.
//
// Note: KindFixed is a valid Kind, so IsZero returning true does not
// indicate an error condition.
func (k Kind) IsZero() bool {
	return k == KindFixed
}

// Equal reports whether other is a Kind or *Kind holding the same constant.
func (k Kind) Equal(other any) bool {
	switch v := other.(type) {
	case Kind:
		return k == v
	case *Kind:
		if v == nil {
			return false
		}
		return k == *v
	default:
		return false
	}
}

// Validate returns a *ValidationError if the value is not a defined
// constant.
func (k Kind) Validate() error {
	if !k.Valid() {
		return &errors.ValidationError{
			Type:   "Kind",
			Reason: "invalid Kind value",
			Value:  int(k),
		}
	}
	return nil
}

// MarshalJSON encodes a valid Kind as its lowercase name.
func (k Kind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON accepts a name understood by ParseKind or the numeric value
// of a defined constant.
func (k *Kind) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseKind(s)
		if err != nil {
			return err
		}
		*k = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: err.Error()}
	}
	if !Kind(i).Valid() {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: "invalid numeric value"}
	}
	*k = Kind(i)
	return nil
}

// MarshalYAML encodes a valid Kind as its lowercase name.
func (k Kind) MarshalYAML() (any, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return k.String(), nil
}

// UnmarshalYAML accepts any name understood by ParseKind.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Kind", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseKind(str)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseKind.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Compile-time check that Kind implements model.Model interface.
var _ model.Model = (*Kind)(nil)
