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
	"fmt"
	"strings"
	"unicode"

	"dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model/alphabet"
	"dirpx.dev/dxenigma/dxcore/model/permutation"
)

// Spec is the immutable definition of a rotor: its name, kind, wiring and
// notches. A Spec carries no position and may be shared freely between
// slots, machines and goroutines. Use New to obtain a positionable Rotor.
type Spec struct {
	name    string
	kind    Kind
	wiring  *permutation.Permutation
	notches []int
	isNotch []bool
}

// NewSpec validates and returns a rotor definition.
//
// notches lists the alphabet symbols at which a moving rotor lets its left
// neighbour advance. It is required for KindMoving and MUST be empty for the
// other kinds. All failures are *errors.ConfigurationError values.
func NewSpec(name string, kind Kind, wiring *permutation.Permutation, notches string) (*Spec, error) {
	fail := func(reason string) error {
		return &errors.ConfigurationError{Component: "Rotor " + name, Reason: reason, Value: notches}
	}

	if name == "" || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return nil, &errors.ConfigurationError{Component: "Rotor", Reason: "name must be a single non-empty word", Value: name}
	}
	if !kind.Valid() {
		return nil, fail(fmt.Sprintf("invalid kind %d", int(kind)))
	}
	if wiring == nil {
		return nil, fail("missing wiring")
	}

	s := &Spec{
		name:    name,
		kind:    kind,
		wiring:  wiring,
		isNotch: make([]bool, wiring.Size()),
	}

	if kind != KindMoving {
		if notches != "" {
			return nil, fail("only moving rotors have notches")
		}
		return s, nil
	}

	if notches == "" {
		return nil, fail("moving rotor needs at least one notch")
	}
	alpha := wiring.Alphabet()
	for _, ch := range notches {
		idx := alpha.ToInt(ch)
		if idx == alphabet.Invalid {
			return nil, fail(fmt.Sprintf("notch %q not in alphabet %s", ch, alpha))
		}
		if s.isNotch[idx] {
			continue
		}
		s.isNotch[idx] = true
		s.notches = append(s.notches, idx)
	}

	return s, nil
}

// NewMoving returns a KindMoving definition with the given notches.
func NewMoving(name string, wiring *permutation.Permutation, notches string) (*Spec, error) {
	return NewSpec(name, KindMoving, wiring, notches)
}

// NewFixed returns a KindFixed definition.
func NewFixed(name string, wiring *permutation.Permutation) (*Spec, error) {
	return NewSpec(name, KindFixed, wiring, "")
}

// NewReflector returns a KindReflector definition.
func NewReflector(name string, wiring *permutation.Permutation) (*Spec, error) {
	return NewSpec(name, KindReflector, wiring, "")
}

// Name returns the rotor's name.
func (s *Spec) Name() string { return s.name }

// Kind returns the rotor's kind.
func (s *Spec) Kind() Kind { return s.kind }

// Wiring returns the permutation the rotor implements at setting 0.
func (s *Spec) Wiring() *permutation.Permutation { return s.wiring }

// Alphabet returns the alphabet of the wiring.
func (s *Spec) Alphabet() alphabet.Alphabet { return s.wiring.Alphabet() }

// Notches returns the notch symbols in declaration order, without
// duplicates. It is empty for fixed rotors and reflectors.
func (s *Spec) Notches() string {
	var b strings.Builder
	for _, idx := range s.notches {
		ch, _ := s.wiring.Alphabet().ToChar(idx)
		b.WriteRune(ch)
	}
	return b.String()
}

// String returns the definition in text configuration form, for example
// "III MV (ABDHPEJT) (CFLVMZOYQIRWUKXSG) (N)".
func (s *Spec) String() string {
	out := s.name + " " + s.kind.Code() + s.Notches()
	if w := s.wiring.String(); w != "" {
		out += " " + w
	}
	return out
}
