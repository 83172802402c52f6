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

// Package rotor models the wired wheels of a rotor cipher machine.
//
// A rotor is split in two parts:
//
//   - Spec, the immutable definition (name, Kind, wiring, notches) that
//     comes from a catalog and may be shared by any number of machines.
//   - Rotor, one physical wheel sitting in one machine slot. It points at a
//     Spec and owns the only mutable state, its setting.
//
// Behaviour that differs between moving rotors, fixed rotors and reflectors
// is selected by the Spec's Kind:
//
//	                 Rotates  Reflecting  AtNotch        Advance  Set(k≠0)  ConvertBackward
//	KindMoving       true     false       notch symbol   +1 mod n ok        ok
//	KindFixed        false    false       false          error    ok        ok
//	KindReflector    false    true        false          error    error     error
//
// A Rotor is not safe for concurrent mutation. Machines give every slot its
// own Rotor, so two machines built from one catalog never share a setting.
package rotor

import (
	"fmt"

	"dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model/alphabet"
)

// Rotor is a Spec mounted in a slot, together with its current setting in
// [0, Size()).
type Rotor struct {
	spec    *Spec
	setting int
}

// New returns a rotor for spec at setting 0.
func New(spec *Spec) *Rotor {
	return &Rotor{spec: spec}
}

// Spec returns the shared definition.
func (r *Rotor) Spec() *Spec { return r.spec }

// Name returns the definition's name.
func (r *Rotor) Name() string { return r.spec.name }

// Kind returns the definition's kind.
func (r *Rotor) Kind() Kind { return r.spec.kind }

// Alphabet returns the alphabet of the wiring.
func (r *Rotor) Alphabet() alphabet.Alphabet { return r.spec.Alphabet() }

// Size returns the alphabet size.
func (r *Rotor) Size() int { return r.spec.wiring.Size() }

// Rotates reports whether the rotor has a ratchet and can advance.
func (r *Rotor) Rotates() bool { return r.spec.kind == KindMoving }

// Reflecting reports whether the rotor is a reflector.
func (r *Rotor) Reflecting() bool { return r.spec.kind == KindReflector }

// Setting returns the current position.
func (r *Rotor) Setting() int { return r.setting }

// Set moves the rotor to posn.
//
// posn outside [0, Size()) and any non-zero posn on a reflector yield an
// *errors.OperationError; the setting is left unchanged.
func (r *Rotor) Set(posn int) error {
	if posn < 0 || posn >= r.Size() {
		return r.refuse("set", fmt.Sprintf("position %d out of range [0, %d)", posn, r.Size()))
	}
	if r.Reflecting() && posn != 0 {
		return r.refuse("set", "reflector has only one position")
	}
	r.setting = posn
	return nil
}

// SetSymbol moves the rotor to the position of symbol ch. A symbol outside
// the alphabet yields an *errors.ConfigurationError.
func (r *Rotor) SetSymbol(ch rune) error {
	posn := r.Alphabet().ToInt(ch)
	if posn == alphabet.Invalid {
		return &errors.ConfigurationError{
			Component: r.label(),
			Reason:    fmt.Sprintf("setting %q not in alphabet %s", ch, r.Alphabet()),
			Value:     string(ch),
		}
	}
	return r.Set(posn)
}

// SettingSymbol returns the alphabet symbol of the current position.
func (r *Rotor) SettingSymbol() rune {
	ch, _ := r.Alphabet().ToChar(r.setting)
	return ch
}

// ConvertForward passes contact p from right to left through the wiring as
// rotated by the current setting.
func (r *Rotor) ConvertForward(p int) int {
	w := r.spec.wiring
	return w.Wrap(w.Permute(p+r.setting) - r.setting)
}

// ConvertBackward passes contact e from left to right through the inverse
// wiring. Reflectors refuse with an *errors.OperationError.
func (r *Rotor) ConvertBackward(e int) (int, error) {
	if r.Reflecting() {
		return 0, r.refuse("convert backward", "reflector only converts forward")
	}
	w := r.spec.wiring
	return w.Wrap(w.Invert(e+r.setting) - r.setting), nil
}

// AtNotch reports whether a moving rotor sits at one of its notches.
func (r *Rotor) AtNotch() bool {
	return r.Rotates() && r.spec.isNotch[r.setting]
}

// Advance steps a moving rotor by one position, wrapping from Size()-1 to 0.
// Fixed rotors and reflectors refuse with an *errors.OperationError.
func (r *Rotor) Advance() error {
	if !r.Rotates() {
		return r.refuse("advance", "rotor is fixed")
	}
	r.setting = (r.setting + 1) % r.Size()
	return nil
}

// String returns "Rotor NAME@SYMBOL".
func (r *Rotor) String() string {
	return r.label() + "@" + string(r.SettingSymbol())
}

func (r *Rotor) label() string {
	if r.Reflecting() {
		return "Reflector " + r.spec.name
	}
	return "Rotor " + r.spec.name
}

func (r *Rotor) refuse(op, reason string) error {
	return &errors.OperationError{Component: r.label(), Op: op, Reason: reason}
}
