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

// Package machine composes rotors and a plugboard into a complete rotor
// cipher machine.
//
// A Machine has a fixed number of rotor slots. Slot 0 holds the reflector;
// higher slots are progressively faster, and the last slot steps on every
// symbol. For each symbol of a message the caller advances the machine and
// then converts the symbol's index:
//
//	if err := m.Advance(); err != nil { ... }
//	out, err := m.Convert(in)
//
// ConvertMessage does both for a whole string.
//
// # Lifecycle
//
// New binds the alphabet, slot and pawl counts and the catalog of available
// rotor definitions. InsertRotors, SetRotors and SetPlugboard establish the
// per-message setup. After that only the rotor settings change, and only
// through Advance.
//
// # Concurrency
//
// A Machine is not safe for concurrent use: every symbol depends on the
// settings left behind by the previous one. Independent messages can be
// processed in parallel on independent machines; Clone produces one that
// shares the immutable catalog and wiring but owns its own settings.
package machine

import (
	"fmt"
	"strings"

	"dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model/alphabet"
	"dirpx.dev/dxenigma/dxcore/model/permutation"
	"dirpx.dev/dxenigma/dxcore/model/rotor"
)

// Separator passes through ConvertMessage unchanged and does not step the
// rotors.
const Separator = ' '

// Machine is a configured rotor machine.
type Machine struct {
	alpha     alphabet.Alphabet
	numRotors int
	pawls     int
	catalog   map[string]*rotor.Spec
	slots     []*rotor.Rotor
	plugboard *permutation.Permutation
}

// New returns a machine over alpha with numRotors slots, pawls of which are
// driven by the stepping mechanism, choosing rotors from catalog.
//
// It requires 1 < numRotors and 0 <= pawls < numRotors, and a catalog whose
// names are unique and whose wirings use alpha. Violations are reported as
// *errors.ConfigurationError. The plugboard starts as the identity and no
// rotors are inserted.
func New(alpha alphabet.Alphabet, numRotors, pawls int, catalog []*rotor.Spec) (*Machine, error) {
	if alpha == nil {
		return nil, configErr("missing alphabet", nil)
	}
	if numRotors <= 1 {
		return nil, configErr(fmt.Sprintf("need more than one rotor slot, got %d", numRotors), numRotors)
	}
	if pawls < 0 || pawls >= numRotors {
		return nil, configErr(fmt.Sprintf("pawl count %d outside [0, %d)", pawls, numRotors), pawls)
	}

	byName := make(map[string]*rotor.Spec, len(catalog))
	for _, s := range catalog {
		if s == nil {
			return nil, configErr("nil rotor definition in catalog", nil)
		}
		if _, dup := byName[s.Name()]; dup {
			return nil, configErr(fmt.Sprintf("rotor %s defined twice", s.Name()), s.Name())
		}
		if !alphabet.Equal(s.Alphabet(), alpha) {
			return nil, configErr(fmt.Sprintf("rotor %s uses alphabet %s, machine uses %s", s.Name(), s.Alphabet(), alpha), s.Name())
		}
		byName[s.Name()] = s
	}

	return &Machine{
		alpha:     alpha,
		numRotors: numRotors,
		pawls:     pawls,
		catalog:   byName,
		plugboard: permutation.Identity(alpha),
	}, nil
}

// Alphabet returns the machine's alphabet.
func (m *Machine) Alphabet() alphabet.Alphabet { return m.alpha }

// NumRotors returns the number of rotor slots.
func (m *Machine) NumRotors() int { return m.numRotors }

// NumPawls returns the number of rotating slots the machine expects.
func (m *Machine) NumPawls() int { return m.pawls }

// Plugboard returns the current plugboard permutation.
func (m *Machine) Plugboard() *permutation.Permutation { return m.plugboard }

// Rotors returns the inserted rotors, reflector first. The slice is a copy;
// the rotors are the machine's own and must not be mutated concurrently
// with the machine.
func (m *Machine) Rotors() []*rotor.Rotor {
	out := make([]*rotor.Rotor, len(m.slots))
	copy(out, m.slots)
	return out
}

// Catalog returns the definition named name, if present.
func (m *Machine) Catalog(name string) (*rotor.Spec, bool) {
	s, ok := m.catalog[name]
	return s, ok
}

// InsertRotors fills the slots with fresh rotors for the named definitions,
// names[0] being the reflector. All rotors start at setting 0.
//
// It fails with an *errors.ConfigurationError, leaving the previous slots in
// place, when a name is unknown or repeated, when the number of names is not
// NumRotors(), when slot 0 is not a reflector or a reflector appears in
// another slot, or when the number of moving rotors differs from
// NumPawls().
func (m *Machine) InsertRotors(names []string) error {
	if len(names) != m.numRotors {
		return configErr(fmt.Sprintf("got %d rotors for %d slots", len(names), m.numRotors), names)
	}

	slots := make([]*rotor.Rotor, 0, m.numRotors)
	used := make(map[string]bool, len(names))
	moving := 0
	for i, name := range names {
		spec, ok := m.catalog[name]
		if !ok {
			return configErr(fmt.Sprintf("unknown rotor %q", name), name)
		}
		if used[name] {
			return configErr(fmt.Sprintf("rotor %s inserted twice", name), name)
		}
		used[name] = true

		switch {
		case i == 0 && spec.Kind() != rotor.KindReflector:
			return configErr(fmt.Sprintf("first rotor %s is not a reflector", name), name)
		case i > 0 && spec.Kind() == rotor.KindReflector:
			return configErr(fmt.Sprintf("reflector %s outside slot 0", name), name)
		case spec.Kind() == rotor.KindMoving:
			moving++
		}
		slots = append(slots, rotor.New(spec))
	}

	if moving != m.pawls {
		return configErr(fmt.Sprintf("%d moving rotors for %d pawls", moving, m.pawls), names)
	}

	m.slots = slots
	return nil
}

// SetRotors positions slots 1..NumRotors()-1 from the symbols of settings,
// leftmost first. The reflector is never repositioned.
//
// It fails with an *errors.ConfigurationError, without moving any rotor,
// when no rotors are inserted, when settings does not have NumRotors()-1
// symbols, or when a symbol is outside the alphabet.
func (m *Machine) SetRotors(settings string) error {
	if len(m.slots) == 0 {
		return configErr("no rotors inserted", nil)
	}
	symbols := []rune(settings)
	if len(symbols) != len(m.slots)-1 {
		return configErr(fmt.Sprintf("settings %q need %d symbols", settings, len(m.slots)-1), settings)
	}

	posns := make([]int, len(symbols))
	for i, ch := range symbols {
		posns[i] = m.alpha.ToInt(ch)
		if posns[i] == alphabet.Invalid {
			return configErr(fmt.Sprintf("setting %q not in alphabet %s", ch, m.alpha), settings)
		}
	}
	for i, p := range posns {
		if err := m.slots[i+1].Set(p); err != nil {
			return err
		}
	}
	return nil
}

// Settings returns the current positions of slots 1..NumRotors()-1 as
// alphabet symbols, in the form accepted by SetRotors.
func (m *Machine) Settings() string {
	var b strings.Builder
	for _, r := range m.slots[min(1, len(m.slots)):] {
		b.WriteRune(r.SettingSymbol())
	}
	return b.String()
}

// SetPlugboard replaces the plugboard. A nil plugboard restores the
// identity. The plugboard must be over the machine's alphabet.
//
// The plugboard is applied on the way in and again on the way out, so it
// should be an involution (see permutation.Permutation.Involution). This is
// not enforced.
func (m *Machine) SetPlugboard(p *permutation.Permutation) error {
	if p == nil {
		m.plugboard = permutation.Identity(m.alpha)
		return nil
	}
	if !alphabet.Equal(p.Alphabet(), m.alpha) {
		return configErr(fmt.Sprintf("plugboard uses alphabet %s, machine uses %s", p.Alphabet(), m.alpha), p.String())
	}
	m.plugboard = p
	return nil
}

// Clone returns an independent machine with the same catalog, plugboard
// and inserted rotors at their current settings.
func (m *Machine) Clone() *Machine {
	c := *m
	c.slots = make([]*rotor.Rotor, len(m.slots))
	for i, r := range m.slots {
		c.slots[i] = rotor.New(r.Spec())
		// Settings were valid on the original; Set cannot fail here.
		_ = c.slots[i].Set(r.Setting())
	}
	return &c
}

func configErr(reason string, value any) error {
	return &errors.ConfigurationError{Component: "Machine", Reason: reason, Value: value}
}
