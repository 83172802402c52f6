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

package machine

import (
	"fmt"
	"strings"

	"dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model/alphabet"
)

// Advance performs one step of the stepping mechanism.
//
// Which slots move is decided from the notch states before anything moves.
// A slot i > 0 that sits at a notch moves together with its left neighbour,
// provided that neighbour can rotate. The last slot always moves. A middle
// rotor carried on by its right neighbour in one step and sitting at its
// own notch in the next therefore moves twice in a row (double stepping).
//
// Advance fails with an *errors.OperationError when no rotors are inserted
// or a selected slot cannot rotate; in the latter case no slot moves.
func (m *Machine) Advance() error {
	n := len(m.slots)
	if n == 0 {
		return m.refuse("advance", "no rotors inserted")
	}

	move := make([]bool, n)
	for i := 1; i < n; i++ {
		if m.slots[i].AtNotch() && m.slots[i-1].Rotates() {
			move[i] = true
			move[i-1] = true
		}
	}
	move[n-1] = true

	for i, r := range m.slots {
		if move[i] && !r.Rotates() {
			return r.Advance()
		}
	}
	for i, r := range m.slots {
		if move[i] {
			if err := r.Advance(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Convert passes index c through the plugboard, right to left through every
// slot including the reflector, left to right back through slots 1 and up,
// and through the plugboard again. It does not advance the rotors.
//
// Convert fails with an *errors.OperationError when no rotors are inserted
// or c is outside the alphabet.
func (m *Machine) Convert(c int) (int, error) {
	if len(m.slots) == 0 {
		return 0, m.refuse("convert", "no rotors inserted")
	}
	if c < 0 || c >= m.alpha.Size() {
		return 0, m.refuse("convert", fmt.Sprintf("index %d out of range [0, %d)", c, m.alpha.Size()))
	}

	c = m.plugboard.Permute(c)
	for i := len(m.slots) - 1; i >= 0; i-- {
		c = m.slots[i].ConvertForward(c)
	}
	for i := 1; i < len(m.slots); i++ {
		var err error
		if c, err = m.slots[i].ConvertBackward(c); err != nil {
			return 0, err
		}
	}
	return m.plugboard.Permute(c), nil
}

// ConvertSymbol advances the machine and converts one symbol.
func (m *Machine) ConvertSymbol(ch rune) (rune, error) {
	in := m.alpha.ToInt(ch)
	if in == alphabet.Invalid {
		return 0, m.refuse("convert", fmt.Sprintf("symbol %q not in alphabet %s", ch, m.alpha))
	}
	if err := m.Advance(); err != nil {
		return 0, err
	}
	out, err := m.Convert(in)
	if err != nil {
		return 0, err
	}
	return m.alpha.ToChar(out)
}

// ConvertMessage encodes or decodes msg symbol by symbol. Separator symbols
// are copied unchanged and do not step the rotors; every other symbol steps
// the machine once and is then converted.
//
// On error the rotors keep the positions reached so far.
func (m *Machine) ConvertMessage(msg string) (string, error) {
	var b strings.Builder
	b.Grow(len(msg))
	for _, ch := range msg {
		if ch == Separator {
			b.WriteRune(ch)
			continue
		}
		out, err := m.ConvertSymbol(ch)
		if err != nil {
			return b.String(), err
		}
		b.WriteRune(out)
	}
	return b.String(), nil
}

func (m *Machine) refuse(op, reason string) error {
	return &errors.OperationError{Component: "Machine", Op: op, Reason: reason}
}
