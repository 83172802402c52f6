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

package config

import (
	"strings"

	"dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/machine"
	"dirpx.dev/dxenigma/dxcore/model/permutation"
)

// SettingsMarker starts every settings line.
const SettingsMarker = "*"

// Settings is a parsed settings line.
type Settings struct {
	// Rotors names the rotors to insert, reflector first.
	Rotors []string

	// Positions holds one symbol per non-reflector slot.
	Positions string

	// Plugboard is the plugboard in cycle notation; empty means no plugs.
	Plugboard string
}

// IsSettingsLine reports whether line is a settings line rather than a
// message.
func IsSettingsLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), SettingsMarker)
}

// ParseSettings parses a settings line of the form
//
//	* ROTOR... POSITIONS [CYCLES...]
//
// The last word before the plugboard cycles is taken as the positions.
// Malformed lines are reported as *errors.ConfigurationError.
func ParseSettings(line string) (*Settings, error) {
	ast, err := settingsParser.ParseString("", line)
	if err != nil {
		return nil, &errors.ConfigurationError{Component: "Settings", Reason: "syntax error", Value: line, Err: err}
	}
	n := len(ast.Words)
	return &Settings{
		Rotors:    ast.Words[:n-1],
		Positions: ast.Words[n-1],
		Plugboard: cycleText(ast.Plugboard),
	}, nil
}

// Apply configures m for the messages that follow: it removes any previous
// plugboard, inserts the named rotors, sets their positions and installs
// the plugboard. A symbol repeated across plugboard cycles is rejected.
//
// Apply returns the first failure; m may then be partially configured and
// must be reconfigured before use.
func (s *Settings) Apply(m *machine.Machine) error {
	if err := m.SetPlugboard(nil); err != nil {
		return err
	}
	if err := m.InsertRotors(s.Rotors); err != nil {
		return err
	}
	if err := m.SetRotors(s.Positions); err != nil {
		return err
	}
	if s.Plugboard == "" {
		return nil
	}
	plugboard, err := permutation.New(s.Plugboard, m.Alphabet())
	if err != nil {
		return err
	}
	return m.SetPlugboard(plugboard)
}

// String renders the settings back as a settings line.
func (s *Settings) String() string {
	parts := append([]string{SettingsMarker}, s.Rotors...)
	parts = append(parts, s.Positions)
	if s.Plugboard != "" {
		parts = append(parts, s.Plugboard)
	}
	return strings.Join(parts, " ")
}
