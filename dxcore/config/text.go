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
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model/alphabet"
	"dirpx.dev/dxenigma/dxcore/model/permutation"
	"dirpx.dev/dxenigma/dxcore/model/rotor"
)

// textLexer splits descriptions and settings lines into words, parentheses
// and the settings marker. A word is any run of symbols that are not
// whitespace, parentheses or '*'.
var textLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Star", Pattern: `\*`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Word", Pattern: `[^\s()*]+`},
})

type descriptionAST struct {
	Alphabet string      `@Word`
	Slots    int         `@Word`
	Pawls    int         `@Word`
	Rotors   []*rotorAST `@@*`
}

type rotorAST struct {
	Pos    lexer.Position
	Name   string      `@Word`
	Type   string      `@Word`
	Cycles []*cycleAST `@@*`
}

type cycleAST struct {
	Symbols []string `"(" @Word* ")"`
}

type settingsAST struct {
	Words     []string    `"*" @Word @Word+`
	Plugboard []*cycleAST `@@*`
}

var (
	descriptionParser = participle.MustBuild[descriptionAST](
		participle.Lexer(textLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
	settingsParser = participle.MustBuild[settingsAST](
		participle.Lexer(textLexer),
		participle.Elide("Whitespace"),
	)
)

// cycleText renders parsed cycles back into permutation notation.
func cycleText(cycles []*cycleAST) string {
	parts := make([]string, len(cycles))
	for i, c := range cycles {
		parts[i] = "(" + strings.Join(c.Symbols, "") + ")"
	}
	return strings.Join(parts, " ")
}

// ParseDescription reads a machine description in text form.
//
// Syntax errors, an invalid alphabet, and invalid rotor types, notches or
// wirings are reported as *errors.ConfigurationError naming the offending
// rotor and its line.
func ParseDescription(r io.Reader) (*Description, error) {
	ast, err := descriptionParser.Parse("", r)
	if err != nil {
		return nil, &errors.ConfigurationError{Component: "Description", Reason: "syntax error", Err: err}
	}
	return ast.description()
}

// ParseDescriptionString is ParseDescription for in-memory text.
func ParseDescriptionString(s string) (*Description, error) {
	return ParseDescription(strings.NewReader(s))
}

func (a *descriptionAST) description() (*Description, error) {
	alpha, err := alphabet.Parse(a.Alphabet)
	if err != nil {
		return nil, err
	}

	d := &Description{Alphabet: alpha, Slots: a.Slots, Pawls: a.Pawls}
	for _, ra := range a.Rotors {
		spec, err := ra.spec(alpha)
		if err != nil {
			return nil, &errors.ConfigurationError{
				Component: "Description",
				Reason:    fmt.Sprintf("rotor %s on line %d", ra.Name, ra.Pos.Line),
				Value:     ra.Name,
				Err:       err,
			}
		}
		d.Rotors = append(d.Rotors, spec)
	}
	return d, nil
}

func (ra *rotorAST) spec(alpha alphabet.Alphabet) (*rotor.Spec, error) {
	_, n := utf8.DecodeRuneInString(ra.Type)
	kind, err := rotor.ParseKind(ra.Type[:n])
	if err != nil {
		return nil, err
	}
	wiring, err := permutation.New(cycleText(ra.Cycles), alpha)
	if err != nil {
		return nil, err
	}
	return rotor.NewSpec(ra.Name, kind, wiring, ra.Type[n:])
}

// Text renders the description in text form, one rotor per line.
func (d *Description) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%d %d\n", d.Alphabet, d.Slots, d.Pawls)
	for _, s := range d.Rotors {
		b.WriteString(s.String() + "\n")
	}
	return b.String()
}
