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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"dirpx.dev/rxmerr"
	bsemver "github.com/blang/semver/v4"
	"gopkg.in/yaml.v3"

	"dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model"
	"dirpx.dev/dxenigma/dxcore/model/alphabet"
	"dirpx.dev/dxenigma/dxcore/model/permutation"
	"dirpx.dev/dxenigma/dxcore/model/rotor"
)

// DocumentVersion is the format version written by Description.Document.
const DocumentVersion = "1.0.0"

// supportedVersions accepts every 1.x document.
var supportedVersions = bsemver.MustParseRange(">=1.0.0 <2.0.0")

// RotorDecl declares one rotor of a YAML machine document.
//
// An omitted kind means a fixed rotor. Notches are given as alphabet
// symbols and are only allowed on moving rotors. Wiring is in cycle
// notation; an empty wiring is the identity.
type RotorDecl struct {
	Name    string     `json:"name" yaml:"name"`
	Kind    rotor.Kind `json:"kind" yaml:"kind"`
	Notches string     `json:"notches,omitempty" yaml:"notches,omitempty"`
	Wiring  string     `json:"wiring" yaml:"wiring"`
}

// Validate checks the declaration on its own. Wiring and notch symbols are
// checked against the document alphabet when the rotor is built.
func (r RotorDecl) Validate() error {
	if r.Name == "" {
		return &errors.ValidationError{Type: r.TypeName(), Field: "name", Reason: "must not be empty"}
	}
	if strings.ContainsAny(r.Name, " \t\r\n()*") {
		return &errors.ValidationError{Type: r.TypeName(), Field: "name", Reason: "must be a single word", Value: r.Name}
	}
	if err := r.Kind.Validate(); err != nil {
		return err
	}
	switch {
	case r.Kind == rotor.KindMoving && r.Notches == "":
		return &errors.ValidationError{Type: r.TypeName(), Field: "notches", Reason: "moving rotor " + r.Name + " needs a notch"}
	case r.Kind != rotor.KindMoving && r.Notches != "":
		return &errors.ValidationError{Type: r.TypeName(), Field: "notches", Reason: r.Kind.String() + " rotor " + r.Name + " cannot have notches", Value: r.Notches}
	}
	return nil
}

// Spec builds the rotor definition over alpha.
func (r RotorDecl) Spec(alpha alphabet.Alphabet) (*rotor.Spec, error) {
	wiring, err := permutation.New(r.Wiring, alpha)
	if err != nil {
		return nil, err
	}
	return rotor.NewSpec(r.Name, r.Kind, wiring, r.Notches)
}

// TypeName returns "RotorDecl".
func (r RotorDecl) TypeName() string { return "RotorDecl" }

// IsZero reports whether no field is set.
func (r RotorDecl) IsZero() bool {
	return r.Name == "" && r.Kind.IsZero() && r.Notches == "" && r.Wiring == ""
}

// String returns "NAME kind[NOTCHES] WIRING".
func (r RotorDecl) String() string {
	s := r.Name + " " + r.Kind.String()
	if r.Notches != "" {
		s += "[" + r.Notches + "]"
	}
	if r.Wiring != "" {
		s += " " + r.Wiring
	}
	return s
}

// Redacted returns String; rotor declarations hold nothing sensitive.
func (r RotorDecl) Redacted() string { return r.String() }

func (r RotorDecl) MarshalJSON() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", r.TypeName(), err)
	}
	type rotorDecl RotorDecl
	return json.Marshal(rotorDecl(r))
}

// UnmarshalJSON decodes without validating; Document.Validate checks all
// entries together.
func (r *RotorDecl) UnmarshalJSON(data []byte) error {
	type rotorDecl RotorDecl
	if err := json.Unmarshal(data, (*rotorDecl)(r)); err != nil {
		return &errors.UnmarshalError{Type: r.TypeName(), Data: data, Reason: err.Error()}
	}
	return nil
}

func (r RotorDecl) MarshalYAML() (interface{}, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", r.TypeName(), err)
	}
	type rotorDecl RotorDecl
	return rotorDecl(r), nil
}

// UnmarshalYAML decodes without validating; Document.Validate checks all
// entries together.
func (r *RotorDecl) UnmarshalYAML(node *yaml.Node) error {
	type rotorDecl RotorDecl
	if err := node.Decode((*rotorDecl)(r)); err != nil {
		return &errors.UnmarshalError{Type: r.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}
	return nil
}

// Document is the YAML form of a machine description.
type Document struct {
	Version  string       `json:"version" yaml:"version"`
	Alphabet string       `json:"alphabet" yaml:"alphabet"`
	Slots    int          `json:"slots" yaml:"slots"`
	Pawls    int          `json:"pawls" yaml:"pawls"`
	Rotors   []*RotorDecl `json:"rotors" yaml:"rotors"`
}

// Validate checks the format version, the alphabet, the slot and pawl
// counts and every rotor declaration. Failures of several declarations are
// reported together.
func (d *Document) Validate() error {
	if d == nil {
		return &errors.ValidationError{Type: "Document", Reason: "empty document"}
	}

	v, err := bsemver.Parse(strings.TrimPrefix(d.Version, "v"))
	if err != nil {
		return &errors.ValidationError{Type: d.TypeName(), Field: "version", Reason: err.Error(), Value: d.Version}
	}
	if !supportedVersions(v) {
		return &errors.ValidationError{Type: d.TypeName(), Field: "version", Reason: "unsupported version " + v.String(), Value: d.Version}
	}

	if _, err := alphabet.Parse(d.Alphabet); err != nil {
		return &errors.ValidationError{Type: d.TypeName(), Field: "alphabet", Reason: err.Error(), Value: d.Alphabet}
	}
	if d.Slots <= 1 {
		return &errors.ValidationError{Type: d.TypeName(), Field: "slots", Reason: "need more than one slot", Value: d.Slots}
	}
	if d.Pawls < 0 || d.Pawls >= d.Slots {
		return &errors.ValidationError{Type: d.TypeName(), Field: "pawls", Reason: fmt.Sprintf("must be in [0, %d)", d.Slots), Value: d.Pawls}
	}

	seen := make(map[string]bool, len(d.Rotors))
	for i, r := range d.Rotors {
		if r == nil {
			return &errors.ValidationError{Type: d.TypeName(), Field: fmt.Sprintf("rotors[%d]", i), Reason: "empty entry"}
		}
		if seen[r.Name] && r.Name != "" {
			return &errors.ValidationError{Type: d.TypeName(), Field: "rotors", Reason: "rotor " + r.Name + " declared twice", Value: r.Name}
		}
		seen[r.Name] = true
	}
	if err := model.ValidateAll(d.Rotors); err != nil {
		return &errors.ConfigurationError{Component: d.TypeName(), Reason: "invalid rotors", Err: err}
	}
	return nil
}

// Description builds the machine description. Every rotor whose wiring or
// notches do not fit the alphabet is reported.
func (d *Document) Description() (*Description, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	alpha, err := alphabet.Parse(d.Alphabet)
	if err != nil {
		return nil, err
	}

	c := rxmerr.NewCollector()
	specs := make([]*rotor.Spec, 0, len(d.Rotors))
	for i, r := range d.Rotors {
		spec, err := r.Spec(alpha)
		if err != nil {
			c.Append(fmt.Errorf("rotors[%d] (%s): %w", i, r.Name, err))
			continue
		}
		specs = append(specs, spec)
	}
	if err := c.Err(); err != nil {
		return nil, &errors.ConfigurationError{Component: d.TypeName(), Reason: "invalid rotors", Err: err}
	}

	return &Description{Alphabet: alpha, Slots: d.Slots, Pawls: d.Pawls, Rotors: specs}, nil
}

// TypeName returns "Document".
func (d *Document) TypeName() string { return "Document" }

// IsZero reports whether the document is nil or has no field set.
func (d *Document) IsZero() bool {
	return d == nil || (d.Version == "" && d.Alphabet == "" && d.Slots == 0 && d.Pawls == 0 && len(d.Rotors) == 0)
}

// String returns a one-line summary.
func (d *Document) String() string {
	if d == nil {
		return "Document{}"
	}
	return fmt.Sprintf("Document{version=%s alphabet=%s slots=%d pawls=%d rotors=%d}",
		d.Version, d.Alphabet, d.Slots, d.Pawls, len(d.Rotors))
}

// Redacted returns String.
func (d *Document) Redacted() string { return d.String() }

func (d *Document) MarshalJSON() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", d.TypeName(), err)
	}
	type document Document
	return json.Marshal((*document)(d))
}

func (d *Document) UnmarshalJSON(data []byte) error {
	type document Document
	if err := json.Unmarshal(data, (*document)(d)); err != nil {
		return &errors.UnmarshalError{Type: d.TypeName(), Data: data, Reason: err.Error()}
	}
	return nil
}

func (d *Document) MarshalYAML() (interface{}, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", d.TypeName(), err)
	}
	type document Document
	return (*document)(d), nil
}

func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	type document Document
	if err := node.Decode((*document)(d)); err != nil {
		return &errors.UnmarshalError{Type: d.TypeName(), Data: []byte(fmt.Sprintf("%v", node.Value)), Reason: err.Error()}
	}
	return nil
}

// ParseDocument decodes and validates a YAML machine document.
func ParseDocument(data []byte) (*Document, error) {
	var doc *Document
	if err := model.FromYAML(data, &doc); err != nil {
		return nil, &errors.ConfigurationError{Component: "Document", Reason: "cannot load", Err: err}
	}
	return doc, nil
}

// LoadYAML reads a YAML machine document from r and builds its description.
func LoadYAML(r io.Reader) (*Description, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &errors.ConfigurationError{Component: "Document", Reason: "cannot read", Err: err}
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}
	return doc.Description()
}

// YAML renders the description as a YAML document.
func (d *Description) YAML() ([]byte, error) {
	return model.ToYAML(d.Document())
}

var (
	_ model.Model = (*RotorDecl)(nil)
	_ model.Model = (*Document)(nil)
)
