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

// Package config reads machine descriptions and settings lines.
//
// A machine description names the alphabet, the number of rotor slots and
// pawls, and the catalog of available rotors. It comes in two forms that
// produce the same Description:
//
// The text form, one whitespace-separated stream of words:
//
//	A-Z
//	5 3
//	I     MQ  (AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)
//	Beta  N   (ALBEVFCYODJWUGNMQTZSKPR) (HIX)
//	B     R   (AE) (BN) (CK) (DQ) (FU) (GY) (HW) (IJ) (LO) (MP) (RX) (SZ) (TV)
//
// The type word starts with M (moving), N (fixed) or R (reflector); the
// remaining symbols of a moving rotor's type word are its notches.
//
// The YAML form, a versioned Document:
//
//	version: 1.0.0
//	alphabet: A-Z
//	slots: 5
//	pawls: 3
//	rotors:
//	  - name: I
//	    kind: moving
//	    notches: Q
//	    wiring: (AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)
//
// A settings line selects rotors, their positions and the plugboard for
// the messages that follow it:
//
//	* B Beta III IV I AXLE (HQ) (EX) (IP) (TR) (BY)
package config

import (
	"os"
	"path/filepath"
	"strings"

	"dirpx.dev/dxenigma/dxcore/catalog"
	"dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/machine"
	"dirpx.dev/dxenigma/dxcore/model/alphabet"
	"dirpx.dev/dxenigma/dxcore/model/rotor"
)

// Description is a parsed machine description.
type Description struct {
	Alphabet alphabet.Alphabet
	Slots    int
	Pawls    int
	Rotors   []*rotor.Spec
}

// Naval returns the description of the four-rotor naval machine with the
// built-in rotor catalog.
func Naval() *Description {
	return &Description{
		Alphabet: alphabet.Uppercase(),
		Slots:    catalog.NavalSlots,
		Pawls:    catalog.NavalPawls,
		Rotors:   catalog.Naval(),
	}
}

// NewMachine builds an empty machine from the description. Rotors still
// have to be inserted, usually by applying Settings.
func (d *Description) NewMachine() (*machine.Machine, error) {
	return machine.New(d.Alphabet, d.Slots, d.Pawls, d.Rotors)
}

// Document renders the description as a YAML document of the current
// format version.
func (d *Description) Document() *Document {
	doc := &Document{
		Version:  DocumentVersion,
		Alphabet: d.Alphabet.String(),
		Slots:    d.Slots,
		Pawls:    d.Pawls,
		Rotors:   make([]*RotorDecl, 0, len(d.Rotors)),
	}
	for _, s := range d.Rotors {
		doc.Rotors = append(doc.Rotors, &RotorDecl{
			Name:    s.Name(),
			Kind:    s.Kind(),
			Notches: s.Notches(),
			Wiring:  s.Wiring().String(),
		})
	}
	return doc
}

// Load reads the description stored at path. Files ending in .yaml or .yml
// are read as YAML documents, anything else as the text form.
func Load(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &errors.ConfigurationError{Component: "Description", Reason: "cannot open " + path, Err: err}
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return ParseDescription(f)
	}
}
