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

// Package catalog provides built-in rotor definitions for well-known
// machines.
//
// The naval set contains the eight moving rotors I-VIII, the two thin fixed
// rotors Beta and Gamma that sit next to the reflector, and the thin
// reflectors B and C, all over the alphabet A-Z. A typical four-rotor
// arrangement uses 5 slots and 3 pawls:
//
//	B Beta III IV I
package catalog

import (
	"fmt"

	"dirpx.dev/dxenigma/dxcore/model/alphabet"
	"dirpx.dev/dxenigma/dxcore/model/permutation"
	"dirpx.dev/dxenigma/dxcore/model/rotor"
)

// Entry is one row of a built-in catalog.
type Entry struct {
	Name    string
	Kind    rotor.Kind
	Notches string
	Wiring  string
}

// NavalEntries lists the naval rotor set in the order used by the text
// configuration format.
var NavalEntries = []Entry{
	{"I", rotor.KindMoving, "Q", "(AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)"},
	{"II", rotor.KindMoving, "E", "(FIXVYOMW) (CDKLHUP) (ESZ) (BJ) (GR) (NT) (A) (Q)"},
	{"III", rotor.KindMoving, "V", "(ABDHPEJT) (CFLVMZOYQIRWUKXSG) (N)"},
	{"IV", rotor.KindMoving, "J", "(AEPLIYWCOXMRFZBSTGJQNH) (DV) (KU)"},
	{"V", rotor.KindMoving, "Z", "(AVOLDRWFIUQ) (BZKSMNHYC) (EGTJPX)"},
	{"VI", rotor.KindMoving, "ZM", "(AJQDVLEOZWIYTS) (CGMNHFUX) (BPRK)"},
	{"VII", rotor.KindMoving, "ZM", "(ANOUPFRIMBZTLWKSVEGCJYDHXQ)"},
	{"VIII", rotor.KindMoving, "ZM", "(AFLSETWUNDHOZVICQ) (BKJ) (GXY) (MPR)"},
	{"Beta", rotor.KindFixed, "", "(ALBEVFCYODJWUGNMQTZSKPR) (HIX)"},
	{"Gamma", rotor.KindFixed, "", "(AFNIRLBSQWVXGUZDKMTPCOYJHE)"},
	{"B", rotor.KindReflector, "", "(AE) (BN) (CK) (DQ) (FU) (GY) (HW) (IJ) (LO) (MP) (RX) (SZ) (TV)"},
	{"C", rotor.KindReflector, "", "(AR) (BD) (CO) (EJ) (FN) (GT) (HK) (IV) (LM) (PW) (QZ) (SX) (UY)"},
}

// Naval slot and pawl counts for the four-rotor arrangement.
const (
	NavalSlots = 5
	NavalPawls = 3
)

// Build turns entries into rotor definitions over alpha.
func Build(alpha alphabet.Alphabet, entries []Entry) ([]*rotor.Spec, error) {
	specs := make([]*rotor.Spec, 0, len(entries))
	for _, e := range entries {
		w, err := permutation.New(e.Wiring, alpha)
		if err != nil {
			return nil, fmt.Errorf("rotor %s wiring: %w", e.Name, err)
		}
		s, err := rotor.NewSpec(e.Name, e.Kind, w, e.Notches)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	return specs, nil
}

// Naval returns the naval rotor set over A-Z. The definitions are freshly
// built on every call but are immutable, so callers may share them.
func Naval() []*rotor.Spec {
	specs, err := Build(alphabet.Uppercase(), NavalEntries)
	if err != nil {
		panic(fmt.Sprintf("catalog: naval table is invalid: %v", err))
	}
	return specs
}
