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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	dxerrors "dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model/rotor"
)

const navalText = `A-Z
5 3
I MQ      (AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)
II ME     (FIXVYOMW) (CDKLHUP) (ESZ) (BJ) (GR) (NT) (A) (Q)
III MV    (ABDHPEJT) (CFLVMZOYQIRWUKXSG) (N)
IV MJ     (AEPLIYWCOXMRFZBSTGJQNH) (DV) (KU)
V MZ      (AVOLDRWFIUQ)(BZKSMNHYC) (EGTJPX)
VI MZM    (AJQDVLEOZWIYTS) (CGMNHFUX) (BPRK)
VII MZM   (ANOUPFRIMBZTLWKSVEGCJYDHXQ)
VIII MZM  (AFLSETWUNDHOZVICQ) (BKJ) (GXY) (MPR)
Beta N    (ALBEVFCYODJWUGNMQTZSKPR) (HIX)
Gamma N   (AFNIRLBSQWVXGUZDKMTPCOYJHE)
B R       (AE) (BN) (CK) (DQ) (FU) (GY) (HW) (IJ) (LO) (MP)
          (RX) (SZ) (TV)
C R       (AR) (BD) (CO) (EJ) (FN) (GT) (HK) (IV) (LM) (PW)
          (QZ) (SX) (UY)
`

const hiawathaSettings = "* B Beta III IV I AXLE (HQ) (EX) (IP) (TR) (BY)"

func TestParseDescription(t *testing.T) {
	d, err := ParseDescriptionString(navalText)
	if err != nil {
		t.Fatalf("ParseDescription() error = %v", err)
	}

	if d.Alphabet.String() != "A-Z" || d.Slots != 5 || d.Pawls != 3 {
		t.Errorf("header = %s %d %d, want A-Z 5 3", d.Alphabet, d.Slots, d.Pawls)
	}
	if len(d.Rotors) != 12 {
		t.Fatalf("len(Rotors) = %d, want 12", len(d.Rotors))
	}

	tests := []struct {
		index   int
		name    string
		kind    rotor.Kind
		notches string
	}{
		{0, "I", rotor.KindMoving, "Q"},
		{5, "VI", rotor.KindMoving, "ZM"},
		{8, "Beta", rotor.KindFixed, ""},
		{10, "B", rotor.KindReflector, ""},
	}
	for _, tt := range tests {
		s := d.Rotors[tt.index]
		if s.Name() != tt.name || s.Kind() != tt.kind || s.Notches() != tt.notches {
			t.Errorf("Rotors[%d] = %s %s %q, want %s %s %q",
				tt.index, s.Name(), s.Kind(), s.Notches(), tt.name, tt.kind, tt.notches)
		}
	}

	// Cycles continued on the next line belong to the same rotor.
	if got := d.Rotors[10].Wiring().String(); !strings.HasSuffix(got, "(RX) (SZ) (TV)") {
		t.Errorf("B wiring = %q", got)
	}
}

func TestDescription_Text_RoundTrip(t *testing.T) {
	text := Naval().Text()
	if !strings.HasPrefix(text, "A-Z\n5 3\nI MQ (AELTPHQXRU) (BKNW)") {
		t.Errorf("Text() starts with %q", text[:40])
	}

	d, err := ParseDescriptionString(text)
	if err != nil {
		t.Fatalf("ParseDescription(Text()) error = %v", err)
	}
	want := Naval()
	for i, s := range d.Rotors {
		if s.String() != want.Rotors[i].String() {
			t.Errorf("Rotors[%d] = %s, want %s", i, s, want.Rotors[i])
		}
	}
}

func TestParseDescription_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"missing pawls", "A-Z 5"},
		{"non-numeric slots", "A-Z five 3"},
		{"duplicate alphabet symbol", "AAB 2 1"},
		{"unknown type", "A-Z 2 1 I XQ (AB)"},
		{"notch on fixed rotor", "A-Z 2 1 I NQ (AB)"},
		{"moving without notch", "A-Z 2 1 I M (AB)"},
		{"symbol outside alphabet", "A-Z 2 1 I MQ (Ab)"},
		{"repeated symbol", "A-Z 2 1 I MQ (AB) (AC)"},
		{"unbalanced cycle", "A-Z 2 1 I MQ (AB"},
		{"stray settings marker", "A-Z 2 1 * B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDescriptionString(tt.text)
			if !errors.Is(err, dxerrors.ErrConfiguration) {
				t.Errorf("ParseDescription(%q) error = %v, want configuration error", tt.text, err)
			}
		})
	}
}

func TestParseSettings(t *testing.T) {
	s, err := ParseSettings(hiawathaSettings)
	if err != nil {
		t.Fatalf("ParseSettings() error = %v", err)
	}
	if got := strings.Join(s.Rotors, " "); got != "B Beta III IV I" {
		t.Errorf("Rotors = %q", got)
	}
	if s.Positions != "AXLE" {
		t.Errorf("Positions = %q, want AXLE", s.Positions)
	}
	if s.Plugboard != "(HQ) (EX) (IP) (TR) (BY)" {
		t.Errorf("Plugboard = %q", s.Plugboard)
	}
	if s.String() != hiawathaSettings {
		t.Errorf("String() = %q, want %q", s.String(), hiawathaSettings)
	}

	bare, err := ParseSettings("*B Beta I II III AAAA")
	if err != nil {
		t.Fatalf("ParseSettings() error = %v", err)
	}
	if bare.Plugboard != "" || bare.Positions != "AAAA" {
		t.Errorf("bare settings = %+v", bare)
	}
}

func TestParseSettings_Errors(t *testing.T) {
	for _, line := range []string{
		"",
		"B Beta I II III AAAA",
		"* B",
		"* B Beta I II III AAAA (AB",
		"* B Beta I II III AAAA (AB) CD",
	} {
		if _, err := ParseSettings(line); !errors.Is(err, dxerrors.ErrConfiguration) {
			t.Errorf("ParseSettings(%q) error = %v, want configuration error", line, err)
		}
	}
}

func TestIsSettingsLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"* B Beta I II III AAAA", true},
		{"  * B", true},
		{"HELLO WORLD", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsSettingsLine(tt.line); got != tt.want {
			t.Errorf("IsSettingsLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestSettings_Apply(t *testing.T) {
	d, err := ParseDescriptionString(navalText)
	if err != nil {
		t.Fatal(err)
	}
	m, err := d.NewMachine()
	if err != nil {
		t.Fatal(err)
	}

	s, err := ParseSettings(hiawathaSettings)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Apply(m); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	got, err := m.ConvertMessage("FROMHISSHOULDERHIAWATHA")
	if err != nil {
		t.Fatal(err)
	}
	if got != "QVPQSOKOILPUBKJZPISFXDW" {
		t.Errorf("ConvertMessage = %q, want %q", got, "QVPQSOKOILPUBKJZPISFXDW")
	}

	// A later settings line without plugs removes the previous plugboard.
	bare, _ := ParseSettings("* B Beta I II III AAAA")
	if err := bare.Apply(m); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if m.Plugboard().String() != "" {
		t.Errorf("plugboard not reset: %q", m.Plugboard().String())
	}
	if m.Settings() != "AAAA" {
		t.Errorf("Settings() = %q, want AAAA", m.Settings())
	}
}

func TestSettings_Apply_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too few moving rotors", "* B Beta Gamma I II AAAA"},
		{"reflector not first", "* Beta B I II III AAAA"},
		{"unknown rotor", "* B Beta I II IX AAAA"},
		{"short positions", "* B Beta I II III AAA"},
		{"repeated plug", "* B Beta I II III AAAA (AB) (AC)"},
		{"plug outside alphabet", "* B Beta I II III AAAA (A1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Naval().NewMachine()
			if err != nil {
				t.Fatal(err)
			}
			s, err := ParseSettings(tt.line)
			if err != nil {
				t.Fatalf("ParseSettings(%q) error = %v", tt.line, err)
			}
			if err := s.Apply(m); !errors.Is(err, dxerrors.ErrConfiguration) {
				t.Errorf("Apply(%q) error = %v, want configuration error", tt.line, err)
			}
		})
	}
}

func TestDescription_YAML_RoundTrip(t *testing.T) {
	data, err := Naval().YAML()
	if err != nil {
		t.Fatalf("YAML() error = %v", err)
	}

	d, err := LoadYAML(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("LoadYAML() error = %v\n%s", err, data)
	}
	want := Naval()
	if len(d.Rotors) != len(want.Rotors) {
		t.Fatalf("len(Rotors) = %d, want %d", len(d.Rotors), len(want.Rotors))
	}
	for i, s := range d.Rotors {
		if s.String() != want.Rotors[i].String() {
			t.Errorf("Rotors[%d] = %s, want %s", i, s, want.Rotors[i])
		}
	}

	m, err := d.NewMachine()
	if err != nil {
		t.Fatal(err)
	}
	s, _ := ParseSettings("* B Beta I II III AAAA (AQ) (EP)")
	if err := s.Apply(m); err != nil {
		t.Fatal(err)
	}
	if got, _ := m.ConvertMessage("HELLO WORLD"); got != "IHBDQ QMTQZ" {
		t.Errorf("ConvertMessage = %q, want %q", got, "IHBDQ QMTQZ")
	}
}

func smallYAML(version, notches string) string {
	return fmt.Sprintf(`version: %s
alphabet: ABCD
slots: 3
pawls: 1
rotors:
  - name: R
    kind: reflector
    wiring: (AB) (CD)
  - name: F
    wiring: (ABC)
  - name: M
    kind: moving
    notches: %s
    wiring: (AD)
`, version, notches)
}

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(smallYAML("v1.2.0", "A")))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if doc.Rotors[1].Kind != rotor.KindFixed {
		t.Errorf("omitted kind = %s, want fixed", doc.Rotors[1].Kind)
	}

	d, err := doc.Description()
	if err != nil {
		t.Fatalf("Description() error = %v", err)
	}
	if d.Alphabet.String() != "ABCD" || d.Slots != 3 || d.Pawls != 1 {
		t.Errorf("header = %s %d %d, want ABCD 3 1", d.Alphabet, d.Slots, d.Pawls)
	}
	if got := d.Rotors[2].Notches(); got != "A" {
		t.Errorf("M notches = %q, want A", got)
	}

	m, err := d.NewMachine()
	if err != nil {
		t.Fatal(err)
	}
	if err := m.InsertRotors([]string{"R", "F", "M"}); err != nil {
		t.Errorf("InsertRotors() error = %v", err)
	}
}

func TestParseDocument_Errors(t *testing.T) {
	valid := smallYAML("1.0.0", "A")

	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"not a mapping", "- a\n- b\n"},
		{"bad version", smallYAML("one", "A")},
		{"unsupported version", smallYAML("2.0.0", "A")},
		{"bad alphabet", strings.Replace(valid, "alphabet: ABCD", "alphabet: AAB", 1)},
		{"one slot", strings.Replace(valid, "slots: 3", "slots: 1", 1)},
		{"too many pawls", strings.Replace(valid, "pawls: 1", "pawls: 3", 1)},
		{"unknown kind", strings.Replace(valid, "kind: moving", "kind: spinning", 1)},
		{"duplicate rotor", strings.Replace(valid, "name: F", "name: R", 1)},
		{"notch on fixed rotor", strings.Replace(valid, "wiring: (ABC)", "notches: B\n    wiring: (ABC)", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tt.data))
			if !errors.Is(err, dxerrors.ErrConfiguration) {
				t.Errorf("ParseDocument() error = %v, want configuration error", err)
			}
		})
	}
}

func TestDocument_Validate_ReportsEveryRotor(t *testing.T) {
	doc := &Document{
		Version:  DocumentVersion,
		Alphabet: "A-Z",
		Slots:    3,
		Pawls:    1,
		Rotors: []*RotorDecl{
			{Name: "FIRST", Kind: rotor.KindMoving, Wiring: "(AB)"},
			{Name: "OK", Kind: rotor.KindReflector, Wiring: "(AB)"},
			{Name: "SECOND", Kind: rotor.KindFixed, Notches: "A"},
		},
	}

	err := doc.Validate()
	if !errors.Is(err, dxerrors.ErrConfiguration) {
		t.Fatalf("Validate() error = %v, want configuration error", err)
	}
	for _, name := range []string{"FIRST", "SECOND"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("Validate() error %q does not mention %s", err, name)
		}
	}
}

func TestDocument_Description_Errors(t *testing.T) {
	doc := &Document{
		Version:  DocumentVersion,
		Alphabet: "A-F",
		Slots:    2,
		Pawls:    1,
		Rotors: []*RotorDecl{
			{Name: "R", Kind: rotor.KindReflector, Wiring: "(AB) (CD) (EF)"},
			{Name: "WIDE", Kind: rotor.KindMoving, Notches: "A", Wiring: "(AZ)"},
			{Name: "LATE", Kind: rotor.KindMoving, Notches: "Q", Wiring: "(AB)"},
		},
	}

	_, err := doc.Description()
	if !errors.Is(err, dxerrors.ErrConfiguration) {
		t.Fatalf("Description() error = %v, want configuration error", err)
	}
	for _, name := range []string{"WIDE", "LATE"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("Description() error %q does not mention %s", err, name)
		}
	}
}

func TestRotorDecl(t *testing.T) {
	r := RotorDecl{Name: "I", Kind: rotor.KindMoving, Notches: "Q", Wiring: "(AB)"}
	if r.String() != "I moving[Q] (AB)" {
		t.Errorf("String() = %q", r.String())
	}
	if r.IsZero() || !(RotorDecl{}).IsZero() {
		t.Error("IsZero() mismatch")
	}
	if err := (RotorDecl{Name: "two words", Kind: rotor.KindFixed}).Validate(); !errors.Is(err, dxerrors.ErrConfiguration) {
		t.Errorf("Validate() error = %v, want configuration error", err)
	}
	if _, err := (RotorDecl{Kind: rotor.KindFixed}).MarshalYAML(); err == nil {
		t.Error("MarshalYAML() of invalid declaration succeeded")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	textPath := filepath.Join(dir, "naval.conf")
	if err := os.WriteFile(textPath, []byte(navalText), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err := Naval().YAML()
	if err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "naval.yml")
	if err := os.WriteFile(yamlPath, data, 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{textPath, yamlPath} {
		d, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s) error = %v", path, err)
		}
		if len(d.Rotors) != 12 || d.Slots != 5 || d.Pawls != 3 {
			t.Errorf("Load(%s) = %d rotors, %d slots, %d pawls", path, len(d.Rotors), d.Slots, d.Pawls)
		}
	}

	if _, err := Load(filepath.Join(dir, "missing.conf")); !errors.Is(err, dxerrors.ErrConfiguration) {
		t.Errorf("Load(missing) error = %v, want configuration error", err)
	}
}
