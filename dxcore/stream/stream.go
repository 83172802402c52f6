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

// Package stream runs a machine over a text stream of settings lines and
// messages.
//
// A line whose first non-blank symbol is '*' is a settings line (see
// config.ParseSettings) and reconfigures the machine. Every other line is
// a message: its whitespace is removed, it is converted under the current
// settings, and it is written out in groups of five symbols. The stream
// must start with a settings line; blank lines before it are skipped and
// blank lines after it are copied as empty lines.
//
//	* B Beta III IV I AXLE (HQ) (EX) (IP) (TR) (BY)
//	FROM his shoulder Hiawatha
//
// produces
//
//	QVPQS OKOIL PUBKJ ZPISF XDW
package stream

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"dirpx.dev/dxenigma/dxcore/config"
	"dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/machine"
	"dirpx.dev/dxenigma/internal/logging"
)

// maxLine bounds a single input line.
const maxLine = 1 << 20

// Processor converts message streams on one machine.
type Processor struct {
	m         *machine.Machine
	logger    *slog.Logger
	groupSize int
	foldCase  bool
}

// New returns a Processor driving m.
func New(m *machine.Machine, opts ...Option) *Processor {
	p := &Processor{
		m:         m,
		logger:    logging.Discard(),
		groupSize: DefaultGroupSize,
		foldCase:  true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Machine returns the driven machine.
func (p *Processor) Machine() *machine.Machine { return p.m }

// Run reads r line by line and writes converted messages to w.
//
// It stops at the first failure and returns it prefixed with the line
// number; output for earlier lines has already been written. Settings
// failures match errors.ErrConfiguration, conversion failures
// errors.ErrOperation. Run also stops when ctx is done.
func (p *Processor) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	out := bufio.NewWriter(w)
	defer out.Flush()

	var (
		lineNo     int
		configured bool
		messages   int
	)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		line := sc.Text()

		switch {
		case config.IsSettingsLine(line):
			if err := p.applySettings(line); err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			configured = true
			continue
		case !configured && strings.TrimSpace(line) == "":
			continue
		case !configured:
			return fmt.Errorf("line %d: %w", lineNo, &errors.ConfigurationError{
				Component: "Stream",
				Reason:    "input must start with a settings line",
			})
		}

		converted, err := p.convert(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		p.logger.Log(ctx, logging.LevelTrace, "line converted", "line", lineNo, "symbols", utf8.RuneCountInString(converted))
		messages++

		if _, err := out.WriteString(FormatGroups(converted, p.groupSize) + "\n"); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}

	p.logger.Debug("stream finished", "lines", lineNo, "messages", messages, "settings", p.m.Settings())
	return out.Flush()
}

func (p *Processor) applySettings(line string) error {
	s, err := config.ParseSettings(line)
	if err != nil {
		return err
	}
	if err := s.Apply(p.m); err != nil {
		return err
	}
	p.logger.Debug("settings applied", "rotors", strings.Join(s.Rotors, " "), "positions", s.Positions, "plugboard", s.Plugboard)
	return nil
}

func (p *Processor) convert(line string) (string, error) {
	msg := strings.Join(strings.Fields(line), "")
	if p.foldCase {
		msg = strings.ToUpper(msg)
	}
	return p.m.ConvertMessage(msg)
}

// FormatGroups splits msg into groups of size symbols separated by single
// spaces. The last group may be shorter. A size of zero or less returns msg
// unchanged.
func FormatGroups(msg string, size int) string {
	if size <= 0 {
		return msg
	}
	var b strings.Builder
	n := 0
	for _, ch := range msg {
		if n > 0 && n%size == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(ch)
		n++
	}
	return b.String()
}
