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

package stream

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"dirpx.dev/dxenigma/dxcore/config"
	dxerrors "dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/machine"
	"dirpx.dev/dxenigma/internal/logging"
)

func navalMachine(t *testing.T) *machine.Machine {
	t.Helper()
	m, err := config.Naval().NewMachine()
	if err != nil {
		t.Fatalf("NewMachine() error = %v", err)
	}
	return m
}

func run(t *testing.T, input string, opts ...Option) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := New(navalMachine(t), opts...).Run(context.Background(), strings.NewReader(input), &out)
	return out.String(), err
}

func TestProcessor_Run(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "hiawatha",
			input: "* B Beta III IV I AXLE (HQ) (EX) (IP) (TR) (BY)\nFROM his shoulder Hiawatha\n",
			want:  "QVPQS OKOIL PUBKJ ZPISF XDW\n",
		},
		{
			name:  "decrypt",
			input: "* B Beta III IV I AXLE (HQ) (EX) (IP) (TR) (BY)\nQVPQS OKOIL PUBKJ ZPISF XDW\n",
			want:  "FROMH ISSHO ULDER HIAWA THA\n",
		},
		{
			name:  "settings persist across lines",
			input: "* B Beta I II III AAAA (AQ) (EP)\nHELLO\nWORLD\n",
			want:  "IHBDQ\nQMTQZ\n",
		},
		{
			name:  "new settings line resets",
			input: "* B Beta III IV I AXLE (HQ) (EX) (IP) (TR) (BY)\nFROM\n* B Beta I II III AAAA (AQ) (EP)\nHELLO WORLD\n",
			want:  "QVPQ\nIHBDQ QMTQZ\n",
		},
		{
			name:  "blank lines",
			input: "\n\n* B Beta I II III AAAA (AQ) (EP)\nHELLO\n\nWORLD",
			want:  "IHBDQ\n\nQMTQZ\n",
		},
		{
			name:  "settings only",
			input: "* B Beta I II III AAAA\n",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.input)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Run() output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProcessor_Run_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     []Option
		want     error
		wantLine string
		wantOut  string
	}{
		{
			name:     "no settings",
			input:    "HELLO WORLD\n",
			want:     dxerrors.ErrConfiguration,
			wantLine: "line 1",
		},
		{
			name:     "bad settings",
			input:    "* B Beta I II III AAAA\nHELLO\n* B Beta Gamma I II AAAA\nWORLD\n",
			want:     dxerrors.ErrConfiguration,
			wantLine: "line 3",
			wantOut:  "ILBDA\n",
		},
		{
			name:     "symbol outside alphabet",
			input:    "* B Beta I II III AAAA\nHELLO\nWORLD!\n",
			want:     dxerrors.ErrOperation,
			wantLine: "line 3",
			wantOut:  "ILBDA\n",
		},
		{
			name:     "lower case without folding",
			input:    "* B Beta I II III AAAA\nhello\n",
			opts:     []Option{WithFoldCase(false)},
			want:     dxerrors.ErrOperation,
			wantLine: "line 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.input, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Run() error = %v, want %v", err, tt.want)
			}
			if !strings.Contains(err.Error(), tt.wantLine) {
				t.Errorf("Run() error %q does not name %s", err, tt.wantLine)
			}
			if got != tt.wantOut {
				t.Errorf("Run() output = %q, want %q", got, tt.wantOut)
			}
		})
	}
}

func TestProcessor_GroupSize(t *testing.T) {
	input := "* B Beta I II III AAAA (AQ) (EP)\nHELLO WORLD\n"

	got, err := run(t, input, WithGroupSize(0))
	if err != nil {
		t.Fatal(err)
	}
	if got != "IHBDQQMTQZ\n" {
		t.Errorf("ungrouped output = %q", got)
	}

	got, err = run(t, input, WithGroupSize(3))
	if err != nil {
		t.Fatal(err)
	}
	if got != "IHB DQQ MTQ Z\n" {
		t.Errorf("grouped output = %q", got)
	}
}

func TestWithGroupSize_Negative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WithGroupSize(-1) did not panic")
		}
	}()
	WithGroupSize(-1)
}

func TestProcessor_Logging(t *testing.T) {
	var logs bytes.Buffer
	logger := logging.NewLogger("trace", &logs)

	_, err := run(t, "* B Beta I II III AAAA (AQ) (EP)\nHELLO WORLD\n", WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"settings applied", "positions=AAAA", "line converted", "stream finished", "settings=AAAK"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("logs lack %q:\n%s", want, logs.String())
		}
	}
}

func TestProcessor_Run_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(navalMachine(t))
	err := p.Run(ctx, strings.NewReader("* B Beta I II III AAAA\nHELLO\n"), &bytes.Buffer{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestFormatGroups(t *testing.T) {
	tests := []struct {
		msg  string
		size int
		want string
	}{
		{"", 5, ""},
		{"ABCDE", 5, "ABCDE"},
		{"ABCDEF", 5, "ABCDE F"},
		{"ABCDEFGHIJK", 5, "ABCDE FGHIJ K"},
		{"ABCD", 1, "A B C D"},
		{"ABCD", 0, "ABCD"},
		{"ÄÖÜß", 2, "ÄÖ Üß"},
	}
	for _, tt := range tests {
		if got := FormatGroups(tt.msg, tt.size); got != tt.want {
			t.Errorf("FormatGroups(%q, %d) = %q, want %q", tt.msg, tt.size, got, tt.want)
		}
	}
}
