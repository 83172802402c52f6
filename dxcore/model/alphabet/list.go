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

package alphabet

import (
	"fmt"

	dxerrors "dirpx.dev/dxenigma/dxcore/errors"
)

// List is an alphabet given as an explicit sequence of symbols. The index
// of a symbol is its position in the sequence.
type List struct {
	symbols []rune
	index   map[rune]int
}

// NewList returns the alphabet made of the symbols of s in order.
//
// It returns an *errors.ConfigurationError when s is empty, repeats a
// symbol, or contains a reserved or non-printable symbol.
func NewList(s string) (*List, error) {
	symbols := []rune(s)
	if len(symbols) == 0 {
		return nil, &dxerrors.ConfigurationError{Component: "Alphabet", Reason: "no symbols"}
	}

	index := make(map[rune]int, len(symbols))
	for i, ch := range symbols {
		if badSymbol(ch) {
			return nil, &dxerrors.ConfigurationError{
				Component: "Alphabet",
				Reason:    fmt.Sprintf("reserved symbol %q", ch),
				Value:     s,
			}
		}
		if _, dup := index[ch]; dup {
			return nil, &dxerrors.ConfigurationError{
				Component: "Alphabet",
				Reason:    fmt.Sprintf("symbol %q repeated", ch),
				Value:     s,
			}
		}
		index[ch] = i
	}

	return &List{symbols: symbols, index: index}, nil
}

// Size returns the number of symbols.
func (l *List) Size() int {
	return len(l.symbols)
}

// Contains reports whether ch is one of the symbols.
func (l *List) Contains(ch rune) bool {
	_, ok := l.index[ch]
	return ok
}

// ToChar returns the symbol at index.
func (l *List) ToChar(index int) (rune, error) {
	if index < 0 || index >= len(l.symbols) {
		return 0, outOfRange(l, index)
	}
	return l.symbols[index], nil
}

// ToInt returns the position of ch, or Invalid.
func (l *List) ToInt(ch rune) int {
	if i, ok := l.index[ch]; ok {
		return i
	}
	return Invalid
}

// String returns the symbols in order.
func (l *List) String() string {
	return string(l.symbols)
}

var _ Alphabet = (*List)(nil)
