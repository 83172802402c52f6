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

// Package alphabet maps the symbols a machine operates on to the contiguous
// index range [0, Size()).
//
// Every other dxenigma component works on indices; an Alphabet is the only
// place where symbols and indices meet. Two interchangeable implementations
// are provided:
//
//   - Range: a contiguous run of code points, such as A-Z. Lookups are
//     arithmetic.
//   - List: an explicit sequence of symbols, such as "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123".
//     Lookups use a precomputed index.
//
// Both satisfy the same contract and are indistinguishable to callers.
//
// Whitespace, '(', ')' and '*' are reserved by the configuration and cycle
// notation syntax and can never be members of an alphabet.
package alphabet

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	dxerrors "dirpx.dev/dxenigma/dxcore/errors"
)

// Invalid is returned by ToInt for symbols that are not members.
const Invalid = -1

// Alphabet is a bijection between a set of symbols and [0, Size()).
//
// Implementations MUST be immutable and therefore safe for concurrent use.
type Alphabet interface {
	// Size returns the number of symbols.
	Size() int

	// Contains reports whether ch is a member.
	Contains(ch rune) bool

	// ToChar returns the symbol at index. It returns an *errors.OperationError
	// when index is outside [0, Size()).
	ToChar(index int) (rune, error)

	// ToInt returns the index of ch, or Invalid if ch is not a member.
	ToInt(ch rune) int

	// String returns the configuration form of the alphabet: "F-L" for a
	// range, the symbols themselves for a list.
	String() string
}

// Parse interprets the first line of a machine description.
//
// A three-symbol spec of the form "X-Y" denotes the range from X to Y
// inclusive. Anything else is an explicit list of symbols. Surrounding
// whitespace is ignored.
func Parse(spec string) (Alphabet, error) {
	spec = strings.TrimSpace(spec)
	runes := []rune(spec)
	if len(runes) == 3 && runes[1] == '-' {
		return NewRange(runes[0], runes[2])
	}
	return NewList(spec)
}

// Equal reports whether a and b contain the same symbols at the same
// indices. A Range and a List with identical symbols are equal.
func Equal(a, b Alphabet) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Size() != b.Size() {
		return false
	}
	for i := 0; i < a.Size(); i++ {
		ca, _ := a.ToChar(i)
		cb, _ := b.ToChar(i)
		if ca != cb {
			return false
		}
	}
	return true
}

// Reserved reports whether ch is reserved by the configuration syntax and
// therefore cannot be an alphabet symbol.
func Reserved(ch rune) bool {
	return unicode.IsSpace(ch) || ch == '(' || ch == ')' || ch == '*'
}

func outOfRange(a Alphabet, index int) error {
	return &dxerrors.OperationError{
		Component: "Alphabet " + a.String(),
		Op:        "map index",
		Reason:    fmt.Sprintf("index %d out of range [0, %d)", index, a.Size()),
	}
}

func badSymbol(ch rune) bool {
	return Reserved(ch) || ch == utf8.RuneError || !unicode.IsPrint(ch)
}
