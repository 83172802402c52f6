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

// Range is an alphabet of consecutive code points from First to Last
// inclusive.
type Range struct {
	first rune
	last  rune
}

// NewRange returns the alphabet first..last.
//
// It returns an *errors.ConfigurationError when last precedes first or when
// the range covers a reserved or non-printable symbol.
func NewRange(first, last rune) (*Range, error) {
	if last < first {
		return nil, &dxerrors.ConfigurationError{
			Component: "Alphabet",
			Reason:    fmt.Sprintf("range %c-%c is empty", first, last),
			Value:     string([]rune{first, '-', last}),
		}
	}
	for ch := first; ch <= last; ch++ {
		if badSymbol(ch) {
			return nil, &dxerrors.ConfigurationError{
				Component: "Alphabet",
				Reason:    fmt.Sprintf("range %c-%c contains reserved symbol %q", first, last, ch),
				Value:     string([]rune{first, '-', last}),
			}
		}
	}
	return &Range{first: first, last: last}, nil
}

// Uppercase returns the 26-letter alphabet A-Z.
func Uppercase() *Range {
	return &Range{first: 'A', last: 'Z'}
}

// Size returns the number of code points in the range.
func (r *Range) Size() int {
	return int(r.last-r.first) + 1
}

// Contains reports whether ch lies within the range.
func (r *Range) Contains(ch rune) bool {
	return ch >= r.first && ch <= r.last
}

// ToChar returns the code point at index.
func (r *Range) ToChar(index int) (rune, error) {
	if index < 0 || index >= r.Size() {
		return 0, outOfRange(r, index)
	}
	return r.first + rune(index), nil
}

// ToInt returns the offset of ch from the first code point, or Invalid.
func (r *Range) ToInt(ch rune) int {
	if !r.Contains(ch) {
		return Invalid
	}
	return int(ch - r.first)
}

// String returns "F-L".
func (r *Range) String() string {
	return string([]rune{r.first, '-', r.last})
}

var _ Alphabet = (*Range)(nil)
