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

// Package permutation implements bijections over the index space of an
// alphabet, written in cycle notation.
//
// A cycle "(c0 c1 ... cm)" sends c0 to c1, c1 to c2, and so on, with cm
// wrapping back to c0. Symbols that appear in no cycle are fixed points.
// Whitespace anywhere in the text is insignificant, so "(AB) (CD)",
// "(AB)(CD)" and "( A B ) (C D)" describe the same permutation.
//
// The cycle text is parsed once; lookups in either direction are table
// reads. A Permutation is immutable after construction and safe for
// concurrent use.
package permutation

import (
	"fmt"
	"strings"
	"unicode"

	dxerrors "dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model/alphabet"
)

// Permutation is a bijection over [0, Alphabet().Size()).
type Permutation struct {
	alpha   alphabet.Alphabet
	cycles  [][]int
	forward []int
	inverse []int
}

// New parses cycles against alpha.
//
// It returns an *errors.ConfigurationError when the text has an unbalanced
// or nested parenthesis, a symbol outside any group, a symbol that is not in
// alpha, or a symbol listed more than once.
func New(cycles string, alpha alphabet.Alphabet) (*Permutation, error) {
	n := alpha.Size()
	p := &Permutation{
		alpha:   alpha,
		forward: make([]int, n),
		inverse: make([]int, n),
	}
	for i := 0; i < n; i++ {
		p.forward[i] = i
		p.inverse[i] = i
	}

	groups, err := parse(cycles, alpha)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		for i, from := range g {
			to := g[(i+1)%len(g)]
			p.forward[from] = to
			p.inverse[to] = from
		}
		p.cycles = append(p.cycles, g)
	}

	return p, nil
}

// MustNew is like New but panics on error. It is intended for package-level
// tables of well-known wirings and for tests.
func MustNew(cycles string, alpha alphabet.Alphabet) *Permutation {
	p, err := New(cycles, alpha)
	if err != nil {
		panic(err)
	}
	return p
}

// Identity returns the permutation that maps every index of alpha to itself.
func Identity(alpha alphabet.Alphabet) *Permutation {
	return MustNew("", alpha)
}

func parse(text string, alpha alphabet.Alphabet) ([][]int, error) {
	var (
		groups [][]int
		cur    []int
		open   bool
		seen   = make(map[int]bool)
	)

	fail := func(reason string) error {
		return &dxerrors.ConfigurationError{Component: "Permutation", Reason: reason, Value: text}
	}

	for _, ch := range text {
		switch {
		case unicode.IsSpace(ch):
		case ch == '(':
			if open {
				return nil, fail("nested '('")
			}
			open = true
			cur = nil
		case ch == ')':
			if !open {
				return nil, fail("unbalanced ')'")
			}
			open = false
			groups = append(groups, cur)
		case !open:
			return nil, fail(fmt.Sprintf("symbol %q outside a cycle", ch))
		default:
			idx := alpha.ToInt(ch)
			if idx == alphabet.Invalid {
				return nil, fail(fmt.Sprintf("symbol %q not in alphabet %s", ch, alpha))
			}
			if seen[idx] {
				return nil, fail(fmt.Sprintf("symbol %q repeated", ch))
			}
			seen[idx] = true
			cur = append(cur, idx)
		}
	}
	if open {
		return nil, fail("unbalanced '('")
	}

	return groups, nil
}

// Alphabet returns the alphabet the permutation acts on.
func (p *Permutation) Alphabet() alphabet.Alphabet {
	return p.alpha
}

// Size returns the size of the alphabet.
func (p *Permutation) Size() int {
	return len(p.forward)
}

// Wrap reduces i modulo Size() into [0, Size()), never returning a negative
// value.
func (p *Permutation) Wrap(i int) int {
	r := i % p.Size()
	if r < 0 {
		r += p.Size()
	}
	return r
}

// Permute returns the image of index i, taken modulo Size().
func (p *Permutation) Permute(i int) int {
	return p.forward[p.Wrap(i)]
}

// Invert returns the preimage of index c, taken modulo Size().
func (p *Permutation) Invert(c int) int {
	return p.inverse[p.Wrap(c)]
}

// PermuteSymbol returns the image of symbol ch. It returns an
// *errors.OperationError if ch is not in the alphabet.
func (p *Permutation) PermuteSymbol(ch rune) (rune, error) {
	return p.mapSymbol(ch, p.forward, "permute")
}

// InvertSymbol returns the preimage of symbol ch. It returns an
// *errors.OperationError if ch is not in the alphabet.
func (p *Permutation) InvertSymbol(ch rune) (rune, error) {
	return p.mapSymbol(ch, p.inverse, "invert")
}

func (p *Permutation) mapSymbol(ch rune, table []int, op string) (rune, error) {
	i := p.alpha.ToInt(ch)
	if i == alphabet.Invalid {
		return 0, &dxerrors.OperationError{
			Component: "Permutation",
			Op:        op,
			Reason:    fmt.Sprintf("symbol %q not in alphabet %s", ch, p.alpha),
		}
	}
	return p.alpha.ToChar(table[i])
}

// Derangement reports whether no index is a fixed point.
func (p *Permutation) Derangement() bool {
	for i, v := range p.forward {
		if i == v {
			return false
		}
	}
	return true
}

// Involution reports whether the permutation is its own inverse, that is,
// every cycle has length one or two. A plugboard must be an involution for
// the signal to leave through the same pair of sockets it entered.
func (p *Permutation) Involution() bool {
	for i, v := range p.forward {
		if p.forward[v] != i {
			return false
		}
	}
	return true
}

// String returns the permutation in cycle notation, one group per
// non-trivial or explicitly listed cycle, separated by spaces.
func (p *Permutation) String() string {
	var b strings.Builder
	for i, g := range p.cycles {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('(')
		for _, idx := range g {
			ch, _ := p.alpha.ToChar(idx)
			b.WriteRune(ch)
		}
		b.WriteByte(')')
	}
	return b.String()
}
