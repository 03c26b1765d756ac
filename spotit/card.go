package spotit

import (
	"sort"
	"strings"
)

// Card is an unordered set of symbols. Adding a symbol that is already
// present is a no-op. A well-formed generated card carries exactly n+1
// distinct symbols for a deck of order n, but Card itself places no
// bound on membership.
type Card map[Symbol]struct{}

// NewCard creates a card holding the given symbols.
func NewCard(symbols ...Symbol) Card {
	c := make(Card, len(symbols))
	for _, s := range symbols {
		c.Add(s)
	}
	return c
}

// Add inserts a symbol into the card.
func (c Card) Add(s Symbol) {
	c[s] = struct{}{}
}

// Has reports whether the card carries the symbol.
func (c Card) Has(s Symbol) bool {
	_, ok := c[s]
	return ok
}

// Size returns the number of distinct symbols on the card.
func (c Card) Size() int {
	return len(c)
}

// Symbols returns the card's symbols in alphabet order.
func (c Card) Symbols() []Symbol {
	out := make([]Symbol, 0, len(c))
	for s := range c {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Equal reports set equality, independent of insertion order.
func (c Card) Equal(other Card) bool {
	if len(c) != len(other) {
		return false
	}
	for s := range c {
		if !other.Has(s) {
			return false
		}
	}
	return true
}

// MatchExactlyOneSymbol reports whether the two cards share exactly one
// symbol. This is the defining rule of the game: in a generated deck it
// holds for every pair of distinct cards. Two empty cards share zero
// symbols, so the result is false.
func (c Card) MatchExactlyOneSymbol(other Card) bool {
	shared := 0
	// Iterate the smaller set.
	a, b := c, other
	if len(b) < len(a) {
		a, b = b, a
	}
	for s := range a {
		if b.Has(s) {
			shared++
			if shared > 1 {
				return false
			}
		}
	}
	return shared == 1
}

// SharedSymbols returns the symbols common to both cards, in alphabet
// order.
func (c Card) SharedSymbols(other Card) []Symbol {
	var out []Symbol
	for _, s := range c.Symbols() {
		if other.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

// String renders the card as a space-separated symbol list.
func (c Card) String() string {
	names := make([]string, 0, len(c))
	for _, s := range c.Symbols() {
		names = append(names, s.String())
	}
	return "[" + strings.Join(names, " ") + "]"
}
