package spotit

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// Generation fails for exactly two reasons, both detected before any
// card is synthesized. A partially built deck is never returned.
var (
	// ErrOrderNotPrime is returned when the requested order fails the
	// primality check. The construction is defined for prime orders
	// only; prime powers (4, 8, 9, …) are not supported.
	ErrOrderNotPrime = errors.New("order is not prime")

	// ErrAlphabetTooSmall is returned when the alphabet cannot supply
	// the n²+n+1 symbols the plane needs.
	ErrAlphabetTooSmall = errors.New("alphabet too small for order")
)

// IsPrime reports whether n is prime. 0, 1 and negatives are not.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// Generate builds the Spot It! deck of the given prime order: n²+n+1
// cards of n+1 symbols each, where every pair of distinct cards shares
// exactly one symbol. Cards appear in a fixed order (slope-major,
// offset-minor, line at infinity last), so the same order always
// produces the same deck.
//
// rng seeds later Shuffle calls on the returned deck and may be nil.
//
// Order 1 is the one permitted non-prime: its 1-point plane has no
// usable slope geometry and is built by an explicit degenerate branch
// (3 cards of 2 symbols).
func Generate(order int, rng *rand.Rand) (*Deck, error) {
	if order == 1 {
		return generateTrivial(rng)
	}
	if !IsPrime(order) {
		return nil, fmt.Errorf("%w: %d", ErrOrderNotPrime, order)
	}

	p, err := newPlane(order)
	if err != nil {
		return nil, err
	}

	deck := NewDeck(rng)
	for idx, s := range slopesFor(order) {
		for offset := 0; offset < order; offset++ {
			deck.Push(lineCard(p, s, idx, offset))
		}
	}
	// The line at infinity closes the plane: it is the one card every
	// parallel class meets.
	deck.Push(NewCard(p.infinity...))
	return deck, nil
}

// lineCard synthesizes the card for one (slope, offset) pair: the n
// grid symbols on that line plus the slope's symbol at infinity.
//
// Grid coordinates are (row, col). A finite slope p/q selects
// col ≡ (p/q)·row + offset (mod n); the infinite slope selects the
// whole row at index offset.
func lineCard(p *plane, s slope, slopeIdx, offset int) Card {
	n := p.order
	card := NewCard()
	if s.infinite {
		for col := 0; col < n; col++ {
			card.Add(p.grid[offset][col])
		}
	} else {
		m := s.coefficient(n)
		for row := 0; row < n; row++ {
			card.Add(p.grid[row][(m*row+offset)%n])
		}
	}
	card.Add(p.infinity[slopeIdx])
	return card
}

// generateTrivial handles order 1. The 1×1 grid carries no slope
// classes, so the general formula does not apply: the single grid
// symbol is paired with each of the two symbols at infinity, and the
// line at infinity holds both.
func generateTrivial(rng *rand.Rand) (*Deck, error) {
	p, err := newPlane(1)
	if err != nil {
		return nil, err
	}

	center := p.grid[0][0]
	deck := NewDeck(rng)
	deck.Push(NewCard(center, p.infinity[0]))
	deck.Push(NewCard(center, p.infinity[1]))
	deck.Push(NewCard(p.infinity[0], p.infinity[1]))
	return deck, nil
}
