package spotit

import (
	rand "math/rand/v2"
)

// Deck is an ordered sequence of cards. Order matters for dealing and
// shuffling; deck validity (the one-shared-symbol property of generated
// decks) does not depend on it. Push, Pop and PopAt mutate membership
// and are the caller's responsibility: the generator only guarantees
// the invariant for the deck it returned.
//
// A Deck is not safe for concurrent mutation.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates an empty deck. rng drives Shuffle and may be nil, in
// which case the global random source is used.
func NewDeck(rng *rand.Rand) *Deck {
	return &Deck{rng: rng}
}

// UnitDeck creates a deck with one single-symbol card per alphabet
// symbol. It is the trivial deck the physical game ships for learning
// the symbols, not a valid Spot It! deck: two distinct cards share no
// symbol at all.
func UnitDeck(rng *rand.Rand) *Deck {
	d := NewDeck(rng)
	for i := 0; i < AlphabetSize; i++ {
		d.Push(NewCard(SymbolAt(i)))
	}
	return d
}

// Push appends a card to the deck.
func (d *Deck) Push(c Card) {
	d.cards = append(d.cards, c)
}

// Pop removes and returns the last card. It reports false on an empty
// deck.
func (d *Deck) Pop() (Card, bool) {
	if len(d.cards) == 0 {
		return nil, false
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, true
}

// PopAt removes and returns the card at index i, shifting subsequent
// cards down. It reports false when i is out of bounds.
func (d *Deck) PopAt(i int) (Card, bool) {
	if i < 0 || i >= len(d.cards) {
		return nil, false
	}
	c := d.cards[i]
	d.cards = append(d.cards[:i], d.cards[i+1:]...)
	return c, true
}

// Shuffle randomizes the card order using Fisher-Yates.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// IsEmpty reports whether the deck has no cards.
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Card returns the card at index i without removing it. It reports
// false when i is out of bounds.
func (d *Deck) Card(i int) (Card, bool) {
	if i < 0 || i >= len(d.cards) {
		return nil, false
	}
	return d.cards[i], true
}

// Cards returns the deck's cards in order. The slice is shared with
// the deck; callers must not reorder it.
func (d *Deck) Cards() []Card {
	return d.cards
}
