package french

import (
	rand "math/rand/v2"
)

// Deck represents a deck of playing cards
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates an empty deck with an explicit RNG for shuffling.
// rng may be nil, in which case the global random source is used.
func NewDeck(rng *rand.Rand) *Deck {
	return &Deck{rng: rng}
}

// StandardDeck creates the full 52-card deck in suit-major order.
func StandardDeck(rng *rand.Rand) *Deck {
	deck := NewDeck(rng)
	deck.cards = make([]Card, 0, 52)
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			deck.cards = append(deck.cards, NewCard(rank, suit))
		}
	}
	return deck
}

// Push appends a card to the deck.
func (d *Deck) Push(c Card) {
	d.cards = append(d.cards, c)
}

// Pop removes and returns the last card. It reports false on an empty
// deck.
func (d *Deck) Pop() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, true
}

// Shuffle randomizes the order of cards in the deck using Fisher-Yates.
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

// IsEmpty reports whether the deck has no cards left.
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns the deck's cards in order. The slice is shared with
// the deck; callers must not reorder it.
func (d *Deck) Cards() []Card {
	return d.cards
}
