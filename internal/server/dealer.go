package server

import (
	"sync"

	"github.com/anguschiu1/cardgame/internal/randutil"
	"github.com/anguschiu1/cardgame/spotit"
)

// Dealer owns the generated deck and hands cards out one at a time.
// It is safe for concurrent use.
type Dealer struct {
	mu    sync.Mutex
	deck  *spotit.Deck
	order int
	total int
	dealt int
}

// NewDealer generates the deck for the given order. A non-zero seed
// makes the optional shuffle reproducible.
func NewDealer(order int, seed int64, shuffle bool) (*Dealer, error) {
	deck, err := spotit.Generate(order, randutil.New(seed))
	if err != nil {
		return nil, err
	}
	if shuffle {
		deck.Shuffle()
	}
	return &Dealer{
		deck:  deck,
		order: order,
		total: deck.Len(),
	}, nil
}

// Deal removes and returns the next card from the top of the deck.
// It reports false once the deck is exhausted.
func (d *Dealer) Deal() (spotit.Card, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	card, ok := d.deck.PopAt(0)
	if ok {
		d.dealt++
	}
	return card, ok
}

// Order returns the plane order of the held deck.
func (d *Dealer) Order() int {
	return d.order
}

// Total returns the number of cards the deck started with.
func (d *Dealer) Total() int {
	return d.total
}

// Remaining returns the number of cards left to deal.
func (d *Dealer) Remaining() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.deck.Len()
}

// Dealt returns the number of cards handed out so far.
func (d *Dealer) Dealt() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dealt
}
