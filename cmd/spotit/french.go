package main

import (
	"fmt"

	"github.com/anguschiu1/cardgame/internal/display"
	"github.com/anguschiu1/cardgame/internal/french"
	"github.com/anguschiu1/cardgame/internal/randutil"
)

// FrenchCmd prints a shuffled ordinary deck, the demo counterpart to
// the generated Spot It! decks.
type FrenchCmd struct {
	Seed   int64 `help:"Shuffle seed"`
	PerRow int   `default:"13" help:"Cards per output row"`
}

func (c *FrenchCmd) Run() error {
	deck := french.StandardDeck(randutil.New(c.Seed))
	deck.Shuffle()

	fmt.Println(display.FrenchDeck(deck, c.PerRow))
	fmt.Printf("%d cards\n", deck.Len())
	return nil
}
