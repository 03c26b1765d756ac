package main

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/anguschiu1/cardgame/internal/display"
	"github.com/anguschiu1/cardgame/internal/randutil"
	"github.com/anguschiu1/cardgame/spotit"
)

// GenerateCmd prints a freshly generated deck.
type GenerateCmd struct {
	Order   int   `short:"n" default:"7" help:"Prime plane order (deck has n²+n+1 cards)"`
	Seed    int64 `help:"Seed for the optional shuffle"`
	Shuffle bool  `help:"Shuffle the deck before printing"`
	PerRow  int   `default:"4" help:"Cards per output row"`
	JSON    bool  `help:"Emit the deck as JSON instead of styled cards"`
}

func (c *GenerateCmd) Run() error {
	deck, err := spotit.Generate(c.Order, randutil.New(c.Seed))
	if err != nil {
		return err
	}
	if c.Shuffle {
		deck.Shuffle()
	}

	if c.JSON {
		out := make([][]string, 0, deck.Len())
		for _, card := range deck.Cards() {
			names := make([]string, 0, card.Size())
			for _, s := range card.Symbols() {
				names = append(names, s.String())
			}
			out = append(out, names)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	// Plain one-card-per-line output when piped somewhere colorless.
	if !display.HasColor() {
		for i, card := range deck.Cards() {
			fmt.Printf("#%d %s\n", i, card)
		}
		return nil
	}

	fmt.Println(display.Deck(deck, c.PerRow))
	fmt.Printf("%d cards, %d symbols each\n", deck.Len(), c.Order+1)
	return nil
}

// VerifyCmd audits a generated deck against its defining invariants.
type VerifyCmd struct {
	Order int  `short:"n" default:"7" help:"Prime plane order to audit"`
	Debug bool `help:"Enable debug logging"`
}

func (c *VerifyCmd) Run() error {
	logger := newLogger(c.Debug)

	deck, err := spotit.Generate(c.Order, nil)
	if err != nil {
		return err
	}

	wantCards := c.Order*c.Order + c.Order + 1
	if deck.Len() != wantCards {
		return fmt.Errorf("deck has %d cards, want %d", deck.Len(), wantCards)
	}
	cards := deck.Cards()
	for i, card := range cards {
		if card.Size() != c.Order+1 {
			return fmt.Errorf("card %d has %d symbols, want %d", i, card.Size(), c.Order+1)
		}
	}

	// All-pairs audit, one goroutine per card row.
	var g errgroup.Group
	for i := range cards {
		g.Go(func() error {
			for j := i + 1; j < len(cards); j++ {
				if !cards[i].MatchExactlyOneSymbol(cards[j]) {
					return fmt.Errorf("cards %d and %d share %d symbols",
						i, j, len(cards[i].SharedSymbols(cards[j])))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("Deck verified",
		"order", c.Order,
		"cards", deck.Len(),
		"symbolsPerCard", c.Order+1,
		"pairs", wantCards*(wantCards-1)/2)
	return nil
}

// DealCmd shuffles a deck and deals cards off the top.
type DealCmd struct {
	Order int   `short:"n" default:"7" help:"Prime plane order"`
	Seed  int64 `help:"Shuffle seed (0 derives a deterministic default)"`
	Count int   `short:"c" default:"2" help:"Number of cards to deal"`
}

func (c *DealCmd) Run() error {
	deck, err := spotit.Generate(c.Order, randutil.New(c.Seed))
	if err != nil {
		return err
	}
	deck.Shuffle()

	var dealt []spotit.Card
	for i := 0; i < c.Count; i++ {
		card, ok := deck.Pop()
		if !ok {
			break
		}
		fmt.Println(display.Card(i, card))
		dealt = append(dealt, card)
	}

	// With two cards on the table, point out the match.
	if len(dealt) == 2 {
		shared := dealt[0].SharedSymbols(dealt[1])
		if len(shared) == 1 {
			fmt.Printf("Shared symbol: %s\n", shared[0])
		}
	}
	return nil
}
