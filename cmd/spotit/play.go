package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anguschiu1/cardgame/internal/randutil"
	"github.com/anguschiu1/cardgame/internal/tui"
	"github.com/anguschiu1/cardgame/spotit"
)

// PlayCmd runs the interactive match game.
type PlayCmd struct {
	Order int   `short:"n" default:"3" help:"Prime plane order"`
	Seed  int64 `help:"Shuffle seed"`
}

func (c *PlayCmd) Run() error {
	deck, err := spotit.Generate(c.Order, randutil.New(c.Seed))
	if err != nil {
		return err
	}
	deck.Shuffle()

	model := tui.NewModel(deck)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if m, ok := final.(tui.Model); ok {
		score, rounds := m.Score()
		fmt.Printf("Final score: %d/%d\n", score, rounds)
	}
	return nil
}
