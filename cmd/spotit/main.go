package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`

	Generate GenerateCmd `cmd:"" help:"Generate a deck and print it"`
	Verify   VerifyCmd   `cmd:"" help:"Generate a deck and audit the one-shared-symbol invariant"`
	Deal     DealCmd     `cmd:"" help:"Deal cards from a shuffled deck"`
	Play     PlayCmd     `cmd:"" help:"Play the match game in the terminal"`
	Serve    ServeCmd    `cmd:"" help:"Run the WebSocket deck dealer"`
	French   FrenchCmd   `cmd:"" help:"Print a shuffled ordinary 52-card deck"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("spotit"),
		kong.Description("Spot It! deck generator built on projective planes of prime order"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// newLogger configures console logging for the commands.
func newLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
}
