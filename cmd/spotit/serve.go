package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coder/quartz"

	"github.com/anguschiu1/cardgame/internal/server"
)

// ServeCmd runs the WebSocket deck dealer.
type ServeCmd struct {
	Config string `short:"c" default:"spotit.hcl" help:"Path to HCL config file"`
	Debug  bool   `help:"Enable debug logging"`
}

func (c *ServeCmd) Run() error {
	logger := newLogger(c.Debug)

	cfg, err := server.LoadConfig(c.Config)
	if err != nil {
		return err
	}

	dealer, err := server.NewDealer(cfg.Game.Order, cfg.Game.Seed, cfg.Game.Shuffle)
	if err != nil {
		return err
	}

	interval := time.Duration(cfg.Game.DealInterval) * time.Second
	srv := server.NewServer(cfg.Addr(), dealer, interval, logger, quartz.NewReal())

	// Graceful shutdown on interrupt
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		logger.Info("Shutting down")
		_ = srv.Stop()
	}()

	return srv.Start()
}
