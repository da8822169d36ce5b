// Command rivalgo is the UCI entry point, grounded on
// _examples/treepeck-chego's "small main wiring one package's exported
// API together" idiom (see internal/perft/perft.go's main and
// cli/cli.go's usage from it) generalized to this module's own
// engopt/enginelog/uci packages.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/corvidchess/rivalgo/engopt"
	"github.com/corvidchess/rivalgo/enginelog"
	"github.com/corvidchess/rivalgo/uci"
	"github.com/corvidchess/rivalgo/zobrist"
)

func main() {
	configPath := flag.String("config", "", "path to an optional TOML configuration file")
	flag.Parse()

	cfg, err := engopt.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rivalgo:", err)
		os.Exit(1)
	}

	log, err := enginelog.New("rivalgo", cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rivalgo:", err)
		os.Exit(1)
	}

	zobrist.Init()

	log.Infof("rivalgo starting: hash=%dMB use_see=%v", cfg.HashSizeMB, cfg.UseSEE)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := uci.New(cfg, log)
	if err := engine.Run(ctx, os.Stdin, os.Stdout); err != nil {
		log.Errorf("engine loop exited with error: %v", err)
		os.Exit(1)
	}

	log.Info("rivalgo shutting down")
}
