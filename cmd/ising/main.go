package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ising-ca/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, closeLog, err := app.NewLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fail := func(msg string, err error) {
		logger.Error(msg, "err", err)
		if cfg.LogFile == "" && (cfg.UI == app.UITerminal || cfg.UI == app.UIPlain) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
		}
		stop()
		closeLog()
		os.Exit(1)
	}

	session, err := app.NewSession(cfg, logger)
	if err != nil {
		fail("setup failed", err)
	}
	if err := session.Run(ctx); err != nil {
		fail("run failed", err)
	}
}
