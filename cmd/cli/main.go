package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/charmbracelet/log"

	"github.com/awesomegic/bankledger/app"
	"github.com/awesomegic/bankledger/pkg/cli"
	"github.com/awesomegic/bankledger/pkg/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	logger := app.SetupLogger(&cfg.Log)

	a := app.New(cfg, logger)
	runner := cli.New(a.Ledger, os.Stdin, os.Stdout)

	return runner.Run(context.Background())
}
