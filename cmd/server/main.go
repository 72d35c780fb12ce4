package main

import (
	"fmt"

	log "github.com/charmbracelet/log"

	"github.com/awesomegic/bankledger/app"
	"github.com/awesomegic/bankledger/pkg/config"
	"github.com/awesomegic/bankledger/webapi"
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
	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)

	return fiberApp.Listen(addr)
}
