package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/idlewage/internal/cli"
	"github.com/alexanderramin/idlewage/internal/config"
	"github.com/alexanderramin/idlewage/internal/db"
	"github.com/alexanderramin/idlewage/internal/repository"
	"github.com/alexanderramin/idlewage/internal/session"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Logs go to stderr so they never mix with command output.
	zerolog.SetGlobalLevel(cfg.LogLevel())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	log.Debug().Str("path", cfg.DBPath).Msg("Database ready")

	store := repository.NewSQLiteKVStore(database)
	state, err := session.Load(context.Background(), store)
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}

	app := &cli.App{
		State:    state,
		Currency: cfg.Currency,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
