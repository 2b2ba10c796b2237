package main

import (
	"fmt"
	"os"

	"github.com/avillega/pulse/internal/api"
	"github.com/avillega/pulse/internal/cli"
	"github.com/avillega/pulse/internal/config"
	"github.com/avillega/pulse/internal/prefs"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := prefs.OpenDB(cfg.Prefs.DBPath)
	if err != nil {
		return fmt.Errorf("opening preferences db: %w", err)
	}
	defer database.Close()

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout.Std())

	app := &cli.App{
		Tasks:    api.NewTaskStore(client),
		Contacts: api.NewContactStore(client),
		Goals:    api.NewGoalStore(client),
		Skills:   api.NewSkillStore(client),
		Stats:    api.NewStatsClient(client),
		Uploads:  client,
		Prefs:    prefs.NewStore(database),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
