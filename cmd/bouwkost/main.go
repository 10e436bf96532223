package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/woutmeijer/bouwkost/internal/cli"
	"github.com/woutmeijer/bouwkost/internal/db"
	"github.com/woutmeijer/bouwkost/internal/repository"
	"github.com/woutmeijer/bouwkost/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.bouwkost/bouwkost.db
	dbPath := os.Getenv("BOUWKOST_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".bouwkost", "bouwkost.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	entryRepo := repository.NewSQLitePriceBookRepo(database)
	recentRepo := repository.NewSQLiteRecentFileRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Schedules: service.NewScheduleService(recentRepo),
		PriceBook: service.NewPriceBookService(entryRepo, uow),
		Recents:   service.NewRecentFileService(recentRepo),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
