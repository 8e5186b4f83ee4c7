package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/nadiaferrer/tessera/internal/cli"
	"github.com/nadiaferrer/tessera/internal/config"
	"github.com/nadiaferrer/tessera/internal/persist"
	"github.com/nadiaferrer/tessera/internal/service"
	"github.com/nadiaferrer/tessera/internal/store"
	"github.com/nadiaferrer/tessera/internal/version"
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
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := persist.OpenDB(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("opening workspace database: %w", err)
	}
	defer db.Close()

	observer := service.NewLogUseCaseObserver(os.Stderr, parseLogLevel(cfg.LogLevel))

	st := store.New()
	slots := persist.NewSlotStore(db)
	workspace := service.NewWorkspaceService(st, slots, version.Version, observer)

	ctx := context.Background()
	warnings, err := workspace.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading workspace: %w", err)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	app := &cli.App{
		Workspace: workspace,
		Reconcile: service.NewReconcileService(st),
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd())
		},
		NoColor: cfg.NoColor,
	}

	return cli.NewRootCmd(app).Execute()
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
