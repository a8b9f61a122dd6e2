package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/app"
	"github.com/abhisek/quizdeck/internal/catalog"
	"github.com/abhisek/quizdeck/internal/session"
	"github.com/abhisek/quizdeck/internal/store"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// runApp opens the store, loads the catalog, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so diagnostics go to a file.
	logger := stderrLogger()
	if cfg.LogPath != "" {
		if err := store.EnsureDir(cfg.LogPath); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = log.New(f, "", log.LstdFlags)
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	prefs := st.Prefs()
	stored := applyStoredTheme(ctx, prefs, logger)

	cat := catalog.NewLoader(cfg.CatalogSource, cfg.CatalogTimeout, logger).Load(ctx)
	history := st.HistoryLog(logger)

	return app.Run(app.Options{
		Catalog: cat,
		Machine: session.NewMachine(history, logger),
		History: history,
		Prefs:   prefs,
		Logger:  logger,

		FollowTerminalTheme: !stored,
	})
}

// applyStoredTheme activates the saved theme and reports whether one was
// applied. Missing or unknown values leave the choice to the terminal.
func applyStoredTheme(ctx context.Context, prefs store.PrefsRepo, logger *log.Logger) bool {
	stored, err := prefs.Theme(ctx)
	if err != nil {
		logger.Printf("warning: read theme preference: %v", err)
		return false
	}
	if stored == "" {
		return false
	}
	mode, err := theme.ParseMode(stored)
	if err != nil {
		logger.Printf("warning: %v; following terminal background", err)
		return false
	}
	theme.Apply(mode)
	return true
}
