package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/config"
	"github.com/abhisek/quizdeck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizdeck",
	Short: "Multiple-choice quizzes in the terminal",
	Long:  "Quizdeck: pick a subject, answer ten questions, and keep a history of your scores.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZDECK_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Catalog URL or file (overrides QUIZDECK_CATALOG env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies the persistent flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var o config.Overrides
	o.DBPath, _ = cmd.Flags().GetString("db")
	o.CatalogSource, _ = cmd.Flags().GetString("catalog")
	return config.Load(o)
}

// openStore opens the database named by cfg.
func openStore(cfg config.Config) (*store.Store, error) {
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// stderrLogger is the diagnostic logger for non-interactive commands.
func stderrLogger() *log.Logger {
	return log.New(os.Stderr, "", 0)
}
