// Package cli implements the offline-assist CLI commands.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/rcliao/offline-assist/internal/config"
	"github.com/rcliao/offline-assist/internal/corpus"
	"github.com/rcliao/offline-assist/internal/store"
	"github.com/spf13/cobra"
)

var (
	dbPath     string
	langFlag   string
	formatFlag string

	cfg *config.Config
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "offline-assist",
	Short: "Offline chat assistant",
	Long:  "Answers questions from a local keyword-matched knowledge base, with an optional remote chat API. SQLite-backed, single binary.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
		cfg.SetupLogger(os.Stderr)
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $OFFLINE_ASSIST_DB or ~/.offline-assist/assist.db)")
	RootCmd.PersistentFlags().StringVarP(&langFlag, "lang", "l", "", "Language (default: $OFFLINE_ASSIST_LANG or english)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.DBPath
}

func getLanguage() string {
	if langFlag != "" {
		return langFlag
	}
	return cfg.Language
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

// openSeededStore opens the store and seeds the built-in corpus on first
// run. A failed seed is logged and left for the next run to retry.
func openSeededStore(ctx context.Context) (*store.SQLiteStore, error) {
	s, err := openStore()
	if err != nil {
		return nil, err
	}
	res, err := s.Seed(ctx, corpus.Entries())
	if err != nil {
		slog.Error("seeding failed, answers may be generic", "error", err)
	} else if res.Inserted > 0 {
		slog.Info("seeded built-in corpus", "entries", res.Inserted)
	}
	return s, nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
