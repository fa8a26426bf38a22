package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rcliao/offline-assist/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent queries",
		Long:  "Show the query log, newest first. Every language is shown unless --lang is given. Use --unmatched to find questions the corpus does not cover.",
		Run:   runLog,
	}

	cmd.Flags().Bool("unmatched", false, "Only queries that got the generic reply")
	cmd.Flags().Bool("all-languages", false, "Ignore --lang")
	cmd.Flags().IntP("limit", "n", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runLog(cmd *cobra.Command, args []string) {
	unmatched, _ := cmd.Flags().GetBool("unmatched")
	allLanguages, _ := cmd.Flags().GetBool("all-languages")
	limit, _ := cmd.Flags().GetInt("limit")

	language := logLanguage(langFlag, allLanguages)

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	records, err := s.RecentQueries(cmd.Context(), store.QueryLogParams{
		Language:      language,
		UnmatchedOnly: unmatched,
		Limit:         limit,
	})
	if err != nil {
		exitErr("log", err)
	}

	if len(records) == 0 {
		fmt.Println("[]")
		return
	}

	b, _ := json.MarshalIndent(records, "", "  ")
	fmt.Println(string(b))
}

// logLanguage filters the log only by an explicit --lang. The configured
// default language does not narrow it.
func logLanguage(explicit string, allLanguages bool) string {
	if allLanguages {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(explicit))
}
