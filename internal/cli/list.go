package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rcliao/offline-assist/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List knowledge entries",
		Run:   runList,
	}

	cmd.Flags().StringP("category", "c", "", "Filter by category")
	cmd.Flags().StringP("search", "s", "", "Filter by text in question, answer or keywords")
	cmd.Flags().Bool("all-languages", false, "Ignore --lang and list every language")
	cmd.Flags().IntP("limit", "n", 50, "Max results")
	cmd.Flags().Bool("questions-only", false, "Only output language/category: question")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	category, _ := cmd.Flags().GetString("category")
	search, _ := cmd.Flags().GetString("search")
	allLanguages, _ := cmd.Flags().GetBool("all-languages")
	limit, _ := cmd.Flags().GetInt("limit")
	questionsOnly, _ := cmd.Flags().GetBool("questions-only")

	language := getLanguage()
	if allLanguages {
		language = ""
	}

	s, err := openSeededStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	entries, err := s.ListEntries(cmd.Context(), store.ListParams{
		Language: language,
		Category: category,
		Query:    search,
		Limit:    limit,
	})
	if err != nil {
		exitErr("list", err)
	}

	if questionsOnly {
		for _, e := range entries {
			fmt.Printf("%s/%s: %s\n", e.Language, e.Category, e.Question)
		}
		return
	}

	b, _ := json.MarshalIndent(entries, "", "  ")
	fmt.Println(string(b))
}
