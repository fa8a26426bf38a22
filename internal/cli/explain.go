package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rcliao/offline-assist/internal/responder"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "explain [query]",
		Short: "Show how every entry scores against a query",
		Long:  "Score entries of one language against the query, highest first. Nothing is logged.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runExplain,
	}

	cmd.Flags().IntP("limit", "n", 10, "Max candidates (0 for all)")

	RootCmd.AddCommand(cmd)
}

func runExplain(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	s, err := openSeededStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	candidates, err := responder.New(s).Rank(cmd.Context(), query, getLanguage(), limit)
	if err != nil {
		exitErr("explain", err)
	}

	if formatFlag == "text" {
		for _, c := range candidates {
			mark := " "
			if c.Accepted {
				mark = "*"
			}
			fmt.Printf("%s %.3f  %s/%s  %v\n", mark, c.Score, c.Entry.Language, c.Entry.Category, c.Entry.Keywords)
		}
		return
	}

	b, _ := json.MarshalIndent(candidates, "", "  ")
	fmt.Println(string(b))
}
