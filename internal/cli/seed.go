package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rcliao/offline-assist/internal/corpus"
	"github.com/spf13/cobra"
)

func init() {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the built-in corpus (no-op once seeded)",
		Run:   runSeed,
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all entries and query logs and clear the seeded flag",
		Run:   runReset,
	}
	resetCmd.Flags().Bool("reseed", false, "Seed the built-in corpus again after reset")

	RootCmd.AddCommand(seedCmd, resetCmd)
}

func runSeed(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	res, err := s.Seed(cmd.Context(), corpus.Entries())
	if err != nil {
		exitErr("seed", err)
	}

	b, _ := json.Marshal(res)
	fmt.Println(string(b))
}

func runReset(cmd *cobra.Command, args []string) {
	reseed, _ := cmd.Flags().GetBool("reseed")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.Reset(cmd.Context()); err != nil {
		exitErr("reset", err)
	}

	inserted := 0
	if reseed {
		res, err := s.Seed(cmd.Context(), corpus.Entries())
		if err != nil {
			exitErr("seed", err)
		}
		inserted = res.Inserted
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"reseeded":%d}`+"\n", inserted)
}
