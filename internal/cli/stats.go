package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rcliao/offline-assist/internal/metrics"
	"github.com/rcliao/offline-assist/internal/model"
	"github.com/spf13/cobra"
)

func init() {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show database statistics",
		Run:   runStats,
	}

	metricsCmd := &cobra.Command{
		Use:   "metrics",
		Short: "Print query and usage counters in Prometheus text format",
		Run:   runMetrics,
	}

	languagesCmd := &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Run: func(cmd *cobra.Command, args []string) {
			b, _ := json.Marshal(model.Languages())
			fmt.Println(string(b))
		},
	}

	RootCmd.AddCommand(statsCmd, metricsCmd, languagesCmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context(), getDBPath())
	if err != nil {
		exitErr("stats", err)
	}

	b, _ := json.MarshalIndent(stats, "", "  ")
	fmt.Println(string(b))
}

func runMetrics(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := metrics.WriteText(os.Stdout, s); err != nil {
		exitErr("metrics", err)
	}
}
