package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rcliao/offline-assist/internal/responder"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func init() {
	cmd := &cobra.Command{
		Use:   "ask [query]",
		Short: "Answer a question from the offline knowledge base",
		Long:  "Answer a question offline. The query can be a positional arg, or one query per line on stdin with --batch.",
		Run:   runAsk,
	}

	cmd.Flags().Bool("batch", false, "Read one query per line from stdin")
	cmd.Flags().Int("workers", 4, "Concurrent queries in batch mode")

	RootCmd.AddCommand(cmd)
}

func runAsk(cmd *cobra.Command, args []string) {
	batch, _ := cmd.Flags().GetBool("batch")
	workers, _ := cmd.Flags().GetInt("workers")

	var queries []string
	if batch {
		var err error
		queries, err = readLines(os.Stdin)
		if err != nil {
			exitErr("read stdin", err)
		}
	} else {
		if len(args) == 0 {
			exitErr("ask", fmt.Errorf("query is required (positional arg or --batch)"))
		}
		queries = []string{strings.Join(args, " ")}
	}

	s, err := openSeededStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	r := responder.New(s)
	results, err := answerAll(cmd.Context(), r, queries, getLanguage(), workers)
	if err != nil {
		exitErr("ask", err)
	}

	for _, res := range results {
		if formatFlag == "text" {
			fmt.Println(res.Answer)
			continue
		}
		b, _ := json.Marshal(res)
		fmt.Println(string(b))
	}
}

// answerAll matches queries concurrently and returns results in input order.
// Store failures degrade to the generic reply, so only cancellation aborts.
func answerAll(ctx context.Context, r *responder.Responder, queries []string, language string, workers int) ([]responder.Result, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]responder.Result, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, q := range queries {
		g.Go(func() error {
			res, err := r.Match(ctx, q, language)
			if err != nil && ctx.Err() != nil {
				return ctx.Err()
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func readLines(rd io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(rd)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
