package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/genero/internal/store"
	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect the history of infer, sample and evaluate runs",
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		kind, _ := cmd.Flags().GetString("kind")
		switch store.Kind(kind) {
		case "", store.KindInfer, store.KindSample, store.KindEvaluate:
		default:
			return fmt.Errorf("unknown kind %q (want infer, sample or evaluate)", kind)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		runs, err := s.RunRepo().List(cmd.Context(), store.QueryOpts{Limit: limit, Kind: store.Kind(kind)})
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded yet.")
			return nil
		}

		fmt.Printf("%-8s  %-19s  %-8s  %7s  %8s  %-8s  %s\n",
			"ID", "Started", "Kind", "Rows", "Accuracy", "Took", "Output")
		fmt.Println(strings.Repeat("─", 100))
		for _, r := range runs {
			fmt.Printf("%-8s  %-19s  %-8s  %7d  %8s  %-8s  %s\n",
				shortID(r.ID),
				r.StartedAt.Local().Format("2006-01-02 15:04:05"),
				r.Kind,
				r.Rows,
				formatAccuracy(r.Accuracy),
				r.Duration().Round(time.Millisecond),
				r.Output,
			)
		}
		return nil
	},
}

var runsViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show a run with its per-gender and per-method counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		r, err := s.RunRepo().Get(cmd.Context(), args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("run %s not found", args[0])
		}
		if err != nil {
			return fmt.Errorf("get run: %w", err)
		}

		fmt.Printf("ID:        %s\n", r.ID)
		fmt.Printf("Sequence:  %d\n", r.Sequence)
		fmt.Printf("Kind:      %s\n", r.Kind)
		fmt.Printf("Started:   %s\n", r.StartedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Took:      %s\n", r.Duration().Round(time.Millisecond))
		fmt.Printf("Input:     %s\n", r.Input)
		fmt.Printf("Output:    %s\n", r.Output)
		fmt.Printf("Rows:      %d\n", r.Rows)
		if r.RulesVersion != "" {
			fmt.Printf("Rules:     %s\n", r.RulesVersion)
		}
		if r.Accuracy != nil {
			fmt.Printf("Accuracy:  %s\n", formatAccuracy(r.Accuracy))
		}

		printCounts("Gender", r.Genders)
		printCounts("Method", r.Methods)
		return nil
	},
}

var runsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the most recent runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		keep, _ := cmd.Flags().GetInt("keep")
		if keep < 0 {
			return fmt.Errorf("--keep must not be negative, got %d", keep)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.RunRepo().Prune(cmd.Context(), keep)
		if err != nil {
			return fmt.Errorf("prune runs: %w", err)
		}
		fmt.Printf("Deleted %d run(s).\n", n)
		return nil
	},
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func formatAccuracy(acc *float64) string {
	if acc == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", *acc*100)
}

func printCounts(title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	labels := make([]string, 0, len(counts))
	total := 0
	for l, n := range counts {
		labels = append(labels, l)
		total += n
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})

	fmt.Println()
	fmt.Printf("%-34s  %8s\n", title, "Rows")
	fmt.Println(strings.Repeat("─", 44))
	for _, l := range labels {
		fmt.Printf("%-34s  %8d\n", l, counts[l])
	}
}

func init() {
	runsListCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")
	runsListCmd.Flags().StringP("kind", "k", "", "Filter by kind (infer, sample, evaluate)")
	runsPruneCmd.Flags().Int("keep", 50, "Number of recent runs to keep")

	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsViewCmd)
	runsCmd.AddCommand(runsPruneCmd)
}
