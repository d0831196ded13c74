package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/abhisek/genero/internal/metrics"
	"github.com/abhisek/genero/internal/store"
	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [sheet]",
	Short: "Score predictions against manual labels",
	Long: "Compares GENERO with GENERO_VALIDADO on the labelled rows of a review sheet, " +
		"prints the classification report and writes <timestamp>_ground_truth_metrics.csv " +
		"into the metrics directory. Without an argument the newest sheet is used.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir := cfg.MetricsDir()
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("create metrics dir: %w", err)
		}

		started := time.Now()
		ev := metrics.NewEvaluator(logger(cmd))
		var (
			out *metrics.Outcome
			err error
		)
		if len(args) == 1 {
			out, err = ev.RunFile(cmd.Context(), args[0], outDir, started)
		} else {
			out, err = ev.Run(cmd.Context(), cfg.ValidationDir(), outDir, started)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Evaluated %s\n\n", out.Input)
		if err := out.Report.Render(os.Stdout); err != nil {
			return err
		}
		fmt.Printf("\nMetrics written to %s\n", out.Output)

		acc := out.Report.Accuracy
		recordRun(cmd, &store.Run{
			Kind:       store.KindEvaluate,
			StartedAt:  started,
			FinishedAt: time.Now(),
			Input:      out.Input,
			Output:     out.Output,
			Rows:       out.Report.Total,
			Accuracy:   &acc,
			Genders:    validatedCounts(out.Report),
		})
		return nil
	},
}

// validatedCounts returns the manual label support per class.
func validatedCounts(r *metrics.Report) map[string]int {
	out := make(map[string]int, len(r.Classes))
	for _, c := range r.Classes {
		if c.Support > 0 {
			out[c.Label] = c.Support
		}
	}
	return out
}
