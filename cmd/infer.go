package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/abhisek/genero/internal/batch"
	"github.com/abhisek/genero/internal/store"
	"github.com/spf13/cobra"
)

var inferCmd = &cobra.Command{
	Use:   "infer",
	Short: "Classify every name of an input CSV",
	Long: "Reads the nombre column of the input CSV, classifies every row and writes " +
		"<timestamp>_resultados_completos.csv into the results directory.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := cfg.InputPath()
		if v, _ := cmd.Flags().GetString("input"); v != "" {
			input = v
		}
		outDir := cfg.ResultsDir()
		if v, _ := cmd.Flags().GetString("out"); v != "" {
			outDir = v
		}
		workers := cfg.Infer.Workers
		if cmd.Flags().Changed("workers") {
			workers, _ = cmd.Flags().GetInt("workers")
		}
		chunk := cfg.Infer.ChunkSize
		if cmd.Flags().Changed("chunk-size") {
			chunk, _ = cmd.Flags().GetInt("chunk-size")
		}

		if workers < 0 {
			return fmt.Errorf("--workers must not be negative, got %d", workers)
		}
		if chunk < 1 {
			return fmt.Errorf("--chunk-size must be at least 1, got %d", chunk)
		}

		clf, err := newClassifier(cmd)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("create results dir: %w", err)
		}

		runner := batch.NewRunner(clf, batch.Options{
			Workers:   workers,
			ChunkSize: chunk,
			Logger:    logger(cmd),
		})
		rep, err := runner.Run(cmd.Context(), input, outDir, time.Now())
		if err != nil {
			return err
		}

		fmt.Printf("Results written to %s\n\n", rep.Output)
		if err := rep.Summary.Write(os.Stdout); err != nil {
			return err
		}

		recordRun(cmd, &store.Run{
			Kind:         store.KindInfer,
			StartedAt:    rep.Started,
			FinishedAt:   rep.Finished,
			Input:        rep.Input,
			Output:       rep.Output,
			Rows:         rep.Summary.Total,
			RulesVersion: clf.Tables().Version,
			Genders:      genderCounts(rep.Summary),
			Methods:      methodCounts(rep.Summary),
		})
		return nil
	},
}

func genderCounts(s batch.Summary) map[string]int {
	out := make(map[string]int, len(s.Genders))
	for g, n := range s.Genders {
		out[string(g)] = n
	}
	return out
}

func methodCounts(s batch.Summary) map[string]int {
	out := make(map[string]int, len(s.Methods))
	for m, n := range s.Methods {
		out[string(m)] = n
	}
	return out
}

func init() {
	inferCmd.Flags().StringP("input", "i", "", "Input CSV with a nombre column (default from config)")
	inferCmd.Flags().StringP("out", "o", "", "Results directory (default from config)")
	inferCmd.Flags().IntP("workers", "w", 0, "Parallel workers (0 = number of CPUs)")
	inferCmd.Flags().Int("chunk-size", batch.DefaultChunkSize, "Names per work unit")
}
