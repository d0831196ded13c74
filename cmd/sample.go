package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/abhisek/genero/internal/sampling"
	"github.com/abhisek/genero/internal/store"
	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Draw a stratified review sheet from the newest results file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		size := cfg.Sample.Size
		if cmd.Flags().Changed("size") {
			size, _ = cmd.Flags().GetInt("size")
		}
		if err := sampling.CheckSize(size); err != nil {
			return fmt.Errorf("--size: %w", err)
		}
		seed := cfg.Sample.Seed
		if cmd.Flags().Changed("seed") {
			seed, _ = cmd.Flags().GetUint64("seed")
		}
		outDir := cfg.ValidationDir()
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("create validation dir: %w", err)
		}

		started := time.Now()
		s := sampling.New(sampling.Options{Size: size, Seed: seed, Logger: logger(cmd)})
		rep, err := s.Run(cmd.Context(), cfg.ResultsDir(), outDir, started)
		if err != nil {
			return err
		}

		fmt.Printf("Sampled %s\n\n", rep.Input)
		fmt.Printf("%-14s  %9s  %7s\n", "Gender", "Available", "Taken")
		genders := make(map[string]int, len(rep.Groups))
		for _, g := range rep.Groups {
			fmt.Printf("%-14s  %9d  %7d\n", g.Gender, g.Available, g.Taken)
			genders[g.Gender] = g.Taken
		}
		fmt.Printf("\nReview sheet written to %s (%d rows)\n", rep.Output, rep.Rows)
		if rep.MethodOmitted {
			fmt.Println("Note: the results file has no metodo_asignacion column; it was left out of the sheet.")
		}

		recordRun(cmd, &store.Run{
			Kind:       store.KindSample,
			StartedAt:  started,
			FinishedAt: time.Now(),
			Input:      rep.Input,
			Output:     rep.Output,
			Rows:       rep.Rows,
			Genders:    genders,
		})
		return nil
	},
}

func init() {
	sampleCmd.Flags().IntP("size", "n", sampling.DefaultSize, "Rows to draw per gender")
	sampleCmd.Flags().Uint64("seed", sampling.DefaultSeed, "Random seed")
}
