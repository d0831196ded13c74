package cmd

import (
	"errors"
	"fmt"

	"github.com/abhisek/genero/internal/batch"
	"github.com/abhisek/genero/internal/review"
	"github.com/abhisek/genero/internal/sampling"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var reviewCmd = &cobra.Command{
	Use:   "review [sheet]",
	Short: "Label a review sheet interactively",
	Long: "Opens a review sheet in the terminal and records manual labels in GENERO_VALIDADO. " +
		"Without an argument the newest sheet in the validation directory is used.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		} else {
			p, err := batch.LatestFile(cfg.ValidationDir(), sampling.SheetSuffix)
			if errors.Is(err, batch.ErrNoCandidates) {
				return fmt.Errorf("%w\n\nRun `genero sample` first", err)
			}
			if err != nil {
				return err
			}
			path = p
		}

		sheet, err := sampling.ReadSheetFile(path)
		if err != nil {
			return err
		}
		logger(cmd).Debug("review sheet opened", zap.String("path", path), zap.Int("rows", len(sheet.Entries)))

		final, err := review.Run(review.New(sheet, path))
		if err != nil {
			return fmt.Errorf("review: %w", err)
		}

		s := final.Sheet()
		fmt.Printf("%d/%d rows labelled in %s\n", s.Validated(), len(s.Entries), path)
		if final.Dirty() {
			fmt.Println("Unsaved changes were discarded.")
		}
		return nil
	},
}
