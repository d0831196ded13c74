package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/abhisek/genero/internal/batch"
	"github.com/abhisek/genero/internal/lexicon"
	"github.com/abhisek/genero/internal/names"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Export and validate rule tables",
}

var rulesDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Write the built-in rule tables as JSON",
	Long: "Writes the built-in dictionaries, compound overrides and suffix rules as a rules " +
		"file. Edit the copy and pass it back with --rules.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			return lexicon.Encode(os.Stdout, lexicon.DefaultFile())
		}
		if err := batch.WriteFile(out, func(w io.Writer) error {
			return lexicon.Encode(w, lexicon.DefaultFile())
		}); err != nil {
			return fmt.Errorf("write rules: %w", err)
		}
		fmt.Printf("Rules written to %s\n", out)
		return nil
	},
}

var rulesCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a rules file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := lexicon.LoadFile(args[0])
		if err != nil {
			return err
		}
		masc, fem := t.Dictionary.Len()
		fmt.Printf("%s is valid (version %s)\n", args[0], t.Version)
		fmt.Printf("  dictionary:  %d %s, %d %s\n", masc, names.Masculine, fem, names.Feminine)
		fmt.Printf("  compounds:   %d\n", len(t.Compounds))
		fmt.Printf("  rules:       %d\n", len(t.Rules))
		return nil
	},
}

func init() {
	rulesDumpCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")

	rulesCmd.AddCommand(rulesDumpCmd)
	rulesCmd.AddCommand(rulesCheckCmd)
}
