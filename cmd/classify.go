package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/abhisek/genero/internal/classifier"
	"github.com/spf13/cobra"
)

type classification struct {
	Name       string   `json:"name"`
	Gender     string   `json:"gender"`
	Method     string   `json:"method"`
	Normalized string   `json:"normalized,omitempty"`
	Tokens     []string `json:"tokens,omitempty"`
	Stage      string   `json:"stage,omitempty"`
}

var classifyCmd = &cobra.Command{
	Use:   "classify <name>...",
	Short: "Classify one or more names",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		trace, _ := cmd.Flags().GetBool("trace")

		clf, err := newClassifier(cmd)
		if err != nil {
			return err
		}

		out := classifyAll(clf, args, trace)
		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}
		var stages []string
		if trace {
			stages = clf.Stages()
		}
		return writeClassifications(os.Stdout, out, stages)
	},
}

func classifyAll(clf *classifier.Classifier, args []string, trace bool) []classification {
	out := make([]classification, 0, len(args))
	for _, name := range args {
		t := clf.Trace(name)
		c := classification{
			Name:   name,
			Gender: string(t.Result.Gender),
			Method: string(t.Result.Method),
		}
		if trace {
			c.Normalized = t.Record.Normalized
			c.Tokens = t.Tokens
			c.Stage = t.Stage
		}
		out = append(out, c)
	}
	return out
}

// writeClassifications prints one line per name. A non-empty stages list
// adds the cascade header and the trace details of every name.
func writeClassifications(w io.Writer, out []classification, stages []string) error {
	trace := len(stages) > 0
	if trace {
		if _, err := fmt.Fprintf(w, "cascade: %s\n\n", strings.Join(stages, " > ")); err != nil {
			return err
		}
	}
	for _, c := range out {
		if _, err := fmt.Fprintf(w, "%-28s  %-11s  %s\n", c.Name, c.Gender, c.Method); err != nil {
			return err
		}
		if !trace {
			continue
		}
		fmt.Fprintf(w, "  normalized: %q\n", c.Normalized)
		fmt.Fprintf(w, "  tokens:     [%s]\n", strings.Join(c.Tokens, " "))
		if _, err := fmt.Fprintf(w, "  stage:      %s (%d of %d)\n", c.Stage, slices.Index(stages, c.Stage)+1, len(stages)); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	classifyCmd.Flags().Bool("json", false, "Print results as JSON")
	classifyCmd.Flags().BoolP("trace", "t", false, "Show the cascade, normalized form, tokens and deciding stage")
}
