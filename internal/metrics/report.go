package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/genero/internal/batch"
)

// ReportSuffix ends the name of every metrics file.
const ReportSuffix = "_ground_truth_metrics.csv"

var scoreColumns = []string{"precision", "recall", "f1-score", "support"}

// WriteCSV writes the metrics file: a preamble naming the source sheet,
// the classification report table and the confusion matrix, preceded by a
// UTF-8 BOM.
func (r *Report) WriteCSV(w io.Writer, source string, generated time.Time) error {
	bw := batch.NewBOMWriter(w)

	var b strings.Builder
	fmt.Fprintf(&b, "Metricas de Evaluacion para el archivo: %s\n", source)
	fmt.Fprintf(&b, "Fecha de generacion de metricas: %s\n", generated.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Total de registros validados: %d\n", r.Total)
	fmt.Fprintf(&b, "Accuracy General: %.4f\n\n", r.Accuracy)
	b.WriteString("Reporte de Clasificacion:\n")

	cw := csv.NewWriter(&b)
	cw.Write(append([]string{""}, scoreColumns...))
	for _, c := range r.Classes {
		cw.Write(scoreRow(c.Label, c.Score))
	}
	acc := pyFloat(r.Accuracy)
	cw.Write([]string{"accuracy", acc, acc, acc, acc})
	cw.Write(scoreRow("macro avg", r.MacroAvg))
	cw.Write(scoreRow("weighted avg", r.WeightedAvg))
	cw.Flush()

	b.WriteString("\n\nMatriz de Confusion:\n")
	head := []string{""}
	for _, l := range r.Labels {
		head = append(head, "Predicted: "+l)
	}
	cw.Write(head)
	for i, l := range r.Labels {
		row := []string{"Actual: " + l}
		for _, n := range r.Confusion[i] {
			row = append(row, strconv.Itoa(n))
		}
		cw.Write(row)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if _, err := io.WriteString(bw, b.String()); err != nil {
		return err
	}
	return bw.Close()
}

func scoreRow(label string, s Score) []string {
	return []string{
		label,
		pyFloat(s.Precision),
		pyFloat(s.Recall),
		pyFloat(s.F1),
		pyFloat(float64(s.Support)),
	}
}

// pyFloat formats v with the shortest exact representation, keeping a
// trailing ".0" on integral values so spreadsheets read every cell of a
// column as a decimal.
func pyFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Render writes the report as aligned text for a terminal.
func (r *Report) Render(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Accuracy: %.4f (%d/%d)\n\n", r.Accuracy, r.Correct, r.Total)

	width := len("weighted avg")
	for _, l := range r.Labels {
		width = max(width, len(l))
	}

	fmt.Fprintf(&b, "%*s ", width, "")
	for _, c := range scoreColumns {
		fmt.Fprintf(&b, " %9s", c)
	}
	b.WriteString("\n\n")

	row := func(label string, s Score) {
		fmt.Fprintf(&b, "%*s  %9.2f %9.2f %9.2f %9d\n", width, label, s.Precision, s.Recall, s.F1, s.Support)
	}
	for _, c := range r.Classes {
		row(c.Label, c.Score)
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%*s  %9s %9s %9.2f %9d\n", width, "accuracy", "", "", r.Accuracy, r.Total)
	row("macro avg", r.MacroAvg)
	row("weighted avg", r.WeightedAvg)

	b.WriteString("\nConfusion matrix (rows: actual, columns: predicted)\n\n")
	cell := 0
	for _, l := range r.Labels {
		cell = max(cell, len(l))
	}
	for _, counts := range r.Confusion {
		for _, n := range counts {
			cell = max(cell, len(strconv.Itoa(n)))
		}
	}
	fmt.Fprintf(&b, "%*s", width, "")
	for _, l := range r.Labels {
		fmt.Fprintf(&b, "  %*s", cell, l)
	}
	b.WriteByte('\n')
	for i, l := range r.Labels {
		fmt.Fprintf(&b, "%*s", width, l)
		for _, n := range r.Confusion[i] {
			fmt.Fprintf(&b, "  %*d", cell, n)
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}
