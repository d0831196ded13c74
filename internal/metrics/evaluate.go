// Package metrics scores predicted genders against manually validated
// labels: accuracy, per-label precision, recall and F1, their macro and
// support-weighted averages, and the confusion matrix.
package metrics

import (
	"errors"
	"sort"
)

// ErrNoValidatedRows is returned when no row carries a manual label.
var ErrNoValidatedRows = errors.New("no validated rows")

// Pair is one validated row.
type Pair struct {
	Actual    string
	Predicted string
}

// Score holds the classification scores of one label or average.
type Score struct {
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// ClassScore is the Score of a single label.
type ClassScore struct {
	Label string
	Score
}

// Report is the outcome of Evaluate.
type Report struct {
	// Labels is the sorted union of actual and predicted labels. It indexes
	// both axes of Confusion.
	Labels      []string
	Total       int
	Correct     int
	Accuracy    float64
	Classes     []ClassScore
	MacroAvg    Score
	WeightedAvg Score
	// Confusion[i][j] counts rows labelled Labels[i] and predicted Labels[j].
	Confusion [][]int
}

// Evaluate scores pairs. Ratios with a zero denominator are 0.
func Evaluate(pairs []Pair) (*Report, error) {
	if len(pairs) == 0 {
		return nil, ErrNoValidatedRows
	}

	set := make(map[string]struct{})
	for _, p := range pairs {
		set[p.Actual] = struct{}{}
		set[p.Predicted] = struct{}{}
	}
	labels := make([]string, 0, len(set))
	for l := range set {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}
	conf := make([][]int, len(labels))
	for i := range conf {
		conf[i] = make([]int, len(labels))
	}
	correct := 0
	for _, p := range pairs {
		conf[index[p.Actual]][index[p.Predicted]]++
		if p.Actual == p.Predicted {
			correct++
		}
	}

	r := &Report{
		Labels:    labels,
		Total:     len(pairs),
		Correct:   correct,
		Accuracy:  ratio(correct, len(pairs)),
		Confusion: conf,
	}

	for i, l := range labels {
		tp := conf[i][i]
		actual, predicted := 0, 0
		for j := range labels {
			actual += conf[i][j]
			predicted += conf[j][i]
		}
		s := Score{
			Precision: ratio(tp, predicted),
			Recall:    ratio(tp, actual),
			F1:        ratio(2*tp, actual+predicted),
			Support:   actual,
		}
		r.Classes = append(r.Classes, ClassScore{Label: l, Score: s})

		r.MacroAvg.Precision += s.Precision
		r.MacroAvg.Recall += s.Recall
		r.MacroAvg.F1 += s.F1
		w := float64(s.Support)
		r.WeightedAvg.Precision += s.Precision * w
		r.WeightedAvg.Recall += s.Recall * w
		r.WeightedAvg.F1 += s.F1 * w
	}

	n := float64(len(labels))
	r.MacroAvg.Precision /= n
	r.MacroAvg.Recall /= n
	r.MacroAvg.F1 /= n
	r.MacroAvg.Support = r.Total

	t := float64(r.Total)
	r.WeightedAvg.Precision /= t
	r.WeightedAvg.Recall /= t
	r.WeightedAvg.F1 /= t
	r.WeightedAvg.Support = r.Total

	return r, nil
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
