// Package report summarises the folds of a cross-validation run.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/drakos74/cross-validation/confusion"
	"github.com/drakos74/cross-validation/runner"
	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/stat"
)

// Report holds the per fold accuracy and its spread across folds.
type Report struct {
	Folds    []runner.FoldResult `json:"folds"`
	Accuracy []float64           `json:"accuracy"`
	Mean     float64             `json:"mean"`
	StdDev   float64             `json:"std_dev"`
	Total    confusion.Counts    `json:"total"`
}

// New creates a report for the given fold results.
func New(results []runner.FoldResult) Report {
	accuracy := make([]float64, len(results))
	total := confusion.Counts{}
	for i, result := range results {
		accuracy[i] = result.Counts.Accuracy()
		total = total.Add(result.Counts)
	}
	var mean, std float64
	if len(accuracy) > 0 {
		mean, std = stat.MeanStdDev(accuracy, nil)
	}
	return Report{
		Folds:    results,
		Accuracy: accuracy,
		Mean:     mean,
		StdDev:   std,
		Total:    total,
	}
}

// Render writes the report as a table to the given writer.
func (r Report) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"fold", "train", "test", "tp", "tn", "fp", "fn", "accuracy"})
	for i, fold := range r.Folds {
		table.Append([]string{
			strconv.Itoa(fold.Index),
			strconv.Itoa(fold.Train),
			strconv.Itoa(fold.Test),
			strconv.Itoa(fold.Counts.TP),
			strconv.Itoa(fold.Counts.TN),
			strconv.Itoa(fold.Counts.FP),
			strconv.Itoa(fold.Counts.FN),
			format(r.Accuracy[i]),
		})
	}
	table.SetFooter([]string{
		"total", "", "",
		strconv.Itoa(r.Total.TP),
		strconv.Itoa(r.Total.TN),
		strconv.Itoa(r.Total.FP),
		strconv.Itoa(r.Total.FN),
		fmt.Sprintf("%s ± %s", format(r.Mean), format(r.StdDev)),
	})
	table.Render()
}

func format(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}
