package confusion

import (
	"github.com/sjwhitworth/golearn/evaluation"
)

// Golearn converts the counts of a binary classification into a golearn confusion matrix.
// golearn indexes the matrix by reference class first and predicted class second.
func (c Counts) Golearn(positive, negative string) evaluation.ConfusionMatrix {
	return evaluation.ConfusionMatrix{
		positive: {
			positive: c.TP,
			negative: c.FN,
		},
		negative: {
			positive: c.FP,
			negative: c.TN,
		},
	}
}

// Summary returns the golearn per class report for the counts.
func (c Counts) Summary(positive, negative string) string {
	return evaluation.GetSummary(c.Golearn(positive, negative))
}
