package report

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/drakos74/cross-validation/confusion"
	"github.com/drakos74/cross-validation/runner"
	"github.com/stretchr/testify/assert"
)

func results() []runner.FoldResult {
	return []runner.FoldResult{
		{Index: 0, Train: 8, Test: 4, Counts: confusion.Counts{TP: 2, TN: 2}},
		{Index: 1, Train: 8, Test: 4, Counts: confusion.Counts{TP: 1, TN: 1, FP: 1, FN: 1}},
		{Index: 2, Train: 8, Test: 4, Counts: confusion.Counts{TP: 2, TN: 1, FN: 1}},
	}
}

func TestNew(t *testing.T) {
	r := New(results())
	assert.Equal(t, []float64{1.0, 0.5, 0.75}, r.Accuracy)
	assert.InDelta(t, 0.75, r.Mean, 1e-9)
	// sample standard deviation
	assert.InDelta(t, 0.25, r.StdDev, 1e-9)
	assert.Equal(t, confusion.Counts{TP: 5, TN: 4, FP: 1, FN: 2}, r.Total)
}

func TestNew_Empty(t *testing.T) {
	r := New(nil)
	assert.Empty(t, r.Accuracy)
	assert.Equal(t, 0.0, r.Mean)
	assert.False(t, math.IsNaN(r.StdDev))
}

func TestReport_Render(t *testing.T) {
	buf := new(bytes.Buffer)
	New(results()).Render(buf)
	out := buf.String()
	fmt.Printf("out = \n%s\n", out)

	assert.Contains(t, out, "accuracy")
	assert.Contains(t, out, "0.7500")
	assert.Contains(t, out, "total")
	assert.Contains(t, out, "0.2500")
}
