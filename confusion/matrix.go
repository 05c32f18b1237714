// Package confusion provides a confusion matrix (contingency table) for classification results.
//
// See Speech and Language Processing, Daniel Jurafsky & James H. Martin.
package confusion

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownOutcome is returned when the keys function returns an outcome outside of tp, tn, fp and fn.
	ErrUnknownOutcome = errors.New("not found in confusion matrix")
	// ErrNoKeys is returned when storing into a matrix without a keys function.
	ErrNoKeys = errors.New("confusion matrix has no keys function")
)

// Outcome is the bucket a classification result belongs to.
type Outcome string

const (
	TruePositive  Outcome = "tp"
	TrueNegative  Outcome = "tn"
	FalsePositive Outcome = "fp"
	FalseNegative Outcome = "fn"
)

// Outcomes lists all recognised outcomes.
var Outcomes = []Outcome{TruePositive, TrueNegative, FalsePositive, FalseNegative}

// KeysFunc decides the outcome for a classified value and its known, expected value.
type KeysFunc[L any] func(actual, expected L) Outcome

// Counts holds the counters of a confusion matrix.
type Counts struct {
	TP int `json:"tp"`
	TN int `json:"tn"`
	FP int `json:"fp"`
	FN int `json:"fn"`
}

// Total returns the number of classifications.
func (c Counts) Total() int {
	return c.TP + c.TN + c.FP + c.FN
}

// Add sums up the two counts.
func (c Counts) Add(other Counts) Counts {
	return Counts{
		TP: c.TP + other.TP,
		TN: c.TN + other.TN,
		FP: c.FP + other.FP,
		FN: c.FN + other.FN,
	}
}

// Accuracy is defined as (tp + tn) / n.
// It is NaN when nothing has been stored.
func (c Counts) Accuracy() float64 {
	return float64(c.TP+c.TN) / float64(c.Total())
}

// Precision is defined as tp / (tp + fp).
func (c Counts) Precision() float64 {
	return float64(c.TP) / float64(c.TP+c.FP)
}

// Recall is defined as tp / (tp + fn).
func (c Counts) Recall() float64 {
	return float64(c.TP) / float64(c.TP+c.FN)
}

// FScore is the weighted harmonic mean of precision and recall.
// beta < 1 favors precision, beta > 1 favors recall.
func (c Counts) FScore(beta float64) float64 {
	b2 := math.Pow(beta, 2)
	p := c.Precision()
	r := c.Recall()
	return ((b2 + 1) * p * r) / (b2*p + r)
}

// F1 favors precision and recall equally.
func (c Counts) F1() float64 {
	return c.FScore(1)
}

// Error is the complement of the accuracy.
func (c Counts) Error() float64 {
	return 1.0 - c.Accuracy()
}

func (c Counts) String() string {
	return fmt.Sprintf("tp=%d tn=%d fp=%d fn=%d", c.TP, c.TN, c.FP, c.FN)
}

// Matrix accumulates classification results.
// It is not safe for concurrent use.
type Matrix[L any] struct {
	keys   KeysFunc[L]
	values map[Outcome]int
}

// New creates a new confusion matrix.
// keys must return one of tp, tn, fp or fn for a classification and its expected value.
func New[L any](keys KeysFunc[L]) *Matrix[L] {
	return &Matrix[L]{
		keys:   keys,
		values: newValues(),
	}
}

func newValues() map[Outcome]int {
	values := make(map[Outcome]int, len(Outcomes))
	for _, o := range Outcomes {
		values[o] = 0
	}
	return values
}

// Configured checks if the matrix has a keys function to store results with.
func (m *Matrix[L]) Configured() bool {
	return m != nil && m.keys != nil
}

// Fresh creates an empty matrix with the same keys function.
func (m *Matrix[L]) Fresh() *Matrix[L] {
	return New(m.keys)
}

// Store saves the result of a classification.
// actual is the classified value, expected the known true value.
func (m *Matrix[L]) Store(actual, expected L) (*Matrix[L], error) {
	if m.keys == nil {
		return m, ErrNoKeys
	}
	m.init()
	key := m.keys(actual, expected)
	if _, ok := m.values[key]; !ok {
		return m, fmt.Errorf("'%s' %w", key, ErrUnknownOutcome)
	}
	m.values[key]++
	return m, nil
}

// Merge adds the given counts to the matrix.
func (m *Matrix[L]) Merge(c Counts) *Matrix[L] {
	m.init()
	m.values[TruePositive] += c.TP
	m.values[TrueNegative] += c.TN
	m.values[FalsePositive] += c.FP
	m.values[FalseNegative] += c.FN
	return m
}

// init covers the zero value matrix.
func (m *Matrix[L]) init() {
	if m.values == nil {
		m.values = newValues()
	}
}

// Counts returns a snapshot of the counters.
func (m *Matrix[L]) Counts() Counts {
	return Counts{
		TP: m.values[TruePositive],
		TN: m.values[TrueNegative],
		FP: m.values[FalsePositive],
		FN: m.values[FalseNegative],
	}
}

func (m *Matrix[L]) TP() int { return m.values[TruePositive] }
func (m *Matrix[L]) TN() int { return m.values[TrueNegative] }
func (m *Matrix[L]) FP() int { return m.values[FalsePositive] }
func (m *Matrix[L]) FN() int { return m.values[FalseNegative] }

// Total returns the number of stored classifications.
func (m *Matrix[L]) Total() int {
	return m.Counts().Total()
}

func (m *Matrix[L]) Accuracy() float64 {
	return m.Counts().Accuracy()
}

func (m *Matrix[L]) Precision() float64 {
	return m.Counts().Precision()
}

func (m *Matrix[L]) Recall() float64 {
	return m.Counts().Recall()
}

func (m *Matrix[L]) FScore(beta float64) float64 {
	return m.Counts().FScore(beta)
}

func (m *Matrix[L]) F1() float64 {
	return m.Counts().F1()
}

func (m *Matrix[L]) Error() float64 {
	return m.Counts().Error()
}
