package runner

import (
	"github.com/drakos74/cross-validation/confusion"
	"github.com/drakos74/cross-validation/sample"
)

// Options defines the fold configuration of a run.
type Options struct {
	Folds      int     `json:"folds" yaml:"folds"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// Classifier is anything that can be trained on labeled values and classify new values.
type Classifier[L, V any] interface {
	Train(label L, value V) error
	Classify(value V) (L, error)
}

// ForSamples creates a runner for sample documents and a classifier factory.
// The fold configuration is left to the caller.
func ForSamples[L, V any, C Classifier[L, V]](documents []sample.Sample[L, V], factory func() C, matrix *confusion.Matrix[L]) *Runner[sample.Sample[L, V], C, V, L] {
	return &Runner[sample.Sample[L, V], C, V, L]{
		Documents:  documents,
		Classifier: factory,
		Training: func(classifier C, document sample.Sample[L, V]) error {
			return classifier.Train(document.Label, document.Value)
		},
		Classifying: func(classifier C, value V) (L, error) {
			return classifier.Classify(value)
		},
		FetchSampleClass: sample.Class[L, V],
		FetchSampleValue: sample.Datum[L, V],
		Matrix:           matrix,
	}
}
