// Package runner performs k-fold cross-validation and returns a confusion matrix.
//
// The algorithm is as follows (Mitchell, 1997, p147):
//
//	partitions = partition data into k-equal sized subsets (folds)
//	for i = 1 -> k:
//	  T = data \ partitions[i]
//	  train(T)
//	  classify(partitions[i])
//	output confusion matrix
package runner

import (
	"fmt"
	"math"
	"time"

	"github.com/drakos74/cross-validation/confusion"
	"github.com/drakos74/cross-validation/partition"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultFolds is the number of folds used when neither Folds nor Percentage is set.
const DefaultFolds = 10

// Observer gets notified for every completed fold.
type Observer interface {
	Observe(result FoldResult)
}

// FoldResult summarises one completed fold.
type FoldResult struct {
	RunID    string           `json:"run"`
	Index    int              `json:"index"`
	Train    int              `json:"train"`
	Test     int              `json:"test"`
	Counts   confusion.Counts `json:"counts"`
	Duration time.Duration    `json:"duration"`
}

// Runner holds the configuration of a cross-validation run.
// D is the document type, C the classifier, V the value fed into the classifier and L the class label.
type Runner[D, C, V, L any] struct {
	// Documents to train and test on.
	Documents []D
	// Folds is the number of folds to partition Documents into.
	// Mutually exclusive with Percentage.
	Folds int
	// Percentage is the fraction of Documents used for testing in each fold (e.g. 0.1 for 10%).
	// It takes precedence over Folds.
	Percentage float64
	// Classifier instantiates a new classifier, once per fold.
	Classifier func() C
	// Training receives a fresh classifier and a training document.
	Training func(classifier C, document D) error
	// Classifying receives a trained classifier and the value of a test document.
	Classifying func(classifier C, value V) (L, error)
	// FetchSampleClass returns the known class of a document.
	FetchSampleClass func(document D) L
	// FetchSampleValue returns the value of a document, i.e. whatever is fed into Classifying.
	FetchSampleValue func(document D) V
	// Matrix collects the classification results of all folds.
	Matrix *confusion.Matrix[L]

	Logger   *zerolog.Logger
	Observer Observer

	results []FoldResult
}

// Create configures a new runner with the given setup func.
func Create[D, C, V, L any](setup func(r *Runner[D, C, V, L])) *Runner[D, C, V, L] {
	r := &Runner[D, C, V, L]{}
	setup(r)
	return r
}

// WithLogger sets the logger for the run.
func (r *Runner[D, C, V, L]) WithLogger(logger zerolog.Logger) *Runner[D, C, V, L] {
	r.Logger = &logger
	return r
}

// WithObserver sets the fold observer for the run.
func (r *Runner[D, C, V, L]) WithObserver(observer Observer) *Runner[D, C, V, L] {
	r.Observer = observer
	return r
}

// Apply sets the fold options on the runner.
func (r *Runner[D, C, V, L]) Apply(opts Options) *Runner[D, C, V, L] {
	r.Folds = opts.Folds
	r.Percentage = opts.Percentage
	return r
}

// Validate returns the names of all required fields that are not set.
func (r *Runner[D, C, V, L]) Validate() []string {
	missing := make([]string, 0)
	if r.Documents == nil {
		missing = append(missing, "documents")
	}
	if r.Classifier == nil {
		missing = append(missing, "classifier")
	}
	if !r.Matrix.Configured() {
		missing = append(missing, "matrix")
	}
	if r.Training == nil {
		missing = append(missing, "training")
	}
	if r.Classifying == nil {
		missing = append(missing, "classifying")
	}
	if r.FetchSampleClass == nil {
		missing = append(missing, "fetch_sample_class")
	}
	if r.FetchSampleValue == nil {
		missing = append(missing, "fetch_sample_value")
	}
	return missing
}

// Valid checks if all required fields are set.
func (r *Runner[D, C, V, L]) Valid() bool {
	return len(r.Validate()) == 0
}

// SubsetSize returns the number of documents in each fold.
// Run rejects a Percentage outside of [0, 1] before using it.
func (r *Runner[D, C, V, L]) SubsetSize() int {
	n := len(r.Documents)
	if r.Percentage != 0 {
		return int(math.Floor(float64(n) * r.Percentage))
	}
	folds := r.Folds
	if folds == 0 {
		folds = DefaultFolds
	}
	return n / folds
}

// Results returns the fold results of the last run.
func (r *Runner[D, C, V, L]) Results() []FoldResult {
	results := make([]FoldResult, len(r.results))
	copy(results, r.results)
	return results
}

// Run performs the cross-validation and returns the populated matrix.
// If a fold fails the run is aborted, the matrix keeps the results of the completed folds only.
func (r *Runner[D, C, V, L]) Run() (*confusion.Matrix[L], error) {
	if missing := r.Validate(); len(missing) > 0 {
		return nil, &ConfigError{Missing: missing}
	}

	if p := r.Percentage; math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPercentage, p)
	}

	runID := uuid.New().String()
	logger := r.log().With().Str("run", runID).Logger()

	size := r.SubsetSize()
	partitions, err := partition.Subset(r.Documents, size)
	if err != nil {
		return nil, fmt.Errorf("could not partition %d documents: %w", len(r.Documents), err)
	}

	logger.Debug().
		Int("documents", len(r.Documents)).
		Int("folds", len(partitions)).
		Int("size", size).
		Msg("start cross validation")

	r.results = make([]FoldResult, 0, len(partitions))
	for i := range partitions {
		start := time.Now()
		counts, train, err := r.fold(partitions, i)
		if err != nil {
			return nil, fmt.Errorf("fold %d of %d: %w", i, len(partitions), err)
		}
		r.Matrix.Merge(counts)

		result := FoldResult{
			RunID:    runID,
			Index:    i,
			Train:    train,
			Test:     len(partitions[i]),
			Counts:   counts,
			Duration: time.Since(start),
		}
		r.results = append(r.results, result)
		if r.Observer != nil {
			r.Observer.Observe(result)
		}

		logger.Debug().
			Int("fold", i).
			Int("train", result.Train).
			Int("test", result.Test).
			Str("counts", counts.String()).
			Dur("duration", result.Duration).
			Msg("fold complete")
	}

	logger.Info().
		Int("folds", len(partitions)).
		Str("counts", r.Matrix.Counts().String()).
		Float64("accuracy", r.Matrix.Accuracy()).
		Msg("cross validation complete")

	return r.Matrix, nil
}

// fold trains a fresh classifier on all partitions but i and classifies partition i.
func (r *Runner[D, C, V, L]) fold(partitions [][]D, i int) (confusion.Counts, int, error) {
	training, err := partition.ExcludeChunk(partitions, i)
	if err != nil {
		return confusion.Counts{}, 0, err
	}

	classifier := r.Classifier()
	for _, doc := range training {
		if err := r.Training(classifier, doc); err != nil {
			return confusion.Counts{}, 0, fmt.Errorf("could not train classifier: %w", err)
		}
	}

	matrix := r.Matrix.Fresh()
	for _, doc := range partitions[i] {
		prediction, err := r.Classifying(classifier, r.FetchSampleValue(doc))
		if err != nil {
			return confusion.Counts{}, 0, fmt.Errorf("could not classify document: %w", err)
		}
		if _, err := matrix.Store(prediction, r.FetchSampleClass(doc)); err != nil {
			return confusion.Counts{}, 0, err
		}
	}
	return matrix.Counts(), len(training), nil
}

func (r *Runner[D, C, V, L]) log() *zerolog.Logger {
	if r.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return r.Logger
}
