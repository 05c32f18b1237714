// Package forest adapts a random forest to the runner classifier interface.
package forest

import (
	"errors"
	"fmt"

	randomforest "github.com/malaschitz/randomForest"
)

var (
	// ErrNotTrained is returned when classifying before any training sample was added.
	ErrNotTrained = errors.New("forest: no training samples")
	// ErrInvalidSample is returned for samples with a negative class or a different feature count.
	ErrInvalidSample = errors.New("forest: invalid sample")
)

// DefaultTrees is the number of trees used when none is configured.
const DefaultTrees = 100

// RandomForest collects training samples and fits the forest lazily on the first classification.
type RandomForest struct {
	trees  int
	xData  [][]float64
	yData  []int
	forest *randomforest.Forest
}

// New creates a new random forest with n trees.
func New(n int) *RandomForest {
	if n <= 0 {
		n = DefaultTrees
	}
	return &RandomForest{
		trees: n,
		xData: make([][]float64, 0),
		yData: make([]int, 0),
	}
}

// Train adds a training sample to the forest.
func (rf *RandomForest) Train(class int, features []float64) error {
	if class < 0 {
		return fmt.Errorf("negative class %d: %w", class, ErrInvalidSample)
	}
	if len(rf.xData) > 0 && len(features) != len(rf.xData[0]) {
		return fmt.Errorf("expected %d features but got %d: %w", len(rf.xData[0]), len(features), ErrInvalidSample)
	}
	x := make([]float64, len(features))
	copy(x, features)
	rf.xData = append(rf.xData, x)
	rf.yData = append(rf.yData, class)
	// new data invalidates the fitted forest
	rf.forest = nil
	return nil
}

// Classify returns the class with the most votes for the given features.
func (rf *RandomForest) Classify(features []float64) (int, error) {
	if len(rf.xData) == 0 {
		return 0, ErrNotTrained
	}
	if len(features) != len(rf.xData[0]) {
		return 0, fmt.Errorf("expected %d features but got %d: %w", len(rf.xData[0]), len(features), ErrInvalidSample)
	}
	if rf.forest == nil {
		forest := &randomforest.Forest{}
		forest.Data = randomforest.ForestData{X: rf.xData, Class: rf.yData}
		forest.Train(rf.trees)
		rf.forest = forest
	}
	return argmax(rf.forest.Vote(features)), nil
}

// Samples returns the number of training samples.
func (rf *RandomForest) Samples() int {
	return len(rf.xData)
}

func argmax(votes []float64) int {
	best := 0
	for i, v := range votes {
		if v > votes[best] {
			best = i
		}
	}
	return best
}
