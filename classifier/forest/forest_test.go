package forest

import (
	"math/rand"
	"testing"

	"github.com/drakos74/cross-validation/confusion"
	"github.com/drakos74/cross-validation/runner"
	"github.com/drakos74/cross-validation/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keysFor(actual, expected int) confusion.Outcome {
	if actual == 1 {
		if expected == 1 {
			return confusion.TruePositive
		}
		return confusion.FalsePositive
	}
	if expected == 0 {
		return confusion.TrueNegative
	}
	return confusion.FalseNegative
}

// clusters creates two well separated clusters, alternating between the classes.
func clusters(n int) []sample.Sample[int, []float64] {
	r := rand.New(rand.NewSource(44111342))
	samples := make([]sample.Sample[int, []float64], n)
	for i := range samples {
		class := i % 2
		center := 0.1 + 0.8*float64(class)
		samples[i] = sample.New(class, []float64{
			center + 0.05*r.Float64(),
			center + 0.05*r.Float64(),
		})
	}
	return samples
}

func TestRandomForest_Classify(t *testing.T) {
	rf := New(20)
	for _, s := range clusters(40) {
		require.NoError(t, rf.Train(s.Label, s.Value))
	}
	assert.Equal(t, 40, rf.Samples())

	c, err := rf.Classify([]float64{0.12, 0.11})
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	c, err = rf.Classify([]float64{0.91, 0.92})
	require.NoError(t, err)
	assert.Equal(t, 1, c)
}

func TestRandomForest_NotTrained(t *testing.T) {
	_, err := New(10).Classify([]float64{1, 2})
	assert.ErrorIs(t, err, ErrNotTrained)
}

func TestRandomForest_InvalidSample(t *testing.T) {
	rf := New(10)
	assert.ErrorIs(t, rf.Train(-1, []float64{1, 2}), ErrInvalidSample)
	require.NoError(t, rf.Train(0, []float64{1, 2}))
	assert.ErrorIs(t, rf.Train(1, []float64{1}), ErrInvalidSample)
	_, err := rf.Classify([]float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidSample)
}

func TestRandomForest_CrossValidation(t *testing.T) {
	r := runner.ForSamples(clusters(100), func() *RandomForest {
		return New(20)
	}, confusion.New(keysFor))
	r.Folds = 5

	mat, err := r.Run()
	require.NoError(t, err)
	assert.Equal(t, 100, mat.Total())
	assert.Equal(t, 5, len(r.Results()))
	assert.GreaterOrEqual(t, mat.Accuracy(), 0.9)
}

func TestArgmax(t *testing.T) {
	assert.Equal(t, 0, argmax([]float64{}))
	assert.Equal(t, 0, argmax([]float64{0.5, 0.5}))
	assert.Equal(t, 2, argmax([]float64{0.1, 0.2, 0.7}))
}
