package partition

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var docs = []string{"foo", "bar", "baz", "qux"}

func TestSubset(t *testing.T) {
	subsets, err := Subset(docs, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"foo", "bar"}, {"baz", "qux"}}, subsets)
}

func TestSubset_PreventsUnequalSubsets(t *testing.T) {
	_, err := Subset(docs, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnequalSubsets)
	assert.Equal(t, "partition: can't create equal subsets when k=3", err.Error())
}

func TestSubset_Properties(t *testing.T) {

	data := make([]int, 60)
	for i := range data {
		data[i] = i
	}

	type test struct {
		k      int
		chunks int
		err    bool
	}

	tests := map[string]test{
		"one-per-item": {k: 1, chunks: 60},
		"whole":        {k: 60, chunks: 1},
		"ten":          {k: 10, chunks: 6},
		"twelve":       {k: 12, chunks: 5},
		"uneven":       {k: 7, err: true},
		"zero":         {k: 0, err: true},
		"negative":     {k: -2, err: true},
		"too-big":      {k: 120, err: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			subsets, err := Subset(data, tt.k)
			if tt.err {
				assert.ErrorIs(t, err, ErrUnequalSubsets)
				assert.Nil(t, subsets)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.chunks, len(subsets))
			for _, s := range subsets {
				assert.Equal(t, tt.k, len(s))
			}
			assert.Equal(t, data, Flatten(subsets))
		})
	}
}

func TestSubset_DoesNotAlias(t *testing.T) {
	items := []int{1, 2, 3, 4}
	subsets, err := Subset(items, 2)
	require.NoError(t, err)
	subsets[0][0] = 100
	assert.Equal(t, 1, items[0])
}

func TestExcludeIndex(t *testing.T) {
	samples, err := ExcludeIndex(docs, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"baz", "qux", "foo"}, samples)
	// the original stays untouched
	assert.Equal(t, []string{"foo", "bar", "baz", "qux"}, docs)
}

func TestExcludeIndex_OutOfRange(t *testing.T) {
	for _, i := range []int{-1, 4, 10} {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			_, err := ExcludeIndex(docs, i)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
		})
	}
}

func TestExcludeChunk(t *testing.T) {

	data := make([]int, 20)
	for i := range data {
		data[i] = i
	}
	subsets, err := Subset(data, 5)
	require.NoError(t, err)

	for i := range subsets {
		t.Run(fmt.Sprintf("fold-%d", i), func(t *testing.T) {
			training, err := ExcludeChunk(subsets, i)
			require.NoError(t, err)
			assert.Equal(t, len(data)-len(subsets[i]), len(training))

			seen := make(map[int]int)
			for _, v := range training {
				seen[v]++
			}
			for _, v := range subsets[i] {
				assert.Zero(t, seen[v])
			}
			for _, v := range data {
				if v/5 != i {
					assert.Equal(t, 1, seen[v])
				}
			}
			// training starts right after the excluded chunk
			assert.Equal(t, ((i+1)%len(subsets))*5, training[0])
		})
	}
}

func TestRotate(t *testing.T) {

	type test struct {
		i   int
		out []string
	}

	tests := map[string]test{
		"zero":     {i: 0, out: []string{"foo", "bar", "baz", "qux"}},
		"one":      {i: 1, out: []string{"bar", "baz", "qux", "foo"}},
		"last":     {i: 3, out: []string{"qux", "foo", "bar", "baz"}},
		"wrap":     {i: 5, out: []string{"bar", "baz", "qux", "foo"}},
		"negative": {i: -1, out: []string{"qux", "foo", "bar", "baz"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.out, Rotate(docs, tt.i))
		})
	}

	assert.Empty(t, Rotate([]string{}, 3))
}
