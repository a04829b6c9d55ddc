//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	x := mat.NewDense(4, 2, []float64{
		1, 0,
		0, 2,
		3, 3,
		0, 0,
	})

	s := CosineSimilarity(x)
	n, _ := s.Dims()
	require.Equal(t, 4, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, s.At(i, j), s.At(j, i))
			assert.GreaterOrEqual(t, s.At(i, j), 0.0)
		}
	}

	assert.Equal(t, 1.0, s.At(0, 0))
	assert.Equal(t, 1.0, s.At(2, 2))
	assert.InDelta(t, 0.0, s.At(0, 1), 1e-12)
	assert.InDelta(t, 1/math.Sqrt2, s.At(0, 2), 1e-12)

	// the zero row is similar to nothing
	assert.Equal(t, 0.0, s.At(3, 3))
	assert.Equal(t, 0.0, s.At(3, 0))
}

func TestCosineSimilarityOfTfidf(t *testing.T) {
	_, x, err := FitTransform(TfidfChar(), fivedocs)
	require.NoError(t, err)

	s := CosineSimilarity(x)
	for i := 0; i < len(fivedocs); i++ {
		assert.InDelta(t, 1.0, s.At(i, i), 1e-12)
	}
}
