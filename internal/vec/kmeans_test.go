//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"github.com/e-gun/FeatureLab/internal/str"
	"github.com/e-gun/FeatureLab/internal/vv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"testing"
)

func clusterconfig() str.ClusterConfig {
	return str.ClusterConfig{
		Source:  vv.CLUSTERSOURCE,
		K:       2,
		NInit:   vv.CLUSTERNINIT,
		MaxIter: vv.CLUSTERMAXITER,
		Tol:     vv.CLUSTERTOL,
		Seed:    str.FixedSeed(vv.CLUSTERSEED),
	}
}

func twoblobs() *mat.Dense {
	return mat.NewDense(6, 2, []float64{
		0, 0,
		0.1, 0,
		0, 0.1,
		10, 10,
		10.1, 10,
		10, 10.1,
	})
}

func TestKMeansSeparatesBlobs(t *testing.T) {
	c, err := NewKMeans(clusterconfig(), 2).Fit(twoblobs())
	require.NoError(t, err)

	require.Len(t, c.Labels, 6)
	assert.Equal(t, c.Labels[0], c.Labels[1])
	assert.Equal(t, c.Labels[0], c.Labels[2])
	assert.Equal(t, c.Labels[3], c.Labels[4])
	assert.Equal(t, c.Labels[3], c.Labels[5])
	assert.NotEqual(t, c.Labels[0], c.Labels[3])

	assert.ElementsMatch(t, []int{3, 3}, c.Sizes())
	assert.InDelta(t, 4*0.01*2/3.0, c.Inertia, 1e-9)
	assert.GreaterOrEqual(t, c.Iterations, 1)
}

func TestKMeansIsDeterministic(t *testing.T) {
	_, x, err := FitTransform(TfidfChar(), fivedocs)
	require.NoError(t, err)

	a, err := NewKMeans(clusterconfig(), 2).Fit(x)
	require.NoError(t, err)
	b, err := NewKMeans(clusterconfig(), 2).Fit(x)
	require.NoError(t, err)
	assert.Equal(t, a.Labels, b.Labels)
	assert.Equal(t, a.Inertia, b.Inertia)
}

func TestKMeansOnSimilarity(t *testing.T) {
	_, x, err := FitTransform(TfidfChar(), fivedocs)
	require.NoError(t, err)

	c, err := NewKMeans(clusterconfig(), 2).Fit(CosineSimilarity(x))
	require.NoError(t, err)
	assert.Len(t, c.Labels, len(fivedocs))
}

func TestKMeansTooManyClusters(t *testing.T) {
	_, err := NewKMeans(clusterconfig(), 7).Fit(twoblobs())
	assert.ErrorIs(t, err, str.ErrInsufficientData)

	_, err = NewKMeans(clusterconfig(), 0).Fit(twoblobs())
	assert.Error(t, err)
}

func TestRelocateGivesEachEmptyClusterItsOwnPoint(t *testing.T) {
	rows := [][]float64{{0}, {1}, {10}, {11}}
	centroids := [][]float64{{0.5}, {100}, {200}}
	labels := []int{-1, -1, -1, -1}
	assign(rows, centroids, labels)
	require.Equal(t, []int{0, 0, 0, 0}, labels)

	next := [][]float64{{22}, {0}, {0}}
	counts := []int{4, 0, 0}

	assert.True(t, relocate(rows, centroids, labels, next, counts))
	assert.Equal(t, []int{0, 0, 2, 1}, labels)
	assert.Equal(t, []int{2, 1, 1}, counts)
	assert.Equal(t, [][]float64{{1}, {11}, {10}}, next)

	// nothing empty: nothing moves
	assert.False(t, relocate(rows, centroids, labels, next, counts))
}
