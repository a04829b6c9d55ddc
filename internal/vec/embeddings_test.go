//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"github.com/e-gun/FeatureLab/internal/str"
	"github.com/e-gun/wego/pkg/embedding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func toyvectors(t *testing.T) *WordVectors {
	t.Helper()
	wv, err := NewWordVectors(embedding.Embeddings{
		{Word: "stocks", Dim: 3, Vector: []float64{1, 0, 0}},
		{Word: "shares", Dim: 3, Vector: []float64{0.9, 0.1, 0}},
		{Word: "cup", Dim: 3, Vector: []float64{0, 1, 0}},
		{Word: "goal", Dim: 3, Vector: []float64{0, 0.9, 0.2}},
	})
	require.NoError(t, err)
	return wv
}

func TestAverageWordVectors(t *testing.T) {
	wv := toyvectors(t)

	got := AverageWordVectors([]string{"stocks", "cup", "unknown"}, wv, nil, 3)
	assert.InDeltaSlice(t, []float64{0.5, 0.5, 0}, got, 1e-12)

	// nothing in the vocabulary
	assert.Equal(t, []float64{0, 0, 0}, AverageWordVectors([]string{"zzz"}, wv, nil, 3))
	assert.Equal(t, []float64{0, 0, 0}, AverageWordVectors(nil, wv, nil, 3))

	// a restricted vocabulary hides words the model knows
	only := map[string]struct{}{"cup": {}}
	assert.InDeltaSlice(t, []float64{0, 1, 0}, AverageWordVectors([]string{"stocks", "cup"}, wv, only, 3), 1e-12)
}

func TestAveragedWordVectorizer(t *testing.T) {
	wv := toyvectors(t)

	x := AveragedWordVectorizer([][]string{{"stocks"}, {"zzz"}, {"cup", "goal"}}, wv, 3)
	r, c := x.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, []float64{1, 0, 0}, x.RawRowView(0))
	assert.Equal(t, []float64{0, 0, 0}, x.RawRowView(1))
	assert.InDeltaSlice(t, []float64{0, 0.95, 0.1}, x.RawRowView(2), 1e-12)
}

func TestNewWordVectorsRejectsRaggedInput(t *testing.T) {
	_, err := NewWordVectors(embedding.Embeddings{
		{Word: "a", Dim: 2, Vector: []float64{1, 2}},
		{Word: "b", Dim: 3, Vector: []float64{1, 2, 3}},
	})
	assert.Error(t, err)

	_, err = NewWordVectors(nil)
	assert.Error(t, err)
}

func TestNeighbours(t *testing.T) {
	wv := toyvectors(t)

	nn, err := wv.Neighbours("stocks", 1)
	require.NoError(t, err)
	require.Len(t, nn, 1)
	assert.Equal(t, "shares", nn[0].Word)
	assert.InDelta(t, 0.9/math.Sqrt(0.82), nn[0].Similarity, 1e-9)

	// hand-built embeddings arrive without norms; orthogonal words score 0 and are left out
	nn, err = wv.Neighbours("cup", 3)
	require.NoError(t, err)
	require.Len(t, nn, 2)
	assert.Equal(t, "goal", nn[0].Word)
	assert.Equal(t, "shares", nn[1].Word)
	assert.Greater(t, nn[0].Similarity, nn[1].Similarity)
}

func TestTrainEmbeddingsNoTokens(t *testing.T) {
	_, err := TrainEmbeddings([][]string{{}, {}}, str.EmbeddingConfig{Dim: 5, Window: 2, MinCount: 1, Iter: 1})
	assert.Error(t, err)
}

func TestTrainEmbeddings(t *testing.T) {
	if testing.Short() {
		t.Skip("word2vec training")
	}

	var docs [][]string
	for i := 0; i < 50; i++ {
		docs = append(docs, WordPunctTokenise("stocks rally as markets rise"))
		docs = append(docs, WordPunctTokenise("home team wins the cup"))
	}

	ec := str.EmbeddingConfig{Dim: 10, Window: 2, MinCount: 1, SubsampleThreshold: 1e-3, Iter: 2, Workers: 1}
	wv, err := TrainEmbeddings(docs, ec)
	require.NoError(t, err)

	assert.Equal(t, 10, wv.Dim)
	_, ok := wv.Vector("stocks")
	assert.True(t, ok)

	x := AveragedWordVectorizer(docs, wv, wv.Dim)
	r, _ := x.Dims()
	assert.Equal(t, len(docs), r)
}
