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
	"gonum.org/v1/gonum/floats"
	"os"
	"path/filepath"
	"testing"
)

func topicconfig(k int) str.TopicConfig {
	return str.TopicConfig{
		Topics:               k,
		Iterations:           vv.LDAITER,
		TransformationPasses: vv.LDAXFORMPASSES,
		BurnInPasses:         vv.LDABURNINPASSES,
		ChangeEvalFrq:        vv.LDACHGEVALFRQ,
		PerplexEvalFrq:       vv.LDAPERPEVALFRQ,
		PerplexTol:           vv.LDAPERPTOL,
		TopWords:             vv.LDATOPWORDS,
		WeightThreshold:      vv.LDAWEIGHTTHRESHLD,
		Seed:                 str.FixedSeed(vv.LDASEED),
		Workers:              1,
	}
}

func topiccorpus() []string {
	var c []string
	for i := 0; i < 6; i++ {
		c = append(c, "stocks markets shares bank rates stocks")
		c = append(c, "team cup match goal season team")
	}
	return c
}

func TestFitTopics(t *testing.T) {
	f, x, err := FitTransform(BagOfWords(), topiccorpus())
	require.NoError(t, err)

	tm, err := FitTopics(x, f.Vocab, topicconfig(2))
	require.NoError(t, err)

	nd, nk := tm.DocTopics.Dims()
	assert.Equal(t, 12, nd)
	assert.Equal(t, 2, nk)
	for d := 0; d < nd; d++ {
		assert.InDelta(t, 1.0, floats.Sum(tm.DocTopics.RawRowView(d)), 1e-9)
	}

	tk, tw := tm.TopicTerms.Dims()
	assert.Equal(t, 2, tk)
	assert.Equal(t, f.Vocab.Len(), tw)

	sums := tm.TopicSummaries(3)
	require.Len(t, sums, 2)
	for _, s := range sums {
		assert.LessOrEqual(t, len(s), 3)
		for i := 1; i < len(s); i++ {
			assert.GreaterOrEqual(t, s[i-1].V, s[i].V)
		}
	}

	counts := tm.DominantTopicCounts()
	assert.Equal(t, 12, counts[0]+counts[1])

	// expected counts add back up to the number of tokens in the corpus
	total := 0.0
	r, _ := tm.TermCounts.Dims()
	for i := 0; i < r; i++ {
		total += floats.Sum(tm.TermCounts.RawRowView(i))
	}
	assert.InDelta(t, floats.Sum(ColumnSums(x)), total, 1e-6)

	for _, above := range tm.TopicTermsAbove(0.6) {
		for _, tt := range above {
			assert.Greater(t, tt.V, 0.6)
		}
	}

	w := tm.TopicWeights()
	assert.InDelta(t, 1.0, floats.Max(w), 1e-12)
}

func TestFitTopicsCount(t *testing.T) {
	f, x, err := FitTransform(BagOfWords(), topiccorpus())
	require.NoError(t, err)

	_, err = FitTopics(x, f.Vocab, topicconfig(f.Vocab.Len()+1))
	assert.ErrorIs(t, err, str.ErrTopicCount)

	_, err = FitTopics(x, f.Vocab, topicconfig(0))
	assert.ErrorIs(t, err, str.ErrTopicCount)
}

func TestFitTopicsIgnoresHomeConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".config"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".config", vv.CONFIGVECTORLDA),
		[]byte(`{"Topics": 1, "Seed": {"Fixed": false}}`), 0644))

	f, x, err := FitTransform(BagOfWords(), topiccorpus())
	require.NoError(t, err)

	tm, err := FitTopics(x, f.Vocab, topicconfig(2))
	require.NoError(t, err)
	assert.Equal(t, 2, tm.Topics)
	_, nk := tm.DocTopics.Dims()
	assert.Equal(t, 2, nk)
}
