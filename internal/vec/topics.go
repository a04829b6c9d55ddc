//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"fmt"
	"github.com/e-gun/FeatureLab/internal/str"
	"github.com/e-gun/nlp"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"sort"
	"time"
)

//
// LDA
//

// "github.com/e-gun/nlp" wants words × docs in and hands back topics × docs; everything here is stored docs-first

type TopicModel struct {
	Topics     int
	DocTopics  *mat.Dense // docs × topics; rows sum to 1
	TopicTerms *mat.Dense // topics × terms; as returned by Components()
	TermCounts *mat.Dense // topics × terms; expected number of tokens of each term assigned to each topic
	Vocab      Vocabulary
}

// TopicTerm - one word and its weight inside a topic
type TopicTerm struct {
	W string
	V float64
}

// FitTopics - LDA over a docs × terms count matrix
func FitTopics(counts *mat.Dense, vocab Vocabulary, tc str.TopicConfig) (*TopicModel, error) {
	const (
		FAIL1 = "%w: %d topics requested for a vocabulary of %d terms"
		FAIL2 = "FitTopics() failed to model topics for documents: %w"
		MSG1  = "FitTopics() is unseeded: topics will vary from run to run"
		MSG2  = "FitTopics(): %d topics over %d documents and %d terms"
	)

	start := time.Now()

	nd, nt := counts.Dims()
	if tc.Topics < 1 || tc.Topics > nt || nt != vocab.Len() {
		return nil, fmt.Errorf(FAIL1, str.ErrTopicCount, tc.Topics, vocab.Len())
	}
	if !tc.Seed.Fixed {
		Msg.NOTE(MSG1)
	}

	lda := nlp.NewLatentDirichletAllocation(tc.Topics)
	lda.Iterations = tc.Iterations
	lda.TransformationPasses = tc.TransformationPasses
	lda.BurnInPasses = tc.BurnInPasses
	lda.ChangeEvaluationFrequency = tc.ChangeEvalFrq
	lda.PerplexityEvaluationFrequency = tc.PerplexEvalFrq
	lda.PerplexityTolerance = tc.PerplexTol
	lda.Processes = max(tc.Workers, 1)
	lda.Rnd = tc.Seed.Rand()

	docsOverTopics, err := lda.FitTransform(counts.T())
	if err != nil {
		return nil, fmt.Errorf(FAIL2, err)
	}
	topicsOverWords := lda.Components()

	tm := &TopicModel{
		Topics:     tc.Topics,
		DocTopics:  mat.DenseCopyOf(docsOverTopics.T()),
		TopicTerms: mat.DenseCopyOf(topicsOverWords),
		Vocab:      vocab,
	}

	for d := 0; d < nd; d++ {
		row := tm.DocTopics.RawRowView(d)
		if s := floats.Sum(row); s > 0 {
			floats.Scale(1/s, row)
		}
	}

	tm.TermCounts = expectedcounts(counts, tm.DocTopics, tm.TopicTerms)

	Msg.PEEK(Msg.Sprintf(MSG2, tc.Topics, nd, nt))
	Msg.Timer("T", "FitTopics()", start, start)
	return tm, nil
}

// expectedcounts - Σ_d count(d,w)·θ(d,k)φ(k,w)/Σ_k' θ(d,k')φ(k',w): the unnormalised topic-word weights
func expectedcounts(counts *mat.Dense, theta *mat.Dense, phi *mat.Dense) *mat.Dense {
	nd, nt := counts.Dims()
	k, _ := phi.Dims()
	ec := mat.NewDense(k, nt, nil)
	resp := make([]float64, k)

	for d := 0; d < nd; d++ {
		crow := counts.RawRowView(d)
		trow := theta.RawRowView(d)
		for w := 0; w < nt; w++ {
			if crow[w] == 0 {
				continue
			}
			for t := 0; t < k; t++ {
				resp[t] = trow[t] * phi.At(t, w)
			}
			z := floats.Sum(resp)
			if z == 0 {
				continue
			}
			for t := 0; t < k; t++ {
				ec.Set(t, w, ec.At(t, w)+crow[w]*resp[t]/z)
			}
		}
	}
	return ec
}

// TopicSummaries - the n heaviest terms of every topic; zero-weight terms never appear
func (tm *TopicModel) TopicSummaries(n int) [][]TopicTerm {
	tops := make([][]TopicTerm, tm.Topics)
	for t := 0; t < tm.Topics; t++ {
		tss := tm.sortedtopic(tm.TopicTerms, t, 0)
		if n > 0 && n < len(tss) {
			tss = tss[0:n]
		}
		tops[t] = tss
	}
	return tops
}

// TopicTermsAbove - every term whose expected count inside the topic exceeds the threshold
func (tm *TopicModel) TopicTermsAbove(threshold float64) [][]TopicTerm {
	tops := make([][]TopicTerm, tm.Topics)
	for t := 0; t < tm.Topics; t++ {
		tops[t] = tm.sortedtopic(tm.TermCounts, t, threshold)
	}
	return tops
}

// sortedtopic - the terms of one topic row with weight > floor, heaviest first
func (tm *TopicModel) sortedtopic(m *mat.Dense, topic int, floor float64) []TopicTerm {
	_, tc := m.Dims()
	var tss []TopicTerm
	for word := 0; word < tc; word++ {
		if v := m.At(topic, word); v > floor {
			tss = append(tss, TopicTerm{W: tm.Vocab.Term(word), V: v})
		}
	}
	sort.SliceStable(tss, func(i, j int) bool {
		return tss[i].V > tss[j].V
	})
	return tss
}

// DominantTopicCounts - N documents have topic X as their dominant topic
func (tm *TopicModel) DominantTopicCounts() []int {
	counter := make([]int, tm.Topics)
	nd, _ := tm.DocTopics.Dims()
	for doc := 0; doc < nd; doc++ {
		counter[floats.MaxIdx(tm.DocTopics.RawRowView(doc))]++
	}
	return counter
}

// TopicWeights - scaled total accumulated weight of each topic
func (tm *TopicModel) TopicWeights() []float64 {
	counter := make([]float64, tm.Topics)
	nd, _ := tm.DocTopics.Dims()
	for doc := 0; doc < nd; doc++ {
		floats.Add(counter, tm.DocTopics.RawRowView(doc))
	}

	high := floats.Max(counter)
	if high > 0 {
		floats.Scale(1/high, counter)
	}
	return counter
}
