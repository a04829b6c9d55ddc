//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"github.com/e-gun/FeatureLab/internal/str"
	"gonum.org/v1/gonum/mat"
	"math"
	"sort"
)

// TopTerms - column sums ranked descending; ties keep vocabulary order; k <= 0 or k > |vocab| means all terms
func TopTerms(m mat.Matrix, vocab Vocabulary, k int) []str.TermFrequency {
	_, c := m.Dims()
	if c != vocab.Len() {
		// a matrix from some other fit
		return nil
	}

	return rankterms(ColumnSums(m), vocab, k)
}

// TopRoundedTerms - the char gram table: each weight rounded to 2 places, then each column total truncated to an int before ranking
func TopRoundedTerms(m mat.Matrix, vocab Vocabulary, k int) []str.TermFrequency {
	r, c := m.Dims()
	if c != vocab.Len() {
		return nil
	}

	sums := make([]float64, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sums[j] += math.Round(m.At(i, j)*100) / 100
		}
	}
	for j := range sums {
		sums[j] = math.Trunc(sums[j])
	}
	return rankterms(sums, vocab, k)
}

// rankterms - descending and stable, so equal totals stay in vocabulary order
func rankterms(sums []float64, vocab Vocabulary, k int) []str.TermFrequency {
	c := len(sums)
	tf := make([]str.TermFrequency, c)
	for j := 0; j < c; j++ {
		tf[j] = str.TermFrequency{Term: vocab.Term(j), Frequency: sums[j]}
	}

	sort.SliceStable(tf, func(i, j int) bool {
		return tf[i].Frequency > tf[j].Frequency
	})

	if k <= 0 || k > len(tf) {
		k = len(tf)
	}
	return tf[0:k]
}

// ColumnSums - per-term totals over every document
func ColumnSums(m mat.Matrix) []float64 {
	r, c := m.Dims()
	sums := make([]float64, c)
	if d, ok := m.(*mat.Dense); ok {
		for i := 0; i < r; i++ {
			row := d.RawRowView(i)
			for j := range row {
				sums[j] += row[j]
			}
		}
		return sums
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sums[j] += m.At(i, j)
		}
	}
	return sums
}
