//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"context"
	"github.com/e-gun/FeatureLab/internal/vv"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
	"time"
)

//
// PRESETS: the five configurations the pipeline explores
//

func BagOfWords() VectorizerConfig {
	return VectorizerConfig{
		Name:         "bag of words",
		MinDF:        vv.MINDF,
		Lowercase:    true,
		TokenPattern: vv.TOKENPATTERN,
		NGramMin:     1,
		NGramMax:     1,
		Analyzer:     WordAnalyzer,
		Weighting:    CountWeighting,
		Norm:         NormNone,
	}
}

func BagOfNGrams() VectorizerConfig {
	c := BagOfWords()
	c.Name = "bag of n-grams"
	c.NGramMin = 2
	c.NGramMax = 3
	return c
}

func TfidfUnigram() VectorizerConfig {
	return VectorizerConfig{
		Name:         "unigram tf/idf",
		MinDF:        vv.MINDF,
		Lowercase:    true,
		TokenPattern: vv.TOKENPATTERN,
		NGramMin:     1,
		NGramMax:     1,
		Analyzer:     WordAnalyzer,
		Weighting:    TfidfWeighting,
		SublinearTF:  true,
		SmoothIDF:    true,
		Norm:         NormL2,
	}
}

func TfidfNGram() VectorizerConfig {
	c := TfidfUnigram()
	c.Name = "n-gram tf/idf"
	c.NGramMin = 2
	c.NGramMax = 3
	return c
}

// TfidfChar - character 2- and 3-grams; TokenPattern is carried but the char analyzer ignores it
func TfidfChar() VectorizerConfig {
	c := TfidfUnigram()
	c.Name = "char tf/idf"
	c.Analyzer = CharAnalyzer
	c.NGramMin = 2
	c.NGramMax = 3
	return c
}

func Presets() []VectorizerConfig {
	return []VectorizerConfig{BagOfWords(), BagOfNGrams(), TfidfUnigram(), TfidfNGram(), TfidfChar()}
}

// Vectorised - one fit and the matrix it produced for the training corpus
type Vectorised struct {
	Fitted *Fitted
	Matrix *mat.Dense
}

// FitAll - FitTransform() every preset over the same corpus; results come back in preset order
func FitAll(ctx context.Context, corpus []string, presets []VectorizerConfig, workers int) ([]Vectorised, error) {
	const (
		MSG1 = "FitAll() '%s': %d × %d"
	)

	start := time.Now()
	results := make([]Vectorised, len(presets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i := range presets {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, x, err := FitTransform(presets[i], corpus)
			if err != nil {
				return err
			}
			results[i] = Vectorised{Fitted: f, Matrix: x}
			r, c := x.Dims()
			Msg.PEEK(Msg.Sprintf(MSG1, presets[i].Name, r, c))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	Msg.Timer("V", "FitAll()", start, start)
	return results, nil
}
