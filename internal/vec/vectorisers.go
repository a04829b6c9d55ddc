//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"errors"
	"fmt"
	"github.com/e-gun/FeatureLab/internal/gen"
	"github.com/e-gun/FeatureLab/internal/str"
	"github.com/e-gun/FeatureLab/internal/vv"
	"github.com/e-gun/nlp"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"math"
	"regexp"
	"sort"
)

//
// VECTORISERS: nlp.CountVectoriser does the counting; admission and weighting happen here
//

type Analyzer string

const (
	WordAnalyzer Analyzer = "word"
	CharAnalyzer Analyzer = "char"
)

type Weighting string

const (
	CountWeighting Weighting = "count"
	TfidfWeighting Weighting = "tfidf"
)

const (
	NormL2   = "l2"
	NormNone = "none"
)

type VectorizerConfig struct {
	Name         string    `json:"Name" yaml:"name"`
	MinDF        int       `json:"MinDF" yaml:"min_df"`
	Lowercase    bool      `json:"Lowercase" yaml:"lowercase"`
	TokenPattern string    `json:"TokenPattern" yaml:"token_pattern"`
	NGramMin     int       `json:"NGramMin" yaml:"ngram_min"`
	NGramMax     int       `json:"NGramMax" yaml:"ngram_max"`
	Analyzer     Analyzer  `json:"Analyzer" yaml:"analyzer"`
	Weighting    Weighting `json:"Weighting" yaml:"weighting"`
	SublinearTF  bool      `json:"SublinearTF" yaml:"sublinear_tf"`
	SmoothIDF    bool      `json:"SmoothIDF" yaml:"smooth_idf"`
	Norm         string    `json:"Norm" yaml:"norm"`
	StopWords    []string  `json:"StopWords" yaml:"stop_words"`
}

// tokeniser - the nlp.Tokeniser that implements this configuration's analysis unit
func (vc VectorizerConfig) tokeniser() (nlp.Tokeniser, error) {
	const (
		FAIL1 = "'%s': bad n-gram range (%d, %d)"
		FAIL2 = "'%s': unknown analyzer '%s'"
	)

	nmin := max(vc.NGramMin, 1)
	nmax := vc.NGramMax
	if nmax < nmin {
		return nil, fmt.Errorf(FAIL1, vc.Name, vc.NGramMin, vc.NGramMax)
	}

	switch vc.Analyzer {
	case CharAnalyzer:
		return &CharGramTokeniser{Lower: vc.Lowercase, NMin: nmin, NMax: nmax}, nil
	case WordAnalyzer, "":
		pat := vc.TokenPattern
		if pat == "" {
			pat = vv.TOKENPATTERN
		}
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("'%s': %w", vc.Name, err)
		}
		wt := &WordGramTokeniser{Pattern: re, Lower: vc.Lowercase, NMin: nmin, NMax: nmax}
		if len(vc.StopWords) > 0 {
			wt.Stop = gen.ToSet(vc.StopWords)
		}
		return wt, nil
	default:
		return nil, fmt.Errorf(FAIL2, vc.Name, vc.Analyzer)
	}
}

// Vocabulary - the admitted terms in column order
type Vocabulary struct {
	Terms []string
	index map[string]int
}

func NewVocabulary(terms []string) Vocabulary {
	idx := make(map[string]int, len(terms))
	for i, t := range terms {
		idx[t] = i
	}
	return Vocabulary{Terms: terms, index: idx}
}

func (v Vocabulary) Len() int {
	return len(v.Terms)
}

func (v Vocabulary) Index(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}

func (v Vocabulary) Term(i int) string {
	return v.Terms[i]
}

// Fitted - a vectoriser after Fit(): the vocabulary and idf weights are frozen
type Fitted struct {
	Config VectorizerConfig
	Vocab  Vocabulary
	DF     []int
	IDF    []float64
	Docs   int
	cv     *nlp.CountVectoriser
}

// Fit - learn the vocabulary (and, for tfidf, the idf weights) of a corpus
func Fit(vc VectorizerConfig, corpus []string) (*Fitted, error) {
	const (
		MSG1 = "Fit() admitted %d of %d candidate terms for '%s'"
	)

	minDF := max(vc.MinDF, 1)

	if len(corpus) == 0 {
		return nil, &str.VocabularyEmptyError{Config: vc.Name, MinDF: minDF, Docs: 0}
	}

	tk, err := vc.tokeniser()
	if err != nil {
		return nil, err
	}

	// always a fresh CountVectoriser: Fit() appends to whatever Vocabulary it already holds
	// stop words belong to the tokeniser so that they never reach an n-gram; char grams ignore them
	cv := nlp.NewCountVectoriser()
	cv.Tokeniser = tk
	cv.Fit(corpus...)

	if len(cv.Vocabulary) == 0 {
		return nil, &str.VocabularyEmptyError{Config: vc.Name, MinDF: minDF, Docs: len(corpus)}
	}

	raw, err := cv.Transform(corpus...)
	if err != nil {
		return nil, err
	}

	// document frequency per candidate term
	candidates := make([]string, len(cv.Vocabulary))
	for t, i := range cv.Vocabulary {
		candidates[i] = t
	}
	df := make([]int, len(candidates))
	eachnonzero(raw, func(t int, d int, v float64) {
		df[t]++
	})

	var admitted []string
	dfof := make(map[string]int)
	for i, t := range candidates {
		if df[i] >= minDF {
			admitted = append(admitted, t)
			dfof[t] = df[i]
		}
	}

	if len(admitted) == 0 {
		return nil, &str.VocabularyEmptyError{Config: vc.Name, MinDF: minDF, Docs: len(corpus)}
	}

	sort.Strings(admitted)

	f := &Fitted{
		Config: vc,
		Vocab:  NewVocabulary(admitted),
		DF:     make([]int, len(admitted)),
		Docs:   len(corpus),
		cv:     cv,
	}

	// re-index the CountVectoriser so that Transform() emits admitted terms only and in our column order
	cv.Vocabulary = make(map[string]int, len(admitted))
	for i, t := range admitted {
		cv.Vocabulary[t] = i
		f.DF[i] = dfof[t]
	}

	if vc.Weighting == TfidfWeighting {
		f.IDF = idf(f.DF, f.Docs, vc.SmoothIDF)
	}

	Msg.PEEK(Msg.Sprintf(MSG1, len(admitted), len(candidates), vc.Name))
	return f, nil
}

// FitTransform - Fit() and then Transform() the same corpus
func FitTransform(vc VectorizerConfig, corpus []string) (*Fitted, *mat.Dense, error) {
	f, err := Fit(vc, corpus)
	if err != nil {
		return nil, nil, err
	}
	x, err := f.Transform(corpus)
	if err != nil {
		return nil, nil, err
	}
	return f, x, nil
}

// Transform - documents × vocabulary; terms the fit never admitted are ignored
func (f *Fitted) Transform(corpus []string) (*mat.Dense, error) {
	if len(corpus) == 0 {
		return nil, errors.New("Transform() was given no documents")
	}

	raw, err := f.cv.Transform(corpus...)
	if err != nil {
		return nil, err
	}

	// CountVectoriser output is terms × docs
	x := mat.NewDense(len(corpus), f.Vocab.Len(), nil)
	eachnonzero(raw, func(t int, d int, v float64) {
		x.Set(d, t, v)
	})

	f.weight(x)
	return x, nil
}

// weight - count cells stay raw; tfidf cells become (1+ln tf)·idf or tf·idf; then the optional l2 row norm
func (f *Fitted) weight(x *mat.Dense) {
	r, _ := x.Dims()
	for i := 0; i < r; i++ {
		row := x.RawRowView(i)
		if f.Config.Weighting == TfidfWeighting {
			for j, tf := range row {
				if tf == 0 {
					continue
				}
				if f.Config.SublinearTF {
					tf = 1 + math.Log(tf)
				}
				row[j] = tf * f.IDF[j]
			}
		}
		if f.Config.Norm == NormL2 {
			if n := floats.Norm(row, 2); n > 0 {
				floats.Scale(1/n, row)
			}
		}
	}
}

// idf - smooth: ln((1+N)/(1+df))+1; plain: ln(N/df)+1
func idf(df []int, n int, smooth bool) []float64 {
	w := make([]float64, len(df))
	for i, d := range df {
		if smooth {
			w[i] = math.Log(float64(1+n)/float64(1+d)) + 1
		} else {
			w[i] = math.Log(float64(n)/float64(d)) + 1
		}
	}
	return w
}

// eachnonzero - visit the non-zero cells of whatever the vectoriser handed back
func eachnonzero(m mat.Matrix, fn func(i int, j int, v float64)) {
	type nonzeroer interface {
		DoNonZero(func(i, j int, v float64))
	}

	if nz, ok := m.(nonzeroer); ok {
		nz.DoNonZero(fn)
		return
	}

	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.At(i, j); v != 0 {
				fn(i, j, v)
			}
		}
	}
}
