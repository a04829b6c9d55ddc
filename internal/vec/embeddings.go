//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/e-gun/FeatureLab/internal/gen"
	"github.com/e-gun/FeatureLab/internal/str"
	"github.com/e-gun/wego/pkg/embedding"
	"github.com/e-gun/wego/pkg/embedding/embutil"
	"github.com/e-gun/wego/pkg/model/modelutil/vector"
	"github.com/e-gun/wego/pkg/model/word2vec"
	"github.com/e-gun/wego/pkg/search"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"io"
	"strings"
	"time"
)

//
// WORD EMBEDDINGS
//

// WordVectors - one dense vector per vocabulary word
type WordVectors struct {
	Dim     int
	Words   []string
	Vectors *mat.Dense // words × dim
	index   map[string]int
	embs    embedding.Embeddings
}

// NewWordVectors - assemble WordVectors from wego embeddings
func NewWordVectors(embs embedding.Embeddings) (*WordVectors, error) {
	const (
		FAIL1 = "NewWordVectors(): the model has no words"
		FAIL2 = "NewWordVectors(): '%s' has %d dimensions; expected %d"
	)

	if len(embs) == 0 {
		return nil, errors.New(FAIL1)
	}

	embs = append(embedding.Embeddings(nil), embs...)
	dim := embs[0].Dim
	wv := &WordVectors{
		Dim:     dim,
		Words:   make([]string, len(embs)),
		Vectors: mat.NewDense(len(embs), dim, nil),
		index:   make(map[string]int, len(embs)),
		embs:    embs,
	}

	for i, e := range embs {
		if len(e.Vector) != dim {
			return nil, fmt.Errorf(FAIL2, e.Word, len(e.Vector), dim)
		}
		// search divides by Norm; only embedding.Load() fills it in
		if e.Norm == 0 {
			embs[i].Norm = embutil.Norm(e.Vector)
		}
		wv.Words[i] = e.Word
		wv.index[e.Word] = i
		wv.Vectors.SetRow(i, e.Vector)
	}
	return wv, nil
}

// Vector - the row for a word; the slice aliases the model
func (wv *WordVectors) Vector(word string) ([]float64, bool) {
	i, ok := wv.index[word]
	if !ok {
		return nil, false
	}
	return wv.Vectors.RawRowView(i), true
}

func (wv *WordVectors) Len() int {
	return len(wv.Words)
}

// Neighbours - the k nearest words by cosine similarity
func (wv *WordVectors) Neighbours(word string, k int) (search.Neighbors, error) {
	searcher, err := search.New(wv.embs...)
	if err != nil {
		return nil, err
	}
	return searcher.SearchInternal(word, k)
}

// TrainEmbeddings - word2vec over pre-tokenised documents
func TrainEmbeddings(tokenised [][]string, ec str.EmbeddingConfig) (*WordVectors, error) {
	const (
		FAIL1 = "TrainEmbeddings() was given no tokens"
		FAIL2 = "TrainEmbeddings() model initialization failed: %w"
		FAIL3 = "TrainEmbeddings() failed to train vector embeddings: %w"
		FAIL4 = "TrainEmbeddings() failed to save vector embeddings: %w"
		FAIL5 = "TrainEmbeddings() failed to load vector embeddings: %w"
		MSG1  = "TrainEmbeddings() runs unseeded: word vectors will vary from run to run"
		MSG2  = "TrainEmbeddings() training run #%d of %d"
		MSG3  = "TrainEmbeddings() kept %d words of dimension %d"
	)

	start := time.Now()

	thetext := buildtextblock(tokenised)
	if strings.TrimSpace(thetext) == "" {
		return nil, errors.New(FAIL1)
	}

	// wego has no seed hook
	Msg.NOTE(MSG1)

	cfg := w2vvectorconfig(ec)
	vmodel, err := word2vec.NewForOptions(cfg)
	if err != nil {
		return nil, fmt.Errorf(FAIL2, err)
	}

	// input for  word2vec.Train() is 'io.ReadSeeker'
	b := bytes.NewReader([]byte(thetext))

	finished := make(chan error)

	// .Train() but do not block; so we can also .Reporter()
	go func() {
		finished <- vmodel.Train(b)
	}()

	ct := make(chan int)
	rep := make(chan string)
	done := make(chan struct{})
	go vmodel.Reporter(ct, rep)

	go func() {
		for {
			select {
			case m := <-ct:
				Msg.TMI(fmt.Sprintf(MSG2, m, cfg.Iter))
			case m := <-rep:
				Msg.TMI(m)
			case <-done:
				return
			}
		}
	}()

	err = <-finished
	close(done)
	if err != nil {
		return nil, fmt.Errorf(FAIL3, err)
	}

	// use buffers; skip the disk
	var buf bytes.Buffer
	w := io.Writer(&buf)
	if err = vmodel.Save(w, vector.Agg); err != nil {
		return nil, fmt.Errorf(FAIL4, err)
	}

	embs, err := embedding.Load(io.Reader(&buf))
	if err != nil {
		return nil, fmt.Errorf(FAIL5, err)
	}

	wv, err := NewWordVectors(embs)
	if err != nil {
		return nil, err
	}

	Msg.PEEK(Msg.Sprintf(MSG3, wv.Len(), wv.Dim))
	Msg.Timer("E", "TrainEmbeddings()", start, start)
	return wv, nil
}

// buildtextblock - one document per line; wego reads the block as a single stream of words
func buildtextblock(tokenised [][]string) string {
	var sb strings.Builder
	for _, doc := range tokenised {
		sb.WriteString(strings.Join(doc, " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

// AverageWordVectors - the mean of the in-vocabulary token vectors; a zero vector when nothing overlaps
func AverageWordVectors(tokens []string, wv *WordVectors, vocab map[string]struct{}, dim int) []float64 {
	fv := make([]float64, dim)
	if vocab == nil {
		vocab = gen.ToSet(wv.Words)
	}

	nwords := 0
	for _, t := range tokens {
		if _, ok := vocab[t]; !ok {
			continue
		}
		v, ok := wv.Vector(t)
		if !ok {
			continue
		}
		nwords++
		n := min(dim, len(v))
		floats.Add(fv[0:n], v[0:n])
	}

	if nwords > 0 {
		floats.Scale(1/float64(nwords), fv)
	}
	return fv
}

// AveragedWordVectorizer - AverageWordVectors() for every document, in input order
func AveragedWordVectorizer(corpus [][]string, wv *WordVectors, dim int) *mat.Dense {
	if len(corpus) == 0 {
		return &mat.Dense{}
	}
	vocab := gen.ToSet(wv.Words)
	x := mat.NewDense(len(corpus), dim, nil)
	for i, doc := range corpus {
		x.SetRow(i, AverageWordVectors(doc, wv, vocab, dim))
	}
	return x
}
