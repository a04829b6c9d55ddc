//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package run

import (
	"context"
	"fmt"
	"github.com/e-gun/FeatureLab/internal/clf"
	"github.com/e-gun/FeatureLab/internal/db"
	"github.com/e-gun/FeatureLab/internal/eval"
	"github.com/e-gun/FeatureLab/internal/lnch"
	"github.com/e-gun/FeatureLab/internal/smp"
	"github.com/e-gun/FeatureLab/internal/str"
	"github.com/e-gun/FeatureLab/internal/vec"
	"github.com/e-gun/FeatureLab/internal/vv"
	"github.com/e-gun/wego/pkg/search"
	"gonum.org/v1/gonum/mat"
	"time"
)

var Msg = lnch.NewMessageMakerWithDefaults()

// positions inside vec.Presets()
const (
	BAGOFWORDS = iota
	BAGOFNGRAMS
	TFIDFUNIGRAM
	TFIDFNGRAM
	TFIDFCHAR
)

// Results - everything one run produced; Report() renders it
type Results struct {
	RunID         string
	TrainRows     int
	TestRows      int
	TrainSample   str.Table
	TestSample    str.Table
	Features      []vec.Vectorised
	TopNGrams     []str.TermFrequency
	TopCharGrams  []str.TermFrequency
	Similarity    *mat.SymDense
	ClusterSource string
	Clusters      *vec.Clustering
	Topics        *vec.TopicModel
	TopWords      int
	Threshold     float64
	TopicClusters *vec.Clustering
	Embeddings    *vec.WordVectors
	Probes        []string
	Neighbours    map[string]search.Neighbors
	DocVectors    *mat.Dense
	Projection    *mat.Dense
	ProjectedBy   string
	TrainWords    []str.TermFrequency
	Evaluation    *eval.Evaluation

	train str.Table // the whole training table: word2vec wants every headline
}

type stage struct {
	letter string
	name   string
	fn     func(ctx context.Context, cfg *str.CurrentConfiguration, r *Results) error
}

// Pipeline - load, sample, vectorise, explore, model, classify; stages run in order and the first failure ends the run
func Pipeline(ctx context.Context, cfg *str.CurrentConfiguration, runid string) (*Results, error) {
	const (
		FAIL1 = "%s failed: %w"
		MSG1  = "%s"
	)

	stages := []stage{
		{"A", "load and sample", loadandsample},
		{"B", "vectorise", vectorise},
		{"C", "frequency tables", frequencies},
		{"D", "similarity and clustering", similarityandclusters},
		{"E", "topic model", topics},
		{"F", "word embeddings", embeddings},
		{"G", "baseline classifier", classifier},
	}

	r := &Results{RunID: runid}
	start := time.Now()
	previous := time.Now()

	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return r, err
		}
		if err := s.fn(ctx, cfg, r); err != nil {
			return r, fmt.Errorf(FAIL1, s.name, err)
		}
		Msg.Timer(s.letter, fmt.Sprintf(MSG1, s.name), start, previous)
		previous = time.Now()
	}
	return r, nil
}

func loadandsample(ctx context.Context, cfg *str.CurrentConfiguration, r *Results) error {
	const (
		MSG1 = "sampled %d of %d training rows and %d of %d test rows (%s)"
	)

	train, test, err := db.LoadTrainTest(ctx, cfg.Store)
	if err != nil {
		return err
	}

	r.train = train
	r.TrainRows = train.Len()
	r.TestRows = test.Len()

	if r.TrainSample, err = smp.Sample(train, cfg.Sample.Size, cfg.Sample.Seed); err != nil {
		return err
	}
	if r.TestSample, err = smp.Sample(test, cfg.Sample.Size, cfg.Sample.Seed); err != nil {
		return err
	}

	Msg.PEEK(Msg.Sprintf(MSG1, r.TrainSample.Len(), r.TrainRows, r.TestSample.Len(), r.TestRows, cfg.Sample.Seed.String()))
	return nil
}

// presets - the five notebook configurations, minus stop words if asked
func presets(cfg *str.CurrentConfiguration) []vec.VectorizerConfig {
	if !cfg.StopWords {
		return vec.Presets()
	}
	stops := cfg.StopList
	if len(stops) == 0 {
		stops = vec.StopList()
	}
	return vec.WithStopWords(vec.Presets(), stops)
}

func vectorise(ctx context.Context, cfg *str.CurrentConfiguration, r *Results) error {
	f, err := vec.FitAll(ctx, r.TrainSample.Contents(), presets(cfg), cfg.WorkerCount)
	if err != nil {
		return err
	}
	r.Features = f
	return nil
}

func frequencies(_ context.Context, _ *str.CurrentConfiguration, r *Results) error {
	ng := r.Features[BAGOFNGRAMS]
	r.TopNGrams = vec.TopTerms(ng.Matrix, ng.Fitted.Vocab, vv.TOPNGRAMS)

	ch := r.Features[TFIDFCHAR]
	r.TopCharGrams = vec.TopRoundedTerms(ch.Matrix, ch.Fitted.Vocab, vv.TOPCHARGRAMS)
	return nil
}

// similarityandclusters - cosine similarity over the char tf/idf rows; k-means over either those rows or the similarities
func similarityandclusters(_ context.Context, cfg *str.CurrentConfiguration, r *Results) error {
	const (
		FAIL1 = "unknown cluster source '%s'"
		MSG1  = "clustering %d documents by '%s'"
	)

	ch := r.Features[TFIDFCHAR].Matrix
	r.Similarity = vec.CosineSimilarity(ch)

	var x mat.Matrix
	switch cfg.Cluster.Source {
	case "features", "":
		x = ch
		r.ClusterSource = "features"
	case "similarity":
		x = r.Similarity
		r.ClusterSource = "similarity"
	default:
		return fmt.Errorf(FAIL1, cfg.Cluster.Source)
	}

	n, _ := x.Dims()
	Msg.PEEK(Msg.Sprintf(MSG1, n, r.ClusterSource))

	cl, err := vec.NewKMeans(cfg.Cluster, cfg.Cluster.K).Fit(x)
	if err != nil {
		return err
	}
	r.Clusters = cl
	return nil
}

// topics - LDA over the bag of n-grams; then k-means over the document-topic mixtures
func topics(_ context.Context, cfg *str.CurrentConfiguration, r *Results) error {
	ng := r.Features[BAGOFNGRAMS]
	tm, err := vec.FitTopics(ng.Matrix, ng.Fitted.Vocab, cfg.Topic)
	if err != nil {
		return err
	}
	r.Topics = tm
	r.TopWords = cfg.Topic.TopWords
	r.Threshold = cfg.Topic.WeightThreshold

	cl, err := vec.NewKMeans(cfg.Cluster, cfg.Cluster.TopicK).Fit(tm.DocTopics)
	if err != nil {
		return err
	}
	r.TopicClusters = cl
	return nil
}

// embeddings - word2vec over every training headline; the sample only supplies the probe words
func embeddings(_ context.Context, cfg *str.CurrentConfiguration, r *Results) error {
	const (
		MSG1 = "word2vec skipped"
		MSG2 = "no neighbours for '%s': %s"
	)

	if cfg.SkipEmbedding {
		Msg.NOTE(MSG1)
		return nil
	}

	heads := r.train.Headlines()
	tokenised := make([][]string, len(heads))
	for i := 0; i < len(heads); i++ {
		tokenised[i] = vec.WordPunctTokenise(heads[i])
	}

	wv, err := vec.TrainEmbeddings(tokenised, cfg.Embedding)
	if err != nil {
		return err
	}
	r.Embeddings = wv

	r.Neighbours = make(map[string]search.Neighbors)
	bow := r.Features[BAGOFWORDS]
	for _, tf := range vec.TopTerms(bow.Matrix, bow.Fitted.Vocab, 0) {
		if len(r.Probes) == vv.REPORTPREVIEW {
			break
		}
		if _, ok := wv.Vector(tf.Term); !ok {
			continue
		}
		nn, e := wv.Neighbours(tf.Term, cfg.Embedding.Neighbors)
		if e != nil {
			Msg.TMI(fmt.Sprintf(MSG2, tf.Term, e.Error()))
			continue
		}
		r.Probes = append(r.Probes, tf.Term)
		r.Neighbours[tf.Term] = nn
	}

	r.DocVectors = vec.AveragedWordVectorizer(tokenised, wv, wv.Dim)

	p, err := vec.Project2D(wv.Vectors, cfg.Projection)
	if err != nil {
		return err
	}
	r.Projection = p
	r.ProjectedBy = cfg.Projection.Method
	if r.ProjectedBy == "" {
		r.ProjectedBy = "tsne"
	}
	return nil
}

// classifier - one-vs-rest LinearSVC over a fresh bag of words fit on the training split only
func classifier(_ context.Context, cfg *str.CurrentConfiguration, r *Results) error {
	const (
		MSG1 = "classifier: %d training and %d held-out documents; %d terms"
	)

	cc := cfg.Classifier
	texts := r.TrainSample.Contents()
	y := clf.Binarize(r.TrainSample.Labels(), cc.Classes)

	trn, tst, err := clf.TrainTestSplit(len(texts), cc.TestFraction, cc.SplitSeed)
	if err != nil {
		return err
	}

	fitted, xtrain, err := vec.FitTransform(presets(cfg)[BAGOFWORDS], clf.SelectStrings(texts, trn))
	if err != nil {
		return err
	}
	r.TrainWords = vec.TopTerms(xtrain, fitted.Vocab, vv.TOPTRAINWORDS)

	xtest, err := fitted.Transform(clf.SelectStrings(texts, tst))
	if err != nil {
		return err
	}

	Msg.PEEK(Msg.Sprintf(MSG1, len(trn), len(tst), fitted.Vocab.Len()))

	ovr := clf.NewOneVsRest(cc)
	if err = ovr.Fit(xtrain, clf.SelectRows(y, trn)); err != nil {
		return err
	}
	scores := ovr.DecisionFunction(xtest)

	ev, err := eval.Evaluate(denserows(clf.SelectRows(y, tst)), denserows(scores), cc.Classes)
	if err != nil {
		return err
	}
	r.Evaluation = ev
	return nil
}

func denserows(m *mat.Dense) [][]float64 {
	nr, nc := m.Dims()
	rows := make([][]float64, nr)
	for i := 0; i < nr; i++ {
		rows[i] = mat.Row(make([]float64, nc), i, m)
	}
	return rows
}
