//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package run

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"github.com/e-gun/FeatureLab/internal/lnch"
	"github.com/e-gun/FeatureLab/internal/str"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
	"path/filepath"
	"strings"
	"testing"
)

var vocabularies = map[int][]string{
	1: {"markets", "stocks", "rally", "investors", "shares", "profit"},
	2: {"team", "match", "goal", "season", "coach", "league"},
	3: {"phone", "software", "chip", "launch", "device", "update"},
	4: {"health", "doctors", "vaccine", "study", "patients", "hospital"},
}

// rotate - doc j of a class is its vocabulary rotated by j; rotations repeat so every n-gram recurs
func rotate(words []string, j int) []string {
	r := make([]string, len(words))
	for i := range words {
		r[i] = words[(i+j)%len(words)]
	}
	return r
}

func seedcorpus(t *testing.T, perclass int) string {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "corpus.db")

	dbh, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	defer dbh.Close()

	for _, tb := range []string{"train_data", "test_data"} {
		_, err = dbh.Exec(`CREATE TABLE ` + tb + ` ("index" INTEGER, headline_cleaned TEXT, content_cleaned TEXT, category INTEGER)`)
		require.NoError(t, err)

		idx := 0
		for j := 0; j < perclass; j++ {
			for c := 1; c <= 4; c++ {
				w := rotate(vocabularies[c], j)
				content := strings.Join(w, " ") + " said the report"
				_, err = dbh.Exec(`INSERT INTO `+tb+` VALUES (?, ?, ?, ?)`, idx, strings.Join(w[0:3], " "), content, c)
				require.NoError(t, err)
				idx++
			}
		}
	}
	return dsn
}

func testconfig(dsn string) *str.CurrentConfiguration {
	cfg := lnch.BuildDefaultConfig()
	cfg.Store.Driver = "sqlite"
	cfg.Store.DSN = dsn
	cfg.Sample.Size = 40
	cfg.SkipEmbedding = true
	cfg.WorkerCount = 2
	cfg.Cluster.NInit = 3
	cfg.Topic.Topics = 3
	cfg.Topic.Iterations = 5
	cfg.Topic.Workers = 1
	cfg.Projection.Method = "pca"
	return cfg
}

func TestPipeline(t *testing.T) {
	cfg := testconfig(seedcorpus(t, 12))

	r, err := Pipeline(context.Background(), cfg, "test-run")
	require.NoError(t, err)

	assert.Equal(t, 48, r.TrainRows)
	assert.Equal(t, 48, r.TestRows)
	assert.Equal(t, 40, r.TrainSample.Len())
	assert.Equal(t, 40, r.TestSample.Len())

	require.Len(t, r.Features, 5)
	for _, f := range r.Features {
		nr, nc := f.Matrix.Dims()
		assert.Equal(t, 40, nr, f.Fitted.Config.Name)
		assert.Positive(t, nc, f.Fitted.Config.Name)
	}

	assert.NotEmpty(t, r.TopNGrams)
	assert.LessOrEqual(t, len(r.TopNGrams), 40)
	assert.NotEmpty(t, r.TopCharGrams)
	assert.LessOrEqual(t, len(r.TopCharGrams), 50)

	assert.Equal(t, "features", r.ClusterSource)
	require.NotNil(t, r.Clusters)
	assert.Len(t, r.Clusters.Labels, 40)
	assert.Len(t, r.Clusters.Sizes(), 2)

	require.NotNil(t, r.Topics)
	assert.Equal(t, 3, r.Topics.Topics)
	require.NotNil(t, r.TopicClusters)
	assert.Len(t, r.TopicClusters.Sizes(), 4)

	assert.Nil(t, r.Embeddings)
	assert.Nil(t, r.Projection)

	assert.NotEmpty(t, r.TrainWords)
	require.NotNil(t, r.Evaluation)
	assert.Len(t, r.Evaluation.PerClass, 4)

	var b bytes.Buffer
	require.NoError(t, Report(&b, r))
	out := b.String()
	assert.Contains(t, out, "test-run")
	assert.Contains(t, out, "bag of n-grams")
	assert.Contains(t, out, "3 LDA topics")
	assert.Contains(t, out, "Average precision")
	assert.NotContains(t, out, "Word2vec")
}

func TestPipelineIsDeterministic(t *testing.T) {
	dsn := seedcorpus(t, 12)

	a, err := Pipeline(context.Background(), testconfig(dsn), "a")
	require.NoError(t, err)
	b, err := Pipeline(context.Background(), testconfig(dsn), "b")
	require.NoError(t, err)

	assert.Equal(t, a.TrainSample.Contents(), b.TrainSample.Contents())
	assert.Equal(t, a.TopNGrams, b.TopNGrams)
	assert.Equal(t, a.Clusters.Labels, b.Clusters.Labels)
	assert.Equal(t, a.TrainWords, b.TrainWords)
	assert.Equal(t, a.Evaluation.MicroAP, b.Evaluation.MicroAP)
}

func TestPipelineClusterOnSimilarity(t *testing.T) {
	cfg := testconfig(seedcorpus(t, 12))
	cfg.Cluster.Source = "similarity"

	r, err := Pipeline(context.Background(), cfg, "sim")
	require.NoError(t, err)
	assert.Equal(t, "similarity", r.ClusterSource)
	assert.Len(t, r.Clusters.Labels, 40)
}

func TestPipelineErrors(t *testing.T) {
	cfg := testconfig(filepath.Join(t.TempDir(), "empty.db"))
	_, err := Pipeline(context.Background(), cfg, "missing")
	assert.ErrorIs(t, err, str.ErrDataAccess)

	cfg = testconfig(seedcorpus(t, 12))
	cfg.Sample.Size = 100
	_, err = Pipeline(context.Background(), cfg, "toolarge")
	assert.ErrorIs(t, err, str.ErrInsufficientData)

	cfg = testconfig(seedcorpus(t, 12))
	cfg.Topic.Topics = 0
	_, err = Pipeline(context.Background(), cfg, "notopics")
	assert.ErrorIs(t, err, str.ErrTopicCount)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Pipeline(ctx, testconfig(seedcorpus(t, 12)), "cancelled")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReportFlagsUndefinedClasses(t *testing.T) {
	cfg := testconfig(seedcorpus(t, 12))
	r, err := Pipeline(context.Background(), cfg, "undef")
	require.NoError(t, err)

	r.Evaluation.PerClass[0].Undefined = true

	var b bytes.Buffer
	require.NoError(t, Report(&b, r))
	assert.Contains(t, b.String(), fmt.Sprintf("class %d: undefined", r.Evaluation.PerClass[0].Class))
}

// tablenames - what the sqlite store holds right now
func tablenames(t *testing.T, dsn string) []string {
	t.Helper()
	dbh, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	defer dbh.Close()

	rows, err := dbh.Query(`SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`)
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		require.NoError(t, rows.Scan(&n))
		names = append(names, n)
	}
	require.NoError(t, rows.Err())
	return names
}

func TestPipelineWithEmbeddingsLeavesStoreUntouched(t *testing.T) {
	dsn := seedcorpus(t, 12)
	before := tablenames(t, dsn)
	require.Equal(t, []string{"test_data", "train_data"}, before)

	cfg := testconfig(dsn)
	cfg.SkipEmbedding = false
	cfg.Embedding.Dim = 10
	cfg.Embedding.Window = 2
	cfg.Embedding.MinCount = 1
	cfg.Embedding.Iter = 1
	cfg.Embedding.Neighbors = 3
	cfg.Embedding.Workers = 1

	r, err := Pipeline(context.Background(), cfg, "w2v")
	require.NoError(t, err)
	require.NotNil(t, r.Embeddings)
	assert.NotEmpty(t, r.Probes)

	nr, nc := r.DocVectors.Dims()
	assert.Equal(t, 48, nr)
	assert.Equal(t, 10, nc)

	pr, pc := r.Projection.Dims()
	assert.Equal(t, r.Embeddings.Len(), pr)
	assert.Equal(t, 2, pc)

	assert.Equal(t, before, tablenames(t, dsn))

	var b bytes.Buffer
	require.NoError(t, Report(&b, r))
	assert.Contains(t, b.String(), "Word2vec")
	assert.Contains(t, b.String(), "(pca)")
}
