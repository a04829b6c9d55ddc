//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"github.com/e-gun/FeatureLab/internal/str"
	"github.com/e-gun/FeatureLab/internal/vv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestBuildDefaultConfig(t *testing.T) {
	c := BuildDefaultConfig()
	assert.Equal(t, vv.SAMPLESIZE, c.Sample.Size)
	assert.Equal(t, str.FixedSeed(vv.SAMPLESEED), c.Sample.Seed)
	assert.Equal(t, "features", c.Cluster.Source)
	assert.Equal(t, []int{1, 2, 3, 4}, c.Classifier.Classes)
	assert.False(t, c.Embedding.Seed.Fixed)
	assert.Equal(t, vv.DEFAULTTRAINTABLE, c.Store.TrainTable)

	// the class list is a copy
	c.Classifier.Classes[0] = 99
	assert.Equal(t, 1, vv.LABELCLASSES[0])
}

func TestParseArgs(t *testing.T) {
	c := BuildDefaultConfig()
	args := []string{"-n", "100", "-sd", "7", "-gl", "3", "-wc", "1", "-tp", "5", "-it", "3",
		"-pj", "pca", "-cl", "similarity", "-dr", "pgx", "-db", "postgres://u@h/db", "-nw", "-bw", "-q", "-sw"}

	req, err := ParseArgs(c, args)
	require.NoError(t, err)
	assert.Equal(t, RunPipeline, req)
	assert.Equal(t, 100, c.Sample.Size)
	assert.Equal(t, str.FixedSeed(7), c.Sample.Seed)
	assert.Equal(t, 3, c.LogLevel)
	assert.Equal(t, 1, c.WorkerCount)
	assert.Equal(t, 5, c.Topic.Topics)
	assert.Equal(t, 3, c.Embedding.Iter)
	assert.Equal(t, "pca", c.Projection.Method)
	assert.Equal(t, "similarity", c.Cluster.Source)
	assert.Equal(t, "pgx", c.Store.Driver)
	assert.Equal(t, "postgres://u@h/db", c.Store.DSN)
	assert.True(t, c.SkipEmbedding)
	assert.True(t, c.BlackAndWhite)
	assert.True(t, c.QuietStart)
	assert.True(t, c.StopWords)
}

func TestParseArgsRequests(t *testing.T) {
	for flag, want := range map[string]Request{"-h": ShowHelp, "-v": ShowVersion, "-vv": ShowFullVersion} {
		req, err := ParseArgs(BuildDefaultConfig(), []string{flag})
		require.NoError(t, err)
		assert.Equal(t, want, req, flag)
	}
}

func TestParseArgsUnseeded(t *testing.T) {
	c := BuildDefaultConfig()
	_, err := ParseArgs(c, []string{"-sd", "none"})
	require.NoError(t, err)
	assert.False(t, c.Sample.Seed.Fixed)
}

func TestParseArgsErrors(t *testing.T) {
	bad := [][]string{
		{"-n"},
		{"-n", "many"},
		{"-n", "-5"},
		{"-pj", "umap"},
		{"-cl", "words"},
		{"-dr", "oracle"},
		{"-sd", "-1"},
	}
	for _, args := range bad {
		_, err := ParseArgs(BuildDefaultConfig(), args)
		assert.Error(t, err, args)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()

	js := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(js, []byte(`{"WorkerCount": 3, "Sample": {"Size": 50}, "Store": {"DSN": "x.db"}}`), 0644))

	c := BuildDefaultConfig()
	require.NoError(t, LoadConfigFile(js, c))
	assert.Equal(t, 3, c.WorkerCount)
	assert.Equal(t, 50, c.Sample.Size)
	assert.Equal(t, "x.db", c.Store.DSN)
	// untouched fields keep their defaults
	assert.Equal(t, vv.DEFAULTTRAINTABLE, c.Store.TrainTable)
	assert.Equal(t, str.FixedSeed(vv.SAMPLESEED), c.Sample.Seed)

	ym := filepath.Join(dir, "conf.yaml")
	require.NoError(t, os.WriteFile(ym, []byte("topic:\n  topics: 12\nprojection:\n  method: pca\nsample:\n  seed:\n    value: 9\n    fixed: true\n"), 0644))

	c = BuildDefaultConfig()
	require.NoError(t, LoadConfigFile(ym, c))
	assert.Equal(t, 12, c.Topic.Topics)
	assert.Equal(t, "pca", c.Projection.Method)
	assert.Equal(t, str.FixedSeed(9), c.Sample.Seed)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"WorkerCount": `), 0644))
	assert.Error(t, LoadConfigFile(broken, BuildDefaultConfig()))

	assert.Error(t, LoadConfigFile(filepath.Join(dir, "absent.json"), BuildDefaultConfig()))
}

func TestLoadVectorConfigFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, vv.CONFIGVECTORLDA), []byte(`{"Topics": 12, "Seed": {"Value": 4, "Fixed": true}}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, vv.CONFIGVECTORW2V), []byte(`{"Dim": 50, "ModelType": "cbow"}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, vv.CONFIGVECTORSTOP), []byte(`["cat", "dog"]`), 0644))

	c := BuildDefaultConfig()
	LoadVectorConfigFiles(dir, c)
	assert.Equal(t, 12, c.Topic.Topics)
	assert.Equal(t, str.FixedSeed(4), c.Topic.Seed)
	assert.Equal(t, vv.LDAITER, c.Topic.Iterations)
	assert.Equal(t, 50, c.Embedding.Dim)
	assert.Equal(t, vv.W2VWINDOW, c.Embedding.Window)
	assert.Equal(t, []string{"cat", "dog"}, c.StopList)

	// flags still win over the files
	_, err := ParseArgs(c, []string{"-tp", "6"})
	require.NoError(t, err)
	assert.Equal(t, 6, c.Topic.Topics)
}

func TestLoadVectorConfigFilesBrokenOrAbsent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, vv.CONFIGVECTORLDA), []byte(`{"Topics": `), 0644))

	c := BuildDefaultConfig()
	LoadVectorConfigFiles(dir, c)
	assert.Equal(t, BuildDefaultConfig().Topic, c.Topic)
	assert.Equal(t, BuildDefaultConfig().Embedding, c.Embedding)
	assert.Nil(t, c.StopList)

	LoadVectorConfigFiles("", c)
	assert.Equal(t, BuildDefaultConfig().Topic, c.Topic)
}

func TestNewMessageMakerConfigured(t *testing.T) {
	saved := *Config
	t.Cleanup(func() { *Config = saved })

	Config.LogLevel = 4
	Config.BlackAndWhite = true
	m := NewMessageMakerConfigured()
	assert.Equal(t, 4, m.LLvl)
	assert.True(t, m.BW)
	assert.Equal(t, vv.MYNAME, m.LNm)
}
