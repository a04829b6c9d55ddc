//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/e-gun/FeatureLab/internal/str"
	"github.com/e-gun/FeatureLab/internal/vv"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"text/template"
)

var (
	Config = BuildDefaultConfig()
	Msg    = NewMessageMakerWithDefaults()
)

// Request - what the command line asked for
type Request int

const (
	RunPipeline Request = iota
	ShowHelp
	ShowVersion
	ShowFullVersion
)

// ConfigAtLaunch - read the configuration values from JSON/YAML, then the per-model files, then the command line
func ConfigAtLaunch() {
	const (
		FAIL1 = "Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead."
		FAIL2 = "Refusing to set a workercount greater than NumCPU: %d > %d ---> setting workercount value to NumCPU: %d"
		MSG1  = "'%s' loaded"
	)

	args := os.Args[1:len(os.Args)]

	cf := configfilepath(args)
	if cf != "" {
		if err := LoadConfigFile(cf, Config); err != nil {
			Msg.CRIT(fmt.Sprintf(FAIL1, cf))
			Msg.TMI(err.Error())
		} else {
			Msg.TMI(fmt.Sprintf(MSG1, cf))
		}
	}

	LoadVectorConfigFiles(vectorconfigdir(), Config)

	req, err := ParseArgs(Config, args)
	Msg.EC(err)

	Msg = NewMessageMakerConfigured()

	switch req {
	case ShowFullVersion:
		PrintVersion(*Config)
		PrintBuildInfo(*Config)
		os.Exit(1)
	case ShowVersion:
		fmt.Println(vv.VERSION + VersSuppl)
		os.Exit(1)
	case ShowHelp:
		help()
		os.Exit(0)
	}

	if Config.WorkerCount > runtime.NumCPU() {
		Msg.CRIT(fmt.Sprintf(FAIL2, Config.WorkerCount, runtime.NumCPU(), runtime.NumCPU()))
		Config.WorkerCount = runtime.NumCPU()
	}
	Config.Topic.Workers = Config.WorkerCount
	Config.Embedding.Workers = Config.WorkerCount
}

// configfilepath - an explicit "-c" file wins; then "./fl-conf.json"; then "~/.config/fl-conf.json"
func configfilepath(args []string) string {
	for i, a := range args {
		if a == "-c" && i+1 < len(args) {
			return args[i+1]
		}
	}

	local := fmt.Sprintf("%s/%s", vv.CONFIGLOCATION, vv.CONFIGBASIC)
	if _, err := os.Stat(local); err == nil {
		return local
	}

	h, e := os.UserHomeDir()
	if e != nil {
		return ""
	}
	alt := fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGBASIC
	if _, err := os.Stat(alt); err == nil {
		return alt
	}
	return ""
}

// LoadConfigFile - overlay a JSON or YAML file onto cfg; unset fields keep their current values
func LoadConfigFile(path string, cfg *str.CurrentConfiguration) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.NewDecoder(bytes.NewReader(data)).Decode(cfg)
	}
	if err != nil {
		return fmt.Errorf("LoadConfigFile() failed to parse '%s': %w", path, err)
	}
	return nil
}

// ParseArgs - apply command line flags to cfg
func ParseArgs(cfg *str.CurrentConfiguration, args []string) (Request, error) {
	const (
		FAIL1 = "'%s' requires a value"
		FAIL2 = "'%s' expects one of %s; got '%s'"
	)

	req := RunPipeline

	next := func(i int) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf(FAIL1, args[i])
		}
		return args[i+1], nil
	}

	nextint := func(i int) (int, error) {
		v, err := next(i)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("'%s': %w", args[i], err)
		}
		return n, nil
	}

	oneof := func(i int, allowed []string) (string, error) {
		v, err := next(i)
		if err != nil {
			return "", err
		}
		if !slices.Contains(allowed, v) {
			return "", fmt.Errorf(FAIL2, args[i], strings.Join(allowed, "|"), v)
		}
		return v, nil
	}

	var err error
	for i, a := range args {
		switch a {
		case "-vv":
			req = ShowFullVersion
		case "-v":
			req = ShowVersion
		case "-h":
			req = ShowHelp
		case "-bw":
			cfg.BlackAndWhite = true
		case "-c":
			// handled by configfilepath()
		case "-cl":
			cfg.Cluster.Source, err = oneof(i, []string{"features", "similarity"})
		case "-db":
			cfg.Store.DSN, err = next(i)
		case "-dr":
			cfg.Store.Driver, err = oneof(i, []string{"sqlite", "sqlite3", "pgx", "postgres", "mysql"})
		case "-gl":
			cfg.LogLevel, err = nextint(i)
		case "-it":
			cfg.Embedding.Iter, err = nextint(i)
		case "-n":
			cfg.Sample.Size, err = nextint(i)
		case "-nw":
			cfg.SkipEmbedding = true
		case "-pc":
			cfg.ProfileCPU = true
		case "-pj":
			cfg.Projection.Method, err = oneof(i, []string{"tsne", "pca"})
		case "-pm":
			cfg.ProfileMEM = true
		case "-q":
			cfg.QuietStart = true
		case "-sd":
			var v string
			v, err = next(i)
			if err == nil {
				cfg.Sample.Seed, err = parseseed(v)
			}
		case "-sw":
			cfg.StopWords = true
		case "-tp":
			cfg.Topic.Topics, err = nextint(i)
		case "-wc":
			cfg.WorkerCount, err = nextint(i)
		default:
			// do nothing
		}
		if err != nil {
			return req, err
		}
	}

	if cfg.Sample.Size < 0 {
		return req, errors.New("'-n' cannot be negative")
	}
	if cfg.WorkerCount < 1 {
		cfg.WorkerCount = 1
	}
	return req, nil
}

// parseseed - "none" means a best-effort run; anything else must be an unsigned integer
func parseseed(v string) (str.Seed, error) {
	if v == "none" {
		return str.Unseeded(), nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return str.Seed{}, fmt.Errorf("'-sd': %w", err)
	}
	return str.FixedSeed(n), nil
}

func help() {
	const (
		FAIL1 = "help() failed to execute help text template"
	)

	PrintVersion(*Config)
	PrintBuildInfo(*Config)

	h, _ := os.UserHomeDir()

	m := map[string]interface{}{
		"clsrc":    Config.Cluster.Source,
		"conffile": vv.CONFIGBASIC,
		"cpus":     runtime.NumCPU(),
		"driver":   Config.Store.Driver,
		"dsn":      Config.Store.DSN,
		"home":     fmt.Sprintf(vv.CONFIGALTAPTH, h),
		"ll":       Config.LogLevel,
		"proj":     Config.Projection.Method,
		"sample":   Config.Sample.Size,
		"seed":     Config.Sample.Seed.String(),
		"stops":    vv.CONFIGVECTORSTOP,
		"topics":   Config.Topic.Topics,
		"w2viter":  Config.Embedding.Iter,
		"workers":  Config.WorkerCount,
	}

	t := template.Must(template.New("").Parse(vv.HELPTEXTTEMPLATE))

	var b bytes.Buffer
	if ee := t.Execute(&b, m); ee != nil {
		Msg.CRIT(FAIL1)
	}
	fmt.Println(Msg.ColStyle(b.String()))
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with various default values
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.BlackAndWhite = vv.BLACKANDWHITE
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.ProfileCPU = false
	c.ProfileMEM = false
	c.QuietStart = false
	c.SkipEmbedding = false
	c.StopWords = false
	c.WorkerCount = runtime.NumCPU()

	c.Store = str.StoreConfig{
		Driver:      vv.DEFAULTDRIVER,
		DSN:         vv.DEFAULTDBPATH,
		TrainTable:  vv.DEFAULTTRAINTABLE,
		TestTable:   vv.DEFAULTTESTTABLE,
		IndexColumn: vv.DEFAULTINDEXCOL,
		TextColumn:  vv.DEFAULTTEXTCOL,
		HeadColumn:  vv.DEFAULTHEADCOL,
		LabelColumn: vv.DEFAULTLABELCOL,
	}

	c.Sample = str.SampleConfig{
		Size: vv.SAMPLESIZE,
		Seed: str.FixedSeed(vv.SAMPLESEED),
	}

	c.Cluster = str.ClusterConfig{
		Source:  vv.CLUSTERSOURCE,
		K:       vv.CLUSTERK,
		NInit:   vv.CLUSTERNINIT,
		MaxIter: vv.CLUSTERMAXITER,
		Tol:     vv.CLUSTERTOL,
		Seed:    str.FixedSeed(vv.CLUSTERSEED),
		TopicK:  vv.TOPICCLUSTERK,
	}

	c.Topic = str.TopicConfig{
		Topics:               vv.LDATOPICS,
		Iterations:           vv.LDAITER,
		TransformationPasses: vv.LDAXFORMPASSES,
		BurnInPasses:         vv.LDABURNINPASSES,
		ChangeEvalFrq:        vv.LDACHGEVALFRQ,
		PerplexEvalFrq:       vv.LDAPERPEVALFRQ,
		PerplexTol:           vv.LDAPERPTOL,
		TopWords:             vv.LDATOPWORDS,
		WeightThreshold:      vv.LDAWEIGHTTHRESHLD,
		Seed:                 str.FixedSeed(vv.LDASEED),
		Workers:              c.WorkerCount,
	}

	// wego exposes no seed: word2vec always runs best-effort
	c.Embedding = str.EmbeddingConfig{
		Dim:                vv.W2VDIM,
		Window:             vv.W2VWINDOW,
		MinCount:           vv.W2VMINCOUNT,
		SubsampleThreshold: vv.W2VSUBSAMPLE,
		Iter:               vv.W2VITER,
		Neighbors:          vv.W2VNEIGHBORS,
		Workers:            c.WorkerCount,
		Seed:               str.Unseeded(),
	}

	c.Projection = str.ProjectionConfig{
		Method:     vv.PROJECTIONDEFAULT,
		Perplexity: vv.TSNEPERPLEX,
		LearnRate:  vv.TSNELEARNRT,
		MaxIter:    vv.TSNEMAXITER,
		Seed:       str.Unseeded(),
	}

	c.Classifier = str.ClassifierConfig{
		Classes:      slices.Clone(vv.LABELCLASSES),
		TestFraction: vv.SPLITTESTFRAC,
		SplitSeed:    str.FixedSeed(vv.SPLITSEED),
		C:            vv.SVCC,
		Tol:          vv.SVCTOL,
		MaxIter:      vv.SVCMAXITER,
		Seed:         str.FixedSeed(vv.SVCSEED),
	}

	return &c
}
