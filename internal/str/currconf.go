//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

type CurrentConfiguration struct {
	BlackAndWhite bool
	LogLevel      int
	ProfileCPU    bool
	ProfileMEM    bool
	QuietStart    bool
	SkipEmbedding bool
	StopWords     bool
	StopList      []string `json:"StopList" yaml:"stop_list"` // replaces the built-in list when set
	WorkerCount   int

	Store      StoreConfig
	Sample     SampleConfig
	Cluster    ClusterConfig
	Topic      TopicConfig
	Embedding  EmbeddingConfig
	Projection ProjectionConfig
	Classifier ClassifierConfig
}

// StoreConfig - where the two labeled tables live and what their columns are called
type StoreConfig struct {
	Driver      string `json:"Driver" yaml:"driver"`
	DSN         string `json:"DSN" yaml:"dsn"`
	TrainTable  string `json:"TrainTable" yaml:"train_table"`
	TestTable   string `json:"TestTable" yaml:"test_table"`
	IndexColumn string `json:"IndexColumn" yaml:"index_column"`
	TextColumn  string `json:"TextColumn" yaml:"text_column"`
	HeadColumn  string `json:"HeadColumn" yaml:"head_column"`
	LabelColumn string `json:"LabelColumn" yaml:"label_column"`
}

type SampleConfig struct {
	Size int  `json:"Size" yaml:"size"`
	Seed Seed `json:"Seed" yaml:"seed"`
}

type ClusterConfig struct {
	Source  string  `json:"Source" yaml:"source"` // "features" or "similarity"
	K       int     `json:"K" yaml:"k"`
	NInit   int     `json:"NInit" yaml:"n_init"`
	MaxIter int     `json:"MaxIter" yaml:"max_iter"`
	Tol     float64 `json:"Tol" yaml:"tol"`
	Seed    Seed    `json:"Seed" yaml:"seed"`
	TopicK  int     `json:"TopicK" yaml:"topic_k"`
}

type TopicConfig struct {
	Topics               int     `json:"Topics" yaml:"topics"`
	Iterations           int     `json:"Iterations" yaml:"iterations"`
	TransformationPasses int     `json:"TransformationPasses" yaml:"transformation_passes"`
	BurnInPasses         int     `json:"BurnInPasses" yaml:"burn_in_passes"`
	ChangeEvalFrq        int     `json:"ChangeEvalFrq" yaml:"change_eval_frq"`
	PerplexEvalFrq       int     `json:"PerplexEvalFrq" yaml:"perplex_eval_frq"`
	PerplexTol           float64 `json:"PerplexTol" yaml:"perplex_tol"`
	TopWords             int     `json:"TopWords" yaml:"top_words"`
	WeightThreshold      float64 `json:"WeightThreshold" yaml:"weight_threshold"`
	Seed                 Seed    `json:"Seed" yaml:"seed"`
	Workers              int     `json:"Workers" yaml:"workers"`
}

type EmbeddingConfig struct {
	Dim                int     `json:"Dim" yaml:"dim"`
	Window             int     `json:"Window" yaml:"window"`
	MinCount           int     `json:"MinCount" yaml:"min_count"`
	SubsampleThreshold float64 `json:"SubsampleThreshold" yaml:"subsample_threshold"`
	Iter               int     `json:"Iter" yaml:"iter"`
	Neighbors          int     `json:"Neighbors" yaml:"neighbors"`
	Workers            int     `json:"Workers" yaml:"workers"`
	Seed               Seed    `json:"Seed" yaml:"seed"`
}

type ProjectionConfig struct {
	Method     string  `json:"Method" yaml:"method"` // "tsne" or "pca"
	Perplexity float64 `json:"Perplexity" yaml:"perplexity"`
	LearnRate  float64 `json:"LearnRate" yaml:"learn_rate"`
	MaxIter    int     `json:"MaxIter" yaml:"max_iter"`
	Seed       Seed    `json:"Seed" yaml:"seed"`
}

type ClassifierConfig struct {
	Classes      []int   `json:"Classes" yaml:"classes"`
	TestFraction float64 `json:"TestFraction" yaml:"test_fraction"`
	SplitSeed    Seed    `json:"SplitSeed" yaml:"split_seed"`
	C            float64 `json:"C" yaml:"c"`
	Tol          float64 `json:"Tol" yaml:"tol"`
	MaxIter      int     `json:"MaxIter" yaml:"max_iter"`
	Seed         Seed    `json:"Seed" yaml:"seed"`
}
