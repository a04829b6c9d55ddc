//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"github.com/e-gun/FeatureLab/internal/lnch"
	"github.com/e-gun/FeatureLab/internal/str"
	"github.com/e-gun/FeatureLab/internal/vv"
	"github.com/e-gun/wego/pkg/model/word2vec"
)

var (
	Msg = lnch.NewMessageMakerWithDefaults()
)

var (
	// DefaultW2VVectors - the fields that EmbeddingConfig does not carry
	DefaultW2VVectors = word2vec.Options{
		BatchSize:          1024,
		Dim:                vv.W2VDIM,
		DocInMemory:        true,
		Goroutines:         20,
		Initlr:             0.025,
		Iter:               vv.W2VITER,
		LogBatch:           100000,
		MaxCount:           -1,
		MaxDepth:           150,
		MinCount:           vv.W2VMINCOUNT,
		MinLR:              0.0000025,
		ModelType:          "skipgram", // "cbow" and "skipgram" available
		NegativeSampleSize: 5,
		OptimizerType:      "hs",
		SubsampleThreshold: vv.W2VSUBSAMPLE,
		ToLower:            false,
		UpdateLRBatch:      100000,
		Verbose:            false,
		Window:             vv.W2VWINDOW,
	}
)

//
// WEGO NOTES AND DEFAULTS
//

// w2vvectorconfig - word2vec.Options for an EmbeddingConfig; everything EmbeddingConfig does not name comes from DefaultW2VVectors
func w2vvectorconfig(ec str.EmbeddingConfig) word2vec.Options {
	cfg := DefaultW2VVectors
	cfg.Dim = ec.Dim
	cfg.Window = ec.Window
	cfg.MinCount = ec.MinCount
	cfg.SubsampleThreshold = ec.SubsampleThreshold
	cfg.Iter = ec.Iter
	cfg.Goroutines = max(ec.Workers, 1)
	return cfg
}
