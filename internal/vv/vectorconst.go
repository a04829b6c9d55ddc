//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	// vectorizers

	TOKENPATTERN = `\b[A-Za-z]{2,}\b`
	MINDF        = 2

	// similarity and clustering

	CLUSTERSOURCE  = "features" // "features" or "similarity"
	CLUSTERK       = 2
	CLUSTERNINIT   = 10
	CLUSTERMAXITER = 300
	CLUSTERTOL     = 1e-4
	CLUSTERSEED    = 0
	TOPICCLUSTERK  = 4

	// topic model

	LDATOPICS         = 8
	LDAITER           = 20
	LDAXFORMPASSES    = 10
	LDABURNINPASSES   = 1
	LDACHGEVALFRQ     = 10
	LDAPERPEVALFRQ    = 10
	LDAPERPTOL        = 1e-2
	LDASEED           = 0
	LDATOPWORDS       = 10
	LDAWEIGHTTHRESHLD = 0.6

	// embedding

	W2VDIM       = 100
	W2VWINDOW    = 20
	W2VMINCOUNT  = 5
	W2VSUBSAMPLE = 1e-3
	W2VITER      = 500
	W2VNEIGHBORS = 8

	// projection

	PROJECTIONDEFAULT = "tsne" // "tsne" or "pca"
	TSNEPERPLEX       = 2
	TSNELEARNRT       = 100
	TSNEMAXITER       = 500

	// classifier

	SPLITTESTFRAC = 0.25
	SPLITSEED     = 1
	SVCC          = 1.0
	SVCTOL        = 1e-4
	SVCMAXITER    = 1000
	SVCSEED       = 1
)
