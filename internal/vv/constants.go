//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

import "time"

const (
	MYNAME    = "FeatureLab"
	SHORTNAME = "FL"
	VERSION   = "0.4.2"

	BLACKANDWHITE     = false
	CONFIGLOCATION    = "."
	CONFIGALTAPTH     = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGBASIC       = "fl-conf.json"
	CONFIGVECTORW2V   = "fl-vector-conf-w2v.json"
	CONFIGVECTORLDA   = "fl-vector-conf-lda.json"
	CONFIGVECTORSTOP  = "fl-vector-stops.json"
	DEFAULTGOLOGLEVEL = 0

	// storage

	DEFAULTDRIVER     = "sqlite"
	DEFAULTDBPATH     = "./data/cleanedtraintest_v2.db"
	DEFAULTTRAINTABLE = "train_data"
	DEFAULTTESTTABLE  = "test_data"
	DEFAULTINDEXCOL   = "index"
	DEFAULTTEXTCOL    = "content_cleaned"
	DEFAULTHEADCOL    = "headline_cleaned"
	DEFAULTLABELCOL   = "category"
	DBQUERYTIMEOUT    = 5 * time.Minute

	// sampling

	SAMPLESIZE = 4000
	SAMPLESEED = 123

	// reporting

	TOPNGRAMS     = 40
	TOPCHARGRAMS  = 50
	TOPTRAINWORDS = 20
	REPORTPREVIEW = 5
)

// LABELCLASSES - the fixed, ordered label space
var LABELCLASSES = []int{1, 2, 3, 4}
