//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"github.com/e-gun/FeatureLab/internal/clf"
	"github.com/e-gun/FeatureLab/internal/db"
	"github.com/e-gun/FeatureLab/internal/eval"
	"github.com/e-gun/FeatureLab/internal/lnch"
	"github.com/e-gun/FeatureLab/internal/mm"
	"github.com/e-gun/FeatureLab/internal/run"
	"github.com/e-gun/FeatureLab/internal/vec"
)

// syncloglevels - every package built its MessageMaker before the config was read
func syncloglevels() {
	for _, m := range []*mm.MessageMaker{clf.Msg, db.Msg, eval.Msg, run.Msg, vec.Msg} {
		lnch.UpdateMessageMakerWithConfig(m)
		m.RunID = lnch.Msg.RunID
	}
}
