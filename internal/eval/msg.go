//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package eval

import (
	"github.com/e-gun/FeatureLab/internal/lnch"
)

var Msg = lnch.NewMessageMakerWithDefaults()
