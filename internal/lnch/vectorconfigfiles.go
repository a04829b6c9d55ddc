//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"encoding/json"
	"fmt"
	"github.com/e-gun/FeatureLab/internal/str"
	"github.com/e-gun/FeatureLab/internal/vv"
	"os"
	"path/filepath"
)

//
// PER-MODEL CONFIG FILES: read once at launch; the stages only ever see what ends up in Config
//

// vectorconfigdir - "~/.config/"
func vectorconfigdir() string {
	h, e := os.UserHomeDir()
	if e != nil {
		return ""
	}
	return fmt.Sprintf(vv.CONFIGALTAPTH, h)
}

// LoadVectorConfigFiles - overlay the word2vec, LDA and stop word files found in dir onto cfg
func LoadVectorConfigFiles(dir string, cfg *str.CurrentConfiguration) {
	const (
		ERR1 = "LoadVectorConfigFiles() failed to parse '%s'; keeping the current values"
		MSG1 = "read vector configuration from "
	)

	if dir == "" {
		return
	}

	// the w2v field names match word2vec.Options; fields EmbeddingConfig lacks are ignored
	ec := cfg.Embedding
	tc := cfg.Topic
	var stops []string

	targets := []struct {
		fn  string
		dst any
		set func()
	}{
		{vv.CONFIGVECTORW2V, &ec, func() { cfg.Embedding = ec }},
		{vv.CONFIGVECTORLDA, &tc, func() { cfg.Topic = tc }},
		{vv.CONFIGVECTORSTOP, &stops, func() { cfg.StopList = stops }},
	}

	for _, tg := range targets {
		fn := filepath.Join(dir, tg.fn)
		data, err := os.ReadFile(fn)
		if err != nil {
			continue
		}
		if err = json.Unmarshal(data, tg.dst); err != nil {
			Msg.CRIT(fmt.Sprintf(ERR1, fn))
			continue
		}
		tg.set()
		Msg.TMI(MSG1 + fn)
	}
}
