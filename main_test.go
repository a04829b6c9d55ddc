//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"bytes"
	"context"
	"github.com/e-gun/FeatureLab/internal/lnch"
	"github.com/e-gun/FeatureLab/internal/mm"
	"github.com/e-gun/FeatureLab/internal/str"
	"github.com/e-gun/FeatureLab/internal/vv"
	"github.com/stretchr/testify/assert"
	"path/filepath"
	"testing"
)

func TestExecuteReturnsPipelineErrors(t *testing.T) {
	cfg := lnch.BuildDefaultConfig()
	cfg.Store.DSN = filepath.Join(t.TempDir(), "nothing.db")
	cfg.SkipEmbedding = true

	var logged, report bytes.Buffer
	msg := mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION)
	msg.Out = &logged
	msg.BW = true

	// a failed run comes back to launch() so the deferred profiler still stops
	err := execute(context.Background(), cfg, msg, &report)
	assert.ErrorIs(t, err, str.ErrDataAccess)
	assert.Contains(t, logged.String(), "UNRECOVERABLE ERROR")
	assert.Contains(t, logged.String(), "pipeline")
	assert.Empty(t, report.String())
}
