//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"bytes"
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestER(t *testing.T) {
	var b bytes.Buffer
	m := NewMessageMaker("FeatureLab", "FL", "0.0.0")
	m.Out = &b

	m.ER(nil, "quiet")
	assert.Empty(t, b.String())

	m.ER(errors.New("no such table"), "pipeline")
	assert.Contains(t, b.String(), "pipeline")
	assert.Contains(t, b.String(), "UNRECOVERABLE ERROR")
	assert.Contains(t, b.String(), "no such table")
}

func TestEmitRespectsLogLevel(t *testing.T) {
	var b bytes.Buffer
	m := NewMessageMaker("FeatureLab", "FL", "0.0.0")
	m.Out = &b
	m.BW = true

	m.TMI("hidden")
	assert.Empty(t, b.String())

	m.MAND("shown")
	assert.Contains(t, b.String(), "[FL] shown")
}
