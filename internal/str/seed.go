//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"fmt"
	"golang.org/x/exp/rand"
	"time"
)

// Seed - either a fixed value or nothing at all; an unfixed seed means a best-effort, non-reproducible run
type Seed struct {
	Value uint64 `json:"Value" yaml:"value"`
	Fixed bool   `json:"Fixed" yaml:"fixed"`
}

func FixedSeed(v uint64) Seed {
	return Seed{Value: v, Fixed: true}
}

func Unseeded() Seed {
	return Seed{}
}

// Uint64 - the fixed value or the clock
func (s Seed) Uint64() uint64 {
	if !s.Fixed {
		return uint64(time.Now().UnixNano())
	}
	return s.Value
}

// Rand - a PCG generator for this seed
func (s Seed) Rand() *rand.Rand {
	return rand.New(rand.NewSource(s.Uint64()))
}

func (s Seed) String() string {
	if !s.Fixed {
		return "unseeded"
	}
	return fmt.Sprintf("seed=%d", s.Value)
}
