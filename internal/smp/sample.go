//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package smp

import (
	"github.com/e-gun/FeatureLab/internal/str"
)

// Sample - n distinct rows drawn uniformly without replacement; the same seed and table give the same rows in the same order
func Sample(t str.Table, n int, seed str.Seed) (str.Table, error) {
	if n < 0 || n > t.Len() {
		return str.Table{}, &str.InsufficientDataError{Want: n, Have: t.Len()}
	}

	// a partial Fisher-Yates: only the first n slots need to settle
	r := seed.Rand()
	idx := make([]int, t.Len())
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + r.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	s := str.Table{Name: t.Name, Docs: make([]str.Document, n)}
	for i := 0; i < n; i++ {
		s.Docs[i] = t.Docs[idx[i]]
	}
	return s, nil
}
