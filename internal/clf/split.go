//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package clf

import (
	"fmt"
	"github.com/e-gun/FeatureLab/internal/lnch"
	"github.com/e-gun/FeatureLab/internal/str"
	"gonum.org/v1/gonum/mat"
	"math"
)

var Msg = lnch.NewMessageMakerWithDefaults()

// Binarize - docs × classes indicator matrix; a label outside the class list yields an all-zero row
func Binarize(labels []int, classes []int) *mat.Dense {
	if len(labels) == 0 || len(classes) == 0 {
		return &mat.Dense{}
	}
	col := make(map[int]int, len(classes))
	for j, c := range classes {
		col[c] = j
	}
	y := mat.NewDense(len(labels), len(classes), nil)
	for i, l := range labels {
		if j, ok := col[l]; ok {
			y.Set(i, j, 1)
		}
	}
	return y
}

// TrainTestSplit - shuffled row indices; ceil(n·testFraction) rows go to the test side
func TrainTestSplit(n int, testFraction float64, seed str.Seed) ([]int, []int, error) {
	const (
		FAIL1 = "TrainTestSplit(): a test fraction of %.3f leaves %d train and %d test rows out of %d"
	)

	ntest := int(math.Ceil(testFraction * float64(n)))
	ntrain := n - ntest
	if testFraction <= 0 || testFraction >= 1 || ntest < 1 || ntrain < 1 {
		return nil, nil, fmt.Errorf(FAIL1, testFraction, ntrain, ntest, n)
	}

	perm := seed.Rand().Perm(n)
	return perm[ntest:], perm[0:ntest], nil
}

// SelectRows - a new matrix built from the listed rows of x, in the listed order
func SelectRows(x mat.Matrix, rows []int) *mat.Dense {
	_, c := x.Dims()
	if len(rows) == 0 || c == 0 {
		return &mat.Dense{}
	}
	out := mat.NewDense(len(rows), c, nil)
	for i, r := range rows {
		for j := 0; j < c; j++ {
			out.Set(i, j, x.At(r, j))
		}
	}
	return out
}

// SelectStrings - the listed elements of s, in the listed order
func SelectStrings(s []string, idx []int) []string {
	out := make([]string, len(idx))
	for i, k := range idx {
		out[i] = s[k]
	}
	return out
}
