//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// CosineSimilarity - docs × docs; a zero row is similar to nothing, itself included
func CosineSimilarity(x *mat.Dense) *mat.SymDense {
	r, _ := x.Dims()

	norms := make([]float64, r)
	for i := 0; i < r; i++ {
		norms[i] = floats.Norm(x.RawRowView(i), 2)
	}

	// the gram matrix in one BLAS call, then scale
	var sim mat.SymDense
	sim.SymOuterK(1, x)

	for i := 0; i < r; i++ {
		for j := i; j < r; j++ {
			if norms[i] == 0 || norms[j] == 0 {
				sim.SetSym(i, j, 0)
				continue
			}
			v := sim.At(i, j) / (norms[i] * norms[j])
			if i == j {
				v = 1
			}
			sim.SetSym(i, j, v)
		}
	}
	return &sim
}
