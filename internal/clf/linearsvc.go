//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package clf

import (
	"errors"
	"fmt"
	"github.com/e-gun/FeatureLab/internal/str"
	"gonum.org/v1/gonum/mat"
	"math"
)

//
// LINEAR SVM: L2-regularised squared hinge loss solved in the dual by coordinate descent (liblinear's solver #1)
//

// LinearSVC - a binary classifier over {0,1} targets
type LinearSVC struct {
	C       float64
	Tol     float64
	MaxIter int
	Seed    str.Seed
	Bias    float64 // value of the synthetic intercept feature; 0 disables the intercept

	W          []float64
	B          float64
	Iterations int
	Converged  bool
}

func NewLinearSVC(cc str.ClassifierConfig) *LinearSVC {
	return &LinearSVC{
		C:       cc.C,
		Tol:     cc.Tol,
		MaxIter: max(cc.MaxIter, 1),
		Seed:    cc.Seed,
		Bias:    1,
	}
}

// sparserow - the non-zero cells of one document
type sparserow struct {
	idx []int
	val []float64
}

func sparserows(x mat.Matrix) []sparserow {
	r, c := x.Dims()
	rows := make([]sparserow, r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := x.At(i, j); v != 0 {
				rows[i].idx = append(rows[i].idx, j)
				rows[i].val = append(rows[i].val, v)
			}
		}
	}
	return rows
}

// Fit - y holds 1 for the positive class and 0 otherwise
func (s *LinearSVC) Fit(x mat.Matrix, y []float64) error {
	const (
		FAIL1 = "LinearSVC.Fit(): %d rows but %d targets"
		FAIL2 = "LinearSVC.Fit(): C must be positive"
	)

	n, _ := x.Dims()
	if n != len(y) {
		return fmt.Errorf(FAIL1, n, len(y))
	}
	if s.C <= 0 {
		return errors.New(FAIL2)
	}
	s.fit(sparserows(x), x, y)
	return nil
}

func (s *LinearSVC) fit(rows []sparserow, x mat.Matrix, y []float64) {
	const (
		MSG1 = "LinearSVC.Fit() did not converge after %d iterations"
	)

	l := len(rows)
	_, d := x.Dims()

	diag := 0.5 / s.C
	yy := make([]float64, l)
	qd := make([]float64, l)
	for i := 0; i < l; i++ {
		yy[i] = -1
		if y[i] > 0 {
			yy[i] = 1
		}
		qd[i] = diag + s.Bias*s.Bias
		for _, v := range rows[i].val {
			qd[i] += v * v
		}
	}

	w := make([]float64, d)
	wb := 0.0
	alpha := make([]float64, l)
	index := make([]int, l)
	for i := range index {
		index[i] = i
	}

	rng := s.Seed.Rand()
	activesize := l
	pgmaxold := math.Inf(1)

	iter := 0
	s.Converged = false
	for iter < s.MaxIter {
		pgmaxnew := math.Inf(-1)
		pgminnew := math.Inf(1)

		for i := 0; i < activesize; i++ {
			j := i + rng.Intn(activesize-i)
			index[i], index[j] = index[j], index[i]
		}

		for k := 0; k < activesize; k++ {
			i := index[k]
			r := rows[i]

			g := wb * s.Bias
			for m, col := range r.idx {
				g += w[col] * r.val[m]
			}
			g = yy[i]*g - 1 + alpha[i]*diag

			pg := 0.0
			if alpha[i] == 0 {
				if g > pgmaxold {
					// shrink: this alpha is unlikely to move
					activesize--
					index[k], index[activesize] = index[activesize], index[k]
					k--
					continue
				} else if g < 0 {
					pg = g
				}
			} else {
				pg = g
			}

			pgmaxnew = math.Max(pgmaxnew, pg)
			pgminnew = math.Min(pgminnew, pg)

			if math.Abs(pg) > 1e-12 {
				old := alpha[i]
				alpha[i] = math.Max(alpha[i]-g/qd[i], 0)
				delta := (alpha[i] - old) * yy[i]
				for m, col := range r.idx {
					w[col] += delta * r.val[m]
				}
				wb += delta * s.Bias
			}
		}

		iter++

		if pgmaxnew-pgminnew <= s.Tol {
			if activesize == l {
				s.Converged = true
				break
			}
			activesize = l
			pgmaxold = math.Inf(1)
			continue
		}

		// alphas have no upper bound with the squared hinge, so only the max side can shrink
		pgmaxold = pgmaxnew
		if pgmaxold <= 0 {
			pgmaxold = math.Inf(1)
		}
	}

	if !s.Converged {
		Msg.WARN(fmt.Sprintf(MSG1, iter))
	}

	s.W = w
	s.B = wb * s.Bias
	s.Iterations = iter
}

// DecisionFunction - signed distance to the hyperplane for every row
func (s *LinearSVC) DecisionFunction(x mat.Matrix) []float64 {
	r, c := x.Dims()
	out := make([]float64, r)
	for i := 0; i < r; i++ {
		v := s.B
		for j := 0; j < c && j < len(s.W); j++ {
			if s.W[j] != 0 {
				v += s.W[j] * x.At(i, j)
			}
		}
		out[i] = v
	}
	return out
}
