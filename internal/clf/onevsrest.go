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
	"time"
)

// OneVsRest - one LinearSVC per column of a binarised label matrix
type OneVsRest struct {
	Config     str.ClassifierConfig
	Estimators []*LinearSVC
	constant   []float64 // the score of a class that was all-positive or all-negative in training
}

func NewOneVsRest(cc str.ClassifierConfig) *OneVsRest {
	return &OneVsRest{Config: cc}
}

// Fit - x is docs × features; y is docs × classes with 0/1 cells
func (o *OneVsRest) Fit(x mat.Matrix, y mat.Matrix) error {
	const (
		FAIL1 = "OneVsRest.Fit(): %d feature rows but %d label rows"
		FAIL2 = "OneVsRest.Fit(): C must be positive"
		MSG1  = "OneVsRest.Fit(): class column %d is constant in the training data; its score will be %.0f"
	)

	start := time.Now()

	n, _ := x.Dims()
	ny, k := y.Dims()
	if n != ny {
		return fmt.Errorf(FAIL1, n, ny)
	}
	if o.Config.C <= 0 {
		return errors.New(FAIL2)
	}

	rows := sparserows(x)
	o.Estimators = make([]*LinearSVC, k)
	o.constant = make([]float64, k)

	for c := 0; c < k; c++ {
		col := mat.Col(nil, c, y)

		pos := 0
		for _, v := range col {
			if v > 0 {
				pos++
			}
		}
		if pos == 0 || pos == n {
			if pos == n {
				o.constant[c] = 1
			}
			Msg.WARN(fmt.Sprintf(MSG1, c, o.constant[c]))
			continue
		}

		svc := NewLinearSVC(o.Config)
		svc.fit(rows, x, col)
		o.Estimators[c] = svc
	}

	Msg.Timer("C", "OneVsRest.Fit()", start, start)
	return nil
}

// DecisionFunction - docs × classes scores
func (o *OneVsRest) DecisionFunction(x mat.Matrix) *mat.Dense {
	n, _ := x.Dims()
	k := len(o.Estimators)
	scores := mat.NewDense(n, k, nil)

	for c := 0; c < k; c++ {
		if o.Estimators[c] == nil {
			for i := 0; i < n; i++ {
				scores.Set(i, c, o.constant[c])
			}
			continue
		}
		scores.SetCol(c, o.Estimators[c].DecisionFunction(x))
	}
	return scores
}
