//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package eval

import (
	"errors"
	"fmt"
	"github.com/e-gun/FeatureLab/internal/gen"
	"github.com/e-gun/FeatureLab/internal/str"
	"math"
	"sort"
)

// PRCurve - precision and recall at every distinct score threshold; the arrays run from the lowest threshold
// (highest recall) to the highest, and Precision/Recall carry one extra final point (P=1, R=0)
type PRCurve struct {
	Precision  []float64
	Recall     []float64
	Thresholds []float64
}

// PrecisionRecallCurve - y holds 1 for a positive and 0 for a negative
func PrecisionRecallCurve(y []float64, scores []float64) (PRCurve, error) {
	const (
		FAIL1 = "PrecisionRecallCurve(): %d labels but %d scores"
		FAIL2 = "PrecisionRecallCurve() was given no samples"
	)

	var c PRCurve
	if len(y) != len(scores) {
		return c, fmt.Errorf(FAIL1, len(y), len(scores))
	}
	if len(y) == 0 {
		return c, errors.New(FAIL2)
	}

	tps, fps, thr := cumulativecounts(y, scores)

	npos := tps[len(tps)-1]
	n := len(thr)
	c.Precision = make([]float64, n+1)
	c.Recall = make([]float64, n+1)
	c.Thresholds = make([]float64, n)

	// reverse so that recall is decreasing
	for i := 0; i < n; i++ {
		k := n - 1 - i
		c.Precision[i] = tps[k] / (tps[k] + fps[k])
		if npos > 0 {
			c.Recall[i] = tps[k] / npos
		} else {
			c.Recall[i] = 1
		}
		c.Thresholds[i] = thr[k]
	}
	c.Precision[n] = 1
	c.Recall[n] = 0

	if npos == 0 {
		return c, str.ErrUndefinedMetric
	}
	return c, nil
}

// cumulativecounts - true and false positives accumulated down the score ranking, one entry per distinct score
func cumulativecounts(y []float64, scores []float64) ([]float64, []float64, []float64) {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	var tps, fps, thr []float64
	tp, fp := 0.0, 0.0
	for k, i := range order {
		if y[i] > 0 {
			tp++
		} else {
			fp++
		}
		// close a threshold when the next score differs or the ranking ends
		if k == len(order)-1 || scores[order[k+1]] != scores[i] {
			tps = append(tps, tp)
			fps = append(fps, fp)
			thr = append(thr, scores[i])
		}
	}
	return tps, fps, thr
}

// AveragePrecision - Σ (Rₙ − Rₙ₋₁)·Pₙ over descending thresholds; NaN and ErrUndefinedMetric when y has no positives
func AveragePrecision(y []float64, scores []float64) (float64, error) {
	c, err := PrecisionRecallCurve(y, scores)
	if err != nil {
		return math.NaN(), err
	}
	return apfromcurve(c), nil
}

func apfromcurve(c PRCurve) float64 {
	ap := 0.0
	for i := 0; i < len(c.Recall)-1; i++ {
		ap += (c.Recall[i] - c.Recall[i+1]) * c.Precision[i]
	}
	return ap
}

// ClassMetric - the curve and AP of one class column
type ClassMetric struct {
	Class     int
	Positives int
	Curve     PRCurve
	AP        float64
	Undefined bool
}

// Evaluation - per-class results, the micro average over the pooled ranking, and the mean of the defined per-class APs
type Evaluation struct {
	PerClass       []ClassMetric
	Micro          PRCurve
	MicroAP        float64
	MicroUndefined bool
	MeanAP         float64
}

// Evaluate - y and scores are docs × classes, rows in the same document order
func Evaluate(y [][]float64, scores [][]float64, classes []int) (*Evaluation, error) {
	const (
		FAIL1 = "Evaluate(): %d label rows but %d score rows"
		FAIL2 = "Evaluate(): row %d has %d labels and %d scores but there are %d classes"
		MSG1  = "average precision for class %d is undefined: no positive samples"
	)

	if len(y) != len(scores) {
		return nil, fmt.Errorf(FAIL1, len(y), len(scores))
	}
	for i := range y {
		if len(y[i]) != len(classes) || len(scores[i]) != len(classes) {
			return nil, fmt.Errorf(FAIL2, i, len(y[i]), len(scores[i]), len(classes))
		}
	}

	ev := &Evaluation{}
	ycols := gen.Transpose(y)
	scols := gen.Transpose(scores)

	defined := 0
	total := 0.0
	for j, cl := range classes {
		cm := ClassMetric{Class: cl, Positives: gen.ContainsN(ycols[j], 1)}
		cv, err := PrecisionRecallCurve(ycols[j], scols[j])
		switch {
		case errors.Is(err, str.ErrUndefinedMetric):
			cm.Curve = cv
			cm.AP = math.NaN()
			cm.Undefined = true
			Msg.WARN(fmt.Sprintf(MSG1, cl))
		case err != nil:
			return nil, err
		default:
			cm.Curve = cv
			cm.AP = apfromcurve(cv)
			total += cm.AP
			defined++
		}
		ev.PerClass = append(ev.PerClass, cm)
	}

	ev.MeanAP = math.NaN()
	if defined > 0 {
		ev.MeanAP = total / float64(defined)
	}

	// every (document, class) pair goes into a single ranking
	micro, err := PrecisionRecallCurve(gen.FlattenSlices(y), gen.FlattenSlices(scores))
	switch {
	case errors.Is(err, str.ErrUndefinedMetric):
		ev.Micro = micro
		ev.MicroAP = math.NaN()
		ev.MicroUndefined = true
	case err != nil:
		return nil, err
	default:
		ev.Micro = micro
		ev.MicroAP = apfromcurve(micro)
	}

	return ev, nil
}
