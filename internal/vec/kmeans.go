//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"fmt"
	"github.com/e-gun/FeatureLab/internal/str"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"math"
	"sort"
)

//
// K-MEANS: Lloyd iterations from K randomly chosen rows; NInit restarts; keep the lowest inertia
//

type KMeans struct {
	K       int
	NInit   int
	MaxIter int
	Tol     float64
	Seed    str.Seed
}

// Clustering - the winning restart
type Clustering struct {
	Labels     []int
	Centroids  *mat.Dense
	Inertia    float64
	Iterations int
}

func NewKMeans(cc str.ClusterConfig, k int) *KMeans {
	return &KMeans{
		K:       k,
		NInit:   max(cc.NInit, 1),
		MaxIter: max(cc.MaxIter, 1),
		Tol:     cc.Tol,
		Seed:    cc.Seed,
	}
}

// Fit - cluster the rows of x
func (km *KMeans) Fit(x mat.Matrix) (*Clustering, error) {
	const (
		FAIL1 = "KMeans.Fit(): K must be at least 1; got %d"
		MSG1  = "KMeans.Fit() is unseeded: cluster labels will vary from run to run"
	)

	n, _ := x.Dims()
	if km.K < 1 {
		return nil, fmt.Errorf(FAIL1, km.K)
	}
	if km.K > n {
		return nil, &str.InsufficientDataError{Want: km.K, Have: n}
	}
	if !km.Seed.Fixed {
		Msg.NOTE(MSG1)
	}

	rows := rowsof(x)
	tol := km.Tol * meanvariance(rows)
	rng := km.Seed.Rand()

	var best *Clustering
	for i := 0; i < km.NInit; i++ {
		c := km.lloyd(rows, rng, tol)
		if best == nil || c.Inertia < best.Inertia {
			best = c
		}
	}
	return best, nil
}

// lloyd - one restart
func (km *KMeans) lloyd(rows [][]float64, rng *rand.Rand, tol float64) *Clustering {
	n := len(rows)
	dim := len(rows[0])

	centroids := make([][]float64, km.K)
	for i, p := range rng.Perm(n)[0:km.K] {
		centroids[i] = append([]float64(nil), rows[p]...)
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}

	iter := 0
	for iter < km.MaxIter {
		iter++
		changed := assign(rows, centroids, labels)

		next := make([][]float64, km.K)
		counts := make([]int, km.K)
		for k := range next {
			next[k] = make([]float64, dim)
		}
		for i, r := range rows {
			floats.Add(next[labels[i]], r)
			counts[labels[i]]++
		}
		if relocate(rows, centroids, labels, next, counts) {
			changed = true
		}
		for k := range next {
			if counts[k] == 0 {
				// only reachable if relocation drained a cluster
				copy(next[k], centroids[k])
				continue
			}
			floats.Scale(1/float64(counts[k]), next[k])
		}

		shift := 0.0
		for k := range next {
			shift += sqdist(next[k], centroids[k])
		}
		centroids = next

		if !changed || shift <= tol {
			break
		}
	}

	// labels and inertia always describe the final centroids
	assign(rows, centroids, labels)
	inertia := 0.0
	for i, r := range rows {
		inertia += sqdist(r, centroids[labels[i]])
	}

	cm := mat.NewDense(km.K, dim, nil)
	for k := range centroids {
		cm.SetRow(k, centroids[k])
	}

	return &Clustering{Labels: labels, Centroids: cm, Inertia: inertia, Iterations: iter}
}

// Sizes - members per cluster
func (c *Clustering) Sizes() []int {
	k := 0
	if c.Centroids != nil {
		k, _ = c.Centroids.Dims()
	}
	sz := make([]int, k)
	for _, l := range c.Labels {
		sz[l]++
	}
	return sz
}

// assign - nearest centroid for every row; reports whether any label moved
func assign(rows [][]float64, centroids [][]float64, labels []int) bool {
	changed := false
	for i, r := range rows {
		bestk := 0
		bestd := math.Inf(1)
		for k, c := range centroids {
			if d := sqdist(r, c); d < bestd {
				bestd = d
				bestk = k
			}
		}
		if labels[i] != bestk {
			labels[i] = bestk
			changed = true
		}
	}
	return changed
}

// relocate - each empty cluster takes one of the points farthest from their own centroids, a different point apiece;
// next holds unscaled sums and counts the members, and both are moved along with the point
func relocate(rows [][]float64, centroids [][]float64, labels []int, next [][]float64, counts []int) bool {
	var empty []int
	for k := range counts {
		if counts[k] == 0 {
			empty = append(empty, k)
		}
	}
	if len(empty) == 0 {
		return false
	}

	order := make([]int, len(rows))
	dist := make([]float64, len(rows))
	for i, r := range rows {
		order[i] = i
		dist[i] = sqdist(r, centroids[labels[i]])
	}
	sort.SliceStable(order, func(a, b int) bool {
		return dist[order[a]] > dist[order[b]]
	})

	for j, k := range empty {
		if j >= len(order) {
			break
		}
		far := order[j]
		old := labels[far]
		floats.Sub(next[old], rows[far])
		counts[old]--
		copy(next[k], rows[far])
		counts[k] = 1
		labels[far] = k
	}
	return true
}

func sqdist(a []float64, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d
}

// meanvariance - the average per-feature variance; Tol is relative to it
func meanvariance(rows [][]float64) float64 {
	if len(rows) < 2 {
		return 0
	}
	dim := len(rows[0])
	col := make([]float64, len(rows))
	total := 0.0
	for j := 0; j < dim; j++ {
		for i := range rows {
			col[i] = rows[i][j]
		}
		_, v := stat.PopMeanVariance(col, nil)
		total += v
	}
	return total / float64(dim)
}

// rowsof - row slices without copying when x is already dense
func rowsof(x mat.Matrix) [][]float64 {
	d, ok := x.(*mat.Dense)
	if !ok {
		d = mat.DenseCopyOf(x)
	}
	n, _ := d.Dims()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = d.RawRowView(i)
	}
	return rows
}
