//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"errors"
	"fmt"
	"github.com/danaugrs/go-tsne/tsne"
	"github.com/e-gun/FeatureLab/internal/str"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"time"
)

//
// 2D PROJECTION
//

// Project2D - rows × 2 coordinates for a scatter plot
func Project2D(x *mat.Dense, pc str.ProjectionConfig) (*mat.Dense, error) {
	const (
		FAIL1 = "Project2D() needs at least two rows; got %d"
		FAIL2 = "Project2D(): unknown method '%s'"
		MSG1  = "Project2D() t-SNE cannot be seeded: coordinates will vary from run to run"
	)

	start := time.Now()
	if x == nil || x.IsEmpty() {
		return nil, fmt.Errorf(FAIL1, 0)
	}
	r, _ := x.Dims()
	if r < 2 {
		return nil, fmt.Errorf(FAIL1, r)
	}

	var y *mat.Dense
	var err error
	switch pc.Method {
	case "pca":
		y, err = pca2d(x)
	case "tsne", "":
		Msg.NOTE(MSG1)
		y = tsne2d(x, pc)
	default:
		return nil, fmt.Errorf(FAIL2, pc.Method)
	}
	if err != nil {
		return nil, err
	}

	Msg.Timer("P", "Project2D()", start, start)
	return y, nil
}

func tsne2d(x *mat.Dense, pc str.ProjectionConfig) *mat.Dense {
	t := tsne.NewTSNE(2, pc.Perplexity, pc.LearnRate, pc.MaxIter, false)
	y := t.EmbedData(x, nil)
	return mat.DenseCopyOf(y)
}

// pca2d - the first two principal components; deterministic for a given input
func pca2d(x *mat.Dense) (*mat.Dense, error) {
	r, c := x.Dims()

	var pc stat.PC
	if ok := pc.PrincipalComponents(x, nil); !ok {
		return nil, errors.New("pca2d() could not decompose the input")
	}

	var vecs mat.Dense
	pc.VectorsTo(&vecs)
	_, k := vecs.Dims()

	centred := mat.DenseCopyOf(x)
	for j := 0; j < c; j++ {
		col := mat.Col(nil, j, centred)
		m := stat.Mean(col, nil)
		for i := 0; i < r; i++ {
			centred.Set(i, j, col[i]-m)
		}
	}

	y := mat.NewDense(r, 2, nil)
	var proj mat.Dense
	proj.Mul(centred, vecs.Slice(0, c, 0, min(k, 2)))

	// a single component leaves the second coordinate at zero
	pr, pcols := proj.Dims()
	for i := 0; i < pr; i++ {
		for j := 0; j < pcols; j++ {
			y.Set(i, j, proj.At(i, j))
		}
	}
	return y, nil
}
