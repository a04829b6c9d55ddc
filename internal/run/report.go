//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package run

import (
	"fmt"
	"github.com/e-gun/FeatureLab/internal/str"
	"github.com/e-gun/FeatureLab/internal/vec"
	"github.com/e-gun/FeatureLab/internal/vv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"io"
	"math"
	"strings"
)

//
// PLAIN TEXT REPORT
//

type reporter struct {
	w   io.Writer
	p   *message.Printer
	err error
}

// printf - the first write error sticks and silences everything after it
func (rp *reporter) printf(format string, a ...any) {
	if rp.err != nil {
		return
	}
	_, rp.err = rp.p.Fprintf(rp.w, format, a...)
}

func (rp *reporter) section(title string) {
	rp.printf("\n%s\n%s\n", title, strings.Repeat("-", len(title)))
}

// Report - write the results of a run to w; stages that did not run are left out
func Report(w io.Writer, r *Results) error {
	rp := &reporter{w: w, p: message.NewPrinter(language.English)}

	rp.printf("%s run %s\n", vv.MYNAME, r.RunID)
	rp.printf("train: %d of %d rows sampled\n", r.TrainSample.Len(), r.TrainRows)
	rp.printf("test:  %d of %d rows sampled\n", r.TestSample.Len(), r.TestRows)

	if len(r.Features) > 0 {
		reportfeatures(rp, r)
	}
	if r.TopNGrams != nil {
		rp.section(fmt.Sprintf("Top %d bag-of-n-grams terms", len(r.TopNGrams)))
		reportfrequencies(rp, r.TopNGrams)
	}
	if r.TopCharGrams != nil {
		rp.section(fmt.Sprintf("Top %d character grams (summed tf/idf)", len(r.TopCharGrams)))
		reportfrequencies(rp, r.TopCharGrams)
	}
	if r.Clusters != nil {
		rp.section(fmt.Sprintf("k-means over char tf/idf %s", r.ClusterSource))
		reportclusters(rp, r.Clusters)
	}
	if r.Topics != nil {
		reporttopics(rp, r)
	}
	if r.Embeddings != nil {
		reportembeddings(rp, r)
	}
	if r.TrainWords != nil {
		rp.section(fmt.Sprintf("Top %d words of the training split", len(r.TrainWords)))
		reportfrequencies(rp, r.TrainWords)
	}
	if r.Evaluation != nil {
		reportevaluation(rp, r)
	}
	return rp.err
}

func reportfeatures(rp *reporter, r *Results) {
	rp.section("Feature matrices")
	for _, f := range r.Features {
		nr, nc := f.Matrix.Dims()
		preview := make([]string, 0, vv.REPORTPREVIEW)
		for i := 0; i < f.Fitted.Vocab.Len() && i < vv.REPORTPREVIEW; i++ {
			preview = append(preview, fmt.Sprintf("'%s'", f.Fitted.Vocab.Term(i)))
		}
		rp.printf("%-16s %6d × %-8d %s ...\n", f.Fitted.Config.Name, nr, nc, strings.Join(preview, " "))
	}
}

func reportfrequencies(rp *reporter, tfs []str.TermFrequency) {
	for i, tf := range tfs {
		rp.printf("%3d  %-24s %8.0f\n", i+1, tf.Term, tf.Frequency)
	}
}

func reportclusters(rp *reporter, c *vec.Clustering) {
	for k, n := range c.Sizes() {
		rp.printf("cluster %d: %d documents\n", k+1, n)
	}
	rp.printf("inertia %.4f after %d iterations\n", c.Inertia, c.Iterations)
}

func reporttopics(rp *reporter, r *Results) {
	tm := r.Topics

	rp.section(fmt.Sprintf("%d LDA topics: top %d terms", tm.Topics, r.TopWords))
	for t, tt := range tm.TopicSummaries(r.TopWords) {
		words := make([]string, len(tt))
		for i := range tt {
			words[i] = tt[i].W
		}
		rp.printf("topic %2d: %s\n", t+1, strings.Join(words, " "))
	}

	rp.section(fmt.Sprintf("Topic terms with weight > %.2f", r.Threshold))
	for t, tt := range tm.TopicTermsAbove(r.Threshold) {
		if len(tt) == 0 {
			rp.printf("topic %2d: (none)\n", t+1)
			continue
		}
		pairs := make([]string, len(tt))
		for i := range tt {
			pairs[i] = fmt.Sprintf("%s (%.2f)", tt[i].W, tt[i].V)
		}
		rp.printf("topic %2d: %s\n", t+1, strings.Join(pairs, ", "))
	}

	rp.section("Documents per dominant topic")
	wt := tm.TopicWeights()
	for t, n := range tm.DominantTopicCounts() {
		rp.printf("topic %2d: %6d documents; relative weight %.3f\n", t+1, n, wt[t])
	}

	if r.TopicClusters != nil {
		rp.section("k-means over document-topic mixtures")
		reportclusters(rp, r.TopicClusters)
	}
}

func reportembeddings(rp *reporter, r *Results) {
	wv := r.Embeddings

	rp.section("Word2vec")
	rp.printf("%d words × %d dimensions\n", wv.Len(), wv.Dim)
	for _, w := range r.Probes {
		nn := r.Neighbours[w]
		near := make([]string, len(nn))
		for i := range nn {
			near[i] = fmt.Sprintf("%s (%.3f)", nn[i].Word, nn[i].Similarity)
		}
		rp.printf("%-16s %s\n", w, strings.Join(near, ", "))
	}

	if r.DocVectors != nil {
		nr, nc := r.DocVectors.Dims()
		rp.printf("averaged document vectors: %d × %d\n", nr, nc)
	}

	if r.Projection != nil {
		rp.section(fmt.Sprintf("2D projection of the word vectors (%s)", r.ProjectedBy))
		nr, _ := r.Projection.Dims()
		for i := 0; i < nr && i < vv.REPORTPREVIEW; i++ {
			rp.printf("%-16s %10.4f %10.4f\n", wv.Words[i], r.Projection.At(i, 0), r.Projection.At(i, 1))
		}
		if nr > vv.REPORTPREVIEW {
			rp.printf("... %d more\n", nr-vv.REPORTPREVIEW)
		}
	}
}

func reportevaluation(rp *reporter, r *Results) {
	const (
		UNDEF = "undefined (no positive samples)"
	)

	ev := r.Evaluation
	rp.section("Average precision")
	for _, cm := range ev.PerClass {
		if cm.Undefined {
			rp.printf("class %d: %s\n", cm.Class, UNDEF)
			continue
		}
		rp.printf("class %d: %0.2f (%d positive)\n", cm.Class, cm.AP, cm.Positives)
	}

	if ev.MicroUndefined {
		rp.printf("micro-averaged over all classes: %s\n", UNDEF)
	} else {
		rp.printf("Average precision score, micro-averaged over all classes: %0.2f\n", ev.MicroAP)
	}

	if math.IsNaN(ev.MeanAP) {
		rp.printf("mean of per-class scores: %s\n", UNDEF)
	} else {
		rp.printf("mean of per-class scores (not the micro average): %0.2f\n", ev.MeanAP)
	}
}
