//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"github.com/e-gun/FeatureLab/internal/gen"
	"sort"
)

//
// STOPWORDS: off unless asked for
//

var (
	// English100 - the most common english function words
	English100 = []string{"a", "about", "above", "after", "again", "against", "all", "am", "an", "and", "any", "are",
		"as", "at", "be", "because", "been", "before", "being", "below", "between", "both", "but", "by", "can", "could",
		"did", "do", "does", "doing", "down", "during", "each", "few", "for", "from", "further", "had", "has", "have",
		"having", "he", "her", "here", "hers", "herself", "him", "himself", "his", "how", "i", "if", "in", "into", "is",
		"it", "its", "itself", "just", "me", "more", "most", "my", "myself", "no", "nor", "not", "now", "of", "off", "on",
		"once", "only", "or", "other", "our", "ours", "ourselves", "out", "over", "own", "same", "she", "should", "so",
		"some", "such", "than", "that", "the", "their", "theirs", "them", "themselves", "then", "there", "these", "they",
		"this", "those", "through", "to", "too", "under", "until", "up", "very", "was", "we", "were", "what", "when",
		"where", "which", "while", "who", "whom", "why", "will", "with", "would", "you", "your", "yours", "yourself",
		"yourselves"}
	// NewsExtra - wire-copy filler
	NewsExtra = []string{"said", "says", "also", "new", "one", "two", "year", "years", "reuters", "ap", "afp"}
)

// StopList - English100 + NewsExtra, sorted and without duplicates
func StopList() []string {
	ss := gen.ToSet(append(append([]string{}, English100...), NewsExtra...))
	stops := make([]string, 0, len(ss))
	for w := range ss {
		stops = append(stops, w)
	}
	sort.Strings(stops)
	return stops
}

// WithStopWords - copies of the configurations that drop the stops; char analyzers are unaffected
func WithStopWords(vcc []VectorizerConfig, stops []string) []VectorizerConfig {
	out := make([]VectorizerConfig, len(vcc))
	for i := range vcc {
		out[i] = vcc[i]
		out[i].StopWords = stops
	}
	return out
}
