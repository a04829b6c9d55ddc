//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"regexp"
	"strings"
)

//
// TOKENISERS: all of these satisfy nlp.Tokeniser so that nlp.CountVectoriser can do the counting
//

var (
	whitespace = regexp.MustCompile(`\s\s+`)
	wordpunct  = regexp.MustCompile(`[\p{L}\p{N}_]+|[^\p{L}\p{N}_\s]+`)
)

// WordGramTokeniser - pattern-matched words, then every n-gram in [NMin, NMax] joined by a single space
type WordGramTokeniser struct {
	Pattern *regexp.Regexp
	Lower   bool
	NMin    int
	NMax    int
	Stop    map[string]struct{} // dropped before the n-grams are built
}

func (w *WordGramTokeniser) ForEachIn(doc string, f func(token string)) {
	if w.Lower {
		doc = strings.ToLower(doc)
	}
	words := w.Pattern.FindAllString(doc, -1)
	if len(w.Stop) > 0 {
		kept := words[:0]
		for _, wd := range words {
			if _, ok := w.Stop[wd]; !ok {
				kept = append(kept, wd)
			}
		}
		words = kept
	}

	for n := w.NMin; n <= w.NMax; n++ {
		if n == 1 {
			for _, wd := range words {
				f(wd)
			}
			continue
		}
		for i := 0; i+n <= len(words); i++ {
			f(strings.Join(words[i:i+n], " "))
		}
	}
}

func (w *WordGramTokeniser) Tokenise(doc string) []string {
	var tt []string
	w.ForEachIn(doc, func(t string) { tt = append(tt, t) })
	return tt
}

// CharGramTokeniser - character n-grams of the whole (whitespace-normalised) document; no token pattern
type CharGramTokeniser struct {
	Lower bool
	NMin  int
	NMax  int
}

func (c *CharGramTokeniser) ForEachIn(doc string, f func(token string)) {
	if c.Lower {
		doc = strings.ToLower(doc)
	}
	// "a  b\n\nc" --> "a b c"; single tabs and newlines are not touched
	rr := []rune(whitespace.ReplaceAllString(doc, " "))

	for n := c.NMin; n <= c.NMax; n++ {
		for i := 0; i+n <= len(rr); i++ {
			f(string(rr[i : i+n]))
		}
	}
}

func (c *CharGramTokeniser) Tokenise(doc string) []string {
	var tt []string
	c.ForEachIn(doc, func(t string) { tt = append(tt, t) })
	return tt
}

// WordPunctTokenise - runs of word characters and runs of punctuation: "don't stop" --> [don ' t stop]
func WordPunctTokenise(doc string) []string {
	return wordpunct.FindAllString(doc, -1)
}
