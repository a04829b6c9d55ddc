//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

// Document - one labeled row of a train or test table
type Document struct {
	ID       int // ordinal position in the table once the index column is gone
	Headline string
	Content  string
	Category int
	Extra    map[string]string
}

// Table - an in-memory copy of a named table
type Table struct {
	Name string
	Docs []Document
}

func (t Table) Len() int {
	return len(t.Docs)
}

// Contents - the cleaned content column, in row order
func (t Table) Contents() []string {
	c := make([]string, len(t.Docs))
	for i := 0; i < len(t.Docs); i++ {
		c[i] = t.Docs[i].Content
	}
	return c
}

// Headlines - the cleaned headline column, in row order
func (t Table) Headlines() []string {
	h := make([]string, len(t.Docs))
	for i := 0; i < len(t.Docs); i++ {
		h[i] = t.Docs[i].Headline
	}
	return h
}

// Labels - the category column, in row order
func (t Table) Labels() []int {
	l := make([]int, len(t.Docs))
	for i := 0; i < len(t.Docs); i++ {
		l[i] = t.Docs[i].Category
	}
	return l
}

// TermFrequency - one row of a ranked frequency table
type TermFrequency struct {
	Term      string
	Frequency float64
}
