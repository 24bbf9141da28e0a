package rag

import "math"

// BM25 scores a fixed corpus of tokenized chunks with Okapi BM25.
type BM25 struct {
	k1       float64
	b        float64
	n        int
	docLen   []int
	avgdl    float64
	docFreqs map[string]int
	tf       []map[string]int
}

// NewBM25 builds corpus statistics: per-chunk term frequencies, chunk
// lengths, average length and document frequencies.
func NewBM25(corpus [][]string, k1, b float64) *BM25 {
	bm := &BM25{
		k1:       k1,
		b:        b,
		n:        len(corpus),
		docLen:   make([]int, len(corpus)),
		avgdl:    1,
		docFreqs: make(map[string]int),
		tf:       make([]map[string]int, len(corpus)),
	}

	total := 0
	for i, doc := range corpus {
		bm.docLen[i] = len(doc)
		total += len(doc)
		freq := termCounts(doc)
		bm.tf[i] = freq
		for term := range freq {
			bm.docFreqs[term]++
		}
	}
	if bm.n > 0 {
		bm.avgdl = float64(total) / float64(bm.n)
	}
	return bm
}

// Len reports the number of chunks in the corpus.
func (bm *BM25) Len() int { return bm.n }

// IDF is the smoothed inverse document frequency, ln((N-df+0.5)/(df+0.5)+1).
// It is never negative.
func (bm *BM25) IDF(term string) float64 {
	df := float64(bm.docFreqs[term])
	return math.Log((float64(bm.n)-df+0.5)/(df+0.5) + 1)
}

// Score returns the BM25 score of chunk doc for the query tokens. Repeated
// query tokens count once.
func (bm *BM25) Score(query []string, doc int) float64 {
	return bm.score(distinct(query), doc)
}

// Scores returns one score per chunk, in corpus order.
func (bm *BM25) Scores(query []string) []float64 {
	terms := distinct(query)
	scores := make([]float64, bm.n)
	for i := range scores {
		scores[i] = bm.score(terms, i)
	}
	return scores
}

func (bm *BM25) score(terms []string, doc int) float64 {
	s := 0.0
	dl := float64(bm.docLen[doc])
	tf := bm.tf[doc]
	for _, term := range terms {
		f := float64(tf[term])
		if f == 0 {
			continue
		}
		num := f * (bm.k1 + 1)
		den := f + bm.k1*(1-bm.b+bm.b*dl/bm.avgdl)
		s += bm.IDF(term) * num / den
	}
	return s
}

func distinct(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
