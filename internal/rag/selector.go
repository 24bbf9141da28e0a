package rag

import (
	"math"
	"sort"

	"github.com/mwiater/bm25filter/internal/util"
)

// SelectPassages runs Select and returns only the passages.
func SelectPassages(document, query string, opts Options) ([]ScoredChunk, error) {
	sel, err := Select(document, query, opts)
	if err != nil {
		return nil, err
	}
	return sel.Chunks, nil
}

// Select chunks document and returns at most opts.K passages most relevant to
// query, in document order. Documents with few chunks, and queries without
// scoreable tokens, pass every chunk through with score 1.0. A document that
// yields no chunks returns a single prefix of the raw text with score 0.
func Select(document, query string, opts Options) (Selection, error) {
	if err := opts.Validate(); err != nil {
		return Selection{}, err
	}

	chunks := NewChunker(opts).Split(document)
	if len(chunks) == 0 {
		return Selection{
			Chunks: []ScoredChunk{{Text: util.PrefixRunes(document, opts.FallbackChars), Score: 0, Index: 0}},
			Path:   PathFallback,
		}, nil
	}

	if len(chunks) <= opts.BypassThreshold {
		return Selection{Chunks: unscored(chunks), Path: PathBypass, ChunkCount: len(chunks)}, nil
	}

	corpus := make([][]string, len(chunks))
	for i, c := range chunks {
		corpus[i] = Tokenize(c.Text)
	}
	queryTokens := Tokenize(query)
	if len(queryTokens) == 0 {
		return Selection{Chunks: unscored(chunks), Path: PathPassthrough, ChunkCount: len(chunks)}, nil
	}

	scores := NewBM25(corpus, opts.K1, opts.B).Scores(queryTokens)
	applyLeadBonus(scores, opts.LeadBonus)

	top := topIndices(scores, opts.K)
	out := make([]ScoredChunk, len(top))
	for i, idx := range top {
		out[i] = ScoredChunk{
			Text:  chunks[idx].Text,
			Score: roundScore(scores[idx]),
			Index: idx,
		}
	}
	return Selection{Chunks: out, Path: PathRanked, ChunkCount: len(chunks)}, nil
}

func unscored(chunks []Chunk) []ScoredChunk {
	out := make([]ScoredChunk, len(chunks))
	for i, c := range chunks {
		out[i] = ScoredChunk{Text: c.Text, Score: 1.0, Index: c.Index}
	}
	return out
}

// applyLeadBonus adds weight*max(0, 1-i/L)*maxScore to each score. Nothing is
// added when no chunk scored above zero.
func applyLeadBonus(scores []float64, weight float64) {
	if len(scores) == 0 {
		return
	}
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}
	if maxScore <= 0 {
		return
	}
	n := float64(len(scores))
	for i := range scores {
		position := math.Max(0, 1-float64(i)/n)
		scores[i] += weight * position * maxScore
	}
}

// topIndices ranks by score descending, ties by index ascending, keeps k and
// returns them back in ascending index order.
func topIndices(scores []float64, k int) []int {
	ranked := make([]int, len(scores))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		sa, sb := scores[ranked[a]], scores[ranked[b]]
		if sa != sb {
			return sa > sb
		}
		return ranked[a] < ranked[b]
	})
	if k < len(ranked) {
		ranked = ranked[:k]
	}
	sort.Ints(ranked)
	return ranked
}

func roundScore(s float64) float64 {
	return math.Round(s*10000) / 10000
}
