package rag

import (
	"errors"
	"sort"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectFallbackForEmptyDocument(t *testing.T) {
	for _, doc := range []string{"", "   ", "\n\n\n\n"} {
		sel, err := Select(doc, "whale", DefaultOptions())
		require.NoError(t, err)
		require.Len(t, sel.Chunks, 1)
		assert.Equal(t, PathFallback, sel.Path)
		assert.Equal(t, ScoredChunk{Text: doc, Score: 0, Index: 0}, sel.Chunks[0])
	}
}

func TestSelectFallbackTruncatesBoilerplateDocument(t *testing.T) {
	doc := strings.Repeat(boilerplateParagraph+"\n\n", 80)
	require.Greater(t, utf8.RuneCountInString(doc), DefaultFallbackChars)

	sel, err := Select(doc, "whale", DefaultOptions())
	require.NoError(t, err)
	require.Len(t, sel.Chunks, 1)
	assert.Equal(t, PathFallback, sel.Path)
	assert.Equal(t, doc[:DefaultFallbackChars], sel.Chunks[0].Text)
	assert.Zero(t, sel.Chunks[0].Score)
}

func TestSelectBypassesSmallDocuments(t *testing.T) {
	doc := whaleDocument(3, 300, -1)
	sel, err := Select(doc, "blue whale migration", DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, PathBypass, sel.Path)
	assert.Equal(t, 3, sel.ChunkCount)
	require.Len(t, sel.Chunks, 3)
	for i, c := range sel.Chunks {
		assert.Equal(t, i, c.Index)
		assert.Equal(t, 1.0, c.Score)
	}
}

func TestSelectBypassThresholdIsInclusive(t *testing.T) {
	opts := DefaultOptions()
	opts.K = 2

	sel, err := Select(whaleDocument(15, 300, 4), "migration", opts)
	require.NoError(t, err)
	assert.Equal(t, PathBypass, sel.Path)
	assert.Len(t, sel.Chunks, 15)

	sel, err = Select(whaleDocument(16, 300, 4), "migration", opts)
	require.NoError(t, err)
	assert.Equal(t, PathRanked, sel.Path)
	assert.Len(t, sel.Chunks, 2)
}

func TestSelectPassesThroughUnscoreableQuery(t *testing.T) {
	doc := whaleDocument(20, 300, 7)
	for _, query := range []string{"", "the and of it", "?? 42 !!"} {
		sel, err := Select(doc, query, DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, PathPassthrough, sel.Path)
		require.Len(t, sel.Chunks, 20)
		for i, c := range sel.Chunks {
			assert.Equal(t, i, c.Index)
			assert.Equal(t, 1.0, c.Score)
		}
	}
}

func TestSelectRanksWhaleMigration(t *testing.T) {
	const target = 12
	opts := DefaultOptions()
	opts.K = 5

	sel, err := Select(whaleDocument(20, 300, target), "blue whale migration patterns", opts)
	require.NoError(t, err)
	assert.Equal(t, PathRanked, sel.Path)
	assert.Equal(t, 20, sel.ChunkCount)
	require.Len(t, sel.Chunks, 5)

	indices := make([]int, len(sel.Chunks))
	for i, c := range sel.Chunks {
		indices[i] = c.Index
		assert.Greater(t, c.Score, 0.0)
		if i > 0 {
			assert.Greater(t, c.Index, sel.Chunks[i-1].Index)
		}
	}
	assert.Contains(t, indices, target)

	var best ScoredChunk
	for _, c := range sel.Chunks {
		if c.Score > best.Score {
			best = c
		}
	}
	assert.Equal(t, target, best.Index)
	assert.Contains(t, best.Text, "migration")
}

func TestSelectTopKBound(t *testing.T) {
	doc := whaleDocument(20, 300, 3)
	for _, k := range []int{0, 1, 7, 20, 50} {
		opts := DefaultOptions()
		opts.K = k
		got, err := SelectPassages(doc, "whale migration", opts)
		require.NoError(t, err)

		want := k
		if want > 20 {
			want = 20
		}
		assert.Len(t, got, want, "k=%d", k)
		assert.True(t, sort.SliceIsSorted(got, func(i, j int) bool { return got[i].Index < got[j].Index }))
		for _, c := range got {
			assert.GreaterOrEqual(t, c.Index, 0)
			assert.Less(t, c.Index, 20)
		}
	}
}

func TestSelectNeverReturnsBoilerplate(t *testing.T) {
	paras := make([]string, 0, 40)
	for i := 0; i < 20; i++ {
		paras = append(paras, paragraph("whale migration", 300), boilerplateParagraph)
	}
	doc := document(paras...)

	for _, k := range []int{3, 20} {
		opts := DefaultOptions()
		opts.K = k
		got, err := SelectPassages(doc, "newsletter subscribe whale", opts)
		require.NoError(t, err)
		require.NotEmpty(t, got)
		for _, c := range got {
			assert.NotContains(t, c.Text, "Subscribe to our newsletter")
		}
	}
}

func TestSelectRejectsInvalidOptions(t *testing.T) {
	mutations := map[string]func(*Options){
		"negative k":      func(o *Options) { o.K = -1 },
		"negative bypass": func(o *Options) { o.BypassThreshold = -1 },
		"zero max words":  func(o *Options) { o.MaxChunkWords = 0 },
		"min above max":   func(o *Options) { o.MinChunkWords = 400 },
		"b above one":     func(o *Options) { o.B = 1.5 },
		"negative k1":     func(o *Options) { o.K1 = -0.1 },
		"negative bonus":  func(o *Options) { o.LeadBonus = -1 },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			opts := DefaultOptions()
			mutate(&opts)
			_, err := Select("some text", "query", opts)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
		})
	}
}

func TestApplyLeadBonus(t *testing.T) {
	scores := []float64{1, 0}
	applyLeadBonus(scores, 0.15)
	assert.InDelta(t, 1.15, scores[0], 1e-12)
	assert.InDelta(t, 0.075, scores[1], 1e-12)

	zeros := []float64{0, 0, 0}
	applyLeadBonus(zeros, 0.15)
	assert.Equal(t, []float64{0, 0, 0}, zeros)

	applyLeadBonus(nil, 0.15)
}

func TestTopIndicesTieBreaksByOriginalIndex(t *testing.T) {
	assert.Equal(t, []int{1, 2}, topIndices([]float64{1, 2, 2, 1}, 2))
	assert.Equal(t, []int{0, 2}, topIndices([]float64{5, 1, 5, 5}, 2))
	assert.Equal(t, []int{0, 1, 2}, topIndices([]float64{1, 1, 1}, 3))
	assert.Empty(t, topIndices([]float64{1, 2}, 0))
}

func TestRoundScore(t *testing.T) {
	assert.Equal(t, 1.2346, roundScore(1.23456))
	assert.Equal(t, 0.0, roundScore(0.00004))
}
