package rag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const boilerplateParagraph = "Subscribe to our newsletter! Sign up now, follow us on social media."

func TestChunkPageEmptyInput(t *testing.T) {
	assert.Empty(t, ChunkPage("", 50, 300))
	assert.Empty(t, ChunkPage("  \n\n \n\n\t", 50, 300))
}

func TestChunkPageSingleOversizedParagraphFlushesOnReach(t *testing.T) {
	chunks := ChunkPage(paragraph("", 310), 50, 300)
	require.Len(t, chunks, 1)
	assert.Equal(t, 310, chunks[0].Words)
	assert.Equal(t, 0, chunks[0].Index)
}

func TestChunkPageFlushesBeforeAppendingOverflow(t *testing.T) {
	first := paragraph("alpha", 100)
	second := paragraph("bravo", 310)
	third := paragraph("charlie", 60)
	chunks := ChunkPage(document(first, second, third), 50, 300)

	require.Len(t, chunks, 3)
	assert.Equal(t, first, chunks[0].Text)
	assert.Equal(t, second, chunks[1].Text)
	assert.Equal(t, third, chunks[2].Text)
	for i, c := range chunks {
		assert.Equal(t, i, c.Index)
	}
}

func TestChunkPageAccumulatesUntilMax(t *testing.T) {
	paras := []string{paragraph("a", 100), paragraph("b", 100), paragraph("c", 100), paragraph("d", 100)}
	chunks := ChunkPage(document(paras...), 50, 300)

	require.Len(t, chunks, 2)
	assert.Equal(t, 300, chunks[0].Words)
	assert.Equal(t, strings.Join(paras[:3], "\n\n"), chunks[0].Text)
	assert.Equal(t, 100, chunks[1].Words)
}

func TestChunkPageShortParagraphOnlyDroppedWithEmptyBuffer(t *testing.T) {
	nav := "Home About Contact"
	body := paragraph("body", 60)
	aside := "short aside kept here"
	chunks := ChunkPage(document(nav, body, aside), 50, 300)

	require.Len(t, chunks, 1)
	assert.NotContains(t, chunks[0].Text, nav)
	assert.Contains(t, chunks[0].Text, aside)
	assert.Equal(t, 64, chunks[0].Words)
}

func TestChunkPageDropsBoilerplateRegardlessOfBuffer(t *testing.T) {
	body := paragraph("body", 60)
	chunks := ChunkPage(document(body, boilerplateParagraph, paragraph("more", 60)), 50, 300)

	require.Len(t, chunks, 1)
	assert.NotContains(t, chunks[0].Text, "Subscribe")
	assert.Equal(t, 120, chunks[0].Words)
}

func TestChunkPageTrailingShortBufferMergesIntoLastChunk(t *testing.T) {
	full := paragraph("full", 300)
	tail := paragraph("tail", 20)
	chunks := ChunkPage(document(full, tail), 50, 300)

	require.Len(t, chunks, 1)
	assert.Equal(t, full+"\n\n"+tail, chunks[0].Text)
	assert.Equal(t, 320, chunks[0].Words)
}

func TestChunkPageShortDocumentYieldsOneUndersizedChunk(t *testing.T) {
	text := "A single short paragraph about blue whales and krill."
	chunks := ChunkPage(text, 50, 300)

	require.Len(t, chunks, 1)
	assert.Equal(t, text, chunks[0].Text)
	assert.Equal(t, 9, chunks[0].Words)
}

func TestIsBoilerplate(t *testing.T) {
	c := NewChunker(DefaultOptions())
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"many signals", boilerplateParagraph, true},
		{"one signal short", "Read our privacy policy before continuing with this site today.", true},
		{"one signal long", paragraph("the newsletter archive documents decades of whale sightings", 40), false},
		{"two signals long", paragraph("cookie settings and privacy policy", 80), true},
		{"no signal", paragraph("whales", 12), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			words := len(strings.Fields(tc.text))
			assert.Equal(t, tc.want, c.isBoilerplate(tc.text, words))
		})
	}
}
