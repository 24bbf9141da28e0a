package rag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeFiltersWords(t *testing.T) {
	got := Tokenize("The Blue WHALE's migration 2024 is amazing!! sea ox blue")
	assert.Equal(t, []string{"blue", "migration", "sea", "blue"}, got)
}

func TestTokenizeDropsStopwordsAndShortWords(t *testing.T) {
	assert.Empty(t, Tokenize("the and of to in it we"))
	assert.Empty(t, Tokenize("   \n\t "))
	assert.Empty(t, Tokenize("a1b2 42 -- ..."))
}

func TestTokenizeKeepsUnicodeLetters(t *testing.T) {
	assert.Equal(t, []string{"café", "über"}, Tokenize("Café ÜBER"))
}

func TestTermCounts(t *testing.T) {
	counts := termCounts([]string{"whale", "krill", "whale"})
	assert.Equal(t, map[string]int{"whale": 2, "krill": 1}, counts)
}
