package rag

import (
	"fmt"
	"strings"
)

// FormatContext builds the CONTEXT block for the selected passages and returns
// the context text, the number of words used and the number of passages included.
// maxWords <= 0 means no limit.
func FormatContext(chunks []ScoredChunk, maxWords int) (string, int, int) {
	if len(chunks) == 0 {
		return "", 0, 0
	}
	if maxWords < 0 {
		maxWords = 0
	}

	var b strings.Builder
	b.WriteString("CONTEXT\n")

	contextWords := 0
	included := 0
	remaining := maxWords

	for _, chunk := range chunks {
		text := strings.Join(strings.Fields(chunk.Text), " ")
		if text == "" {
			continue
		}

		if maxWords > 0 {
			if remaining <= 0 {
				break
			}
			if words := countWords(text); words > remaining {
				text = truncateToWords(text, remaining)
			}
		}

		used := countWords(text)
		b.WriteString(fmt.Sprintf("[#%d score=%.4f] %s\n", chunk.Index, chunk.Score, text))
		contextWords += used
		included++
		if maxWords > 0 {
			remaining -= used
		}
	}

	return strings.TrimRight(b.String(), "\n"), contextWords, included
}

func countWords(text string) int {
	return len(strings.Fields(text))
}

func truncateToWords(text string, maxWords int) string {
	if maxWords <= 0 {
		return ""
	}
	parts := strings.Fields(text)
	if len(parts) <= maxWords {
		return text
	}
	return strings.Join(parts[:maxWords], " ")
}
