package rag

import (
	"fmt"
	"strings"
)

var fillerWords = []string{
	"ocean", "current", "water", "surface", "depth",
	"plankton", "coastal", "season", "region", "species",
}

// paragraph returns n words cycling through fillerWords, prefixed by lead.
func paragraph(lead string, n int) string {
	words := strings.Fields(lead)
	for i := 0; len(words) < n; i++ {
		words = append(words, fillerWords[i%len(fillerWords)])
	}
	return strings.Join(words[:n], " ")
}

func document(paras ...string) string {
	return strings.Join(paras, "\n\n")
}

// whaleDocument builds count paragraphs of words words each. Every paragraph
// mentions whales once; paragraph target is dense with migration terms.
func whaleDocument(count, words, target int) string {
	paras := make([]string, count)
	for i := range paras {
		lead := fmt.Sprintf("whale section%s", strings.Repeat("x", i%5+1))
		if i == target {
			lead = strings.Repeat("blue whale migration patterns ", 6)
		}
		paras[i] = paragraph(lead, words)
	}
	return document(paras...)
}
