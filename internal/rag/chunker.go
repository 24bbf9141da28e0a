package rag

import "strings"

const paragraphSeparator = "\n\n"

// boilerplateSignals are lowercase phrases that mark site chrome rather than content.
var boilerplateSignals = []string{
	"cookie", "subscribe", "sign up", "log in", "privacy policy",
	"terms of service", "all rights reserved", "follow us",
	"share this", "related articles", "advertisement", "newsletter",
}

// Chunker groups paragraphs into passages bounded by word counts.
type Chunker struct {
	MinWords            int
	MaxWords            int
	MinParagraphWords   int
	BoilerplateMaxWords int
}

// NewChunker returns a Chunker using the chunking fields of opts.
func NewChunker(opts Options) Chunker {
	return Chunker{
		MinWords:            opts.MinChunkWords,
		MaxWords:            opts.MaxChunkWords,
		MinParagraphWords:   opts.MinParagraphWords,
		BoilerplateMaxWords: opts.BoilerplateMaxWords,
	}
}

// ChunkPage splits text with the given word bounds and default paragraph heuristics.
func ChunkPage(text string, minWords, maxWords int) []Chunk {
	opts := DefaultOptions()
	opts.MinChunkWords = minWords
	opts.MaxChunkWords = maxWords
	return NewChunker(opts).Split(text)
}

// Split accumulates paragraphs greedily into chunks. A paragraph shorter than
// MinParagraphWords is skipped only while the buffer is empty, and boilerplate
// paragraphs are always skipped. A short trailing buffer is merged into the
// previous chunk; if there is none it becomes the only chunk.
func (c Chunker) Split(text string) []Chunk {
	var (
		chunks  []Chunk
		parts   []string
		current int
	)
	flush := func() {
		chunks = append(chunks, Chunk{
			Index: len(chunks),
			Text:  strings.Join(parts, paragraphSeparator),
			Words: current,
		})
		parts = parts[:0]
		current = 0
	}

	for _, para := range strings.Split(text, paragraphSeparator) {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		words := len(strings.Fields(para))
		if words < c.MinParagraphWords && len(parts) == 0 {
			continue
		}
		if c.isBoilerplate(para, words) {
			continue
		}

		if current+words > c.MaxWords && len(parts) > 0 {
			flush()
		}
		parts = append(parts, para)
		current += words
		if current >= c.MaxWords {
			flush()
		}
	}

	if len(parts) == 0 {
		return chunks
	}
	if current < c.MinWords && len(chunks) > 0 {
		last := &chunks[len(chunks)-1]
		last.Text += paragraphSeparator + strings.Join(parts, paragraphSeparator)
		last.Words += current
		return chunks
	}
	flush()
	return chunks
}

// isBoilerplate flags a paragraph carrying two or more signals, or a single
// signal in a paragraph shorter than BoilerplateMaxWords.
func (c Chunker) isBoilerplate(para string, words int) bool {
	lower := strings.ToLower(para)
	hits := 0
	for _, signal := range boilerplateSignals {
		if strings.Contains(lower, signal) {
			hits++
		}
	}
	return hits >= 2 || (hits == 1 && words < c.BoilerplateMaxWords)
}
