package rag

// Chunk is a passage assembled from one or more source paragraphs.
type Chunk struct {
	Index int
	Text  string
	Words int
}

// ScoredChunk is a selected passage. Index always refers to the chunk's
// position in the original chunk sequence, never to its rank.
type ScoredChunk struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
	Index int     `json:"index"`
}

// SelectionPath records which branch of the selection policy produced a result.
type SelectionPath string

const (
	// PathFallback: the document produced no chunks; a raw prefix was returned.
	PathFallback SelectionPath = "fallback"
	// PathBypass: too few chunks to be worth filtering.
	PathBypass SelectionPath = "bypass"
	// PathPassthrough: the query had no scoreable tokens.
	PathPassthrough SelectionPath = "passthrough"
	// PathRanked: chunks were scored with BM25 and the top K kept.
	PathRanked SelectionPath = "ranked"
)

// Selection is the outcome of a single Select call.
type Selection struct {
	Chunks     []ScoredChunk
	Path       SelectionPath
	ChunkCount int
}
