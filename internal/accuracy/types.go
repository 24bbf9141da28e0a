// accuracy/types.go
package accuracy

// Suite defines the retention test cases loaded from JSON.
type Suite struct {
	Tests []Case `json:"tests"`
}

// Case is one query against one document. Every string in Expected must
// appear in at least one selected passage for the case to count as retained.
type Case struct {
	ID       int      `json:"id"`
	Query    string   `json:"query"`
	Document string   `json:"document,omitempty"`
	Content  string   `json:"content,omitempty"`
	Expected []string `json:"expected"`
	Category string   `json:"category,omitempty"`
}

// Result records a single selection and whether the expected text survived it.
type Result struct {
	Timestamp     string   `json:"timestamp"`
	CaseID        int      `json:"caseId"`
	Category      string   `json:"category,omitempty"`
	Query         string   `json:"query"`
	Path          string   `json:"path"`
	K             int      `json:"k"`
	ChunkCount    int      `json:"chunkCount"`
	Returned      int      `json:"returned"`
	ReturnedWords int      `json:"returnedWords"`
	DocumentWords int      `json:"documentWords"`
	Retained      bool     `json:"retained"`
	Missing       []string `json:"missing,omitempty"`
	ElapsedMicros int64    `json:"elapsed_us"`
	Error         string   `json:"error,omitempty"`
}

// Summary aggregates a run.
type Summary struct {
	Total          int            `json:"total"`
	Retained       int            `json:"retained"`
	Errors         int            `json:"errors"`
	RetentionRate  float64        `json:"retentionRate"`
	CompressionAvg float64        `json:"compressionAvg"`
	Paths          map[string]int `json:"paths"`
}
