// benchmark/types.go
package benchmark

import "time"

// IterationStats is the timing of one selection run.
type IterationStats struct {
	Chunking time.Duration `json:"chunking"`
	Total    time.Duration `json:"total"`
}

// IterationResult holds the stats for a single iteration.
type IterationResult struct {
	Iteration int            `json:"iteration"`
	Stats     IterationStats `json:"stats"`
}

// RunningStat holds the values for online calculation of mean and variance.
type RunningStat struct {
	Count int64   `json:"-"`
	Mean  float64 `json:"mean"`
	M2    float64 `json:"-"` // sum of squared differences from the current mean
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// BenchmarkResult is the outcome of benchmarking one document and query.
type BenchmarkResult struct {
	Name           string            `json:"name"`
	Query          string            `json:"query"`
	Path           string            `json:"path"`
	DocumentWords  int               `json:"documentWords"`
	ChunkCount     int               `json:"chunkCount"`
	Returned       int               `json:"returned"`
	BenchmarkCount int               `json:"benchmarkCount"`
	Iterations     []IterationResult `json:"iterations"`
	TotalMicros    RunningStat       `json:"total_us"`
	ChunkingMicros RunningStat       `json:"chunking_us"`
	StdDevMicros   float64           `json:"total_stddev_us"`
}
