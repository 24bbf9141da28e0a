// benchmark/benchmark.go
package benchmark

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/mwiater/bm25filter/internal/logging"
	"github.com/mwiater/bm25filter/internal/rag"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9_]+`)
	slugDashes  = regexp.MustCompile(`-+`)
)

// Benchmark runs the selection pipeline count times over content and
// aggregates the timings.
func Benchmark(name, content, query string, opts rag.Options, count int) (*BenchmarkResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: benchmark count must be positive, got %d", rag.ErrInvalidArgument, count)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	result := &BenchmarkResult{
		Name:           name,
		Query:          query,
		DocumentWords:  len(strings.Fields(content)),
		BenchmarkCount: count,
		Iterations:     make([]IterationResult, 0, count),
	}
	chunker := rag.NewChunker(opts)

	for i := 0; i < count; i++ {
		chunkStart := time.Now()
		chunker.Split(content)
		chunking := time.Since(chunkStart)

		start := time.Now()
		sel, err := rag.Select(content, query, opts)
		total := time.Since(start)
		if err != nil {
			return nil, err
		}

		if i == 0 {
			result.Path = string(sel.Path)
			result.ChunkCount = sel.ChunkCount
			result.Returned = len(sel.Chunks)
			logging.LogSelection(string(sel.Path), query, sel.ChunkCount, len(sel.Chunks), total)
		}
		result.Iterations = append(result.Iterations, IterationResult{
			Iteration: i + 1,
			Stats:     IterationStats{Chunking: chunking, Total: total},
		})
	}

	calculateAggregates(result)
	return result, nil
}

// calculateAggregates folds the iterations into the running stats.
func calculateAggregates(result *BenchmarkResult) {
	result.TotalMicros = RunningStat{}
	result.ChunkingMicros = RunningStat{}
	for _, iter := range result.Iterations {
		updateRunningStat(&result.TotalMicros, float64(iter.Stats.Total.Microseconds()))
		updateRunningStat(&result.ChunkingMicros, float64(iter.Stats.Chunking.Microseconds()))
	}
	result.StdDevMicros = stdDev(result.TotalMicros)
}

// updateRunningStat updates a single running statistic using Welford's online algorithm.
func updateRunningStat(rs *RunningStat, value float64) {
	rs.Count++
	if rs.Count == 1 {
		rs.Min = value
		rs.Max = value
	} else {
		if value < rs.Min {
			rs.Min = value
		}
		if value > rs.Max {
			rs.Max = value
		}
	}

	delta := value - rs.Mean
	rs.Mean += delta / float64(rs.Count)
	delta2 := value - rs.Mean
	rs.M2 += delta * delta2
}

func stdDev(rs RunningStat) float64 {
	if rs.Count < 2 {
		return 0
	}
	return math.Sqrt(rs.M2 / float64(rs.Count-1))
}

// writeResults writes the benchmark result as indented JSON under dir and
// returns the file name.
func writeResults(dir string, result *BenchmarkResult) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating results directory: %w", err)
	}
	fileName := filepath.Join(dir, fmt.Sprintf("%s-%d.json", Slugify(result.Name), result.BenchmarkCount))

	file, err := os.Create(fileName)
	if err != nil {
		return "", fmt.Errorf("error creating result file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return "", fmt.Errorf("error writing results to file: %w", err)
	}

	logging.LogEvent("[BENCHMARK] results written to %s", fileName)
	return fileName, nil
}

// Slugify converts a string into a "slug" format,
// including replacing colons (:) with underscores (_).
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ":", "_")
	s = slugInvalid.ReplaceAllString(s, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-_")
	if s == "" {
		return "document"
	}
	return s
}
