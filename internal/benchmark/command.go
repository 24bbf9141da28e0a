package benchmark

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mwiater/bm25filter/internal/rag"
)

// RunBenchmarkCommand is the CLI entry point for benchmark. It times the
// selection pipeline over the document at docPath and prints a summary.
// Results are written as JSON under outDir when it is non-empty.
func RunBenchmarkCommand(out io.Writer, docPath, query string, opts rag.Options, count int, outDir string) (*BenchmarkResult, error) {
	raw, err := os.ReadFile(docPath)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", docPath, err)
	}

	result, err := Benchmark(filepath.Base(docPath), string(raw), query, opts, count)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(out, "%s: %d words, %d chunks, path=%s, returned=%d\n",
		result.Name, result.DocumentWords, result.ChunkCount, result.Path, result.Returned)
	fmt.Fprintf(out, "iterations=%d total_us mean=%.1f min=%.0f max=%.0f stddev=%.1f chunking_us mean=%.1f\n",
		result.BenchmarkCount, result.TotalMicros.Mean, result.TotalMicros.Min, result.TotalMicros.Max,
		result.StdDevMicros, result.ChunkingMicros.Mean)

	if outDir != "" {
		fileName, err := writeResults(outDir, result)
		if err != nil {
			return result, err
		}
		fmt.Fprintf(out, "results written to %s\n", fileName)
	}
	return result, nil
}
