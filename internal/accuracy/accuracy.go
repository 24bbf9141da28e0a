// accuracy/accuracy.go
package accuracy

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mwiater/bm25filter/internal/logging"
	"github.com/mwiater/bm25filter/internal/rag"
	"golang.org/x/sync/errgroup"
)

const resultsFile = "retention_results.jsonl"

// LoadSuite reads a suite file. Relative document paths are resolved against
// the suite file's directory.
func LoadSuite(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, fmt.Errorf("read suite %s: %w", path, err)
	}
	var suite Suite
	if err := json.Unmarshal(data, &suite); err != nil {
		return Suite{}, fmt.Errorf("parse suite %s: %w", path, err)
	}
	if len(suite.Tests) == 0 {
		return Suite{}, fmt.Errorf("suite %s contains no tests", path)
	}
	base := filepath.Dir(path)
	for i, t := range suite.Tests {
		if strings.TrimSpace(t.Query) == "" {
			return Suite{}, fmt.Errorf("suite test %d has an empty query", t.ID)
		}
		if len(t.Expected) == 0 {
			return Suite{}, fmt.Errorf("suite test %d has no expected text", t.ID)
		}
		if t.Document != "" && !filepath.IsAbs(t.Document) {
			suite.Tests[i].Document = filepath.Join(base, t.Document)
		}
	}
	return suite, nil
}

// Run selects passages for every case using at most workers goroutines and
// returns results in suite order. A case that fails to load its document is
// recorded with an error rather than aborting the run.
func Run(ctx context.Context, suite Suite, opts rag.Options, workers int) ([]Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = 1
	}

	results := make([]Result, len(suite.Tests))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, tc := range suite.Tests {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = runCase(tc, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runCase(tc Case, opts rag.Options) Result {
	result := Result{
		Timestamp: time.Now().Format(time.RFC3339),
		CaseID:    tc.ID,
		Category:  tc.Category,
		Query:     tc.Query,
		K:         opts.K,
	}

	content, err := caseContent(tc)
	if err != nil {
		result.Error = err.Error()
		result.Missing = tc.Expected
		return result
	}

	start := time.Now()
	sel, err := rag.Select(content, tc.Query, opts)
	elapsed := time.Since(start)
	if err != nil {
		result.Error = err.Error()
		result.Missing = tc.Expected
		return result
	}
	logging.LogSelection(string(sel.Path), tc.Query, sel.ChunkCount, len(sel.Chunks), elapsed)

	result.Path = string(sel.Path)
	result.ChunkCount = sel.ChunkCount
	result.Returned = len(sel.Chunks)
	result.DocumentWords = len(strings.Fields(content))
	for _, c := range sel.Chunks {
		result.ReturnedWords += len(strings.Fields(c.Text))
	}
	result.ElapsedMicros = elapsed.Microseconds()
	result.Missing = missingExpected(sel.Chunks, tc.Expected)
	result.Retained = len(result.Missing) == 0
	return result
}

func caseContent(tc Case) (string, error) {
	if tc.Document == "" {
		return tc.Content, nil
	}
	raw, err := os.ReadFile(tc.Document)
	if err != nil {
		return "", fmt.Errorf("read document %s: %w", tc.Document, err)
	}
	return string(raw), nil
}

// missingExpected returns the expected strings not found, case-insensitively,
// in any passage.
func missingExpected(chunks []rag.ScoredChunk, expected []string) []string {
	var missing []string
	for _, want := range expected {
		needle := strings.ToLower(strings.TrimSpace(want))
		found := false
		for _, c := range chunks {
			if strings.Contains(strings.ToLower(c.Text), needle) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, want)
		}
	}
	return missing
}

// Summarize aggregates results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results), Paths: make(map[string]int)}
	ratios := 0.0
	measured := 0
	for _, r := range results {
		if r.Error != "" {
			s.Errors++
			continue
		}
		s.Paths[r.Path]++
		if r.Retained {
			s.Retained++
		}
		if r.DocumentWords > 0 {
			ratios += float64(r.ReturnedWords) / float64(r.DocumentWords)
			measured++
		}
	}
	if s.Total > 0 {
		s.RetentionRate = float64(s.Retained) / float64(s.Total)
	}
	if measured > 0 {
		s.CompressionAvg = ratios / float64(measured)
	}
	return s
}

// WriteResults appends results as JSON lines to dir/retention_results.jsonl
// and returns the file path.
func WriteResults(dir string, results []Result) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating results directory: %w", err)
	}
	path := filepath.Join(dir, resultsFile)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("open results file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	encoder := json.NewEncoder(writer)
	encoder.SetEscapeHTML(false)
	for _, r := range results {
		if err := encoder.Encode(r); err != nil {
			return "", fmt.Errorf("write result: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("flush results: %w", err)
	}
	return path, nil
}
