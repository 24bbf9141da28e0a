package accuracy

import (
	"context"
	"fmt"
	"io"

	"github.com/mwiater/bm25filter/internal/logging"
	"github.com/mwiater/bm25filter/internal/rag"
)

// RunAccuracyCommand is the CLI entry point for accuracy. It runs the suite,
// prints a per-case line and a summary to out, and writes JSONL results to
// outDir when it is non-empty.
func RunAccuracyCommand(ctx context.Context, out io.Writer, suitePath, outDir string, opts rag.Options, workers int) (Summary, error) {
	logging.LogEvent("[ACCURACY] suite=%s k=%d workers=%d", suitePath, opts.K, workers)
	suite, err := LoadSuite(suitePath)
	if err != nil {
		return Summary{}, err
	}

	results, err := Run(ctx, suite, opts, workers)
	if err != nil {
		return Summary{}, err
	}

	total := len(results)
	for i, r := range results {
		status := "retained"
		switch {
		case r.Error != "":
			status = "error: " + r.Error
		case !r.Retained:
			status = fmt.Sprintf("missing %q", r.Missing)
		}
		fmt.Fprintf(out, "[%d/%d] case %d (%s) path=%s returned=%d/%d - %s\n", i+1, total, r.CaseID, r.Query, r.Path, r.Returned, r.ChunkCount, status)
	}

	summary := Summarize(results)
	fmt.Fprintf(out, "retained %d/%d (%.1f%%), errors %d, avg compression %.2f\n",
		summary.Retained, summary.Total, summary.RetentionRate*100, summary.Errors, summary.CompressionAvg)

	if outDir != "" {
		path, err := WriteResults(outDir, results)
		if err != nil {
			return summary, err
		}
		fmt.Fprintf(out, "results written to %s\n", path)
	}
	return summary, nil
}
