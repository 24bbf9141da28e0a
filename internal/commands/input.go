package bm25filter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mwiater/bm25filter/internal/appconfig"
	"github.com/mwiater/bm25filter/internal/rag"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// resolveOptions layers an explicit --k flag over the configured options.
func resolveOptions(cmd *cobra.Command) (rag.Options, error) {
	return optionsWithFlags(cmd, GetConfig())
}

// optionsWithFlags resolves cfg into options and applies an explicit --k.
func optionsWithFlags(cmd *cobra.Command, cfg *appconfig.Config) (rag.Options, error) {
	opts := rag.OptionsFromConfig(cfg)
	if flag := cmd.Flags().Lookup("k"); flag != nil && flag.Changed {
		k, err := cmd.Flags().GetInt("k")
		if err != nil {
			return rag.Options{}, err
		}
		opts.K = k
	}
	return opts, nil
}

// readRequest resolves the query and document either from a JSON request on
// stdin or from --query/--file. A request k overrides opts.K.
func readRequest(cmd *cobra.Command, query, file string, forceStdin bool, opts *rag.Options) (string, string, error) {
	in := cmd.InOrStdin()
	if forceStdin || (query == "" && file == "" && !isTerminal(in)) {
		req, err := rag.DecodeRequest(in, opts.K)
		if err != nil {
			return "", "", err
		}
		opts.K = req.K
		return req.Query, req.Content, nil
	}

	if strings.TrimSpace(query) == "" {
		return "", "", fmt.Errorf("--query is required when no request is piped on stdin")
	}
	content, err := readDocument(file)
	if err != nil {
		return "", "", err
	}
	return query, content, nil
}

func readDocument(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("--file is required")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document %s: %w", path, err)
	}
	return string(raw), nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
