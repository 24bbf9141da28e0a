package rag

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Request is the line-oriented boundary input: a query, the raw document
// text and an optional passage budget.
type Request struct {
	Query   string `json:"query"`
	Content string `json:"content"`
	K       int    `json:"k"`
}

var requestSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"query":   map[string]any{"type": "string"},
		"content": map[string]any{"type": "string"},
		"k":       map[string]any{"type": "integer", "minimum": 0},
	},
	"required": []string{"query", "content"},
}

type rawRequest struct {
	Query   string       `json:"query"`
	Content string       `json:"content"`
	K       *json.Number `json:"k"`
}

// DecodeRequest reads one JSON request object from r, validates it and fills
// K with defaultK when the request omits it.
func DecodeRequest(r io.Reader, defaultK int) (Request, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Request{}, fmt.Errorf("read request: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return Request{}, fmt.Errorf("request is empty")
	}

	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(requestSchema), gojsonschema.NewBytesLoader(data))
	if err != nil {
		return Request{}, fmt.Errorf("parse request: %w", err)
	}
	if !result.Valid() {
		var errs []string
		for _, desc := range result.Errors() {
			errs = append(errs, desc.String())
		}
		return Request{}, fmt.Errorf("request validation failed: %s", strings.Join(errs, ", "))
	}

	var raw rawRequest
	if err := json.Unmarshal(data, &raw); err != nil {
		return Request{}, fmt.Errorf("decode request: %w", err)
	}

	req := Request{Query: raw.Query, Content: raw.Content, K: defaultK}
	if raw.K != nil {
		k, err := numberToInt(*raw.K)
		if err != nil {
			return Request{}, fmt.Errorf("decode request k: %w", err)
		}
		req.K = k
	}
	return req, nil
}

// numberToInt converts an integral JSON number, saturating at math.MaxInt.
func numberToInt(n json.Number) (int, error) {
	if v, err := n.Int64(); err == nil {
		if v > math.MaxInt {
			return math.MaxInt, nil
		}
		return int(v), nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	if f >= math.MaxInt64 {
		return math.MaxInt, nil
	}
	return int(f), nil
}

// EncodeResults writes passages as an indented JSON array followed by a
// newline. A nil slice is written as [].
func EncodeResults(w io.Writer, chunks []ScoredChunk) error {
	if chunks == nil {
		chunks = []ScoredChunk{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(chunks); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}
