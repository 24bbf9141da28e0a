package bm25filter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAccuracyCommand(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "whales.txt")
	if err := os.WriteFile(docPath, []byte(whaleDocument(20, 7)), 0o644); err != nil {
		t.Fatalf("write doc: %v", err)
	}
	suite := map[string]any{
		"tests": []map[string]any{
			{"id": 1, "query": "blue whale migration", "document": "whales.txt", "expected": []string{"blue whale migration patterns"}},
		},
	}
	data, _ := json.Marshal(suite)
	suitePath := filepath.Join(dir, "suite.json")
	if err := os.WriteFile(suitePath, data, 0o644); err != nil {
		t.Fatalf("write suite: %v", err)
	}

	out, _, err := runCommand(t, "{}", "", "accuracy", "--suite", suitePath, "--k", "2", "--workers", "1")
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if !strings.Contains(out, "path=ranked returned=2/20") {
		t.Fatalf("unexpected case line:\n%s", out)
	}
	if !strings.Contains(out, "retained 1/1") {
		t.Fatalf("unexpected summary:\n%s", out)
	}
}

func TestAccuracyCommandMissingSuite(t *testing.T) {
	_, _, err := runCommand(t, "{}", "", "accuracy", "--suite", filepath.Join(t.TempDir(), "none.json"))
	if err == nil {
		t.Fatal("expected error for missing suite")
	}
}

func TestBenchmarkCommand(t *testing.T) {
	doc := writeTempFile(t, "whales.txt", whaleDocument(20, 3))
	out, _, err := runCommand(t, "{}", "", "benchmark", "--file", doc, "--count", "3", "--k", "4", "whale", "migration")
	if err != nil {
		t.Fatalf("benchmark: %v", err)
	}
	if !strings.Contains(out, "20 chunks, path=ranked, returned=4") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "iterations=3") {
		t.Fatalf("missing iteration count:\n%s", out)
	}
}

func TestAccuracyCommandProfiles(t *testing.T) {
	dir := t.TempDir()
	suite := map[string]any{
		"tests": []map[string]any{
			{"id": 1, "query": "blue whale migration", "content": whaleDocument(20, 7), "expected": []string{"blue whale migration patterns"}},
		},
	}
	data, _ := json.Marshal(suite)
	suitePath := filepath.Join(dir, "suite.json")
	if err := os.WriteFile(suitePath, data, 0o644); err != nil {
		t.Fatalf("write suite: %v", err)
	}
	narrow := filepath.Join(dir, "narrow.json")
	if err := os.WriteFile(narrow, []byte(`{"k": 1}`), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	wide := filepath.Join(dir, "wide.json")
	if err := os.WriteFile(wide, []byte(`{"bypassThreshold": 25}`), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	out, _, err := runCommand(t, "{}", "", "accuracy", "--suite", suitePath, "--profile", narrow, "--profile", wide)
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	narrowAt := strings.Index(out, "profile "+narrow)
	wideAt := strings.Index(out, "profile "+wide)
	if narrowAt < 0 || wideAt < narrowAt {
		t.Fatalf("expected both profile headers in order:\n%s", out)
	}
	if !strings.Contains(out[narrowAt:wideAt], "path=ranked returned=1/20") {
		t.Fatalf("narrow profile should keep one passage:\n%s", out)
	}
	if !strings.Contains(out[wideAt:], "path=bypass returned=20/20") {
		t.Fatalf("wide profile should bypass ranking:\n%s", out)
	}
}

func TestAccuracyCommandMissingProfile(t *testing.T) {
	suitePath := writeTempFile(t, "suite.json", `{"tests":[{"id":1,"query":"q","content":"c","expected":["c"]}]}`)
	_, _, err := runCommand(t, "{}", "", "accuracy", "--suite", suitePath, "--profile", filepath.Join(t.TempDir(), "none.json"))
	if err == nil {
		t.Fatal("expected error for missing profile")
	}
}
