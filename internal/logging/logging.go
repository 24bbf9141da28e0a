package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mwiater/bm25filter/internal/util"
)

const queryPreviewRunes = 80

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init routes the standard logger to console (if non-nil) and to an
// append-mode file at logPath (if non-empty). With neither, output is discarded.
func Init(logPath string, console io.Writer) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	if console != nil {
		writers = append(writers, console)
	}

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	if len(writers) == 0 {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogSelection records one pipeline run: the path taken, the query and the
// chunk counts before and after selection.
func LogSelection(path, query string, chunks, returned int, elapsed time.Duration) {
	log.Println(buildSelectionMessage(path, query, chunks, returned, elapsed))
}

// LogPayload records an arbitrary value under a label, JSON-encoded when possible.
func LogPayload(label string, payload any) {
	log.Printf("[%s] %s", strings.ToUpper(strings.TrimSpace(label)), formatPayload(payload))
}

func buildSelectionMessage(path, query string, chunks, returned int, elapsed time.Duration) string {
	stage := strings.TrimSpace(path)
	if stage == "" {
		stage = "unknown"
	}
	q := strings.TrimSpace(query)
	if q == "" {
		q = `""`
	} else {
		q = fmt.Sprintf("%q", util.TruncateRunes(q, queryPreviewRunes))
	}
	parts := []string{fmt.Sprintf("[%s]", strings.ToUpper(stage))}
	parts = append(parts, fmt.Sprintf("query=%s", q))
	parts = append(parts, fmt.Sprintf("chunks=%d", chunks))
	parts = append(parts, fmt.Sprintf("returned=%d", returned))
	parts = append(parts, fmt.Sprintf("elapsed=%s", elapsed.Truncate(time.Microsecond)))
	return strings.Join(parts, " ")
}

func formatPayload(payload any) string {
	switch v := payload.(type) {
	case nil:
		return "null"
	case string:
		if strings.TrimSpace(v) == "" {
			return `""`
		}
		return v
	case []byte:
		if len(v) == 0 {
			return "[]"
		}
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
