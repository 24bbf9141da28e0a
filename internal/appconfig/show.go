package appconfig

import (
	"fmt"
	"io"
	"strconv"
)

// ShowConfig prints the current configuration summary. Unset tunables are
// reported as "default".
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fmt.Fprintln(out, "Current configuration:")
	if cfg == nil {
		cfg = &fallback
	}

	fmt.Fprintf(out, "  Debug:                 %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Log File:              %s\n", stringValue(cfg.LogFilePath()))
	fmt.Fprintf(out, "  Top K:                 %s\n", intValue(cfg.K))
	fmt.Fprintf(out, "  Bypass Threshold:      %s\n", intValue(cfg.BypassThreshold))
	fmt.Fprintf(out, "  Min Chunk Words:       %s\n", intValue(cfg.MinChunkWords))
	fmt.Fprintf(out, "  Max Chunk Words:       %s\n", intValue(cfg.MaxChunkWords))
	fmt.Fprintf(out, "  Min Paragraph Words:   %s\n", intValue(cfg.MinParagraphWords))
	fmt.Fprintf(out, "  Boilerplate Max Words: %s\n", intValue(cfg.BoilerplateMaxWords))
	fmt.Fprintf(out, "  Fallback Chars:        %s\n", intValue(cfg.FallbackChars))
	fmt.Fprintf(out, "  BM25 k1:               %s\n", floatValue(cfg.BM25K1))
	fmt.Fprintf(out, "  BM25 b:                %s\n", floatValue(cfg.BM25B))
	fmt.Fprintf(out, "  Lead Bonus:            %s\n", floatValue(cfg.LeadBonus))
}

func stringValue(v string) string {
	if v == "" {
		return "(none)"
	}
	return v
}

func intValue(v *int) string {
	if v == nil {
		return "default"
	}
	return strconv.Itoa(*v)
}

func floatValue(v *float64) string {
	if v == nil {
		return "default"
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}
