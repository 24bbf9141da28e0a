// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
)

// Config represents the top-level application configuration.
//
// Selection tunables are pointers so that an explicit zero in the config file
// is distinguishable from an absent key; absent keys fall back to the
// documented defaults when options are resolved.
type Config struct {
	Debug   bool   `json:"debug"`
	LogFile string `json:"logFile,omitempty"`

	K                   *int     `json:"k,omitempty"`
	BypassThreshold     *int     `json:"bypassThreshold,omitempty"`
	MinChunkWords       *int     `json:"minChunkWords,omitempty"`
	MaxChunkWords       *int     `json:"maxChunkWords,omitempty"`
	MinParagraphWords   *int     `json:"minParagraphWords,omitempty"`
	BoilerplateMaxWords *int     `json:"boilerplateMaxWords,omitempty"`
	FallbackChars       *int     `json:"fallbackChars,omitempty"`
	BM25K1              *float64 `json:"bm25K1,omitempty"`
	BM25B               *float64 `json:"bm25B,omitempty"`
	LeadBonus           *float64 `json:"leadBonus,omitempty"`

	ConfigPath string `json:"-"`
}

// LogFilePath returns the path to the application log file. An empty path
// disables file logging.
func (c Config) LogFilePath() string {
	return strings.TrimSpace(c.LogFile)
}

// Load reads the application configuration from the specified path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
