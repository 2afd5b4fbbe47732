package conslisp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the interpreter and REPL settings. It is read from a YAML
// file; fields left out keep their defaults.
type Config struct {
	Prelude     bool   `yaml:"prelude"`
	MaxDepth    int    `yaml:"max-depth"`
	HistoryFile string `yaml:"history-file"`
	Prompt      string `yaml:"prompt"`
	LogLevel    string `yaml:"log-level"`
	ShowCounter bool   `yaml:"show-counter"`

	Logger *slog.Logger `yaml:"-"`
}

const DefaultMaxDepth = 10000

func DefaultConfig() *Config {
	return &Config{
		Prelude:     true,
		MaxDepth:    DefaultMaxDepth,
		HistoryFile: "~/.conslisp_history",
		Prompt:      "> ",
		LogLevel:    "warn",
	}
}

// LoadConfig reads path on top of DefaultConfig. Unknown keys are errors.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(b)
}

func ParseConfig(b []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("config: max-depth must not be negative, got %d", cfg.MaxDepth)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log-level: %w", err)
	}
	return level, nil
}

// HistoryPath expands a leading ~ in HistoryFile.
func (c *Config) HistoryPath() string {
	p := c.HistoryFile
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[1:])
		}
	}
	return p
}
