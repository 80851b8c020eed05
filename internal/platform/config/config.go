// Package config assembles runtime configuration. Environment variables
// cover the basics so main stays lean; a YAML file can override mock
// latencies and check fixtures.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Latencies sets how long each mock collaborator sleeps before answering.
// The delays stand in for network round trips; they never represent retries.
type Latencies struct {
	Forms  time.Duration `yaml:"forms"`
	OCR    time.Duration `yaml:"ocr"`
	Sheets time.Duration `yaml:"sheets"`
	Mail   time.Duration `yaml:"mail"`
	Files  time.Duration `yaml:"files"`
}

// UnmarshalYAML accepts Go duration strings ("100ms", "2s") since the YAML
// decoder has no native time.Duration support. Absent keys keep whatever the
// struct already holds.
func (l *Latencies) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Forms  string `yaml:"forms"`
		OCR    string `yaml:"ocr"`
		Sheets string `yaml:"sheets"`
		Mail   string `yaml:"mail"`
		Files  string `yaml:"files"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	for _, f := range []struct {
		value string
		dst   *time.Duration
	}{
		{raw.Forms, &l.Forms},
		{raw.OCR, &l.OCR},
		{raw.Sheets, &l.Sheets},
		{raw.Mail, &l.Mail},
		{raw.Files, &l.Files},
	} {
		if f.value == "" {
			continue
		}
		d, err := time.ParseDuration(f.value)
		if err != nil {
			return fmt.Errorf("parse latency %q: %w", f.value, err)
		}
		*f.dst = d
	}
	return nil
}

// Mail holds the keyword sets the content check matches against the body.
type Mail struct {
	Recipient       string   `yaml:"recipient"`
	CompanyKeywords []string `yaml:"company_keywords"`
	ContactKeywords []string `yaml:"contact_keywords"`
}

// Config is the full runtime configuration.
type Config struct {
	Addr    string    `yaml:"addr"`
	FormID  string    `yaml:"form_id"`
	SheetID string    `yaml:"sheet_id"`
	Mocks   Latencies `yaml:"mock_latencies"`
	Mail    Mail      `yaml:"mail"`
}

// Default returns the built-in configuration with per-collaborator delays.
func Default() Config {
	return Config{
		Addr:    ":8080",
		FormID:  "test-form-id",
		SheetID: "test-sheet-id",
		Mocks: Latencies{
			Forms:  100 * time.Millisecond,
			OCR:    800 * time.Millisecond,
			Sheets: 200 * time.Millisecond,
			Mail:   300 * time.Millisecond,
			Files:  500 * time.Millisecond,
		},
		Mail: Mail{
			Recipient: "test@example.com",
		},
	}
}

// FromEnv builds a Config from environment variables, loading the YAML file
// named by SURVEYGATE_CONFIG when present.
func FromEnv() (Config, error) {
	cfg := Default()
	if addr := os.Getenv("SURVEYGATE_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if path := os.Getenv("SURVEYGATE_CONFIG"); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
		if addr := os.Getenv("SURVEYGATE_ADDR"); addr != "" {
			cfg.Addr = addr
		}
	}
	return cfg, nil
}

// Load reads a YAML config file over the defaults, so partial files only
// override what they name.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
