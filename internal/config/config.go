package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/medkb/sympta-cli/internal/match"
)

// Provider configures one optional remote collaborator (translation or
// speech). Disabled providers are replaced by no-ops at wiring time.
type Provider struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"base_url,omitempty"`
	Model   string `yaml:"model,omitempty"`
}

// Config is the in-memory representation of ~/.sympta/sympta.yaml.
type Config struct {
	DataPath  string   `yaml:"data_path"`
	Language  string   `yaml:"language,omitempty"`
	MinScore  float64  `yaml:"min_score,omitempty"`
	Listen    string   `yaml:"listen,omitempty"`
	Translate Provider `yaml:"translate,omitempty"`
	Speech    Provider `yaml:"speech,omitempty"`
}

// SymptaDir returns the absolute path to ~/.sympta/.
func SymptaDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".sympta"), nil
}

// ConfigPath returns the absolute path to ~/.sympta/sympta.yaml.
func ConfigPath() (string, error) {
	dir, err := SymptaDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sympta.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the default Config written on first sympta init.
func DefaultConfig() (*Config, error) {
	dir, err := SymptaDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		DataPath: filepath.Join(dir, "symptom_data.csv"),
		Language: "en",
		MinScore: match.DefaultMinScore,
		Listen:   "127.0.0.1:8585",
		Translate: Provider{
			Enabled: false,
			BaseURL: "https://libretranslate.com",
		},
		Speech: Provider{
			Enabled: false,
			BaseURL: "https://api.openai.com/v1",
			Model:   "tts-1",
		},
	}, nil
}

// Load reads and parses ~/.sympta/sympta.yaml, applying defaults for any
// setting left unset.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	cfg.DataPath, err = ExpandPath(cfg.DataPath)
	if err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Save marshals cfg and writes it to ~/.sympta/sympta.yaml.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	if cfg.MinScore == 0 {
		cfg.MinScore = match.DefaultMinScore
	}
	if cfg.Listen == "" {
		cfg.Listen = "127.0.0.1:8585"
	}
}
