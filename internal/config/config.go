package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// DefaultModel is used when neither config file nor environment name one.
const DefaultModel = "gemini-2.5-flash"

// Config represents the global ~/.whatschat/config.toml, with environment
// overrides. The API key is optional; without it the assistant contact
// degrades to a fixed offline reply.
type Config struct {
	APIKey string `toml:"api_key" envconfig:"GEMINI_API_KEY"`
	Model  string `toml:"model" envconfig:"WHATSCHAT_MODEL"`
}

// Load reads config from the given path and applies environment overrides.
// A missing file is not an error; the environment alone may supply the key.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return &cfg, nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
