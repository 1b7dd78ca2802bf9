// Package config loads service configuration from an optional YAML file and
// the environment. Environment variables override file values.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Languages is the closed language set offered to the UI. The dictionary
// covers a subset of the pairs; the rest fall through to identity or the
// fallback marker.
var Languages = []string{"English", "Hindi", "Tamil", "Spanish"}

// Config holds everything the service needs at startup. GroqAPIKey is
// optional: without it the resolver runs in dictionary-only mode.
type Config struct {
	Addr        string `yaml:"addr" env:"ADDR" env-default:":8080"`
	DatabaseDSN string `yaml:"database_dsn" env:"DATABASE_DSN" env-default:"conversations.db"`
	GroqAPIKey  string `yaml:"groq_api_key" env:"GROQ_API_KEY"`
	GroqBaseURL string `yaml:"groq_base_url" env:"GROQ_BASE_URL"`
	GroqModel   string `yaml:"groq_model" env:"GROQ_MODEL"`
	DoctorLang  string `yaml:"doctor_lang" env:"DOCTOR_LANG" env-default:"English"`
	PatientLang string `yaml:"patient_lang" env:"PATIENT_LANG" env-default:"Tamil"`
}

// Load reads configuration. The YAML path comes from CONFIG_PATH (fallback
// "./config.yaml"); a missing file is only an error when the path was set
// explicitly.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate rejects languages outside the configured set.
func (c *Config) Validate() error {
	if !IsSupportedLanguage(c.DoctorLang) {
		return fmt.Errorf("unsupported doctor language %q", c.DoctorLang)
	}
	if !IsSupportedLanguage(c.PatientLang) {
		return fmt.Errorf("unsupported patient language %q", c.PatientLang)
	}
	return nil
}

// IsSupportedLanguage reports whether name belongs to the closed language
// set, matched case-insensitively.
func IsSupportedLanguage(name string) bool {
	for _, lang := range Languages {
		if strings.EqualFold(lang, name) {
			return true
		}
	}
	return false
}
