package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds the process environment the application reads. An empty
// service domain or API key is a valid, unconfigured state.
type Env struct {
	ServiceDomain  string        `env:"MICROCMS_SERVICE_DOMAIN"`
	APIKey         string        `env:"MICROCMS_API_KEY"`
	ContentTimeout time.Duration `env:"WEBB_CONTENT_TIMEOUT" envDefault:"10s"`
	ConfigPath     string        `env:"WEBB_CONFIG"`
	OTLPEndpoint   string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName    string        `env:"OTEL_SERVICE_NAME" envDefault:"webb"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	e.ServiceDomain = strings.TrimSpace(e.ServiceDomain)
	e.APIKey = strings.TrimSpace(e.APIKey)
	if e.ContentTimeout <= 0 {
		e.ContentTimeout = 10 * time.Second
	}
	return e, nil
}

// Configured reports whether both content service credentials are set.
func (e Env) Configured() bool {
	return e.ServiceDomain != "" && e.APIKey != ""
}

// MaskedKey returns the API key with all but the last four characters hidden.
func (e Env) MaskedKey() string {
	if e.APIKey == "" {
		return ""
	}
	if len(e.APIKey) <= 4 {
		return strings.Repeat("*", len(e.APIKey))
	}
	return strings.Repeat("*", len(e.APIKey)-4) + e.APIKey[len(e.APIKey)-4:]
}
