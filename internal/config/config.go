package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	AdvisorModeLocal = "local"
	AdvisorModeAPI   = "api"
)

// Config is the process-wide settings surface, loaded once at startup and
// passed down explicitly; nothing reads the environment after Load.
type Config struct {
	HTTPAddr string `env:"SIMCORP_HTTP_ADDR" envDefault:":8080"`

	// Empty DSN selects the in-memory repository.
	DBDSN         string `env:"SIMCORP_DB_DSN"`
	DBAutoMigrate bool   `env:"SIMCORP_DB_AUTOMIGRATE"`
	MigrationsDir string `env:"SIMCORP_MIGRATIONS_DIR" envDefault:"./migrations"`

	// Empty address selects the in-memory candidate pool.
	RedisAddr string `env:"SIMCORP_REDIS_ADDR"`

	AdvisorMode string `env:"SIMCORP_ADVISOR_MODE" envDefault:"local"`
	LLMBaseURL  string `env:"SIMCORP_LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMAPIKey   string `env:"SIMCORP_LLM_API_KEY"`
	LLMModel    string `env:"SIMCORP_LLM_MODEL" envDefault:"gpt-4o-mini"`

	// Seed 0 means time-seeded randomness.
	Seed int64 `env:"SIMCORP_SEED"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.AdvisorMode != AdvisorModeLocal && cfg.AdvisorMode != AdvisorModeAPI {
		return Config{}, fmt.Errorf("SIMCORP_ADVISOR_MODE must be %q or %q", AdvisorModeLocal, AdvisorModeAPI)
	}
	if cfg.AdvisorMode == AdvisorModeAPI && cfg.LLMAPIKey == "" {
		return Config{}, fmt.Errorf("SIMCORP_LLM_API_KEY is required in api mode")
	}
	return cfg, nil
}
