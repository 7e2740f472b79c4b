package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "tacworld"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App     AppConfig
	Session SessionConfig
	Gemini  GeminiConfig
	Redis   RedisConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"TACWORLD_APP_ENV" default:"dev"`
	Port         string `envconfig:"TACWORLD_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"TACWORLD_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TACWORLD_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type SessionConfig struct {
	TTL           time.Duration `envconfig:"TACWORLD_SESSION_TTL" default:"2h"`
	SweepInterval time.Duration `envconfig:"TACWORLD_SESSION_SWEEP_INTERVAL" default:"10m"`
}

type GeminiConfig struct {
	APIKey      string        `envconfig:"TACWORLD_GEMINI_API_KEY"`
	ChatModel   string        `envconfig:"TACWORLD_GEMINI_CHAT_MODEL" default:"gemini-2.5-flash"`
	ImageModel  string        `envconfig:"TACWORLD_GEMINI_IMAGE_MODEL" default:"gemini-2.5-flash-image"`
	Temperature float32       `envconfig:"TACWORLD_GEMINI_TEMPERATURE" default:"0.7"`
	CallTimeout time.Duration `envconfig:"TACWORLD_GEMINI_CALL_TIMEOUT" default:"45s"`
}

// RedisConfig is optional; when URL and Address are both empty the API runs
// without the idempotency replay cache.
type RedisConfig struct {
	URL          string        `envconfig:"TACWORLD_REDIS_URL"`
	Address      string        `envconfig:"TACWORLD_REDIS_ADDR"`
	Password     string        `envconfig:"TACWORLD_REDIS_PASSWORD"`
	DB           int           `envconfig:"TACWORLD_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"TACWORLD_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"TACWORLD_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"TACWORLD_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"TACWORLD_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"TACWORLD_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}
