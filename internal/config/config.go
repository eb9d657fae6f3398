package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/endoclin/admin/internal"
	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel string
	HTTPAddr string

	APIURL      string
	APIKey      string
	HTTPTimeout time.Duration

	AuthProvider      string
	LocalAuthUsername string
	LocalAuthPassword string

	SessionSecret  string
	SessionBackend string
	SessionFile    string
	RedisURL       string
	SQLiteDSN      string

	ProfessionalsBackend string
	PostgresDSN          string

	Defaults internal.AppointmentDefaults
}

var (
	cfg  *Config
	once sync.Once
)

// Load reads the process environment once, after an optional .env file, and
// panics on an invalid configuration.
func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		c, err := FromEnv()
		if err != nil {
			panic("Invalid config: " + err.Error())
		}
		cfg = c
	})
	return cfg
}

// FromEnv builds a Config from the current environment without caching it.
func FromEnv() (*Config, error) {
	defaults := internal.DefaultAppointmentDefaults()
	c := &Config{
		Env:                  getEnv("APP_ENV", "development"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		HTTPAddr:             getEnv("HTTP_ADDR", ":8080"),
		APIURL:               strings.TrimRight(getEnv("API_URL", "http://localhost:3001/api"), "/"),
		APIKey:               getEnv("API_KEY", ""),
		AuthProvider:         getEnv("AUTH_PROVIDER", "remote"),
		LocalAuthUsername:    getEnv("LOCAL_AUTH_USERNAME", "admin"),
		LocalAuthPassword:    getEnv("LOCAL_AUTH_PASSWORD", ""),
		SessionSecret:        getEnv("SESSION_SECRET", ""),
		SessionBackend:       getEnv("SESSION_BACKEND", "file"),
		SessionFile:          getEnv("SESSION_FILE", "data/sessions.json"),
		RedisURL:             getEnv("REDIS_URL", ""),
		SQLiteDSN:            getEnv("SQLITE_DSN", "file:data/sessions.db"),
		ProfessionalsBackend: getEnv("PROFESSIONALS_BACKEND", "remote"),
		PostgresDSN:          getEnv("POSTGRES_DSN", ""),
	}

	var invalid []string
	timeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		invalid = append(invalid, "HTTP_TIMEOUT")
	}
	c.HTTPTimeout = timeout

	c.Defaults.DuracaoConsulta = getEnvInt("DEFAULT_DURACAO_CONSULTA", defaults.DuracaoConsulta, &invalid)
	c.Defaults.PrimeiraConsultaDuracao = getEnvInt("DEFAULT_PRIMEIRA_CONSULTA_DURACAO", defaults.PrimeiraConsultaDuracao, &invalid)
	c.Defaults.RetornoDuracao = getEnvInt("DEFAULT_RETORNO_DURACAO", defaults.RetornoDuracao, &invalid)

	if len(invalid) > 0 {
		return nil, fmt.Errorf("invalid values for: %s", strings.Join(invalid, ", "))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.APIURL == "" {
		return errors.New("API_URL is required")
	}
	switch c.AuthProvider {
	case "remote":
	case "local":
		if c.LocalAuthPassword == "" {
			return errors.New("LOCAL_AUTH_PASSWORD is required when AUTH_PROVIDER=local")
		}
		if c.Env == "production" {
			return errors.New("AUTH_PROVIDER=local is not allowed in production")
		}
	default:
		return errors.New("AUTH_PROVIDER must be one of: remote, local")
	}
	if c.Env != "development" && c.SessionSecret == "" {
		return errors.New("SESSION_SECRET is required outside development")
	}
	switch c.SessionBackend {
	case "file":
		if c.SessionFile == "" {
			return errors.New("SESSION_FILE is required when SESSION_BACKEND=file")
		}
	case "redis":
		if c.RedisURL == "" {
			return errors.New("REDIS_URL is required when SESSION_BACKEND=redis")
		}
	case "sqlite":
		if c.SQLiteDSN == "" {
			return errors.New("SQLITE_DSN is required when SESSION_BACKEND=sqlite")
		}
	default:
		return errors.New("SESSION_BACKEND must be one of: file, redis, sqlite")
	}
	switch c.ProfessionalsBackend {
	case "remote":
	case "postgres":
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when PROFESSIONALS_BACKEND=postgres")
		}
	default:
		return errors.New("PROFESSIONALS_BACKEND must be one of: remote, postgres")
	}
	if c.Defaults.DuracaoConsulta <= 0 || c.Defaults.PrimeiraConsultaDuracao <= 0 || c.Defaults.RetornoDuracao <= 0 {
		return errors.New("default appointment durations must be positive")
	}
	return nil
}

// SessionKey returns the secret used to sign the browser identity cookie. In
// development an unset secret falls back to a fixed key.
func (c *Config) SessionKey() []byte {
	if c.SessionSecret == "" {
		return []byte("endoclin-admin-development-only")
	}
	return []byte(c.SessionSecret)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int, invalid *[]string) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*invalid = append(*invalid, key)
		return fallback
	}
	return n
}
