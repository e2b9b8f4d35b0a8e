package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	HTTP     HTTPConfig
	Auth     AuthConfig
	Roster   RosterConfig
	Log      LogConfig
}

type DatabaseConfig struct {
	Host         string        `env:"DB_HOST" envDefault:"localhost"`
	Port         string        `env:"DB_PORT" envDefault:"5432"`
	User         string        `env:"DB_USER" envDefault:"roster"`
	Password     string        `env:"DB_PASSWORD" envDefault:"roster"`
	DBName       string        `env:"DB_NAME" envDefault:"tournament_roster"`
	SSLMode      string        `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	OpTimeout    time.Duration `env:"DB_OP_TIMEOUT" envDefault:"5s"`
}

// DSN собирает строку подключения в формате key=value
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type HTTPConfig struct {
	Addr               string   `env:"HTTP_ADDR" envDefault:":8080"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

type AuthConfig struct {
	JWTSecret string `env:"JWT_SECRET"`
}

// RosterConfig - ограничения состава команды и окна чек-ина
type RosterConfig struct {
	Cap                           int `env:"ROSTER_CAP" envDefault:"6"`
	CheckInClosesMinutesFromStart int `env:"CHECK_IN_CLOSES_MINUTES_FROM_START" envDefault:"10"`
}

type LogConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Development bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Roster.Cap <= 0 {
		return fmt.Errorf("ROSTER_CAP must be positive, got %d", c.Roster.Cap)
	}
	if c.Roster.CheckInClosesMinutesFromStart < 0 {
		return fmt.Errorf("CHECK_IN_CLOSES_MINUTES_FROM_START must not be negative, got %d", c.Roster.CheckInClosesMinutesFromStart)
	}
	if c.Database.OpTimeout <= 0 {
		return fmt.Errorf("DB_OP_TIMEOUT must be positive, got %s", c.Database.OpTimeout)
	}
	return nil
}
