package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from every environment variable read by Load.
// AGRIMART_DATABASE_HOST maps to the koanf key "database.host".
const EnvPrefix = "AGRIMART_"

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string `koanf:"host" validate:"required"`
	Port               string `koanf:"port" validate:"required"`
	User               string `koanf:"user" validate:"required"`
	Password           string `koanf:"password"`
	Name               string `koanf:"name" validate:"required"`
	SSLMode            string `koanf:"sslmode"`
	MaxOpenConns       int    `koanf:"max_open_conns"`
	MaxIdleConns       int    `koanf:"max_idle_conns"`
	ConnMaxLifetimeSec int    `koanf:"conn_max_lifetime_sec"`
}

// MinIOConfig holds object storage settings for product images.
type MinIOConfig struct {
	Endpoint      string `koanf:"endpoint"`
	AccessKey     string `koanf:"access_key"`
	SecretKey     string `koanf:"secret_key"`
	Bucket        string `koanf:"bucket"`
	UseSSL        bool   `koanf:"use_ssl"`
	PresignExpiry int    `koanf:"presign_expiry_sec"`
}

// Enabled reports whether enough settings are present to build a client.
func (m MinIOConfig) Enabled() bool {
	return m.Endpoint != "" && m.Bucket != ""
}

// AuthConfig holds the token signing settings.
type AuthConfig struct {
	TokenSecret   string `koanf:"token_secret" validate:"required,min=16"`
	TokenTTLHours int    `koanf:"token_ttl_hours"`
	LoginRPS      int    `koanf:"login_rps"`
	LoginBurst    int    `koanf:"login_burst"`
}

// TokenTTL returns the token lifetime as a duration.
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLHours) * time.Hour
}

// ServerConfig groups HTTP server settings.
type ServerConfig struct {
	Host     string `koanf:"host"`
	Port     string `koanf:"port" validate:"required"`
	TimeZone string `koanf:"timezone"`
}

// AppConfig is the centralized configuration struct for the application.
type AppConfig struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	MinIO    MinIOConfig    `koanf:"minio"`
	Auth     AuthConfig     `koanf:"auth"`
}

// Location resolves the configured time zone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	if c.Server.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Server.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads configuration from AGRIMART_ prefixed environment variables.
// A .env file is loaded first when present; real environment variables take precedence.
func Load() (*AppConfig, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// envKey maps SECTION_FIELD_NAME to section.field_name.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

func defaults() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Host: "localhost:8080",
			Port: "8080",
		},
		Database: DatabaseConfig{
			Port:               "5432",
			SSLMode:            "disable",
			MaxOpenConns:       10,
			MaxIdleConns:       5,
			ConnMaxLifetimeSec: 300,
		},
		MinIO: MinIOConfig{
			PresignExpiry: 900,
		},
		Auth: AuthConfig{
			TokenTTLHours: 72,
			LoginRPS:      5,
			LoginBurst:    10,
		},
	}
}
