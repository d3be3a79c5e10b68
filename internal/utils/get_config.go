package utils

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

const DefaultConfigPath = "config.yaml"

type Config struct {
	// Application
	AppEnv  string `yaml:"APP_ENV"`
	AppPort string `yaml:"APP_PORT"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`
	DBTimeZone string `yaml:"DB_TIMEZONE"`
	DBPath     string `yaml:"DB_PATH"`

	// Write guard
	JWTSecret string `yaml:"JWT_SECRET"`
	JWTIssuer string `yaml:"JWT_ISSUER"`

	// HTTP
	CORSAllowOrigins string `yaml:"CORS_ALLOW_ORIGINS"`
	RateLimitMax     int    `yaml:"RATE_LIMIT_MAX"`
	LogFile          string `yaml:"LOG_FILE"`

	// Tracing
	OtelEnabled  bool   `yaml:"OTEL_ENABLED"`
	OtelExporter string `yaml:"OTEL_EXPORTER"`
	OtelEndpoint string `yaml:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		AppEnv:           "development",
		AppPort:          "8080",
		DBDriver:         "postgres",
		DBSSLMode:        "disable",
		DBTimeZone:       "UTC",
		DBPath:           "recipes.db",
		JWTIssuer:        "RECIPES",
		CORSAllowOrigins: "*",
		RateLimitMax:     20,
		LogFile:          "./logs/app.log",
		OtelExporter:     "stdout",
	}
}

// LoadConfigFrom reads the YAML file at path. A missing file is not an error;
// defaults and environment variables still apply.
func LoadConfigFrom(path string) error {
	cfg := defaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return err
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return err
	}

	applyEnv(&cfg)
	config = cfg
	return nil
}

// applyEnv lets environment variables with the YAML key names override the file.
func applyEnv(cfg *Config) {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	str("APP_ENV", &cfg.AppEnv)
	str("APP_PORT", &cfg.AppPort)
	str("DB_DRIVER", &cfg.DBDriver)
	str("DB_USER", &cfg.DBUser)
	str("DB_NAME", &cfg.DBName)
	str("DB_PASSWORD", &cfg.DBPassword)
	str("DB_PORT", &cfg.DBPort)
	str("DB_HOST", &cfg.DBHost)
	str("DB_SSLMODE", &cfg.DBSSLMode)
	str("DB_TIMEZONE", &cfg.DBTimeZone)
	str("DB_PATH", &cfg.DBPath)
	str("JWT_SECRET", &cfg.JWTSecret)
	str("JWT_ISSUER", &cfg.JWTIssuer)
	str("CORS_ALLOW_ORIGINS", &cfg.CORSAllowOrigins)
	str("LOG_FILE", &cfg.LogFile)
	str("OTEL_EXPORTER", &cfg.OtelExporter)
	str("OTEL_EXPORTER_OTLP_ENDPOINT", &cfg.OtelEndpoint)

	if v, ok := os.LookupEnv("RATE_LIMIT_MAX"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.RateLimitMax = n
		}
	}
	if v, ok := os.LookupEnv("OTEL_ENABLED"); ok {
		cfg.OtelEnabled = parseBool(v)
	}
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func getBoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// SetConfig replaces a single key, mostly for tests and CLI flags.
func SetConfig(key, value string) {
	switch key {
	case "APP_ENV":
		config.AppEnv = value
	case "APP_PORT":
		config.AppPort = value
	case "DB_DRIVER":
		config.DBDriver = value
	case "DB_PATH":
		config.DBPath = value
	case "JWT_SECRET":
		config.JWTSecret = value
	case "JWT_ISSUER":
		config.JWTIssuer = value
	case "LOG_FILE":
		config.LogFile = value
	case "RATE_LIMIT_MAX":
		if n, err := strconv.Atoi(value); err == nil {
			config.RateLimitMax = n
		}
	}
}

func GetConfig(key string) string {
	switch key {
	case "APP_ENV":
		return config.AppEnv
	case "APP_PORT":
		return config.AppPort
	case "DB_DRIVER":
		return config.DBDriver
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_SSLMODE":
		return config.DBSSLMode
	case "DB_TIMEZONE":
		return config.DBTimeZone
	case "DB_PATH":
		return config.DBPath
	case "JWT_SECRET":
		return config.JWTSecret
	case "JWT_ISSUER":
		return config.JWTIssuer
	case "CORS_ALLOW_ORIGINS":
		return config.CORSAllowOrigins
	case "RATE_LIMIT_MAX":
		return strconv.Itoa(config.RateLimitMax)
	case "LOG_FILE":
		return config.LogFile
	case "OTEL_ENABLED":
		return getBoolString(config.OtelEnabled)
	case "OTEL_EXPORTER":
		return config.OtelExporter
	case "OTEL_EXPORTER_OTLP_ENDPOINT":
		return config.OtelEndpoint
	default:
		return ""
	}
}

func GetConfigInt(key string, def int) int {
	n, err := strconv.Atoi(GetConfig(key))
	if err != nil {
		return def
	}
	return n
}
