package config

import (
	"log/slog"
	"os"
	"strconv"
)

const (
	EnvDevelopment = "DEV"
	EnvProduction  = "PROD"
)

type AppConfig struct {
	// BearerToken is deliberately not required at startup: a missing
	// credential surfaces as a NotConfigured error on the first API call.
	BearerToken         string
	DatabasePath        string
	ListenAddr          string
	ProxyURL            string
	PollIntervalMinutes int
	SearchMaxResults    int
	HTTPTimeoutSeconds  int
	AppEnv              string // EnvDevelopment or EnvProduction
	LogLevel            slog.Level
}

var Config AppConfig

func LoadConfig() {
	cfg := AppConfig{}

	cfg.AppEnv = os.Getenv("APP_ENV")
	cfg.BearerToken = os.Getenv("TNSS_BEARER_TOKEN")
	cfg.DatabasePath = loadOptional("DATABASE_PATH", "ngwatch.db")
	cfg.ListenAddr = loadOptional("LISTEN_ADDR", ":8080")
	cfg.ProxyURL = os.Getenv("PROXY_URL")
	cfg.PollIntervalMinutes = loadOptionalInt("POLL_INTERVAL_MINUTES", 15)
	cfg.SearchMaxResults = loadOptionalInt("SEARCH_MAX_RESULTS", 50)
	cfg.HTTPTimeoutSeconds = loadOptionalInt("HTTP_TIMEOUT_SECONDS", 25)

	lvlString := loadOptional("LOG_LEVEL", "INFO")
	var err error
	cfg.LogLevel, err = parseLogLevel(lvlString)
	if err != nil {
		slog.Error("Invalid LOG_LEVEL", "error", err)
		cfg.LogLevel = slog.LevelInfo
	}

	Config = cfg
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	var err = level.UnmarshalText([]byte(s))
	return level, err
}

func loadOptional(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func loadOptionalInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Error("Invalid int env var, using default", "key", key, "value", value)
		return defaultValue
	}
	return n
}

func (c AppConfig) IsProduction() bool {
	return Config.AppEnv == EnvProduction
}
