package config

import (
	"log"
	"os"
	"strings"
	"time"
)

type Config struct {
	ServiceName   string
	ServerPort    string
	DatabaseURL   string
	JWTSecret     string
	JWTExpiration time.Duration
	KafkaBrokers  []string
	LogLevel      string
}

func Load() Config {
	cfg := Config{
		ServiceName:   envDefault("SERVICE_NAME", "api"),
		ServerPort:    envDefault("SERVER_PORT", "8081"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTExpiration: durationDefault("JWT_EXPIRATION", 24*time.Hour),
		KafkaBrokers:  csv(os.Getenv("KAFKA_BROKERS")),
		LogLevel:      os.Getenv("LOG_LEVEL"),
	}

	mustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	mustNonEmpty(cfg.JWTSecret, "JWT_SECRET")

	return cfg
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("%s: invalid duration %q", key, v)
	}
	return d
}

func csv(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func mustNonEmpty(v, name string) {
	if v == "" {
		log.Fatalf("%s is required", name)
	}
}
