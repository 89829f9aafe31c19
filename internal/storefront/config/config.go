package config

import (
	"log"
	"os"
	"strings"
)

type Config struct {
	ServiceName  string
	ServerPort   string
	DatabaseURL  string
	UploadDir    string
	TemplateGlob string
	StaticDir    string
	KafkaBrokers []string
	LogLevel     string
}

func Load() Config {
	cfg := Config{
		ServiceName:  envDefault("SERVICE_NAME", "storefront"),
		ServerPort:   envDefault("SERVER_PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		UploadDir:    envDefault("UPLOAD_DIR", "web/static/images/laptops"),
		TemplateGlob: envDefault("TEMPLATE_GLOB", "web/templates/*.html"),
		StaticDir:    envDefault("STATIC_DIR", "web/static"),
		KafkaBrokers: csv(os.Getenv("KAFKA_BROKERS")),
		LogLevel:     os.Getenv("LOG_LEVEL"),
	}

	mustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	return cfg
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
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
