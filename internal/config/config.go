package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds every environment-derived setting, read once at process
// start. The SMTP settings are required: a relay the service cannot reach
// is a startup defect, not a per-request one.
type Config struct {
	Port     string
	LogoPath string

	EmailFrom    string
	SMTPServer   string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		LogoPath: getEnv("LOGO_PATH", "assets/logo_pgw.png"),
	}

	var missing []string
	cfg.EmailFrom = requireEnv("EMAIL_FROM", &missing)
	cfg.SMTPServer = requireEnv("SMTP_SERVER", &missing)
	smtpPort := requireEnv("SMTP_PORT", &missing)
	cfg.SMTPUsername = requireEnv("SMTP_USERNAME", &missing)
	cfg.SMTPPassword = requireEnv("SMTP_PASSWORD", &missing)
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", smtpPort, err)
	}
	cfg.SMTPPort = port

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func requireEnv(key string, missing *[]string) string {
	value := os.Getenv(key)
	if value == "" {
		*missing = append(*missing, key)
	}
	return value
}
