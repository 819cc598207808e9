// Package config loads application configuration from environment
// variables.  Every knob has a working default so the server starts with
// no environment at all; a .env file, when present, is loaded by main
// before Load runs.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.
type Config struct {
	Env       string // application environment, e.g. "dev" or "prod" (APP_ENV)
	Port      string // HTTP port to listen on (APP_PORT)
	DBPath    string // path of the JSON document holding all state (DB_PATH)
	PublicDir string // directory of the single-page client (PUBLIC_DIR)
	AMQPURL   string // RabbitMQ URL; empty disables eventing (RABBITMQ_URL / AMQP_URL)
}

// Load reads configuration from the environment, falling back to defaults
// that match the original deployment (port 3000, db.json next to the
// binary, client assets under public/).
func Load() Config {
	amqp := os.Getenv("RABBITMQ_URL")
	if amqp == "" {
		amqp = os.Getenv("AMQP_URL")
	}
	return Config{
		Env:       getenv("APP_ENV", "dev"),
		Port:      getenv("APP_PORT", "3000"),
		DBPath:    getenv("DB_PATH", "db.json"),
		PublicDir: getenv("PUBLIC_DIR", "public"),
		AMQPURL:   amqp,
	}
}

// getenv returns the value of key or def when key is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}

func parseBool(s string) bool {
	return strings.EqualFold(s, "true") || s == "1"
}
