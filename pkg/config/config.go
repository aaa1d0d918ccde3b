package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ServiceName string

	ServerPort int

	DatabaseURL string

	JWTSecret []byte

	KafkaBrokers []string

	ESURL      string
	ESUser     string
	ESPassword string

	LogLevel string

	// SimulatedLatency scales the network stand-in delays; zero keeps the
	// defaults, a negative value disables the delays entirely.
	SimulatedLatency time.Duration
}

func Load() Config {
	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "portal"),

		ServerPort: EnvIntDefault("SERVER_PORT", 8080),

		DatabaseURL: EnvDefault("DATABASE_URL", "portal.db"),

		JWTSecret: []byte(os.Getenv("JWT_SECRET")),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),

		ESURL:      os.Getenv("ES_URL"),
		ESUser:     os.Getenv("ES_USER"),
		ESPassword: os.Getenv("ES_PASSWORD"),

		LogLevel: EnvDefault("LOG_LEVEL", "info"),

		SimulatedLatency: time.Duration(EnvIntDefault("SIMULATED_LATENCY_MS", 0)) * time.Millisecond,
	}
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
