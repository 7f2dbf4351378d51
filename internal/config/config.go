package config

import (
	"os"
	"time"
)

type Config struct {
	HTTPAddr          string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration

	LogLevel  string
	LogFormat string
}

func Load() Config {
	return Config{
		HTTPAddr:          getenv("NOTES_HTTP_ADDR", ":8080"),
		ReadHeaderTimeout: getenvDuration("NOTES_READ_HEADER_TIMEOUT", 5*time.Second),
		ShutdownTimeout:   getenvDuration("NOTES_SHUTDOWN_TIMEOUT", 10*time.Second),
		LogLevel:          getenv("NOTES_LOG_LEVEL", "info"),
		LogFormat:         getenv("NOTES_LOG_FORMAT", "console"),
	}
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
