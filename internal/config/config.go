// Package config reads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// Get returns the environment variable for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetInt returns the integer environment variable for key, or fallback when
// unset or unparsable.
func GetInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// GetDuration returns the duration environment variable for key, or fallback
// when unset or unparsable. Accepts time.ParseDuration syntax ("30s", "5m").
func GetDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
