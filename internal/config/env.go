// Package config provides game data loading and process settings.
package config

import (
	"os"
	"strconv"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvUint64 parses the variable named by key as an unsigned integer.
// ok is false when the variable is unset or not a number.
func GetEnvUint64(key string) (value uint64, ok bool) {
	s, set := os.LookupEnv(key)
	if !set {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
