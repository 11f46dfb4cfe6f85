package config

import (
	"os"
	"strconv"
)

// Config holds server settings resolved from the environment. CLI flags
// take precedence over these values.
type Config struct {
	Port       int
	ProjectDir string
}

// Load reads configuration from environment variables, applying defaults.
func Load() *Config {
	port := 3000
	if v := os.Getenv("MALLNAV_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			port = p
		}
	}

	projectDir := os.Getenv("MALLNAV_PROJECT")
	if projectDir == "" {
		projectDir = "."
	}

	return &Config{
		Port:       port,
		ProjectDir: projectDir,
	}
}
