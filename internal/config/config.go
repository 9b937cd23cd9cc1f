// Package config
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DiskPath string
	LogDir   string
	LogLevel string
}

func Load() *Config {
	godotenv.Load()

	diskPath := os.Getenv("HEALTH_DISK_PATH")
	if diskPath == "" {
		diskPath = "/"
	}

	logDir := os.Getenv("HEALTH_LOG_DIR")
	if logDir == "" {
		logDir = "."
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		DiskPath: diskPath,
		LogDir:   logDir,
		LogLevel: logLevel,
	}
}
