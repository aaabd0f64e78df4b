package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var DefaultEnvConfig *envConfig

type envConfig struct {
	// http config
	APP_PORT string
	// logger config
	LOG_FILE_PATH string
	LOG_LEVEL     string
	// registry config
	RECENT_COUNT int
	SEED_FILE    string
	EXPORT_PATH  string
}

// LoadEnvConfig reads the given env files (".env" when none are given)
// and fills DefaultEnvConfig. Missing files are ignored; the process
// environment and built-in defaults still apply.
func LoadEnvConfig(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	DefaultEnvConfig = &envConfig{
		APP_PORT:      getEnvString("APP_PORT", "8080"),
		LOG_FILE_PATH: getEnvString("LOG_FILE_PATH", ""),
		LOG_LEVEL:     getEnvString("LOG_LEVEL", "info"),
		RECENT_COUNT:  getEnvInt("RECENT_COUNT", 3),
		SEED_FILE:     getEnvString("SEED_FILE", ""),
		EXPORT_PATH:   getEnvString("EXPORT_PATH", "employees.xlsx"),
	}
	return nil
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}
