package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvSeed        = "SKULLBLAST_SEED"
	EnvColors      = "SKULLBLAST_COLORS"
	EnvChainLength = "SKULLBLAST_CHAIN_LENGTH"
	EnvChainSpeed  = "SKULLBLAST_CHAIN_SPEED"
	EnvBounces     = "SKULLBLAST_BOUNCES"
	EnvLevel       = "SKULLBLAST_LEVEL"
)

// ApplyEnv loads an optional .env file then applies SKULLBLAST_* overrides onto cfg
// A missing .env is fine, an unreadable one is an error
// Malformed values are ignored; the caller validates afterwards
func ApplyEnv(cfg *Level) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg.Seed = getEnvUint(EnvSeed, cfg.Seed)
	cfg.AvailableColors = getEnvInt(EnvColors, cfg.AvailableColors)
	cfg.InitialChainLength = getEnvInt(EnvChainLength, cfg.InitialChainLength)
	cfg.ChainSpeed = getEnvFloat(EnvChainSpeed, cfg.ChainSpeed)
	cfg.Shooter.Bounces = getEnvInt(EnvBounces, cfg.Shooter.Bounces)
	return nil
}

// LevelPath returns the level file named by SKULLBLAST_LEVEL, or defaultPath
func LevelPath(defaultPath string) string {
	return getEnv(EnvLevel, defaultPath)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvUint(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseUint(value, 10, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			return v
		}
	}
	return defaultValue
}
