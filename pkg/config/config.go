package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port             string
	IsProduction     bool
	RegistryCapacity int    // number of account slots in the bank
	RateLimit        string // formatted per-IP rate, e.g. "60-M"; empty disables
	RandomSeed       uint64 // fixed seed for account number / PIN generation; 0 uses the clock
}

// LoadConfig loads configuration from environment variables, with a
// best-effort read of a .env file first.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("REGISTRY_CAPACITY", 100)
	viper.SetDefault("RATE_LIMIT", "60-M")
	viper.SetDefault("RANDOM_SEED", 0)

	viper.AutomaticEnv()

	cfg := &Config{
		Port:             viper.GetString("PORT"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		RegistryCapacity: viper.GetInt("REGISTRY_CAPACITY"),
		RateLimit:        viper.GetString("RATE_LIMIT"),
		RandomSeed:       viper.GetUint64("RANDOM_SEED"),
	}

	if cfg.RegistryCapacity <= 0 {
		log.Printf("Warning: invalid REGISTRY_CAPACITY %d, defaulting to 100\n", cfg.RegistryCapacity)
		cfg.RegistryCapacity = 100
	}

	return cfg, nil
}
