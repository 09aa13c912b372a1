package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type GameConfig struct {
	Bet   float64
	Delay time.Duration
}

type Config struct {
	DBPath string
	Port   string
	APIKey string

	// Seed fixes the outcome RNG; 0 seeds from the clock.
	Seed int64

	ConnectDelay  time.Duration
	VerifyDelay   time.Duration
	TransferDelay time.Duration

	Games map[string]GameConfig
}

// Defaults reproduce the simulation's original pacing.
func Default() *Config {
	return &Config{
		DBPath:        "arcade.sqlite",
		Port:          "8080",
		ConnectDelay:  2 * time.Second,
		VerifyDelay:   10 * time.Second,
		TransferDelay: 5 * time.Second,
		Games: map[string]GameConfig{
			"coin":  {Bet: 0.01, Delay: 3 * time.Second},
			"guess": {Bet: 0.05, Delay: 1500 * time.Millisecond},
			"dice":  {Bet: 0.02, Delay: time.Second},
		},
	}
}

func Load() (*Config, error) {
	godotenv.Load(".env")

	cfg := Default()
	cfg.DBPath = getEnv("DB_PATH", cfg.DBPath)
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.APIKey = os.Getenv("API_KEY")

	if raw := os.Getenv("RNG_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		cfg.Seed = seed
	}

	path := getEnv("CONFIG_PATH", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		if err := cfg.applyYAML(path); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
