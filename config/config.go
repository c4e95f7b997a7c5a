package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds all application configuration
type Config struct {
	// Points economy configuration
	StartingPoints      int64
	HighRollerThreshold int64 // Points strictly above this after a box earn High Roller

	// Find the Thief configuration
	AccusationReward  int64
	AccusationPenalty int64 // Applied as-is, so it is normally negative

	// Catalog configuration
	CatalogPath string // YAML catalog file; empty uses the embedded default

	// Randomness configuration
	RandomSeed int64 // 0 seeds from the clock

	// Presentation configuration
	RevealDelay time.Duration // Pause before the shell shows a draw result

	// Logging configuration
	LogLevel string

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by tests), return it
	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from the env file, then environment variables
func load() (*Config, error) {
	envFile := getEnvWithDefault("PROBPLAY_ENV", ".env")
	// A missing env file is fine; real environment variables still apply
	_ = godotenv.Load(envFile)

	config := &Config{
		StartingPoints:      1000,
		HighRollerThreshold: 2000,
		AccusationReward:    250,
		AccusationPenalty:   -50,
		CatalogPath:         os.Getenv("CATALOG_PATH"),
		RevealDelay:         1500 * time.Millisecond,
		LogLevel:            getEnvWithDefault("LOG_LEVEL", "info"),
		Environment:         os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	var err error
	if config.StartingPoints, err = getInt64("STARTING_POINTS", config.StartingPoints); err != nil {
		return nil, err
	}
	if config.HighRollerThreshold, err = getInt64("HIGH_ROLLER_THRESHOLD", config.HighRollerThreshold); err != nil {
		return nil, err
	}
	if config.AccusationReward, err = getInt64("ACCUSATION_REWARD", config.AccusationReward); err != nil {
		return nil, err
	}
	if config.AccusationPenalty, err = getInt64("ACCUSATION_PENALTY", config.AccusationPenalty); err != nil {
		return nil, err
	}
	if config.RandomSeed, err = getInt64("RANDOM_SEED", 0); err != nil {
		return nil, err
	}
	if delay := os.Getenv("REVEAL_DELAY"); delay != "" {
		parsed, err := time.ParseDuration(delay)
		if err != nil {
			return nil, fmt.Errorf("REVEAL_DELAY must be a duration: %w", err)
		}
		config.RevealDelay = parsed
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values that would make the games meaningless
func (c *Config) Validate() error {
	if c.StartingPoints < 0 {
		return fmt.Errorf("STARTING_POINTS cannot be negative")
	}
	if c.RevealDelay < 0 {
		return fmt.Errorf("REVEAL_DELAY cannot be negative")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}
	return nil
}

// InitLogger configures the global logrus logger from the config
func InitLogger(c *Config) error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	log.SetLevel(level)

	if strings.EqualFold(c.Environment, "production") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}

// getEnvWithDefault returns the environment variable value or a default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getInt64 parses an integer environment variable, keeping the default when unset
func getInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
// This should only be called from test files
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
// This should only be called from test files
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment:         "test",
		StartingPoints:      1000,
		HighRollerThreshold: 2000,
		AccusationReward:    250,
		AccusationPenalty:   -50,
		RandomSeed:          1,
		LogLevel:            "error",
	}
}
