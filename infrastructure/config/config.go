package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"todolists/domain/core/valueobjects"
)

// Config holds application configuration shared by the API server and the
// terminal client.
type Config struct {
	// Server
	ServerAddress   string        `yaml:"server_address"`
	Environment     string        `yaml:"environment"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// Store
	IDStrategy string `yaml:"id_strategy"`
	SeedData   bool   `yaml:"seed_data"`

	// Client
	APIBaseURL    string        `yaml:"api_base_url"`
	ClientTimeout time.Duration `yaml:"client_timeout"`
	TUILogFile    string        `yaml:"tui_log_file"`

	// Observability
	LogLevel      string `yaml:"log_level"`
	EnableMetrics bool   `yaml:"enable_metrics"`
	EnableCORS    bool   `yaml:"enable_cors"`

	// File is the YAML file the configuration was read from, if any
	File string `yaml:"-"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		ServerAddress:   ":3001",
		Environment:     "development",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 30 * time.Second,

		IDStrategy: valueobjects.IDStrategyTime,
		SeedData:   true,

		APIBaseURL:    "http://localhost:3001/api",
		ClientTimeout: 10 * time.Second,
		TUILogFile:    "todolists-tui.log",

		LogLevel:      "info",
		EnableMetrics: true,
		EnableCORS:    true,
	}
}

// LoadConfig builds the configuration from defaults, the optional YAML file
// named by CONFIG_FILE and finally environment variables.
func LoadConfig() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := LoadFile(path, cfg); err != nil {
			return nil, err
		}
		cfg.File = path
	}

	cfg.applyEnvironment()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvironment() {
	c.ServerAddress = getEnv("SERVER_ADDRESS", c.ServerAddress)
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.ReadTimeout = getEnvDuration("READ_TIMEOUT", c.ReadTimeout)
	c.WriteTimeout = getEnvDuration("WRITE_TIMEOUT", c.WriteTimeout)
	c.IdleTimeout = getEnvDuration("IDLE_TIMEOUT", c.IdleTimeout)
	c.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", c.ShutdownTimeout)

	c.IDStrategy = getEnv("ID_STRATEGY", c.IDStrategy)
	c.SeedData = getEnvBool("SEED_DATA", c.SeedData)

	c.APIBaseURL = getEnv("API_BASE_URL", c.APIBaseURL)
	c.ClientTimeout = getEnvDuration("CLIENT_TIMEOUT", c.ClientTimeout)
	c.TUILogFile = getEnv("TODO_TUI_LOG", c.TUILogFile)

	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.EnableMetrics = getEnvBool("ENABLE_METRICS", c.EnableMetrics)
	c.EnableCORS = getEnvBool("ENABLE_CORS", c.EnableCORS)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.IDStrategy {
	case valueobjects.IDStrategyTime, valueobjects.IDStrategySequence, valueobjects.IDStrategyUUID:
	default:
		return fmt.Errorf("unknown ID_STRATEGY %q", c.IDStrategy)
	}

	if c.ClientTimeout <= 0 {
		return fmt.Errorf("CLIENT_TIMEOUT must be positive, got %s", c.ClientTimeout)
	}

	if c.ServerAddress == "" {
		return fmt.Errorf("SERVER_ADDRESS is required")
	}

	return nil
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return value == "yes"
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
