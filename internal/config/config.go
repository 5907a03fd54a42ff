package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Catalog  CatalogConfig
	S3       S3Config
	Theme    ThemeConfig
	Contact  ContactConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	APIKey string
}

// CatalogConfig selects where catalogue data is loaded from.
type CatalogConfig struct {
	// Source is "postgres", "file" or "s3". Any source that fails to load
	// degrades to the built-in demo dataset.
	Source string

	// FilePath is the catalogue JSON file used by the "file" source.
	FilePath string
}

// S3Config holds AWS S3 configuration for the catalogue JSON object.
type S3Config struct {
	Bucket string
	Region string
	Key    string // Object key within bucket (e.g., "catalog/catalog.json")
}

// ThemeConfig holds the persisted UI preference store location.
type ThemeConfig struct {
	// StorePath is the JSON key-value file backing the theme preference.
	StorePath string

	// SystemDark is the system-level light/dark preference signal used when
	// no flag has been stored yet.
	SystemDark bool
}

// ContactConfig holds the quote-request messaging channel endpoints.
type ContactConfig struct {
	// PhoneNumber in international format without the leading plus,
	// e.g. "989123456789".
	PhoneNumber string

	// ChatEndpoint is the base URL of the messaging deep link.
	ChatEndpoint string
}

// Load loads configuration from environment variables. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "petrocatalog"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			APIKey: getEnv("API_KEY", ""),
		},
		Catalog: CatalogConfig{
			Source:   getEnv("CATALOG_SOURCE", "file"),
			FilePath: getEnv("CATALOG_FILE", "data/catalog.json"),
		},
		S3: S3Config{
			Bucket: getEnv("S3_BUCKET", ""),
			Region: getEnv("S3_REGION", "us-east-1"),
			Key:    getEnv("S3_KEY", "catalog/catalog.json"),
		},
		Theme: ThemeConfig{
			StorePath:  getEnv("THEME_STORE_PATH", "data/preferences.json"),
			SystemDark: getEnvAsBool("THEME_SYSTEM_DARK", false),
		},
		Contact: ContactConfig{
			PhoneNumber:  getEnv("CONTACT_PHONE", "989123456789"),
			ChatEndpoint: getEnv("CONTACT_CHAT_ENDPOINT", "https://wa.me/"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Auth.APIKey == "" {
		return fmt.Errorf("API key is required")
	}

	switch c.Catalog.Source {
	case "postgres":
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Database.Port < 1 || c.Database.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", c.Database.Port)
		}
		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}
		if c.Database.MaxConnections < 1 {
			return fmt.Errorf("database max connections must be at least 1")
		}
		if c.Database.MinConnections < 1 {
			return fmt.Errorf("database min connections must be at least 1")
		}
		if c.Database.MinConnections > c.Database.MaxConnections {
			return fmt.Errorf("database min connections cannot exceed max connections")
		}
	case "file":
		if c.Catalog.FilePath == "" {
			return fmt.Errorf("catalog file path is required")
		}
	case "s3":
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when the S3 catalog source is selected")
		}
		if c.S3.Region == "" {
			return fmt.Errorf("S3 region is required when the S3 catalog source is selected")
		}
		if c.S3.Key == "" {
			return fmt.Errorf("S3 key is required when the S3 catalog source is selected")
		}
	default:
		return fmt.Errorf("invalid catalog source: %s (must be postgres, file, or s3)", c.Catalog.Source)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Theme.StorePath == "" {
		return fmt.Errorf("theme store path is required")
	}

	if c.Contact.PhoneNumber == "" {
		return fmt.Errorf("contact phone number is required")
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
