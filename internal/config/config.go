package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port               string        `yaml:"port" env:"SERVER_PORT" validate:"required,numeric"`
		Mode               string        `yaml:"mode" env:"SERVER_MODE" validate:"oneof=development production test"`
		CORSAllowedOrigins []string      `yaml:"cors_allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
		ReadTimeout        time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT" validate:"gt=0"`
		WriteTimeout       time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" validate:"gt=0"`
		IdleTimeout        time.Duration `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" validate:"gt=0"`
		ShutdownTimeout    time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" validate:"gt=0"`
	} `yaml:"server"`

	Database struct {
		// URL is the full connection string. When set it wins over the discrete fields.
		URL             string        `yaml:"url" env:"DATABASE_URL"`
		LegacyURL       string        `yaml:"-" env:"SQLALCHEMY_DATABASE_URI"`
		Host            string        `yaml:"host" env:"DB_HOST"`
		Port            string        `yaml:"port" env:"DB_PORT"`
		User            string        `yaml:"user" env:"DB_USER"`
		Password        string        `yaml:"password" env:"DB_PASSWORD"`
		DBName          string        `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string        `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int           `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" validate:"gte=0"`
		MaxOpenConns    int           `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" validate:"gt=0,gtefield=MaxIdleConns"`
		ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" validate:"gt=0"`
		LogQueries      bool          `yaml:"log_queries" env:"DB_LOG_QUERIES"`
		MigrationsDir   string        `yaml:"migrations_dir" env:"DB_MIGRATIONS_DIR"`
		Seed            bool          `yaml:"seed" env:"DB_SEED"`
	} `yaml:"database"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL" validate:"oneof=debug info warn error fatal"`
		Format string `yaml:"format" env:"LOG_FORMAT" validate:"oneof=json text"`
	} `yaml:"logging"`
}

var validate = validator.New()

// LoadConfig loads configuration from a .env file, a YAML file and environment variables,
// in increasing order of precedence.
func LoadConfig(configPath string) (*Config, error) {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := applyEnv(config, os.LookupEnv); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.CORSAllowedOrigins = []string{"*"}
	config.Server.ReadTimeout = 10 * time.Second
	config.Server.WriteTimeout = 10 * time.Second
	config.Server.IdleTimeout = 2 * time.Minute
	config.Server.ShutdownTimeout = 10 * time.Second

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "registrar"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = time.Hour
	config.Database.MigrationsDir = "migrations"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if err := validate.Struct(config); err != nil {
		return err
	}

	if config.ConnectionString() == "" {
		return fmt.Errorf("database connection string is required")
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string. DATABASE_URL takes precedence,
// then SQLALCHEMY_DATABASE_URI, then a URL assembled from the discrete database fields.
func (c *Config) ConnectionString() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	if c.Database.LegacyURL != "" {
		return normalizeLegacyURL(c.Database.LegacyURL)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return ""
	}

	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// normalizeLegacyURL strips SQLAlchemy driver suffixes such as "postgresql+psycopg2://".
func normalizeLegacyURL(url string) string {
	scheme, rest, ok := strings.Cut(url, "://")
	if !ok {
		return url
	}
	if base, _, found := strings.Cut(scheme, "+"); found {
		scheme = base
	}
	return scheme + "://" + rest
}

// AllowedOrigins returns the configured CORS origins without blank entries.
func (c *Config) AllowedOrigins() []string {
	return splitList(strings.Join(c.Server.CORSAllowedOrigins, ","))
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.Server.Mode) == "production"
}
