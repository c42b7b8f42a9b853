package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ordering/internal/jobs"

	log "github.com/sirupsen/logrus"
)

const (
	defaultHTTPPort          = "8080"
	defaultDBSslMode         = "disable"
	defaultLogLevel          = "info"
	defaultLogFormat         = "text"
	defaultLowStockThreshold = 5
)

var ErrConfigValueIsMissing = errors.New("required configuration value is missing")

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	LogLevel          string
	LogFormat         string
	LowStockThreshold int
	LowStockSchedule  string
}

// LoadConfig reads the configuration through getenv, normally os.Getenv after
// godotenv has populated the environment. DB_HOST, DB_PORT, DB_USER and
// DB_NAME are required.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:         valueOr(getenv("HTTP_PORT"), defaultHTTPPort),
		DBHost:           getenv("DB_HOST"),
		DBPort:           getenv("DB_PORT"),
		DBUser:           getenv("DB_USER"),
		DBPassword:       getenv("DB_PASSWORD"),
		DBName:           getenv("DB_NAME"),
		DBSslMode:        valueOr(getenv("DB_SSLMODE"), defaultDBSslMode),
		LogLevel:         valueOr(getenv("LOG_LEVEL"), defaultLogLevel),
		LogFormat:        strings.ToLower(valueOr(getenv("LOG_FORMAT"), defaultLogFormat)),
		LowStockSchedule: valueOr(getenv("LOW_STOCK_SCHEDULE"), jobs.DefaultStockMonitorSchedule),
	}

	var missing []error
	for key, value := range map[string]string{
		"DB_HOST": cfg.DBHost,
		"DB_PORT": cfg.DBPort,
		"DB_USER": cfg.DBUser,
		"DB_NAME": cfg.DBName,
	} {
		if value == "" {
			missing = append(missing, fmt.Errorf("%w: %s", ErrConfigValueIsMissing, key))
		}
	}
	if err := errors.Join(missing...); err != nil {
		return Config{}, err
	}

	cfg.LowStockThreshold = defaultLowStockThreshold
	if raw := getenv("LOW_STOCK_THRESHOLD"); raw != "" {
		threshold, err := strconv.Atoi(raw)
		if err != nil || threshold < 0 {
			return Config{}, fmt.Errorf("LOW_STOCK_THRESHOLD must be a non-negative integer, got %q", raw)
		}
		cfg.LowStockThreshold = threshold
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// ConfigureLogger applies level and format to the standard logrus logger.
func (c Config) ConfigureLogger(logger *log.Logger) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	if c.LogFormat == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
		return
	}
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
