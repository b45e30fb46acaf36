package config

import (
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"time"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName            string
	DBPassword        string
	DBUser            string
	DBPort            string
	DBHost            string
	DBSSLMode         string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	Env         string
	LogLevel    string
	HTTPTimeout int32

	UploadMaxFileSize     int64
	IngestSkipHeader      bool
	ReportTTL             time.Duration
	ReportCleanupInterval time.Duration
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-records")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 25)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 60)
	v.SetDefault("UPLOAD_MAX_FILE_SIZE", int64(32<<20))
	v.SetDefault("INGEST_SKIP_HEADER", true)
	v.SetDefault("REPORT_TTL", 30*time.Minute)
	v.SetDefault("REPORT_CLEANUP_INTERVAL", time.Minute)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:           v.GetString("SERVICE_NAME"),
		ServerAddress:         v.GetString("SERVER_ADDRESS"),
		DBName:                v.GetString("DATABASE_NAME"),
		DBPassword:            v.GetString("DATABASE_PASSWORD"),
		DBUser:                v.GetString("DATABASE_USER"),
		DBPort:                v.GetString("DATABASE_PORT"),
		DBHost:                v.GetString("DATABASE_HOST"),
		DBSSLMode:             v.GetString("DATABASE_SSL_MODE"),
		DBMaxOpenConns:        v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:        v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime:     v.GetDuration("DB_CONN_MAX_LIFETIME"),
		Env:                   v.GetString("ENV"),
		LogLevel:              v.GetString("LOG_LEVEL"),
		HTTPTimeout:           v.GetInt32("HTTP_TIMEOUT"),
		UploadMaxFileSize:     v.GetInt64("UPLOAD_MAX_FILE_SIZE"),
		IngestSkipHeader:      v.GetBool("INGEST_SKIP_HEADER"),
		ReportTTL:             v.GetDuration("REPORT_TTL"),
		ReportCleanupInterval: v.GetDuration("REPORT_CLEANUP_INTERVAL"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %d", c.HTTPTimeout)
	}
	if c.UploadMaxFileSize <= 0 {
		return fmt.Errorf("UPLOAD_MAX_FILE_SIZE must be positive, got %d", c.UploadMaxFileSize)
	}
	if c.ReportCleanupInterval <= 0 {
		return fmt.Errorf("REPORT_CLEANUP_INTERVAL must be positive, got %s", c.ReportCleanupInterval)
	}
	return nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}
