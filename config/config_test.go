package config_test

import (
	"testing"
	"time"
	"ulascansenturk/weather-records/config"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) TestDefaults() {
	conf, err := config.LoadConfig()
	s.Require().NoError(err)

	s.Equal("weather-records", conf.ServiceName)
	s.Equal("0.0.0.0:3000", conf.ServerAddress)
	s.Equal("5432", conf.DBPort)
	s.Equal("disable", conf.DBSSLMode)
	s.Equal(60*time.Second, conf.HTTPTimeoutDuration())
	s.Equal(int64(32<<20), conf.UploadMaxFileSize)
	s.True(conf.IngestSkipHeader)
	s.Equal(30*time.Minute, conf.ReportTTL)
	s.Equal(time.Minute, conf.ReportCleanupInterval)
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	s.T().Setenv("SERVER_ADDRESS", "127.0.0.1:8080")
	s.T().Setenv("DATABASE_HOST", "db.internal")
	s.T().Setenv("DATABASE_NAME", "weather")
	s.T().Setenv("DATABASE_USER", "weather_user")
	s.T().Setenv("DATABASE_PASSWORD", "secret")
	s.T().Setenv("HTTP_TIMEOUT", "15")
	s.T().Setenv("INGEST_SKIP_HEADER", "false")
	s.T().Setenv("REPORT_TTL", "10m")

	conf, err := config.LoadConfig()
	s.Require().NoError(err)

	s.Equal("127.0.0.1:8080", conf.ServerAddress)
	s.Equal(15*time.Second, conf.HTTPTimeoutDuration())
	s.False(conf.IngestSkipHeader)
	s.Equal(10*time.Minute, conf.ReportTTL)
	s.Equal(
		"host=db.internal port=5432 user=weather_user password=secret dbname=weather sslmode=disable",
		conf.DatabaseDSN(),
	)
}

func (s *ConfigTestSuite) TestRejectsNonPositiveTimeout() {
	s.T().Setenv("HTTP_TIMEOUT", "0")

	conf, err := config.LoadConfig()

	s.Error(err)
	s.Nil(conf)
	s.Contains(err.Error(), "HTTP_TIMEOUT")
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
