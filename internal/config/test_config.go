package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadTestConfig loads the configuration from the .env file or environment variables for integration tests.
// If TEST_DB_* variables are not set, it returns a Config with empty database values
// so that tests can skip themselves.
func LoadTestConfig() (*Config, error) {
	_ = godotenv.Load("../../.env")
	_ = godotenv.Load()

	cfg := &Config{
		InterviewLocation: time.UTC,
	}
	cfg.Attachments.MaxFileSize = defaultMaxAttachmentSize
	cfg.Attachments.MaxTotalSize = defaultMaxAttachmentTotal
	cfg.SMTP.From = "noreply@interviewmail.local"

	dbHost := os.Getenv("TEST_DB_HOST")
	if dbHost == "" {
		return cfg, nil
	}
	dbPortStr := os.Getenv("TEST_DB_PORT")
	if dbPortStr == "" {
		return cfg, nil
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TEST_DB_PORT: %w", err)
	}
	dbUser := os.Getenv("TEST_DB_USER")
	dbName := os.Getenv("TEST_DB_NAME")
	if dbUser == "" || dbName == "" {
		return cfg, nil
	}

	cfg.Database = DatabaseConfig{
		Host:     dbHost,
		Port:     dbPort,
		User:     dbUser,
		Password: os.Getenv("TEST_DB_PASSWORD"),
		DBName:   dbName,
	}
	cfg.Attachments.BasePath = os.Getenv("TEST_ATTACHMENTS_PATH")

	return cfg, nil
}
