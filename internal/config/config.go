// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultMaxAttachmentSize  = 5 * 1024 * 1024
	defaultMaxAttachmentTotal = 20 * 1024 * 1024
)

// Config holds all configuration for the application
type Config struct {
	Database    DatabaseConfig
	Server      ServerConfig
	Logging     LoggingConfig
	CORS        CORSConfig
	JWT         JWTConfig
	SMTP        SMTPConfig
	Attachments AttachmentsConfig
	APIKey      string
	// InterviewLocation is the zone {{interview_datetime}} is rendered in
	InterviewLocation *time.Location
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
	File  string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// JWTConfig holds JWT token configuration
type JWTConfig struct {
	Secret            string
	AccessTokenExpiry time.Duration
}

// SMTPConfig holds SMTP server configuration
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// AttachmentsConfig holds attachment storage settings
type AttachmentsConfig struct {
	BasePath     string
	MaxFileSize  int64
	MaxTotalSize int64
}

// MaxRequestSize is the body cap for the API. It sits well above MaxTotalSize so that
// an oversized upload still reaches attachment validation and gets its error message.
func (a AttachmentsConfig) MaxRequestSize() int64 {
	return 2*a.MaxTotalSize + 1<<20
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	godotenv.Load()

	cfg := &Config{}

	// Database configuration
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		return nil, fmt.Errorf("DB_HOST is required")
	}
	cfg.Database.Host = dbHost

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		return nil, fmt.Errorf("DB_PORT is required")
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	cfg.Database.Port = dbPort

	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		return nil, fmt.Errorf("DB_USER is required")
	}
	cfg.Database.User = dbUser

	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	cfg.Database.Password = dbPassword

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}
	cfg.Database.DBName = dbName

	// Server configuration
	serverPort, err := intEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Server.Port = serverPort

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	cfg.Logging.Level = logLevel
	cfg.Logging.File = os.Getenv("LOG_FILE") // optional

	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// JWT configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	cfg.JWT.Secret = jwtSecret

	accessExpiry, err := durationEnv("JWT_ACCESS_TOKEN_EXPIRY", 12*time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.JWT.AccessTokenExpiry = accessExpiry

	// API Key configuration (optional, accepted instead of an operator token)
	cfg.APIKey = os.Getenv("API_KEY")

	// SMTP configuration
	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" {
		smtpHost = "localhost"
	}
	cfg.SMTP.Host = smtpHost

	smtpPort, err := intEnv("SMTP_PORT", 587)
	if err != nil {
		return nil, err
	}
	cfg.SMTP.Port = smtpPort

	cfg.SMTP.Username = os.Getenv("SMTP_USERNAME") // optional
	cfg.SMTP.Password = os.Getenv("SMTP_PASSWORD") // optional

	smtpFrom := os.Getenv("SMTP_FROM")
	if smtpFrom == "" {
		smtpFrom = "noreply@interviewmail.local"
	}
	cfg.SMTP.From = smtpFrom

	smtpTimeout, err := durationEnv("SMTP_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.SMTP.Timeout = smtpTimeout

	// Attachment storage
	attachmentsPath := os.Getenv("ATTACHMENTS_PATH")
	if attachmentsPath == "" {
		attachmentsPath = "./media"
	}
	cfg.Attachments.BasePath = attachmentsPath

	maxFile, err := int64Env("ATTACHMENT_MAX_FILE_SIZE", defaultMaxAttachmentSize)
	if err != nil {
		return nil, err
	}
	cfg.Attachments.MaxFileSize = maxFile

	maxTotal, err := int64Env("ATTACHMENT_MAX_TOTAL_SIZE", defaultMaxAttachmentTotal)
	if err != nil {
		return nil, err
	}
	cfg.Attachments.MaxTotalSize = maxTotal

	tz := os.Getenv("INTERVIEW_TIMEZONE")
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid INTERVIEW_TIMEZONE: %w", err)
	}
	cfg.InterviewLocation = loc

	return cfg, nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&clientFoundRows=true",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}

// parseOrigins splits a comma-separated origin list, defaulting to "*"
func parseOrigins(raw string) []string {
	if raw == "" {
		return []string{"*"}
	}
	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func int64Env(key string, def int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return v, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
