// Package config loads the service configuration from a dotenv file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends accepted by UPLOAD_STORAGE.
const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

// Config holds every setting the process needs at startup.
// It is built once in main and handed to constructors; nothing reads the environment afterwards.
type Config struct {
	AppHost   string
	AppPort   string
	BaseURL   string
	LogLevel  string
	LogFormat string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	SessionCookieName string
	SessionTTL        time.Duration
	SessionSecure     bool

	ResetTokenSecret string
	ResetTokenMaxAge time.Duration

	PhoneRegion string

	UploadStorage  string
	UploadDir      string
	UploadMaxBytes int64

	S3Region    string
	S3Endpoint  string
	S3Bucket    string
	S3Prefix    string
	S3AccessKey string
	S3SecretKey string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string

	KafkaBrokers []string
	KafkaTopic   string
}

// PostgresDSN returns the pgx connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// RedisAddr returns host:port of the session store.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// HTTPAddr returns the listen address of the HTTP server.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// Load reads path with godotenv (a missing file is not an error) and then builds
// the Config from the environment, falling back to defaults for unset keys.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	c := &Config{
		AppHost:   getEnv("APP_HOST", "localhost"),
		AppPort:   getEnv("APP_PORT", "8080"),
		LogLevel:  getEnv("APP_LOG_LEVEL", "info"),
		LogFormat: getEnv("APP_LOG_FORMAT", "json"),

		PGHost:     getEnv("POSTGRES_HOST", "localhost"),
		PGUser:     getEnv("POSTGRES_USER", "user"),
		PGPassword: getEnv("POSTGRES_PASSWORD", "password"),
		PGDB:       getEnv("POSTGRES_DB", "pregnancy_app"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		SessionCookieName: getEnv("SESSION_COOKIE_NAME", "session_id"),
		ResetTokenSecret:  getEnv("RESET_TOKEN_SECRET", "dev_reset_secret"),
		PhoneRegion:       strings.ToUpper(getEnv("PHONE_REGION", "IN")),

		UploadStorage: strings.ToLower(getEnv("UPLOAD_STORAGE", StorageLocal)),
		UploadDir:     getEnv("UPLOAD_DIR", "static/uploads"),

		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3Bucket:    getEnv("S3_BUCKET", "pregnancy-care"),
		S3Prefix:    getEnv("S3_PREFIX", "uploads"),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),

		SMTPHost: getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPUser: getEnv("SMTP_USER", ""),
		SMTPPass: getEnv("SMTP_PASSWORD", ""),
		MailFrom: getEnv("MAIL_FROM", ""),

		KafkaTopic: getEnv("KAFKA_TOPIC", "appointments"),
	}
	c.BaseURL = strings.TrimRight(getEnv("APP_BASE_URL", "http://"+c.HTTPAddr()), "/")
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		c.KafkaBrokers = strings.Split(brokers, ",")
	}
	if c.MailFrom == "" {
		c.MailFrom = c.SMTPUser
	}

	ints := []struct {
		key string
		def string
		dst *int
	}{
		{"POSTGRES_PORT", "5432", &c.PGPort},
		{"POSTGRES_MAX_OPEN_CONNS", "16", &c.PGMaxOpenConns},
		{"POSTGRES_MAX_IDLE_CONNS", "8", &c.PGMaxIdleConns},
		{"REDIS_PORT", "6379", &c.RedisPort},
		{"REDIS_DB", "0", &c.RedisDB},
		{"REDIS_POOL_SIZE", "10", &c.RedisPoolSize},
		{"REDIS_MIN_IDLE_CONNS", "2", &c.RedisMinIdleConns},
		{"SMTP_PORT", "587", &c.SMTPPort},
	}
	for _, i := range ints {
		v, err := strconv.Atoi(getEnv(i.key, i.def))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", i.key, err)
		}
		*i.dst = v
	}

	sessionTTL, err := strconv.Atoi(getEnv("SESSION_TTL_SECOND", "86400"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_SECOND: %w", err)
	}
	c.SessionTTL = time.Duration(sessionTTL) * time.Second

	resetMaxAge, err := strconv.Atoi(getEnv("RESET_TOKEN_MAX_AGE_SECOND", "3600"))
	if err != nil {
		return nil, fmt.Errorf("invalid RESET_TOKEN_MAX_AGE_SECOND: %w", err)
	}
	c.ResetTokenMaxAge = time.Duration(resetMaxAge) * time.Second

	if c.UploadMaxBytes, err = strconv.ParseInt(getEnv("UPLOAD_MAX_BYTES", "2097152"), 10, 64); err != nil {
		return nil, fmt.Errorf("invalid UPLOAD_MAX_BYTES: %w", err)
	}

	if c.SessionSecure, err = strconv.ParseBool(getEnv("SESSION_COOKIE_SECURE", "false")); err != nil {
		return nil, fmt.Errorf("invalid SESSION_COOKIE_SECURE: %w", err)
	}

	if c.UploadStorage != StorageLocal && c.UploadStorage != StorageS3 {
		return nil, fmt.Errorf("unknown UPLOAD_STORAGE %q", c.UploadStorage)
	}

	return c, nil
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}
