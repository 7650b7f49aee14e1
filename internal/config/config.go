// Package config loads settings from environment variables, with optional
// .env support for local runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"Community_API/internal/pkg"
	"Community_API/internal/repository/store"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database store.Config
	JWT      JWTConfig
	Redis    RedisConfig
	Kafka    pkg.KafkaConfig
	SMTP     pkg.SMTPConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	CookieSecure bool
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// RedisConfig 为空地址时不启用 session 存储
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func (c RedisConfig) Enabled() bool { return c.Addr != "" }

type CORSConfig struct {
	Origins []string
}

// Load reads the environment. JWT_SECRET is required.
func Load() (*Config, error) {
	// 没有 .env 文件时忽略
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	ttlHours, err := strconv.Atoi(getEnv("JWT_TTL_HOURS", "24"))
	if err != nil || ttlHours <= 0 {
		return nil, fmt.Errorf("invalid JWT_TTL_HOURS: %q", getEnv("JWT_TTL_HOURS", ""))
	}

	cookieSecure, err := strconv.ParseBool(getEnv("COOKIE_SECURE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid COOKIE_SECURE: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	secret := getEnv("JWT_SECRET", "")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	driver := getEnv("DB_DRIVER", "sqlite")
	if driver != "mysql" && driver != "sqlite" {
		return nil, fmt.Errorf("invalid DB_DRIVER: %q", driver)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         port,
			CookieSecure: cookieSecure,
		},
		Database: store.Config{
			Driver: driver,
			DSN:    getEnv("DB_DSN", "./data/community.db"),
		},
		JWT: JWTConfig{
			Secret: secret,
			TTL:    time.Duration(ttlHours) * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Kafka: pkg.KafkaConfig{
			Brokers: splitList(getEnv("KAFKA_BROKERS", "")),
			Topic:   getEnv("KAFKA_TOPIC", "community-members"),
		},
		SMTP: pkg.SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     smtpPort,
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", ""),
		},
		CORS: CORSConfig{
			Origins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		},
	}
	return cfg, nil
}

func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

// splitList 逗号分隔，去空白和空项
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
