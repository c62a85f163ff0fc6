package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/SeakMengs/PropDesk/internal/env"
)

type Config struct {
	Port        string
	ENV         string
	DB          DatabaseConfig
	RateLimiter RateLimiterConfig
	Mail        MailConfig
	Auth        AuthConfig
	Minio       MinioConfig
	RabbitMQ    RabbitMQConfig
	Redis       RedisConfig
	Tracing     TracingConfig
	Cache       CacheConfig
}

type RateLimiterConfig struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type AuthConfig struct {
	JWT_SECRET string
}

type DatabaseConfig struct {
	DB_HOST      string
	DB_PORT      string
	DB_DATABASE  string
	DB_USERNAME  string
	DB_PASSWORD  string
	DB_SSLMODE   string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  string
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		d.DB_HOST, d.DB_USERNAME, d.DB_PASSWORD, d.DB_DATABASE, d.DB_PORT, d.DB_SSLMODE)
}

type MailConfig struct {
	SEND_GRID  SendGridConfig
	GMAIL      GmailConfig
	FROM_EMAIL string
	// Link base used for actionUrl in notification mails
	FRONTEND_URL string
}

type SendGridConfig struct {
	API_KEY string
}

type GmailConfig struct {
	USERNAME string
	PASSWORD string
}

type MinioConfig struct {
	ENDPOINT   string
	ACCESS_KEY string
	SECRET_KEY string
	BUCKET     string
	USE_SSL    bool
}

// Report archiving is disabled when no endpoint is configured
func (m MinioConfig) Enabled() bool {
	return m.ENDPOINT != ""
}

type RabbitMQConfig struct {
	HOST     string
	PORT     string
	USER     string
	PASSWORD string
}

func (r RabbitMQConfig) Enabled() bool {
	return r.HOST != ""
}

func (r RabbitMQConfig) GetConnectionString() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", r.USER, r.PASSWORD, r.HOST, r.PORT)
}

type RedisConfig struct {
	URL string
}

type TracingConfig struct {
	OTLP_ENDPOINT string
	ServiceName   string
}

type CacheConfig struct {
	PageTTL time.Duration
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	return Config{
		Port: env.GetString("PORT", "8080"),
		ENV:  env.GetString("ENV", "development"),
		DB: DatabaseConfig{
			DB_HOST:      env.GetString("DB_HOST", "127.0.0.1"),
			DB_PORT:      env.GetString("DB_PORT", "5432"),
			DB_USERNAME:  env.GetString("DB_USERNAME", "root"),
			DB_PASSWORD:  env.GetString("DB_PASSWORD", ""),
			DB_DATABASE:  env.GetString("DB_DATABASE", "propdesk"),
			DB_SSLMODE:   env.GetString("DB_SSLMODE", "disable"),
			MaxOpenConns: env.GetInt("DB_MAX_OPEN_CONNS", 30),
			MaxIdleConns: env.GetInt("DB_MAX_IDLE_CONNS", 30),
			MaxIdleTime:  env.GetString("DB_MAX_IDLE_TIME", "15m"),
		},
		// By default if not specified, we allow 5000 requests per minute per client
		RateLimiter: RateLimiterConfig{
			RequestsPerTimeFrame: env.GetInt("RATE_LIMIT_REQUESTS_PER_TIME_FRAME", 5000),
			TimeFrame:            env.GetDuration("RATE_LIMIT_TIME_FRAME", time.Minute),
			Enabled:              env.GetBool("RATE_LIMIT_ENABLED", true),
		},
		Mail: MailConfig{
			FROM_EMAIL:   env.GetString("MAIL_FROM_MAIL", ""),
			FRONTEND_URL: env.GetString("FRONTEND_URL", "http://localhost:3000"),
			SEND_GRID: SendGridConfig{
				API_KEY: env.GetString("MAIL_SEND_GRID_API_KEY", ""),
			},
			GMAIL: GmailConfig{
				USERNAME: env.GetString("MAIL_GMAIL_USERNAME", ""),
				PASSWORD: env.GetString("MAIL_GMAIL_PASSWORD", ""),
			},
		},
		Auth: AuthConfig{
			JWT_SECRET: env.GetString("AUTH_JWT_SECRET", ""),
		},
		Minio: MinioConfig{
			ENDPOINT:   env.GetString("MINIO_ENDPOINT", ""),
			ACCESS_KEY: env.GetString("MINIO_ACCESS_KEY", ""),
			SECRET_KEY: env.GetString("MINIO_SECRET_KEY", ""),
			BUCKET:     env.GetString("MINIO_BUCKET", "propdesk"),
			USE_SSL:    env.GetBool("MINIO_USE_SSL", false),
		},
		RabbitMQ: RabbitMQConfig{
			HOST:     env.GetString("RABBITMQ_HOST", ""),
			PORT:     env.GetString("RABBITMQ_PORT", "5672"),
			USER:     env.GetString("RABBITMQ_USER", "guest"),
			PASSWORD: env.GetString("RABBITMQ_PASSWORD", "guest"),
		},
		Redis: RedisConfig{
			URL: env.GetString("REDIS_URL", ""),
		},
		Tracing: TracingConfig{
			OTLP_ENDPOINT: env.GetString("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName:   env.GetString("OTEL_SERVICE_NAME", "propdesk-api"),
		},
		Cache: CacheConfig{
			PageTTL: env.GetDuration("PAGE_CACHE_TTL", 5*time.Minute),
		},
	}
}
