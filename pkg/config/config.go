package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"arenaku/pkg/logger"
)

type Config struct {
	Port     string
	LogLevel string

	DataSource      string
	UpstreamBaseURL string
	UpstreamTimeout time.Duration
	PublicBaseURL   string

	SessionSecret string
	SessionTTL    time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers           []string
	KafkaNotificationTopic string
	KafkaGroupID           string

	CORSAllowedOrigins []string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	cfg := &Config{
		Port:     getEnvStr(EnvPort, DefaultPort),
		LogLevel: getEnvStr(EnvLogLevel, DefaultLogLevel),

		DataSource:      getEnvStr(EnvDataSource, DefaultDataSource),
		UpstreamBaseURL: getEnvStr(EnvUpstreamBaseURL, DefaultUpstreamBaseURL),
		UpstreamTimeout: getEnvDuration(EnvUpstreamTimeout, DefaultUpstreamTimeout),
		PublicBaseURL:   getEnvStr(EnvPublicBaseURL, DefaultPublicBaseURL),

		SessionSecret: getEnvStr(EnvSessionSecret, ""),
		SessionTTL:    getEnvDuration(EnvSessionTTL, DefaultSessionTTL),

		RedisAddr:     getEnvStr(EnvRedisAddr, DefaultRedisAddr),
		RedisPassword: getEnvStr(EnvRedisPassword, ""),
		RedisDB:       getEnvNum(EnvRedisDB, DefaultRedisDB),

		KafkaBrokers:           getEnvStrSlice(EnvKafkaBrokers, nil),
		KafkaNotificationTopic: getEnvStr(EnvKafkaNotificationTopic, DefaultKafkaNotificationTopic),
		KafkaGroupID:           getEnvStr(EnvKafkaGroupID, DefaultKafkaGroupID),

		CORSAllowedOrigins: getEnvStrSlice(EnvCORSAllowedOrigins, DefaultCORSAllowedOrigins),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.FormatJSON,
			AddSource: true,
			Service:   serviceName,
		}),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.DataSource != DataSourceFixture && cfg.DataSource != DataSourceAPI {
		errs = append(errs, fmt.Sprintf("DataSource must be %q or %q, got: %s",
			DataSourceFixture, DataSourceAPI, cfg.DataSource))
	}

	if cfg.DataSource == DataSourceAPI {
		if u, err := url.Parse(cfg.UpstreamBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Sprintf("UpstreamBaseURL must be an absolute URL, got: %s", cfg.UpstreamBaseURL))
		}
	}

	if cfg.SessionSecret == "" {
		errs = append(errs, "SessionSecret cannot be empty")
	} else if len(cfg.SessionSecret) < 32 {
		errs = append(errs, fmt.Sprintf("SessionSecret must be at least 32 bytes, got: %d", len(cfg.SessionSecret)))
	}

	if cfg.SessionTTL <= 0 {
		errs = append(errs, fmt.Sprintf("SessionTTL must be positive, got: %s", cfg.SessionTTL))
	}
	if cfg.UpstreamTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("UpstreamTimeout must be positive, got: %s", cfg.UpstreamTimeout))
	}
	if cfg.RateLimitRequests <= 0 {
		errs = append(errs, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.RateLimitWindow <= 0 {
		errs = append(errs, fmt.Sprintf("RateLimitWindow must be positive, got: %s", cfg.RateLimitWindow))
	}
	if cfg.RequestTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.MaxRequestSize <= 0 {
		errs = append(errs, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.ReadTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if len(errs) > 0 {
		msg := "Configuration validation failed:\n"
		for i, e := range errs {
			msg += fmt.Sprintf("  %d. %s\n", i+1, e)
		}
		return fmt.Errorf("%s", msg)
	}
	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"log_level", cfg.LogLevel,
		"data_source", cfg.DataSource,
		"upstream_base_url", cfg.UpstreamBaseURL,
		"upstream_timeout", cfg.UpstreamTimeout,
		"session_secret_set", cfg.SessionSecret != "",
		"session_ttl", cfg.SessionTTL,
		"redis_addr", cfg.RedisAddr,
		"redis_db", cfg.RedisDB,
		"kafka_brokers", strings.Join(cfg.KafkaBrokers, ","),
		"kafka_notification_topic", cfg.KafkaNotificationTopic,
		"kafka_group_id", cfg.KafkaGroupID,
		"cors_allowed_origins", strings.Join(cfg.CORSAllowedOrigins, ","),
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
	)
}
