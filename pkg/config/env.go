package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvDataSource      = "DATA_SOURCE"
	EnvUpstreamBaseURL = "UPSTREAM_BASE_URL"
	EnvUpstreamTimeout = "UPSTREAM_TIMEOUT"

	EnvPublicBaseURL = "PUBLIC_BASE_URL"

	EnvSessionSecret = "SESSION_SECRET"
	EnvSessionTTL    = "SESSION_TTL"

	EnvRedisAddr     = "REDIS_ADDR"
	EnvRedisPassword = "REDIS_PASSWORD"
	EnvRedisDB       = "REDIS_DB"

	EnvKafkaBrokers           = "KAFKA_BROKERS"
	EnvKafkaNotificationTopic = "KAFKA_NOTIFICATION_TOPIC"
	EnvKafkaGroupID           = "KAFKA_GROUP_ID"

	EnvCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

func getEnvStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvStrSlice(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
