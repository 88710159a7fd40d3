package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	// fixture serves the seeded in-memory data set; api proxies the
	// external business API.
	DataSourceFixture = "fixture"
	DataSourceAPI     = "api"
	DefaultDataSource = DataSourceFixture

	DefaultUpstreamBaseURL = "http://localhost:9000"
	DefaultUpstreamTimeout = 10 * time.Second

	DefaultPublicBaseURL = "http://localhost:8080"

	DefaultSessionTTL = 24 * time.Hour

	DefaultRedisAddr = "localhost:6379"
	DefaultRedisDB   = 0

	DefaultKafkaNotificationTopic = "notifications"
	DefaultKafkaGroupID           = "arenaku-gateway"

	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)

var DefaultCORSAllowedOrigins = []string{"*"}
