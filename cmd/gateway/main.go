package main

import (
	"context"

	adminhandler "arenaku/internal/admin/handler"
	adminservice "arenaku/internal/admin/service"
	authhandler "arenaku/internal/auth/handler"
	authservice "arenaku/internal/auth/service"
	authvalidator "arenaku/internal/auth/validator"
	bookinghandler "arenaku/internal/bookings/handler"
	bookingservice "arenaku/internal/bookings/service"
	bookingvalidator "arenaku/internal/bookings/validator"
	healthhandler "arenaku/internal/health/handler"
	invitehandler "arenaku/internal/invites/handler"
	inviteservice "arenaku/internal/invites/service"
	managerhandler "arenaku/internal/manager/handler"
	managerservice "arenaku/internal/manager/service"
	managervalidator "arenaku/internal/manager/validator"
	"arenaku/internal/notifications"
	notificationhandler "arenaku/internal/notifications/handler"
	notificationservice "arenaku/internal/notifications/service"
	"arenaku/internal/provider"
	apiprovider "arenaku/internal/provider/api"
	"arenaku/internal/provider/fixture"
	venuehandler "arenaku/internal/venues/handler"
	venueservice "arenaku/internal/venues/service"
	"arenaku/pkg/app"
	"arenaku/pkg/client"
	"arenaku/pkg/config"
	"arenaku/pkg/kafka"
	"arenaku/pkg/middleware"
	"arenaku/pkg/session"
	"arenaku/pkg/ws"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

const ServiceName = "gateway"

func main() {
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting gateway")

	serverApp := app.NewApplication()

	store, probe := initSessionStore(cfg)
	sessions := session.NewManager(store, cfg.SessionTTL, cfg.Log)
	sessionAuth := middleware.NewSessionAuth([]byte(cfg.SessionSecret), sessions, cfg.Log)

	dataProvider := initProvider(cfg, sessions)

	hub := ws.NewHub(cfg.Log)
	serverApp.OnShutdown(hub.Stop)

	if len(cfg.KafkaBrokers) > 0 {
		consumer, err := kafka.NewConsumer(
			cfg.KafkaBrokers,
			cfg.KafkaNotificationTopic,
			cfg.KafkaGroupID,
			notifications.NewIngestHandler(hub, cfg.Log),
			cfg.Log,
		)
		if err != nil {
			cfg.Log.Fatal("Failed to initialize notification consumer", "error", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		go consumer.Run(ctx)
		serverApp.OnShutdown(func() {
			cancel()
			if err := consumer.Close(); err != nil {
				cfg.Log.Error("Failed to close notification consumer", "error", err)
			}
		})
	}

	venueSvc := venueservice.NewVenueService(dataProvider.Venues, cfg.Log)
	bookingSvc := bookingservice.NewBookingService(
		dataProvider.Bookings,
		bookingvalidator.NewBookingValidator(cfg.Log),
		cfg.Log,
	)
	inviteSvc := inviteservice.NewInviteService(dataProvider.Invites, cfg.PublicBaseURL, cfg.Log)
	notificationSvc := notificationservice.NewNotificationService(dataProvider.Notifications, cfg.Log)
	authSvc := authservice.NewAuthService(
		dataProvider.Auth,
		sessions,
		authvalidator.NewAuthValidator(),
		[]byte(cfg.SessionSecret),
		cfg.SessionTTL,
		cfg.Log,
	)
	managerSvc := managerservice.NewManagerService(
		dataProvider.Manager,
		managervalidator.NewVenueValidator(),
		cfg.Log,
	)
	adminSvc := adminservice.NewAdminService(dataProvider.Admin, cfg.Log)

	serverApp.SetApp(cfg, probe,
		venuehandler.NewVenueHandler(venueSvc, cfg.Log),
		bookinghandler.NewBookingHandler(bookingSvc, sessionAuth, cfg.Log),
		invitehandler.NewInviteHandler(inviteSvc, sessionAuth, cfg.Log),
		notificationhandler.NewNotificationHandler(notificationSvc, hub, sessionAuth, cfg.Log),
		authhandler.NewAuthHandler(authSvc, sessionAuth, cfg.Log),
		managerhandler.NewManagerHandler(managerSvc, sessionAuth, cfg.Log),
		adminhandler.NewAdminHandler(adminSvc, sessionAuth, cfg.Log),
	)
	serverApp.Run()
}

// initSessionStore picks Redis when the gateway fronts the real API and the
// in-memory store for the self-contained fixture mode.
func initSessionStore(cfg *config.Config) (session.Store, healthhandler.Probe) {
	if cfg.DataSource == config.DataSourceFixture {
		cfg.Log.Info("Session store initialized", "kind", "memory")
		return session.NewMemoryStore(), nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		cfg.Log.Fatal("Failed to connect to Redis", "addr", cfg.RedisAddr, "error", err)
	}

	cfg.Log.Info("Session store initialized", "kind", "redis", "addr", cfg.RedisAddr)
	probe := func() error { return rdb.Ping(context.Background()).Err() }
	return session.NewRedisStore(rdb), probe
}

func initProvider(cfg *config.Config, sessions *session.Manager) provider.Provider {
	if cfg.DataSource == config.DataSourceFixture {
		cfg.Log.Info("Data provider initialized", "kind", "fixture")
		return fixture.New().Provider()
	}

	upstream := client.New(cfg.UpstreamBaseURL, cfg.UpstreamTimeout,
		client.WithTokenSource(middleware.UpstreamToken),
		client.WithUnauthorizedHook(func(ctx context.Context) {
			sess := middleware.SessionFrom(ctx)
			if sess == nil {
				return
			}
			if err := sessions.Invalidate(ctx, sess.ID); err != nil {
				cfg.Log.Error("Failed to invalidate session after upstream 401",
					"session_id", sess.ID, "error", err)
			}
		}),
	)

	cfg.Log.Info("Data provider initialized", "kind", "api", "base_url", cfg.UpstreamBaseURL)
	return apiprovider.New(upstream)
}
