package main

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/cabdispatch/internal/pkg/circuitbreaker"
	"github.com/piresc/cabdispatch/internal/pkg/config"
	"github.com/piresc/cabdispatch/internal/pkg/database"
	"github.com/piresc/cabdispatch/internal/pkg/health"
	"github.com/piresc/cabdispatch/internal/pkg/jwt"
	"github.com/piresc/cabdispatch/internal/pkg/logger"
	"github.com/piresc/cabdispatch/internal/pkg/middleware"
	natspkg "github.com/piresc/cabdispatch/internal/pkg/nats"
	nrpkg "github.com/piresc/cabdispatch/internal/pkg/newrelic"
	"github.com/piresc/cabdispatch/internal/pkg/observability"
	"github.com/piresc/cabdispatch/internal/pkg/retry"
	"github.com/piresc/cabdispatch/internal/pkg/server"
	wspkg "github.com/piresc/cabdispatch/internal/pkg/websocket"
	"github.com/piresc/cabdispatch/services/location"
	locationGateway "github.com/piresc/cabdispatch/services/location/gateway"
	locationHandler "github.com/piresc/cabdispatch/services/location/handler"
	locationRepo "github.com/piresc/cabdispatch/services/location/repository"
	locationUsecase "github.com/piresc/cabdispatch/services/location/usecase"
	realtimeHandler "github.com/piresc/cabdispatch/services/realtime/handler"
	natsHandler "github.com/piresc/cabdispatch/services/realtime/handler/nats"
	realtimeUsecase "github.com/piresc/cabdispatch/services/realtime/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "realtime-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/realtime.env")
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs.NewRelic)

	// Wait for New Relic connection before proceeding
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		} else {
			log.Println("New Relic connection established")
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
		zap.String("presence_backend", configs.Presence.Backend),
		zap.String("geofence_source", configs.Geofence.Source),
	)

	tracer := observability.NewTracer(nrApp)
	healthService := health.NewService(5 * time.Second)
	shutdown := server.NewShutdownManager(zapLogger)

	// Initialize PostgreSQL, only geofence definitions live there
	var postgresClient *database.PostgresClient
	if configs.Geofence.Source == "postgres" {
		err = retry.New("postgres connect", retry.DefaultConfig()).Execute(context.Background(), func(context.Context) error {
			var dialErr error
			postgresClient, dialErr = database.NewPostgresClient(configs.Database)
			return dialErr
		})
		if err != nil {
			zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		healthService.AddChecker("postgres", health.PingChecker(postgresClient))
		shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	}

	// Initialize Redis client for the shared presence store and rate limiting
	var redisClient *database.RedisClient
	if configs.Presence.Backend == "redis" || configs.RateLimit.Limit > 0 {
		err = retry.New("redis connect", retry.DefaultConfig()).Execute(context.Background(), func(context.Context) error {
			var dialErr error
			redisClient, dialErr = database.NewRedisClient(configs.Redis)
			return dialErr
		})
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		healthService.AddChecker("redis", health.PingChecker(redisClient))
		shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })
	}

	// Initialize NATS
	var natsClient *natspkg.Client
	if configs.NATS.URL != "" {
		err = retry.New("nats connect", retry.DefaultConfig()).Execute(context.Background(), func(context.Context) error {
			var dialErr error
			natsClient, dialErr = natspkg.NewClient(configs.NATS.URL, appName)
			return dialErr
		})
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		healthService.AddChecker("nats", health.ConnChecker("nats", natsClient.IsConnected))
		shutdown.Register("nats", func(context.Context) error {
			natsClient.Close()
			return nil
		})
	}

	// Initialize repositories
	var presenceStore location.PresenceStore
	switch configs.Presence.Backend {
	case "redis":
		presenceStore = locationRepo.NewRedisPresenceStore(redisClient)
	default:
		presenceStore = locationRepo.NewMemoryPresenceStore()
	}

	geofenceRepo := locationRepo.NewGeofenceRegistry()
	loaded, err := locationRepo.LoadGeofences(context.Background(), geofenceRepo, geofenceSources(configs.Geofence.Source, configs.Geofence.FilePath, configs.Geofence.IncludeDefaults, postgresClient)...)
	if err != nil {
		zapLogger.Fatal("Failed to load geofences", zap.Error(err))
	}
	zapLogger.Info("Geofences loaded", zap.Int("count", loaded))

	// Initialize Gateway
	var locationGW location.LocationGW
	if natsClient != nil {
		locationGW = locationGateway.NewLocationGW(natsClient, circuitbreaker.New(circuitbreaker.DefaultConfig("location-publish")))
	}

	// Initialize UseCases
	locationUC := locationUsecase.NewLocationUC(presenceStore, locationGW, configs.Location, tracer, time.Now)
	geofenceUC := locationUsecase.NewGeofenceUC(geofenceRepo, tracer)

	gateway := wspkg.NewGateway(jwt.NewHMACVerifier(configs.JWT), configs.Gateway)
	notifier := realtimeUsecase.NewNotifier(gateway, tracer, time.Now)

	// Registered last so sockets close before the backing clients
	shutdown.Register("websocket", gateway.Shutdown)

	// Handlers for NATS
	if natsClient != nil {
		consumers := natsHandler.NewRealtimeHandler(notifier, natsClient, configs.NATS.QueueGroup, tracer)
		if err := consumers.InitNATSConsumers(); err != nil {
			zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
		}
	}

	// Initialize handlers
	locationHTTP := locationHandler.NewHTTPHandler(locationUC, geofenceUC, configs)
	realtimeHTTP := realtimeHandler.NewHandler(gateway, locationUC, notifier, configs, tracer)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestID())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecovery(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, healthService)

	// Register service routes
	var rateLimitClient *redis.Client
	if redisClient != nil {
		rateLimitClient = redisClient.GetClient()
	}
	locationHTTP.RegisterRoutes(e, rateLimitClient)
	realtimeHTTP.RegisterRoutes(e)

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second, shutdown)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}

// geofenceSources picks the definition sources in load order
func geofenceSources(source, filePath string, includeDefaults bool, postgresClient *database.PostgresClient) []location.GeofenceSource {
	var sources []location.GeofenceSource
	switch source {
	case "file":
		if includeDefaults {
			sources = append(sources, locationRepo.NewDefaultGeofenceSource())
		}
		sources = append(sources, locationRepo.NewFileGeofenceSource(filePath))
	case "postgres":
		if includeDefaults {
			sources = append(sources, locationRepo.NewDefaultGeofenceSource())
		}
		sources = append(sources, locationRepo.NewPostgresGeofenceSource(postgresClient.GetDB()))
	default:
		sources = append(sources, locationRepo.NewDefaultGeofenceSource())
	}
	return sources
}
