package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airport/api"
	"github.com/Domenick1991/airport/config"
	"github.com/Domenick1991/airport/internal/auth"
	"github.com/Domenick1991/airport/internal/bootstrap"
	"github.com/Domenick1991/airport/internal/cache"
	"github.com/Domenick1991/airport/internal/kafka"
	"github.com/Domenick1991/airport/internal/repository"
	"github.com/Domenick1991/airport/internal/service/airports"
	"github.com/Domenick1991/airport/internal/service/booking"
	"github.com/Domenick1991/airport/internal/service/fleet"
	"github.com/Domenick1991/airport/internal/service/flights"
	"github.com/Domenick1991/airport/internal/service/users"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := repository.Migrate(ctx, pool); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	redisClient := cache.NewRedisClient(cfg.Redis)
	defer redisClient.Close()
	idempotency := cache.NewIdempotencyStore(redisClient, cfg.Redis.IdempotencyTTL())

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()
	if err := producer.CheckConnection(ctx); err != nil {
		// orders are still accepted; events are best effort
		log.Printf("WARNING: kafka unavailable: %v", err)
	}

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.AccessTTL(), cfg.Auth.RefreshTTL())

	flightRepo := repository.NewFlightRepository(pool)
	airportService := airports.NewAirportService(repository.NewAirportRepository(pool), repository.NewRouteRepository(pool))
	crewService := fleet.NewCrewService(repository.NewCrewRepository(pool))
	airplaneService := fleet.NewAirplaneService(repository.NewAirplaneTypeRepository(pool), repository.NewAirplaneRepository(pool))
	flightService := flights.NewFlightService(flightRepo)
	bookingService := booking.NewBookingService(
		repository.NewTxManager(pool),
		repository.NewOrderRepository(pool),
		flightRepo,
		producer,
		cfg.Kafka.OrdersTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithPublishTimeout(cfg.Kafka.PublishTimeout()),
		booking.WithPageSize(cfg.Pagination.PageSize, cfg.Pagination.MaxPageSize),
	)
	userService := users.NewUserService(repository.NewUserRepository(pool), tokens, cfg.Auth.BcryptCost)

	check := func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			return err
		}
		return idempotency.Ping(ctx)
	}

	router := api.NewRouter(api.RouterConfig{
		CORSOrigins:  cfg.HTTP.CORSOrigins,
		Capabilities: api.DefaultCapabilities(),
		Tokens:       tokens,
		Health:       check,
	}, api.Handlers{
		Airports:  api.NewAirportHandler(airportService),
		Crews:     api.NewCrewHandler(crewService),
		Airplanes: api.NewAirplaneHandler(airplaneService),
		Flights:   api.NewFlightHandler(flightService),
		Orders:    api.NewOrderHandler(bookingService, idempotency),
		Users:     api.NewUserHandler(userService),
	})

	if err := bootstrap.Run(ctx, cfg, router, check); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
