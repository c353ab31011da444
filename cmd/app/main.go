package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventgrid/eventgrid/api"
	"github.com/eventgrid/eventgrid/config"
	"github.com/eventgrid/eventgrid/internal/bootstrap"
	"github.com/eventgrid/eventgrid/internal/cache"
	"github.com/eventgrid/eventgrid/internal/kafka"
	"github.com/eventgrid/eventgrid/internal/repository"
	"github.com/eventgrid/eventgrid/internal/service/booking"
	"github.com/eventgrid/eventgrid/internal/service/catalog"
	"github.com/eventgrid/eventgrid/internal/service/events"
)

func main() {
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

	if err := repository.Migrate(ctx, cfg.Database.DSN()); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	catalogCache := cache.NewCatalogCache(cfg.Redis, time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	userRepo := repository.NewUserRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	vendorRepo := repository.NewVendorRepository(pool)
	venueRepo := repository.NewVenueRepository(pool)

	eventService := events.NewEventService(eventRepo)
	bookingService := booking.NewBookingService(bookingRepo, eventRepo, vendorRepo, venueRepo, producer, cfg.Kafka.BookingEventsTopic)
	catalogService := catalog.NewCatalogService(vendorRepo, userRepo, catalogCache)

	router := api.NewRouter(
		userRepo,
		api.NewEventHandler(eventService),
		api.NewBookingHandler(bookingService),
		api.NewMarketplaceHandler(catalogService),
		api.NewPaymentHandler(bookingService),
	)

	log.Printf("listening on %s", cfg.HTTP.Address)
	if err := bootstrap.Run(ctx, cfg.HTTP.Address, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
