package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/skiresort/config"
	"github.com/Domenick1991/skiresort/internal/bootstrap"
	"github.com/Domenick1991/skiresort/internal/cache"
	"github.com/Domenick1991/skiresort/internal/catalog"
	"github.com/Domenick1991/skiresort/internal/kafka"
	"github.com/Domenick1991/skiresort/internal/service/accommodations"
	"github.com/Domenick1991/skiresort/internal/service/booking"
	"github.com/Domenick1991/skiresort/internal/service/customers"
	"github.com/Domenick1991/skiresort/internal/world"
)

func main() {
	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reconciler, closeStorage, err := bootstrap.NewReconciler(ctx, cfg)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer closeStorage()

	resort := world.New(catalog.Default())
	if _, err := reconciler.Reconcile(ctx, resort); err != nil {
		log.Fatalf("load resort state: %v", err)
	}

	var (
		availabilityCache accommodations.Cache
		bookingOpts       []booking.BookingServiceOption
	)
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, cfg.Resort.CacheTTL())
		defer redisCache.Close()
		// drop a listing cached by a previous process
		if err := redisCache.InvalidateAvailable(ctx); err != nil {
			log.Printf("WARNING: failed to invalidate availability cache: %v", err)
		}
		availabilityCache = redisCache
		bookingOpts = append(bookingOpts, booking.WithCache(redisCache))
	}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		bookingOpts = append(bookingOpts,
			booking.WithProducer(producer, cfg.Kafka.PackageEventsTopic),
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
	}

	bookingService := booking.NewBookingService(resort, reconciler, bookingOpts...)

	err = bootstrap.Run(ctx, cfg, bootstrap.Services{
		Accommodations: accommodations.NewAccommodationService(resort, availabilityCache),
		Customers:      customers.NewCustomerService(resort),
		Booking:        bookingService,
	})
	if err != nil {
		log.Fatalf("server error: %v", err)
	}

	// persist on shutdown
	if err := bookingService.Save(context.Background()); err != nil {
		log.Printf("save resort state: %v", err)
	}
}
