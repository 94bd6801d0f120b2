package services

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/spanner"
	"github.com/redis/go-redis/v9"

	"github.com/light-bringer/karting-service/internal/app/karting"
	"github.com/light-bringer/karting-service/internal/app/karting/repo"
	"github.com/light-bringer/karting-service/internal/config"
	"github.com/light-bringer/karting-service/internal/pkg/clock"
	"github.com/light-bringer/karting-service/internal/pkg/committer"
	"github.com/light-bringer/karting-service/internal/pkg/lock"
	"github.com/light-bringer/karting-service/internal/transport/grpc/booking"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient  *spanner.Client
	RedisClient    *redis.Client
	App            *karting.App
	BookingHandler *booking.Handler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Per-client booking lock
	locker, redisClient, err := newLocker(ctx, cfg)
	if err != nil {
		spannerClient.Close()
		return nil, err
	}

	// 3. Repositories and commit path
	app := karting.New(karting.Deps{
		Clients:   repo.NewClientRepo(spannerClient),
		Bookings:  repo.NewBookingRepo(spannerClient),
		Karts:     repo.NewKartRepo(spannerClient),
		Outbox:    repo.NewOutboxRepo(spannerClient),
		Committer: committer.NewCommitter(spannerClient),
		Locker:    locker,
		Clock:     clock.NewRealClock(),
	})

	// 4. Create gRPC handler
	return &ServiceOptions{
		SpannerClient:  spannerClient,
		RedisClient:    redisClient,
		App:            app,
		BookingHandler: booking.NewHandler(app),
	}, nil
}

func newLocker(ctx context.Context, cfg *config.Config) (lock.Locker, *redis.Client, error) {
	if !cfg.UseRedisLock() {
		log.Printf("KARTING_REDIS_ADDR not set, using in-process client lock")
		return lock.NewLocalLocker(), nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}
	log.Printf("Using Redis client lock at %s", cfg.RedisAddr)
	return lock.NewRedisLocker(rdb, "karting:lock:", cfg.LockTTL, cfg.LockWait), rdb, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.RedisClient != nil {
		_ = s.RedisClient.Close()
	}
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
