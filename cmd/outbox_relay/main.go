package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/karting-service/internal/app/karting/relay"
	"github.com/light-bringer/karting-service/internal/app/karting/repo"
	"github.com/light-bringer/karting-service/internal/config"
	"github.com/light-bringer/karting-service/internal/pkg/mq"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Outbox relay failed: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := spanner.NewClient(ctx, cfg.SpannerDB)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	pub, err := mq.NewPublisher(cfg.RabbitMQURL, cfg.EventsExchange)
	if err != nil {
		return fmt.Errorf("failed to connect publisher: %w", err)
	}
	defer pub.Close()

	log.Printf("Relaying outbox events to exchange %q every %s (batch %d, max retries %d)",
		cfg.EventsExchange, cfg.RelayInterval, cfg.RelayBatchSize, cfg.RelayMaxRetries)

	r := relay.New(repo.NewOutboxRepo(client), pub, int64(cfg.RelayBatchSize), cfg.RelayMaxRetries, cfg.RelayInterval)
	if err := r.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}

	log.Println("Outbox relay stopped")
	return nil
}
