package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/karting-service/internal/app/karting/repo"
	"github.com/light-bringer/karting-service/internal/config"
	"github.com/light-bringer/karting-service/internal/models/m_outbox"
)

// Options for the outbox cleanup job.
type Options struct {
	SpannerDB              string
	CompletedRetentionDays int
	FailedRetentionDays    int
	DryRun                 bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	opts := Options{}
	flag.StringVar(&opts.SpannerDB, "database", cfg.SpannerDB, "Spanner database (format: projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	flag.IntVar(&opts.CompletedRetentionDays, "completed-retention", 30, "Retention days for completed events")
	flag.IntVar(&opts.FailedRetentionDays, "failed-retention", 90, "Retention days for failed events")
	flag.BoolVar(&opts.DryRun, "dry-run", false, "Show what would be deleted without actually deleting")
	flag.Parse()

	if err := cleanupOutbox(context.Background(), opts); err != nil {
		log.Fatalf("Cleanup failed: %v", err)
	}

	log.Println("Cleanup completed successfully")
}

func cleanupOutbox(ctx context.Context, opts Options) error {
	client, err := spanner.NewClient(ctx, opts.SpannerDB)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	outbox := repo.NewOutboxRepo(client)

	now := time.Now().UTC()
	cutoffs := []struct {
		status string
		days   int
	}{
		{m_outbox.StatusCompleted, opts.CompletedRetentionDays},
		{m_outbox.StatusFailed, opts.FailedRetentionDays},
	}

	log.Printf("Starting outbox cleanup (dry run: %v)...", opts.DryRun)

	var total int64
	for _, c := range cutoffs {
		cutoff := now.AddDate(0, 0, -c.days)
		log.Printf("  %s events cutoff: %s (retention: %d days)", c.status, cutoff.Format(time.RFC3339), c.days)

		if opts.DryRun {
			n, err := outbox.CountProcessedBefore(ctx, c.status, cutoff)
			if err != nil {
				return err
			}
			log.Printf("  Would delete %d %s events", n, c.status)
			total += n
			continue
		}

		n, err := outbox.PurgeProcessedBefore(ctx, c.status, cutoff)
		if err != nil {
			return err
		}
		log.Printf("  Deleted %d %s events", n, c.status)
		total += n
	}

	if opts.DryRun {
		log.Printf("DRY RUN: Would delete %d total events", total)
		log.Println("Run without -dry-run to actually delete events")
		return nil
	}

	log.Printf("Deleted %d total events", total)
	return nil
}
