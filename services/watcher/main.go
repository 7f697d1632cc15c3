package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/02loveslollipop/aquahealth/services/api/fixtures"
	"github.com/02loveslollipop/aquahealth/services/watcher/internal/config"
	"github.com/02loveslollipop/aquahealth/services/watcher/internal/db"
	"github.com/02loveslollipop/aquahealth/services/watcher/internal/feed"
	"github.com/02loveslollipop/aquahealth/services/watcher/internal/models"
	"github.com/02loveslollipop/aquahealth/services/watcher/internal/utils"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("watcher failed: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout+10*time.Second)
	defer cancel()

	payload := feed.FixturePayload()
	if cfg.FeedURL != "" {
		client := &http.Client{Timeout: cfg.RequestTimeout}
		payload, err = feed.FetchPayload(ctx, client, cfg.FeedURL)
		if err != nil {
			return err
		}
	}
	log.Printf("loaded %d water sources and %d health centers (region=%s)",
		len(payload.WaterSources), len(payload.HealthCenters), payload.Region)

	sources, skipped := utils.BuildWaterSourceRows(payload.WaterSources)
	centers, skippedCenters := utils.BuildHealthCenterRows(payload.HealthCenters)
	for _, reason := range append(skipped, skippedCenters...) {
		log.Printf("skipping %s", reason)
	}

	if cfg.DatabaseURL == "" {
		alerts := utils.FilterStatusChanges(sources, map[int]models.LastStatus{})
		log.Printf("dry-run: no database, would upsert %d water sources, %d health centers, %d alerts",
			len(sources), len(centers), len(alerts))
		return nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	if !cfg.DryRun {
		if err := db.EnsureSchema(ctx, pool); err != nil {
			return err
		}
	}

	// Read stored statuses before the upsert overwrites them.
	lastMap, err := db.FetchLastStatuses(ctx, pool, utils.SourceIDs(sources))
	if err != nil {
		return err
	}
	alerts := utils.FilterStatusChanges(sources, lastMap)

	if cfg.DryRun {
		log.Printf("dry-run: skipping upsert (%d water sources, %d health centers)", len(sources), len(centers))
		for _, a := range alerts {
			log.Printf("dry-run: would alert source=%d name=%q status=%s", a.SourceID, a.SourceName, a.Status)
		}
		return nil
	}

	if err := db.UpsertWaterSources(ctx, pool, sources); err != nil {
		return err
	}
	if err := db.UpsertHealthCenters(ctx, pool, centers); err != nil {
		return err
	}
	if err := db.InsertAlerts(ctx, pool, alerts); err != nil {
		return err
	}
	if err := db.SeedSymptomBaseline(ctx, pool, fixtures.SymptomReports()); err != nil {
		return err
	}

	log.Printf("upserted %d water sources, %d health centers; inserted %d alerts", len(sources), len(centers), len(alerts))
	return nil
}
