// Package jobs runs the API's periodic maintenance on a cron schedule.
package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/02loveslollipop/aquahealth/services/api/catalog"
	"github.com/02loveslollipop/aquahealth/services/api/config"
	"github.com/02loveslollipop/aquahealth/services/api/session"
)

const refreshTimeout = 30 * time.Second

// Scheduler owns the cron runner.
type Scheduler struct {
	cron *cron.Cron
}

// Start schedules catalog refresh and idle session eviction and starts the runner.
func Start(cfg config.Config, cat *catalog.Catalog, sessions *session.Registry) (*Scheduler, error) {
	log.Println("starting cron jobs")
	c := cron.New()

	if _, err := c.AddFunc(cfg.CatalogRefreshSpec, func() {
		RefreshCatalog(context.Background(), cat)
	}); err != nil {
		return nil, fmt.Errorf("schedule catalog refresh %q: %w", cfg.CatalogRefreshSpec, err)
	}

	idle := cfg.SessionIdleTTL
	if _, err := c.AddFunc(cfg.SessionEvictSpec, func() {
		EvictSessions(sessions, idle)
	}); err != nil {
		return nil, fmt.Errorf("schedule session eviction %q: %w", cfg.SessionEvictSpec, err)
	}

	c.Start()
	return &Scheduler{cron: c}, nil
}

// Stop halts scheduling and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Println("cron jobs stopped")
}

// RefreshCatalog reloads map items; failures keep the previous snapshot.
func RefreshCatalog(ctx context.Context, cat *catalog.Catalog) {
	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	if err := cat.Refresh(ctx); err != nil {
		log.Printf("cronjob: catalog refresh failed: %v", err)
		return
	}
	log.Printf("cronjob: catalog refreshed items=%d", len(cat.Items()))
}

// EvictSessions drops map sessions idle for longer than idle.
func EvictSessions(sessions *session.Registry, idle time.Duration) int {
	n := sessions.Evict(idle)
	if n > 0 {
		log.Printf("cronjob: evicted %d idle map sessions, %d remain", n, sessions.Len())
	}
	return n
}
