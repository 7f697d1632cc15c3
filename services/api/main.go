package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/02loveslollipop/aquahealth/services/api/catalog"
	"github.com/02loveslollipop/aquahealth/services/api/config"
	"github.com/02loveslollipop/aquahealth/services/api/db"
	httpserver "github.com/02loveslollipop/aquahealth/services/api/http"
	"github.com/02loveslollipop/aquahealth/services/api/jobs"
	"github.com/02loveslollipop/aquahealth/services/api/session"
	"github.com/02loveslollipop/aquahealth/services/api/symptoms"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var store db.Repository
	if cfg.DatabaseURL == "" {
		log.Printf("DATABASE_URL not set, serving built-in fixture data")
		store = db.NewMemory()
	} else {
		pg, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db connection error: %v", err)
		}
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Fatalf("db schema error: %v", err)
		}
		store = pg
	}
	defer store.Close()

	cat := catalog.New(store)
	if err := cat.Refresh(ctx); err != nil {
		log.Fatalf("catalog load error: %v", err)
	}
	log.Printf("catalog loaded items=%d radius=%g", len(cat.Items()), cfg.ClusterRadius)

	sessions := session.NewRegistry()

	scheduler, err := jobs.Start(cfg, cat, sessions)
	if err != nil {
		log.Fatalf("cron error: %v", err)
	}
	defer scheduler.Stop()

	srv := httpserver.New(cfg, httpserver.Deps{
		Store:    store,
		Catalog:  cat,
		Sessions: sessions,
		Symptoms: symptoms.NewService(symptoms.New(cfg), cfg.AITimeout),
	})
	log.Printf("REST API listening on %s", cfg.ListenAddr())

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
