package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/02loveslollipop/aquahealth/services/api/db"
	"github.com/02loveslollipop/aquahealth/services/api/geo"
	"github.com/02loveslollipop/aquahealth/services/api/models"
)

type failingRepo struct {
	*db.MemoryStore
	fail bool
}

func (f *failingRepo) ListHealthCenters(ctx context.Context) ([]models.HealthCenter, error) {
	if f.fail {
		return nil, errors.New("connection refused")
	}
	return f.MemoryStore.ListHealthCenters(ctx)
}

func TestRefreshMergesInOrder(t *testing.T) {
	c := New(db.NewMemory())
	if len(c.Items()) != 0 {
		t.Fatalf("expected empty catalog before refresh")
	}
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	items := c.Items()
	if len(items) != 11 {
		t.Fatalf("items = %d, want 11", len(items))
	}
	if items[0].Key() != (geo.Key{Kind: geo.KindWater, ID: 1}) || items[6].Key() != (geo.Key{Kind: geo.KindHealth, ID: 1}) {
		t.Errorf("unexpected order: %s, %s", items[0].Key(), items[6].Key())
	}
	if c.RefreshedAt().IsZero() {
		t.Errorf("RefreshedAt not set")
	}
}

func TestRefreshKeepsSnapshotOnError(t *testing.T) {
	repo := &failingRepo{MemoryStore: db.NewMemory()}
	c := New(repo)
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	repo.fail = true
	if err := c.Refresh(context.Background()); err == nil {
		t.Fatalf("expected refresh error")
	}
	if len(c.Items()) != 11 {
		t.Errorf("snapshot lost after failed refresh")
	}
}
