// Package catalog caches the merged list of map items.
package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/02loveslollipop/aquahealth/services/api/db"
	"github.com/02loveslollipop/aquahealth/services/api/geo"
)

// Catalog holds the water sources and health centers as map items, water
// sources first, each in repository order.
type Catalog struct {
	repo db.Repository

	mu        sync.RWMutex
	items     []geo.Item
	refreshed time.Time
}

// New creates an empty catalog; call Refresh before serving.
func New(repo db.Repository) *Catalog {
	return &Catalog{repo: repo}
}

// Refresh reloads the items from the repository. On error the previous
// snapshot is kept.
func (c *Catalog) Refresh(ctx context.Context) error {
	sources, err := c.repo.ListWaterSources(ctx)
	if err != nil {
		return fmt.Errorf("list water sources: %w", err)
	}
	centers, err := c.repo.ListHealthCenters(ctx)
	if err != nil {
		return fmt.Errorf("list health centers: %w", err)
	}

	items := geo.Merge(sources, centers)

	c.mu.Lock()
	c.items = items
	c.refreshed = time.Now().UTC()
	c.mu.Unlock()
	return nil
}

// Items returns a copy of the current snapshot.
func (c *Catalog) Items() []geo.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]geo.Item, len(c.items))
	copy(out, c.items)
	return out
}

// RefreshedAt reports when the snapshot was last loaded.
func (c *Catalog) RefreshedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refreshed
}
