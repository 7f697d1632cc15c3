package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	apidb "github.com/02loveslollipop/aquahealth/services/api/db"
	apimodels "github.com/02loveslollipop/aquahealth/services/api/models"
	"github.com/02loveslollipop/aquahealth/services/watcher/internal/models"
)

// EnsureSchema creates the aquahealth tables shared with the API.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, apidb.Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// UpsertWaterSources inserts/updates water source records.
func UpsertWaterSources(ctx context.Context, pool *pgxpool.Pool, sources []apimodels.WaterSource) error {
	if len(sources) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `INSERT INTO aquahealth.water_sources (id, name, lat, lng, status, last_checked, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,NOW())
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    lat = EXCLUDED.lat,
    lng = EXCLUDED.lng,
    status = EXCLUDED.status,
    last_checked = EXCLUDED.last_checked,
    updated_at = NOW()`

	for _, ws := range sources {
		batch.Queue(query, ws.ID, ws.Name, ws.Lat, ws.Lng, string(ws.Status), ws.LastChecked)
	}

	return execBatch(ctx, pool, batch)
}

// UpsertHealthCenters inserts/updates health center records.
func UpsertHealthCenters(ctx context.Context, pool *pgxpool.Pool, centers []apimodels.HealthCenter) error {
	if len(centers) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `INSERT INTO aquahealth.health_centers (id, name, type, lat, lng, contact, hours, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,NOW())
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    type = EXCLUDED.type,
    lat = EXCLUDED.lat,
    lng = EXCLUDED.lng,
    contact = EXCLUDED.contact,
    hours = EXCLUDED.hours,
    updated_at = NOW()`

	for _, hc := range centers {
		batch.Queue(query, hc.ID, hc.Name, string(hc.Type), hc.Lat, hc.Lng, hc.Contact, hc.Hours)
	}

	return execBatch(ctx, pool, batch)
}

// FetchLastStatuses loads the stored status per water source.
func FetchLastStatuses(ctx context.Context, pool *pgxpool.Pool, sourceIDs []int) (map[int]models.LastStatus, error) {
	result := make(map[int]models.LastStatus, len(sourceIDs))
	if len(sourceIDs) == 0 {
		return result, nil
	}

	rows, err := pool.Query(ctx, `
SELECT id, status, updated_at
FROM aquahealth.water_sources
WHERE id = ANY($1)`, sourceIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		var status string
		var updatedAt time.Time
		if err := rows.Scan(&id, &status, &updatedAt); err != nil {
			return nil, err
		}
		result[id] = models.LastStatus{Status: status, UpdatedAt: updatedAt}
	}

	return result, rows.Err()
}

// InsertAlerts writes status-change alerts.
func InsertAlerts(ctx context.Context, pool *pgxpool.Pool, alerts []models.AlertRow) error {
	if len(alerts) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `INSERT INTO aquahealth.alerts (source_id, source_name, message, status, created_at)
VALUES ($1,$2,$3,$4,NOW())`

	for _, a := range alerts {
		batch.Queue(query, a.SourceID, a.SourceName, a.Message, a.Status)
	}

	return execBatch(ctx, pool, batch)
}

// SeedSymptomBaseline stores the baseline report counts without overwriting
// existing rows.
func SeedSymptomBaseline(ctx context.Context, pool *pgxpool.Pool, reports []apimodels.SymptomReport) error {
	if len(reports) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `INSERT INTO aquahealth.symptom_baseline (symptom, count, date, position)
VALUES ($1,$2,$3,$4)
ON CONFLICT (symptom) DO NOTHING`

	for i, r := range reports {
		batch.Queue(query, r.Symptom, r.Count, r.Date, i)
	}

	return execBatch(ctx, pool, batch)
}

func execBatch(ctx context.Context, pool *pgxpool.Pool, batch *pgx.Batch) error {
	res := pool.SendBatch(ctx, batch)
	defer res.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := res.Exec(); err != nil {
			return err
		}
	}

	return nil
}
