package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/02loveslollipop/aquahealth/services/api/fixtures"
	"github.com/02loveslollipop/aquahealth/services/api/models"
)

// AlertTimeLayout is how alert timestamps are rendered.
const AlertTimeLayout = "2006-01-02 15:04"

// Store wraps database access helpers.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store backed by a pgx pool.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Close releases the pool resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the aquahealth tables if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

const listWaterSourcesSQL = `
    SELECT id, name, lat, lng, status, last_checked
    FROM aquahealth.water_sources
    ORDER BY id
`

// ListWaterSources returns all water sources in id order.
func (s *Store) ListWaterSources(ctx context.Context) ([]models.WaterSource, error) {
	rows, err := s.pool.Query(ctx, listWaterSourcesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sources := make([]models.WaterSource, 0)
	for rows.Next() {
		var ws models.WaterSource
		if err := rows.Scan(&ws.ID, &ws.Name, &ws.Lat, &ws.Lng, &ws.Status, &ws.LastChecked); err != nil {
			return nil, err
		}
		sources = append(sources, ws)
	}
	return sources, rows.Err()
}

func (s *Store) GetWaterSource(ctx context.Context, id int) (*models.WaterSource, error) {
	query := `
		SELECT id, name, lat, lng, status, last_checked
		FROM aquahealth.water_sources
		WHERE id = $1
	`

	var ws models.WaterSource
	err := s.pool.QueryRow(ctx, query, id).Scan(&ws.ID, &ws.Name, &ws.Lat, &ws.Lng, &ws.Status, &ws.LastChecked)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ws, nil
}

const listHealthCentersSQL = `
    SELECT id, name, type, lat, lng, contact, hours
    FROM aquahealth.health_centers
    ORDER BY id
`

// ListHealthCenters returns all health centers in id order.
func (s *Store) ListHealthCenters(ctx context.Context) ([]models.HealthCenter, error) {
	rows, err := s.pool.Query(ctx, listHealthCentersSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	centers := make([]models.HealthCenter, 0)
	for rows.Next() {
		var hc models.HealthCenter
		if err := rows.Scan(&hc.ID, &hc.Name, &hc.Type, &hc.Lat, &hc.Lng, &hc.Contact, &hc.Hours); err != nil {
			return nil, err
		}
		centers = append(centers, hc)
	}
	return centers, rows.Err()
}

func (s *Store) GetHealthCenter(ctx context.Context, id int) (*models.HealthCenter, error) {
	query := `
		SELECT id, name, type, lat, lng, contact, hours
		FROM aquahealth.health_centers
		WHERE id = $1
	`

	var hc models.HealthCenter
	err := s.pool.QueryRow(ctx, query, id).Scan(&hc.ID, &hc.Name, &hc.Type, &hc.Lat, &hc.Lng, &hc.Contact, &hc.Hours)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &hc, nil
}

const listAlertsSQL = `
    SELECT id, source_name, message, status, created_at
    FROM aquahealth.alerts
    ORDER BY created_at DESC, id DESC
`

func (s *Store) ListAlerts(ctx context.Context, limit int) ([]models.Alert, error) {
	query := listAlertsSQL
	args := []any{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := make([]models.Alert, 0)
	for rows.Next() {
		var a models.Alert
		var createdAt time.Time
		if err := rows.Scan(&a.ID, &a.SourceName, &a.Message, &a.Status, &createdAt); err != nil {
			return nil, err
		}
		a.Timestamp = createdAt.UTC().Format(AlertTimeLayout)
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

func (s *Store) AddSymptomReport(ctx context.Context, sub models.SymptomSubmission) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO aquahealth.symptom_reports (id, symptom_id, symptom, reported_at)
		VALUES ($1::uuid, $2, $3, $4)
	`, sub.ID, sub.SymptomID, sub.Symptom, sub.ReportedAt)
	return err
}

// Counts are the seeded baseline plus every stored submission. Symptoms
// without a baseline row sort after the baseline, by name.
const symptomCountsSQL = `
    SELECT COALESCE(b.symptom, r.symptom) AS symptom,
           COALESCE(b.count, 0) + COALESCE(r.n, 0) AS count,
           GREATEST(b.date, to_char(r.last_at AT TIME ZONE 'UTC', 'YYYY-MM-DD')) AS date
    FROM aquahealth.symptom_baseline b
    FULL OUTER JOIN (
        SELECT symptom, COUNT(*)::int AS n, MAX(reported_at) AS last_at
        FROM aquahealth.symptom_reports
        GROUP BY symptom
    ) r ON r.symptom = b.symptom
    ORDER BY COALESCE(b.position, 2147483647), 1
`

func (s *Store) SymptomReportCounts(ctx context.Context) ([]models.SymptomReport, error) {
	rows, err := s.pool.Query(ctx, symptomCountsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := make([]models.SymptomReport, 0)
	for rows.Next() {
		var r models.SymptomReport
		if err := rows.Scan(&r.Symptom, &r.Count, &r.Date); err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

const symptomTrendSQL = `
    SELECT to_char(reported_at AT TIME ZONE 'UTC', 'Dy') AS day, symptom, COUNT(*)::int
    FROM aquahealth.symptom_reports
    WHERE reported_at >= now() - interval '7 days'
    GROUP BY 1, 2
`

// SymptomTrend overlays the last week of submissions on the baseline chart.
func (s *Store) SymptomTrend(ctx context.Context) ([]models.TrendPoint, error) {
	rows, err := s.pool.Query(ctx, symptomTrendSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trend := fixtures.SymptomTrend()
	for rows.Next() {
		var day, symptom string
		var n int
		if err := rows.Scan(&day, &symptom, &n); err != nil {
			return nil, err
		}
		addToTrend(trend, day, symptom, n)
	}
	return trend, rows.Err()
}

func (s *Store) AddFeedback(ctx context.Context, fb models.Feedback) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO aquahealth.feedback (id, text, created_at)
		VALUES ($1::uuid, $2, $3)
	`, fb.ID, fb.Text, fb.CreatedAt)
	return err
}
