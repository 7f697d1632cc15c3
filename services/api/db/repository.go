package db

import (
	"context"
	"errors"
	"slices"

	"github.com/02loveslollipop/aquahealth/services/api/fixtures"
	"github.com/02loveslollipop/aquahealth/services/api/models"
)

// ErrNotFound is returned by single-record lookups that match nothing.
var ErrNotFound = errors.New("not found")

// Repository is the read/write surface the API needs from storage.
type Repository interface {
	ListWaterSources(ctx context.Context) ([]models.WaterSource, error)
	GetWaterSource(ctx context.Context, id int) (*models.WaterSource, error)
	ListHealthCenters(ctx context.Context) ([]models.HealthCenter, error)
	GetHealthCenter(ctx context.Context, id int) (*models.HealthCenter, error)
	// ListAlerts returns alerts most recent first; limit <= 0 means all.
	ListAlerts(ctx context.Context, limit int) ([]models.Alert, error)

	AddSymptomReport(ctx context.Context, sub models.SymptomSubmission) error
	SymptomReportCounts(ctx context.Context) ([]models.SymptomReport, error)
	SymptomTrend(ctx context.Context) ([]models.TrendPoint, error)

	AddFeedback(ctx context.Context, fb models.Feedback) error

	Close()
}

// addToTrend bumps the day's column for one of the charted symptoms.
func addToTrend(trend []models.TrendPoint, day, symptom string, n int) {
	if !slices.Contains(fixtures.TrendSymptoms, symptom) {
		return
	}
	for i := range trend {
		if trend[i].Name == day {
			trend[i].Counts[symptom] += n
			return
		}
	}
}
