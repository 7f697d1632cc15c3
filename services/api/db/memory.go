package db

import (
	"context"
	"sync"

	"github.com/02loveslollipop/aquahealth/services/api/fixtures"
	"github.com/02loveslollipop/aquahealth/services/api/models"
)

// MemoryStore serves the built-in fixtures and keeps submissions in memory.
type MemoryStore struct {
	sources []models.WaterSource
	centers []models.HealthCenter
	alerts  []models.Alert

	mu       sync.Mutex
	reports  []models.SymptomSubmission
	feedback []models.Feedback
}

// NewMemory creates a MemoryStore seeded from the fixtures.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		sources: fixtures.WaterSources(),
		centers: fixtures.HealthCenters(),
		alerts:  fixtures.Alerts(),
	}
}

func (m *MemoryStore) ListWaterSources(ctx context.Context) ([]models.WaterSource, error) {
	out := make([]models.WaterSource, len(m.sources))
	copy(out, m.sources)
	return out, nil
}

func (m *MemoryStore) GetWaterSource(ctx context.Context, id int) (*models.WaterSource, error) {
	for _, ws := range m.sources {
		if ws.ID == id {
			return &ws, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) ListHealthCenters(ctx context.Context) ([]models.HealthCenter, error) {
	out := make([]models.HealthCenter, len(m.centers))
	copy(out, m.centers)
	return out, nil
}

func (m *MemoryStore) GetHealthCenter(ctx context.Context, id int) (*models.HealthCenter, error) {
	for _, hc := range m.centers {
		if hc.ID == id {
			return &hc, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) ListAlerts(ctx context.Context, limit int) ([]models.Alert, error) {
	n := len(m.alerts)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]models.Alert, n)
	copy(out, m.alerts[:n])
	return out, nil
}

func (m *MemoryStore) AddSymptomReport(ctx context.Context, sub models.SymptomSubmission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = append(m.reports, sub)
	return nil
}

// SymptomReportCounts adds in-memory submissions to the fixture baseline.
// Symptoms absent from the baseline are appended in first-report order.
func (m *MemoryStore) SymptomReportCounts(ctx context.Context) ([]models.SymptomReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := fixtures.SymptomReports()
	index := make(map[string]int, len(counts))
	for i, r := range counts {
		index[r.Symptom] = i
	}
	for _, sub := range m.reports {
		date := sub.ReportedAt.Format("2006-01-02")
		i, ok := index[sub.Symptom]
		if !ok {
			index[sub.Symptom] = len(counts)
			counts = append(counts, models.SymptomReport{Symptom: sub.Symptom, Count: 1, Date: date})
			continue
		}
		counts[i].Count++
		if date > counts[i].Date {
			counts[i].Date = date
		}
	}
	return counts, nil
}

func (m *MemoryStore) SymptomTrend(ctx context.Context) ([]models.TrendPoint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	trend := fixtures.SymptomTrend()
	for _, sub := range m.reports {
		addToTrend(trend, sub.ReportedAt.Format("Mon"), sub.Symptom, 1)
	}
	return trend, nil
}

func (m *MemoryStore) AddFeedback(ctx context.Context, fb models.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.feedback = append(m.feedback, fb)
	return nil
}

// Feedback returns a copy of the feedback received so far.
func (m *MemoryStore) Feedback() []models.Feedback {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Feedback, len(m.feedback))
	copy(out, m.feedback)
	return out
}

func (m *MemoryStore) Close() {}
