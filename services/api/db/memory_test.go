package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/02loveslollipop/aquahealth/services/api/models"
)

var _ Repository = (*MemoryStore)(nil)
var _ Repository = (*Store)(nil)

func TestMemoryStoreLookups(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	ws, err := m.GetWaterSource(ctx, 3)
	if err != nil || ws.Name != "River Intake Point" {
		t.Fatalf("GetWaterSource(3) = %+v, %v", ws, err)
	}
	if _, err := m.GetWaterSource(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := m.GetHealthCenter(ctx, 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	alerts, _ := m.ListAlerts(ctx, 2)
	if len(alerts) != 2 || alerts[0].ID != 1 {
		t.Errorf("ListAlerts(2) = %+v", alerts)
	}
	all, _ := m.ListAlerts(ctx, 0)
	if len(all) != 4 {
		t.Errorf("ListAlerts(0) returned %d alerts", len(all))
	}
}

func TestMemoryStoreListsAreCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	sources, _ := m.ListWaterSources(ctx)
	sources[0].Name = "mutated"

	again, _ := m.ListWaterSources(ctx)
	if again[0].Name != "Village Well #3" {
		t.Errorf("store data was mutated through a returned slice")
	}
}

func TestMemoryStoreSymptomCounts(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	at := time.Date(2024, 7, 22, 10, 0, 0, 0, time.UTC) // a Monday

	for _, sub := range []models.SymptomSubmission{
		{ID: "a", SymptomID: "fever", Symptom: "Fever", ReportedAt: at},
		{ID: "b", SymptomID: "fatigue", Symptom: "Fatigue", ReportedAt: at},
		{ID: "c", SymptomID: "fever", Symptom: "Fever", ReportedAt: at},
	} {
		if err := m.AddSymptomReport(ctx, sub); err != nil {
			t.Fatalf("AddSymptomReport: %v", err)
		}
	}

	counts, _ := m.SymptomReportCounts(ctx)
	got := make(map[string]models.SymptomReport)
	for _, r := range counts {
		got[r.Symptom] = r
	}
	if got["Fever"].Count != 34 || got["Fever"].Date != "2024-07-22" {
		t.Errorf("Fever = %+v, want 34 on 2024-07-22", got["Fever"])
	}
	if got["Fatigue"].Count != 1 {
		t.Errorf("Fatigue = %+v, want 1", got["Fatigue"])
	}
	if counts[len(counts)-1].Symptom != "Fatigue" {
		t.Errorf("new symptoms should follow the baseline, got %+v", counts)
	}

	trend, _ := m.SymptomTrend(ctx)
	if trend[0].Name != "Mon" || trend[0].Counts["Fever"] != 5 {
		t.Errorf("Mon trend = %+v, want Fever 5", trend[0])
	}
	if _, ok := trend[0].Counts["Fatigue"]; ok {
		t.Errorf("uncharted symptom added to the trend")
	}
}

func TestMemoryStoreFeedback(t *testing.T) {
	m := NewMemory()
	if err := m.AddFeedback(context.Background(), models.Feedback{ID: "1", Text: "map is great"}); err != nil {
		t.Fatalf("AddFeedback: %v", err)
	}
	if fb := m.Feedback(); len(fb) != 1 || fb[0].Text != "map is great" {
		t.Errorf("Feedback() = %+v", fb)
	}
}
