package utils

import (
	"testing"

	apimodels "github.com/02loveslollipop/aquahealth/services/api/models"
	"github.com/02loveslollipop/aquahealth/services/watcher/internal/models"
)

func TestBuildWaterSourceRows(t *testing.T) {
	entries := []models.FeedWaterSource{
		{ID: 1, Name: "  Village Well #3 ", Latitude: 26.1445, Longitude: 91.7362, Status: "safe"},
		{ID: 2, Name: "Market Tap", Latitude: 26.1478, Longitude: 91.7401, Status: "WARNING"},
		{ID: 2, Name: "Market Tap again", Latitude: 26.1478, Longitude: 91.7401, Status: "Safe"},
		{ID: 3, Name: "", Latitude: 26.13, Longitude: 91.72, Status: "Safe"},
		{ID: 4, Name: "Lost Pump", Latitude: 126.13, Longitude: 91.72, Status: "Safe"},
		{ID: 5, Name: "Unknown", Latitude: 26.13, Longitude: 91.72, Status: "murky"},
		{ID: 6, Name: "Null Island", Status: "Safe"},
	}

	rows, skipped := BuildWaterSourceRows(entries)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Name != "Village Well #3" || rows[0].Status != apimodels.StatusSafe {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].Status != apimodels.StatusWarning || rows[1].Name != "Market Tap" {
		t.Errorf("row 1 = %+v", rows[1])
	}
	if len(skipped) != 5 {
		t.Errorf("skipped = %v", skipped)
	}
}

func TestBuildHealthCenterRows(t *testing.T) {
	rows, skipped := BuildHealthCenterRows([]models.FeedHealthCenter{
		{ID: 1, Name: "Civil Hospital", Type: "hospital", Latitude: 26.1451, Longitude: 91.7370},
		{ID: 2, Name: "Vet", Type: "Veterinary", Latitude: 26.1, Longitude: 91.7},
	})
	if len(rows) != 1 || rows[0].Type != apimodels.Hospital {
		t.Errorf("rows = %+v", rows)
	}
	if len(skipped) != 1 {
		t.Errorf("skipped = %v", skipped)
	}
}

func TestFilterStatusChanges(t *testing.T) {
	rows := []apimodels.WaterSource{
		{ID: 1, Name: "Well", Status: apimodels.StatusSafe},
		{ID: 2, Name: "Tap", Status: apimodels.StatusWarning},
		{ID: 3, Name: "River", Status: apimodels.StatusUnsafe},
		{ID: 4, Name: "New Safe", Status: apimodels.StatusSafe},
		{ID: 5, Name: "New Unsafe", Status: apimodels.StatusUnsafe},
	}
	last := map[int]models.LastStatus{
		1: {Status: "Warning"},
		2: {Status: "Warning"},
		3: {Status: "Safe"},
	}

	alerts := FilterStatusChanges(rows, last)
	got := make(map[int]models.AlertRow)
	for _, a := range alerts {
		got[a.SourceID] = a
	}
	if len(alerts) != 3 {
		t.Fatalf("alerts = %+v, want sources 1, 3 and 5", alerts)
	}
	if got[1].Message != "Water quality restored to safe levels." {
		t.Errorf("source 1 message = %q", got[1].Message)
	}
	if got[3].Status != "Unsafe" || got[5].SourceName != "New Unsafe" {
		t.Errorf("unexpected alerts: %+v", alerts)
	}
}

func TestSourceIDs(t *testing.T) {
	ids := SourceIDs([]apimodels.WaterSource{{ID: 4}, {ID: 9}})
	if len(ids) != 2 || ids[0] != 4 || ids[1] != 9 {
		t.Errorf("ids = %v", ids)
	}
}
