package utils

import (
	"fmt"
	"strings"

	apimodels "github.com/02loveslollipop/aquahealth/services/api/models"
	"github.com/02loveslollipop/aquahealth/services/watcher/internal/models"
)

// BuildWaterSourceRows validates feed entries. Rejected entries are returned
// as human-readable reasons; the first entry wins on duplicate ids.
func BuildWaterSourceRows(entries []models.FeedWaterSource) ([]apimodels.WaterSource, []string) {
	rows := make([]apimodels.WaterSource, 0, len(entries))
	var skipped []string
	seen := make(map[int]bool, len(entries))

	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if reason := checkEntry(e.ID, name, e.Latitude, e.Longitude, seen); reason != "" {
			skipped = append(skipped, fmt.Sprintf("water source %d: %s", e.ID, reason))
			continue
		}
		status, err := apimodels.ParseWaterSourceStatus(titleCase(e.Status))
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("water source %d: %v", e.ID, err))
			continue
		}
		seen[e.ID] = true
		rows = append(rows, apimodels.WaterSource{
			ID:          e.ID,
			Name:        name,
			Lat:         e.Latitude,
			Lng:         e.Longitude,
			Status:      status,
			LastChecked: strings.TrimSpace(e.LastChecked),
		})
	}
	return rows, skipped
}

// BuildHealthCenterRows validates feed entries the same way as water sources.
func BuildHealthCenterRows(entries []models.FeedHealthCenter) ([]apimodels.HealthCenter, []string) {
	rows := make([]apimodels.HealthCenter, 0, len(entries))
	var skipped []string
	seen := make(map[int]bool, len(entries))

	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if reason := checkEntry(e.ID, name, e.Latitude, e.Longitude, seen); reason != "" {
			skipped = append(skipped, fmt.Sprintf("health center %d: %s", e.ID, reason))
			continue
		}
		kind, err := apimodels.ParseHealthCenterType(titleCase(e.Type))
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("health center %d: %v", e.ID, err))
			continue
		}
		seen[e.ID] = true
		rows = append(rows, apimodels.HealthCenter{
			ID:      e.ID,
			Name:    name,
			Type:    kind,
			Lat:     e.Latitude,
			Lng:     e.Longitude,
			Contact: strings.TrimSpace(e.Contact),
			Hours:   strings.TrimSpace(e.Hours),
		})
	}
	return rows, skipped
}

func checkEntry(id int, name string, lat, lng float64, seen map[int]bool) string {
	switch {
	case id <= 0:
		return "non-positive id"
	case seen[id]:
		return "duplicate id"
	case name == "":
		return "empty name"
	case lat < -90 || lat > 90 || lng < -180 || lng > 180:
		return fmt.Sprintf("coordinates out of range (%f, %f)", lat, lng)
	case lat == 0 && lng == 0:
		return "missing coordinates"
	}
	return ""
}

func titleCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// SourceIDs extracts water source identifiers.
func SourceIDs(rows []apimodels.WaterSource) []int {
	ids := make([]int, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids
}

// FilterStatusChanges builds an alert for every source whose status differs
// from the stored one. A source seen for the first time alerts only when it is
// not Safe.
func FilterStatusChanges(rows []apimodels.WaterSource, last map[int]models.LastStatus) []models.AlertRow {
	out := make([]models.AlertRow, 0)
	for _, row := range rows {
		prev, ok := last[row.ID]
		if !ok && row.Status == apimodels.StatusSafe {
			continue
		}
		if ok && strings.EqualFold(prev.Status, string(row.Status)) {
			continue
		}
		out = append(out, models.AlertRow{
			SourceID:   row.ID,
			SourceName: row.Name,
			Message:    AlertMessage(row.Status),
			Status:     string(row.Status),
		})
	}
	return out
}

// AlertMessage is the public notice for a status.
func AlertMessage(status apimodels.WaterSourceStatus) string {
	switch status {
	case apimodels.StatusUnsafe:
		return "Water source marked unsafe. Do not drink without boiling."
	case apimodels.StatusWarning:
		return "Water quality warning. Filter and boil before use."
	default:
		return "Water quality restored to safe levels."
	}
}
