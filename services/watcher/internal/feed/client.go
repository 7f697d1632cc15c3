package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/02loveslollipop/aquahealth/services/api/fixtures"
	"github.com/02loveslollipop/aquahealth/services/watcher/internal/models"
)

// FetchPayload retrieves the current water source and health center feed.
func FetchPayload(ctx context.Context, client *http.Client, url string) (models.FeedPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.FeedPayload{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return models.FeedPayload{}, fmt.Errorf("request feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.FeedPayload{}, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var payload models.FeedPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.FeedPayload{}, fmt.Errorf("decode payload: %w", err)
	}

	return payload, nil
}

// FixturePayload builds a payload from the built-in reference data.
func FixturePayload() models.FeedPayload {
	payload := models.FeedPayload{Region: "fixtures"}
	for _, ws := range fixtures.WaterSources() {
		payload.WaterSources = append(payload.WaterSources, models.FeedWaterSource{
			ID:          ws.ID,
			Name:        ws.Name,
			Latitude:    ws.Lat,
			Longitude:   ws.Lng,
			Status:      string(ws.Status),
			LastChecked: ws.LastChecked,
		})
	}
	for _, hc := range fixtures.HealthCenters() {
		payload.HealthCenters = append(payload.HealthCenters, models.FeedHealthCenter{
			ID:        hc.ID,
			Name:      hc.Name,
			Type:      string(hc.Type),
			Latitude:  hc.Lat,
			Longitude: hc.Lng,
			Contact:   hc.Contact,
			Hours:     hc.Hours,
		})
	}
	return payload
}
