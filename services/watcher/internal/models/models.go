package models

import "time"

// FeedPayload models the JSON document published by a district health feed.
type FeedPayload struct {
	Region        string             `json:"region"`
	WaterSources  []FeedWaterSource  `json:"water_sources"`
	HealthCenters []FeedHealthCenter `json:"health_centers"`
}

// FeedWaterSource is a water source entry as published by the feed.
type FeedWaterSource struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lng"`
	Status      string  `json:"status"`
	LastChecked string  `json:"last_checked"`
}

// FeedHealthCenter is a health facility entry as published by the feed.
type FeedHealthCenter struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Contact   string  `json:"contact"`
	Hours     string  `json:"hours"`
}

// LastStatus is the stored status of a water source before this run.
type LastStatus struct {
	Status    string
	UpdatedAt time.Time
}

// AlertRow is a status-change alert ready for insertion.
type AlertRow struct {
	SourceID   int
	SourceName string
	Message    string
	Status     string
}
