package models

import (
	"fmt"
	"strings"
	"time"
)

// WaterSourceStatus is the safety classification of a water source.
type WaterSourceStatus string

const (
	StatusSafe    WaterSourceStatus = "Safe"
	StatusWarning WaterSourceStatus = "Warning"
	StatusUnsafe  WaterSourceStatus = "Unsafe"
)

// ParseWaterSourceStatus validates a status string from storage or a feed.
func ParseWaterSourceStatus(s string) (WaterSourceStatus, error) {
	switch WaterSourceStatus(s) {
	case StatusSafe, StatusWarning, StatusUnsafe:
		return WaterSourceStatus(s), nil
	}
	return "", fmt.Errorf("invalid water source status %q", s)
}

// HealthCenterType is the facility kind of a health center.
type HealthCenterType string

const (
	Hospital HealthCenterType = "Hospital"
	Clinic   HealthCenterType = "Clinic"
	Doctor   HealthCenterType = "Doctor"
	Pharmacy HealthCenterType = "Pharmacy"
)

// ParseHealthCenterType validates a facility kind string.
func ParseHealthCenterType(s string) (HealthCenterType, error) {
	switch HealthCenterType(s) {
	case Hospital, Clinic, Doctor, Pharmacy:
		return HealthCenterType(s), nil
	}
	return "", fmt.Errorf("invalid health center type %q", s)
}

// WaterSource is a monitored drinking water source.
type WaterSource struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Lat         float64           `json:"lat"`
	Lng         float64           `json:"lng"`
	Status      WaterSourceStatus `json:"status"`
	LastChecked string            `json:"last_checked"`
}

// HealthCenter is a facility shown on the map.
type HealthCenter struct {
	ID      int              `json:"id"`
	Name    string           `json:"name"`
	Type    HealthCenterType `json:"type"`
	Lat     float64          `json:"lat"`
	Lng     float64          `json:"lng"`
	Contact string           `json:"contact"`
	Hours   string           `json:"hours"`
}

// Alert records a status notice for a water source.
type Alert struct {
	ID         int               `json:"id"`
	SourceName string            `json:"source_name"`
	Message    string            `json:"message"`
	Timestamp  string            `json:"timestamp"`
	Status     WaterSourceStatus `json:"status"`
}

// Symptom is one selectable entry of the symptom checker.
type Symptom struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SymptomReport is an aggregated count of community reports for one symptom.
type SymptomReport struct {
	Symptom string `json:"symptom"`
	Count   int    `json:"count"`
	Date    string `json:"date"`
}

// SymptomSubmission is a single anonymous community report.
type SymptomSubmission struct {
	ID         string    `json:"id"`
	SymptomID  string    `json:"symptom_id"`
	Symptom    string    `json:"symptom"`
	ReportedAt time.Time `json:"reported_at"`
}

// TrendPoint is one labelled column of the symptom trend chart.
type TrendPoint struct {
	Name   string         `json:"name"`
	Counts map[string]int `json:"counts"`
}

// Severity of a symptom assessment.
type Severity string

const (
	SeverityMild     Severity = "Mild"
	SeverityModerate Severity = "Moderate"
	SeveritySevere   Severity = "Severe"
	SeverityUnknown  Severity = "Unknown"
)

// NormalizeSeverity maps free-form model output onto the known severities.
func NormalizeSeverity(s string) Severity {
	s = strings.TrimSpace(s)
	for _, sev := range []Severity{SeverityMild, SeverityModerate, SeveritySevere} {
		if strings.EqualFold(s, string(sev)) {
			return sev
		}
	}
	return SeverityUnknown
}

// SymptomCheckResult is the informational assessment returned to the user.
type SymptomCheckResult struct {
	Severity           Severity `json:"severity"`
	PossibleConditions []string `json:"possibleConditions"`
	Recommendations    []string `json:"recommendations"`
}

// Feedback is free-text user feedback.
type Feedback struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// EducationTopic is one card of educational content.
type EducationTopic struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Steps   []string `json:"steps"`
}
