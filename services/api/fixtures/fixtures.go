// Package fixtures holds the read-only reference data served when no database
// is configured, and used by the watcher to seed one.
package fixtures

import "github.com/02loveslollipop/aquahealth/services/api/models"

// WaterSources returns a fresh copy of the water source fixture.
func WaterSources() []models.WaterSource {
	return []models.WaterSource{
		{ID: 1, Name: "Village Well #3", Lat: 26.1445, Lng: 91.7362, Status: models.StatusSafe, LastChecked: "2 hours ago"},
		{ID: 2, Name: "Community Tap - Market", Lat: 26.1478, Lng: 91.7401, Status: models.StatusWarning, LastChecked: "30 minutes ago"},
		{ID: 3, Name: "River Intake Point", Lat: 26.1312, Lng: 91.7275, Status: models.StatusUnsafe, LastChecked: "1 hour ago"},
		{ID: 4, Name: "School Borewell", Lat: 26.1398, Lng: 91.7530, Status: models.StatusSafe, LastChecked: "5 hours ago"},
		{ID: 5, Name: "Temple Pond", Lat: 26.1466, Lng: 91.7385, Status: models.StatusWarning, LastChecked: "3 hours ago"},
		{ID: 6, Name: "North Hand Pump", Lat: 26.1531, Lng: 91.7614, Status: models.StatusSafe, LastChecked: "1 day ago"},
	}
}

// HealthCenters returns a fresh copy of the health center fixture.
func HealthCenters() []models.HealthCenter {
	return []models.HealthCenter{
		{ID: 1, Name: "District Civil Hospital", Type: models.Hospital, Lat: 26.1451, Lng: 91.7370, Contact: "+91 361 254 0000", Hours: "24/7"},
		{ID: 2, Name: "Primary Health Clinic", Type: models.Clinic, Lat: 26.1325, Lng: 91.7290, Contact: "+91 361 254 1111", Hours: "9 AM - 5 PM"},
		{ID: 3, Name: "Dr. Sharma's Practice", Type: models.Doctor, Lat: 26.1402, Lng: 91.7524, Contact: "+91 98640 12345", Hours: "10 AM - 1 PM, 5 PM - 8 PM"},
		{ID: 4, Name: "Jan Aushadhi Pharmacy", Type: models.Pharmacy, Lat: 26.1482, Lng: 91.7396, Contact: "+91 361 254 2222", Hours: "8 AM - 10 PM"},
		{ID: 5, Name: "Riverside Mobile Clinic", Type: models.Clinic, Lat: 26.1220, Lng: 91.7650, Contact: "+91 361 254 3333", Hours: "Tue & Fri, 10 AM - 2 PM"},
	}
}

// Alerts returns the alert history, most recent first.
func Alerts() []models.Alert {
	return []models.Alert{
		{ID: 1, SourceName: "River Intake Point", Message: "High E. coli levels detected. Do not drink without boiling.", Timestamp: "2024-07-21 09:15", Status: models.StatusUnsafe},
		{ID: 2, SourceName: "Community Tap - Market", Message: "Turbidity above safe limits after heavy rain. Filter and boil before use.", Timestamp: "2024-07-20 18:40", Status: models.StatusWarning},
		{ID: 3, SourceName: "Village Well #3", Message: "Water quality restored to safe levels.", Timestamp: "2024-07-19 11:05", Status: models.StatusSafe},
		{ID: 4, SourceName: "Temple Pond", Message: "Algal bloom observed. Avoid direct consumption.", Timestamp: "2024-07-18 07:30", Status: models.StatusWarning},
	}
}

// Symptoms returns the selectable symptom list.
func Symptoms() []models.Symptom {
	return []models.Symptom{
		{ID: "diarrhea", Name: "Diarrhea"},
		{ID: "fever", Name: "Fever"},
		{ID: "vomiting", Name: "Vomiting"},
		{ID: "stomach_pain", Name: "Stomach Pain"},
		{ID: "headache", Name: "Headache"},
		{ID: "fatigue", Name: "Fatigue"},
		{ID: "dehydration", Name: "Dehydration"},
		{ID: "leg_cramps", Name: "Leg Cramps"},
	}
}

// SymptomReports is the baseline of community report counts.
func SymptomReports() []models.SymptomReport {
	return []models.SymptomReport{
		{Symptom: "Diarrhea", Count: 45, Date: "2024-07-21"},
		{Symptom: "Fever", Count: 32, Date: "2024-07-21"},
		{Symptom: "Vomiting", Count: 18, Date: "2024-07-21"},
		{Symptom: "Stomach Pain", Count: 25, Date: "2024-07-21"},
		{Symptom: "Headache", Count: 12, Date: "2024-07-21"},
	}
}

// TrendSymptoms are the series plotted on the trend chart.
var TrendSymptoms = []string{"Diarrhea", "Fever", "Vomiting"}

// SymptomTrend returns the weekly trend baseline.
func SymptomTrend() []models.TrendPoint {
	rows := []struct {
		day                       string
		diarrhea, fever, vomiting int
	}{
		{"Mon", 5, 3, 2},
		{"Tue", 7, 4, 3},
		{"Wed", 6, 6, 2},
		{"Thu", 9, 5, 4},
		{"Fri", 12, 7, 5},
		{"Sat", 4, 4, 1},
		{"Sun", 2, 3, 1},
	}
	out := make([]models.TrendPoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.TrendPoint{
			Name: r.day,
			Counts: map[string]int{
				"Diarrhea": r.diarrhea,
				"Fever":    r.fever,
				"Vomiting": r.vomiting,
			},
		})
	}
	return out
}

// Education returns the educational content cards.
func Education() []models.EducationTopic {
	return []models.EducationTopic{
		{
			Key:     "boil_water",
			Title:   "How to Boil Water Safely",
			Summary: "Boiling is the surest method to kill disease-causing organisms, including viruses, bacteria, and parasites.",
			Steps: []string{
				"Bring water to a full rolling boil for at least 1 minute.",
				"At higher altitudes (above 6,500 feet), boil for 3 minutes.",
				"Let the water cool naturally and store it in a clean, covered container.",
			},
		},
		{
			Key:     "symptoms",
			Title:   "Recognizing Water-borne Diseases",
			Summary: "Learn to recognize the symptoms of common water-borne diseases.",
			Steps: []string{
				"Cholera: Severe watery diarrhea, vomiting, leg cramps.",
				"Typhoid: High fever, headache, stomach pain, weakness.",
				"Diarrhea: Loose, watery stools three or more times a day.",
			},
		},
		{
			Key:     "hygiene",
			Title:   "Hygiene Practices",
			Summary: "Good hygiene prevents the spread of water-borne illness.",
			Steps: []string{
				"Wash hands with soap and clean water regularly.",
				"Store drinking water in a clean, covered container.",
				"Keep sanitation facilities clean and dispose of waste properly.",
			},
		},
	}
}

// MockAssessment is returned by the symptom checker when no AI credential is configured.
func MockAssessment() models.SymptomCheckResult {
	return models.SymptomCheckResult{
		Severity:           models.SeverityModerate,
		PossibleConditions: []string{"Gastroenteritis (Stomach Flu)", "Cholera (less likely without severe dehydration)"},
		Recommendations: []string{
			"Stay hydrated by drinking plenty of fluids, preferably Oral Rehydration Solution (ORS).",
			"Rest as much as possible.",
			"Eat bland foods like rice, bananas, and toast.",
			"Monitor for signs of severe dehydration (e.g., no urination, dizziness, sunken eyes).",
			"If symptoms worsen or do not improve in 24-48 hours, seek medical attention immediately.",
		},
	}
}
