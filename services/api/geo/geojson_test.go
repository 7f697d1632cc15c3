package geo

import (
	"encoding/json"
	"testing"

	"github.com/02loveslollipop/aquahealth/services/api/fixtures"
)

func TestFeatureCollection(t *testing.T) {
	items := Merge(fixtures.WaterSources(), fixtures.HealthCenters())
	display := Group(items, DefaultRadius)

	fc := FeatureCollection(display)
	if len(fc.Features) != len(display) {
		t.Fatalf("features = %d, want %d", len(fc.Features), len(display))
	}

	first := fc.Features[0]
	if first.Properties["cluster"] != true {
		t.Fatalf("first feature should be a cluster: %+v", first.Properties)
	}
	if first.Properties["point_count"] != 5 {
		t.Errorf("point_count = %v, want 5", first.Properties["point_count"])
	}

	raw, err := json.Marshal(fc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Type != "FeatureCollection" {
		t.Errorf("type = %q", decoded.Type)
	}
	last := decoded.Features[len(decoded.Features)-1]
	if last.Geometry.Type != "Point" || len(last.Geometry.Coordinates) != 2 {
		t.Errorf("unexpected geometry %+v", last.Geometry)
	}
}

func TestDisplayItemJSON(t *testing.T) {
	display := Group([]Item{water(1, 26.15, 91.73), health(1, 26.15, 91.73), water(2, 26.12, 91.76)}, DefaultRadius)

	raw, err := json.Marshal(display)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded[0]["item_type"] != "cluster" || decoded[0]["count"] != float64(2) {
		t.Errorf("unexpected cluster json: %v", decoded[0])
	}
	if decoded[1]["item_type"] != "water" || decoded[1]["key"] != "water-2" || decoded[1]["marker"] != "Safe" {
		t.Errorf("unexpected point json: %v", decoded[1])
	}
}
