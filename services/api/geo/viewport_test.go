package geo

import (
	"math"
	"testing"

	"github.com/02loveslollipop/aquahealth/services/api/fixtures"
)

const eps = 1e-6

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestFitSinglePointBox(t *testing.T) {
	c := Cluster{ID: "cluster-water-1", Items: []Item{water(1, 26.15, 91.73), health(1, 26.15, 91.73)}}

	v := FitToCluster(c)
	if v.Scale != PointScale {
		t.Fatalf("scale = %v, want %v", v.Scale, PointScale)
	}
	if !near(v.X, -50) || !near(v.Y, -50) {
		t.Errorf("offsets = (%v, %v), want (-50, -50)", v.X, v.Y)
	}
}

func TestFitCapsAtMaxScale(t *testing.T) {
	c := Cluster{Items: []Item{water(1, 26.16, 91.72), water(2, 26.1601, 91.7201)}}

	v := FitToCluster(c)
	if v.Scale != MaxScale {
		t.Fatalf("scale = %v, want %v", v.Scale, MaxScale)
	}
}

func TestFitUsesTighterAxis(t *testing.T) {
	// lng range 0.01 -> 4.5x, lat range 0.005 -> 9x; the smaller wins.
	c := Cluster{Items: []Item{water(1, 26.140, 91.730), water(2, 26.145, 91.740)}}

	v := FitToCluster(c)
	if !near(v.Scale, 4.5) {
		t.Fatalf("scale = %v, want 4.5", v.Scale)
	}
}

func TestFitOneAxisDegenerate(t *testing.T) {
	// Same latitude: only the horizontal axis constrains the zoom.
	c := Cluster{Items: []Item{water(1, 26.14, 91.73), water(2, 26.14, 91.745)}}

	v := FitToCluster(c)
	if !near(v.Scale, 3) {
		t.Fatalf("scale = %v, want 3", v.Scale)
	}
}

func TestFitCentersBoundingBox(t *testing.T) {
	items := []Item{water(1, 26.140, 91.730), water(2, 26.145, 91.740), health(7, 26.142, 91.733)}
	v := FitBounds(items)

	// The box center must land on the middle of the viewport.
	cx, cy := Project(26.1425, 91.735)
	if !near(v.X+cx*v.Scale, 50) || !near(v.Y+cy*v.Scale, 50) {
		t.Errorf("box center maps to (%v, %v), want (50, 50)", v.X+cx*v.Scale, v.Y+cy*v.Scale)
	}

	// Every member stays inside the visible surface.
	for _, it := range items {
		x, y := Project(it.Lat, it.Lng)
		sx, sy := v.X+x*v.Scale, v.Y+y*v.Scale
		if sx < 0 || sx > 100 || sy < 0 || sy > 100 {
			t.Errorf("%s lands outside the viewport at (%v, %v)", it.Key(), sx, sy)
		}
	}
}

func TestFitScaleBounds(t *testing.T) {
	cases := [][]Item{
		{water(1, 26.16, 91.72), water(2, 26.16, 91.72)},
		{water(1, 26.10, 91.70), water(2, 26.16, 91.80)},
		{water(1, 20, 80), health(1, 30, 95)},
		Merge(fixtures.WaterSources(), fixtures.HealthCenters()),
	}
	for i, items := range cases {
		v := FitBounds(items)
		if v.Scale < MinScale || v.Scale > MaxScale {
			t.Errorf("case %d: scale %v outside [%v, %v]", i, v.Scale, MinScale, MaxScale)
		}
	}
}

func TestFitEmpty(t *testing.T) {
	if v := FitBounds(nil); !v.IsDefault() {
		t.Errorf("FitBounds(nil) = %+v, want default", v)
	}
}

func TestProjectAndPinPositionAgree(t *testing.T) {
	x, y := Project(26.15, 91.73)
	p := PinPosition(26.15, 91.73)
	if p.Left != x || p.Top != y {
		t.Errorf("PinPosition = %+v, Project = (%v, %v)", p, x, y)
	}
	if x0, y0 := Project(RefLat, RefLng); x0 != 0 || y0 != 0 {
		t.Errorf("reference point projects to (%v, %v)", x0, y0)
	}
}

func TestFilter(t *testing.T) {
	items := Merge(fixtures.WaterSources(), fixtures.HealthCenters())

	if got := Filter(items, "   "); len(got) != len(items) {
		t.Errorf("blank query kept %d of %d", len(got), len(items))
	}
	got := Filter(items, "CLINIC")
	if len(got) != 2 {
		t.Fatalf("CLINIC matched %d items, want 2", len(got))
	}
	if got[0].Name != "Primary Health Clinic" || got[1].Name != "Riverside Mobile Clinic" {
		t.Errorf("unexpected matches or order: %q, %q", got[0].Name, got[1].Name)
	}
	if got := Filter(items, "no such place"); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}
