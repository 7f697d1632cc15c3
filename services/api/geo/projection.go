package geo

// Pin placement and viewport fitting share this linear projection. It maps
// degrees onto percentages of the map surface, anchored at the top-left corner.
const (
	RefLat           = 26.16
	RefLng           = 91.72
	PercentPerDegree = 2000.0
)

// Project converts a coordinate to (x, y) percentage offsets from the top-left corner.
func Project(lat, lng float64) (x, y float64) {
	return (lng - RefLng) * PercentPerDegree, (RefLat - lat) * PercentPerDegree
}

// Position is where a pin is drawn, in percent of the map surface.
type Position struct {
	Top  float64 `json:"top_pct"`
	Left float64 `json:"left_pct"`
}

func PinPosition(lat, lng float64) Position {
	x, y := Project(lat, lng)
	return Position{Top: y, Left: x}
}
