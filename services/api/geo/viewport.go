package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	// FitPadding leaves a margin around the framed box.
	FitPadding = 0.9
	MinScale   = 1.0
	MaxScale   = 10.0
	// PointScale is used when every member sits on the same coordinate.
	PointScale = 5.0
)

// Viewport is the pan/zoom transform applied to the map surface. X and Y are
// percentage offsets; the transform origin is the top-left corner.
type Viewport struct {
	Scale float64 `json:"scale"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// DefaultViewport is the unzoomed, unpanned map.
func DefaultViewport() Viewport {
	return Viewport{Scale: 1}
}

// IsDefault reports whether the map is at its reset position.
func (v Viewport) IsDefault() bool {
	return v == DefaultViewport()
}

// FitToCluster frames the cluster's members in the viewport.
func FitToCluster(c Cluster) Viewport {
	return FitBounds(c.Items)
}

// FitBounds computes the transform that shows the bounding box of items,
// padded, centered and with aspect ratio preserved.
func FitBounds(items []Item) Viewport {
	if len(items) == 0 {
		return DefaultViewport()
	}

	mp := make(orb.MultiPoint, 0, len(items))
	for _, it := range items {
		mp = append(mp, it.point())
	}
	bound := mp.Bound()
	lngRange := bound.Max.X() - bound.Min.X()
	latRange := bound.Max.Y() - bound.Min.Y()

	if latRange == 0 && lngRange == 0 {
		return centeredOn(bound.Min.Y(), bound.Min.X(), PointScale)
	}

	scaleX := math.Inf(1)
	if lngRange > 0 {
		scaleX = (100 * FitPadding) / (lngRange * PercentPerDegree)
	}
	scaleY := math.Inf(1)
	if latRange > 0 {
		scaleY = (100 * FitPadding) / (latRange * PercentPerDegree)
	}
	scale := math.Min(math.Min(scaleX, scaleY), MaxScale)
	scale = math.Max(scale, MinScale)

	center := bound.Center()
	return centeredOn(center.Y(), center.X(), scale)
}

func centeredOn(lat, lng, scale float64) Viewport {
	x, y := Project(lat, lng)
	return Viewport{
		Scale: scale,
		X:     50 - x*scale,
		Y:     50 - y*scale,
	}
}
