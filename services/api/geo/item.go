// Package geo groups map pins into proximity clusters and computes the pan/zoom
// transform that frames a cluster on the map surface.
package geo

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/02loveslollipop/aquahealth/services/api/models"
)

// Kind tags what a map item is.
type Kind string

const (
	KindWater   Kind = "water"
	KindHealth  Kind = "health"
	KindCluster Kind = "cluster"
)

// Key identifies a point. IDs are only unique within one kind, so the kind is
// always part of the key.
type Key struct {
	Kind Kind
	ID   int
}

func (k Key) String() string {
	return fmt.Sprintf("%s-%d", k.Kind, k.ID)
}

// ParseKey reads a key in the "water-3" / "health-3" form.
func ParseKey(s string) (Key, error) {
	kind, id, ok := strings.Cut(s, "-")
	if !ok {
		return Key{}, fmt.Errorf("invalid item key %q", s)
	}
	n, err := strconv.Atoi(id)
	if err != nil {
		return Key{}, fmt.Errorf("invalid item key %q: %w", s, err)
	}
	switch Kind(kind) {
	case KindWater, KindHealth:
		return Key{Kind: Kind(kind), ID: n}, nil
	}
	return Key{}, fmt.Errorf("invalid item kind %q", kind)
}

// Item is a located point on the map: a water source or a health center.
type Item struct {
	Kind   Kind
	ID     int
	Name   string
	Lat    float64
	Lng    float64
	Water  *models.WaterSource
	Health *models.HealthCenter
}

// FromWaterSource wraps a water source as a map item.
func FromWaterSource(ws models.WaterSource) Item {
	return Item{Kind: KindWater, ID: ws.ID, Name: ws.Name, Lat: ws.Lat, Lng: ws.Lng, Water: &ws}
}

// FromHealthCenter wraps a health center as a map item.
func FromHealthCenter(hc models.HealthCenter) Item {
	return Item{Kind: KindHealth, ID: hc.ID, Name: hc.Name, Lat: hc.Lat, Lng: hc.Lng, Health: &hc}
}

// Merge returns water sources followed by health centers, each in input order.
func Merge(sources []models.WaterSource, centers []models.HealthCenter) []Item {
	items := make([]Item, 0, len(sources)+len(centers))
	for _, ws := range sources {
		items = append(items, FromWaterSource(ws))
	}
	for _, hc := range centers {
		items = append(items, FromHealthCenter(hc))
	}
	return items
}

func (i Item) Key() Key {
	return Key{Kind: i.Kind, ID: i.ID}
}

func (i Item) point() orb.Point {
	return orb.Point{i.Lng, i.Lat}
}

// Marker is the legend entry used to colour the pin.
func (i Item) Marker() string {
	switch {
	case i.Water != nil:
		return string(i.Water.Status)
	case i.Health != nil:
		return string(i.Health.Type)
	}
	return ""
}

type itemJSON struct {
	ItemType    Kind                     `json:"item_type"`
	Key         string                   `json:"key"`
	ID          int                      `json:"id"`
	Name        string                   `json:"name"`
	Lat         float64                  `json:"lat"`
	Lng         float64                  `json:"lng"`
	Marker      string                   `json:"marker"`
	Position    Position                 `json:"position"`
	Status      models.WaterSourceStatus `json:"status,omitempty"`
	LastChecked string                   `json:"last_checked,omitempty"`
	Type        models.HealthCenterType  `json:"type,omitempty"`
	Contact     string                   `json:"contact,omitempty"`
	Hours       string                   `json:"hours,omitempty"`
}

func (i Item) MarshalJSON() ([]byte, error) {
	out := itemJSON{
		ItemType: i.Kind,
		Key:      i.Key().String(),
		ID:       i.ID,
		Name:     i.Name,
		Lat:      i.Lat,
		Lng:      i.Lng,
		Marker:   i.Marker(),
		Position: PinPosition(i.Lat, i.Lng),
	}
	if i.Water != nil {
		out.Status = i.Water.Status
		out.LastChecked = i.Water.LastChecked
	}
	if i.Health != nil {
		out.Type = i.Health.Type
		out.Contact = i.Health.Contact
		out.Hours = i.Health.Hours
	}
	return json.Marshal(out)
}

// Cluster is a derived group of at least two nearby items. It is rebuilt on
// every change of the filtered item set and never mutated afterwards.
type Cluster struct {
	ID    string
	Lat   float64
	Lng   float64
	Items []Item
}

func (c Cluster) Count() int {
	return len(c.Items)
}

// Badge holds the render hints for a cluster badge, in pixels.
type Badge struct {
	Size     int `json:"size"`
	FontSize int `json:"font_size"`
}

// BadgeFor sizes the badge from 32px up to 60px with the member count.
func BadgeFor(count int) Badge {
	return Badge{
		Size:     32 + min(count*2, 28),
		FontSize: 12 + min(count, 8),
	}
}

func (c Cluster) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ItemType Kind     `json:"item_type"`
		ID       string   `json:"id"`
		Lat      float64  `json:"lat"`
		Lng      float64  `json:"lng"`
		Count    int      `json:"count"`
		Position Position `json:"position"`
		Badge    Badge    `json:"badge"`
		Items    []Item   `json:"items"`
	}{
		ItemType: KindCluster,
		ID:       c.ID,
		Lat:      c.Lat,
		Lng:      c.Lng,
		Count:    c.Count(),
		Position: PinPosition(c.Lat, c.Lng),
		Badge:    BadgeFor(c.Count()),
		Items:    c.Items,
	})
}

// DisplayItem is one render-ready map element: exactly one of Item or Cluster is set.
type DisplayItem struct {
	Item    *Item
	Cluster *Cluster
}

func (d DisplayItem) IsCluster() bool {
	return d.Cluster != nil
}

// Points returns the underlying items of the element.
func (d DisplayItem) Points() []Item {
	if d.Cluster != nil {
		return d.Cluster.Items
	}
	if d.Item != nil {
		return []Item{*d.Item}
	}
	return nil
}

func (d DisplayItem) MarshalJSON() ([]byte, error) {
	if d.Cluster != nil {
		return json.Marshal(d.Cluster)
	}
	return json.Marshal(d.Item)
}
