package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// FeatureCollection renders display items as GeoJSON point features.
func FeatureCollection(display []DisplayItem) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, d := range display {
		if d.Cluster != nil {
			c := d.Cluster
			f := geojson.NewFeature(orb.Point{c.Lng, c.Lat})
			f.ID = c.ID
			f.Properties["cluster"] = true
			f.Properties["cluster_id"] = c.ID
			f.Properties["point_count"] = c.Count()
			keys := make([]string, 0, c.Count())
			for _, m := range c.Items {
				keys = append(keys, m.Key().String())
			}
			f.Properties["members"] = keys
			fc.Append(f)
			continue
		}
		if d.Item == nil {
			continue
		}
		it := d.Item
		f := geojson.NewFeature(it.point())
		f.ID = it.Key().String()
		f.Properties["cluster"] = false
		f.Properties["item_type"] = string(it.Kind)
		f.Properties["id"] = it.ID
		f.Properties["name"] = it.Name
		f.Properties["marker"] = it.Marker()
		fc.Append(f)
	}
	return fc
}
