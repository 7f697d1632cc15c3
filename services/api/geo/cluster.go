package geo

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb/planar"
)

// DefaultRadius is the grouping threshold in raw degrees.
const DefaultRadius = 0.008

// Group clusters items by proximity in a single greedy pass.
//
// Each unvisited item in input order becomes a seed; every later unvisited item
// strictly closer than radius to that seed joins its group. Membership is only
// tested against the seed, never against other members, so the result is not a
// transitive closure: an item near a member but beyond radius of the seed stays
// out. Distance is planar on raw (lat, lng). Groups of one are emitted as the
// point as a single Item; larger groups become a Cluster. Output follows seed order.
func Group(items []Item, radius float64) []DisplayItem {
	out := make([]DisplayItem, 0, len(items))
	visited := make(map[Key]bool, len(items))

	for i := range items {
		seed := items[i]
		if visited[seed.Key()] {
			continue
		}
		visited[seed.Key()] = true
		members := []Item{seed}

		for j := i + 1; j < len(items); j++ {
			cand := items[j]
			if visited[cand.Key()] {
				continue
			}
			if planar.Distance(seed.point(), cand.point()) < radius {
				members = append(members, cand)
				visited[cand.Key()] = true
			}
		}

		if len(members) == 1 {
			item := seed
			out = append(out, DisplayItem{Item: &item})
			continue
		}
		out = append(out, DisplayItem{Cluster: newCluster(seed.Key(), members)})
	}

	return out
}

func newCluster(seed Key, members []Item) *Cluster {
	var sumLat, sumLng float64
	for _, m := range members {
		sumLat += m.Lat
		sumLng += m.Lng
	}
	n := float64(len(members))
	return &Cluster{
		ID:    ClusterID(seed),
		Lat:   sumLat / n,
		Lng:   sumLng / n,
		Items: members,
	}
}

// ClusterID derives a cluster identifier from its seed's key.
func ClusterID(seed Key) string {
	return "cluster-" + seed.String()
}

// SeedFromClusterID is the inverse of ClusterID.
func SeedFromClusterID(id string) (Key, error) {
	rest, ok := strings.CutPrefix(id, "cluster-")
	if !ok {
		return Key{}, fmt.Errorf("invalid cluster id %q", id)
	}
	return ParseKey(rest)
}

// FindCluster looks up a cluster by id in a grouping result.
func FindCluster(display []DisplayItem, id string) (*Cluster, bool) {
	for _, d := range display {
		if d.Cluster != nil && d.Cluster.ID == id {
			return d.Cluster, true
		}
	}
	return nil, false
}

// FindItem looks up a point by key, including points inside clusters.
func FindItem(display []DisplayItem, key Key) (*Item, bool) {
	for _, d := range display {
		for _, p := range d.Points() {
			if p.Key() == key {
				item := p
				return &item, true
			}
		}
	}
	return nil, false
}
