// Package session keeps the per-client map view: search query, pan/zoom
// transform and the active selection.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/02loveslollipop/aquahealth/services/api/geo"
)

var (
	ErrNotFound       = errors.New("session not found")
	ErrUnknownCluster = errors.New("cluster not in current view")
	ErrUnknownItem    = errors.New("item not in current view")
)

// Selection is the item or cluster the user last clicked. At most one field is set.
type Selection struct {
	Cluster *geo.Cluster `json:"cluster,omitempty"`
	Item    *geo.Item    `json:"item,omitempty"`
}

// Session is a snapshot of one map view.
type Session struct {
	ID       string       `json:"id"`
	Query    string       `json:"query"`
	Viewport geo.Viewport `json:"viewport"`
	Selected *Selection   `json:"selected,omitempty"`
	LastSeen time.Time    `json:"last_seen"`
}

// Registry holds live sessions. Only the viewport operations below mutate a
// session's transform.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create starts a session at the default viewport with nothing selected.
func (r *Registry) Create() Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := &Session{
		ID:       uuid.NewString(),
		Viewport: geo.DefaultViewport(),
		LastSeen: r.now(),
	}
	r.sessions[s.ID] = s
	return *s
}

func (r *Registry) Get(id string) (Session, error) {
	return r.update(id, func(*Session) error { return nil })
}

// SetQuery changes the search text. The clusters shown are rebuilt from the
// new query, so any selection is dropped; the viewport is left alone.
func (r *Registry) SetQuery(id, query string) (Session, error) {
	return r.update(id, func(s *Session) error {
		s.Query = query
		s.Selected = nil
		return nil
	})
}

// FocusCluster selects a cluster from the current display and zooms to fit it.
func (r *Registry) FocusCluster(id string, display []geo.DisplayItem, clusterID string) (Session, error) {
	return r.update(id, func(s *Session) error {
		c, ok := geo.FindCluster(display, clusterID)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownCluster, clusterID)
		}
		s.Selected = &Selection{Cluster: c}
		s.Viewport = geo.FitToCluster(*c)
		return nil
	})
}

// Select marks a single pin as selected without moving the map.
func (r *Registry) Select(id string, display []geo.DisplayItem, key geo.Key) (Session, error) {
	return r.update(id, func(s *Session) error {
		it, ok := geo.FindItem(display, key)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownItem, key)
		}
		s.Selected = &Selection{Item: it}
		return nil
	})
}

// Reset restores the default viewport and clears the selection.
func (r *Registry) Reset(id string) (Session, error) {
	return r.update(id, func(s *Session) error {
		s.Viewport = geo.DefaultViewport()
		s.Selected = nil
		return nil
	})
}

// Evict drops sessions not seen for longer than idle and returns how many went.
func (r *Registry) Evict(idle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-idle)
	n := 0
	for id, s := range r.sessions {
		if s.LastSeen.Before(cutoff) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// update applies fn under the lock. A failing fn leaves the session untouched.
func (r *Registry) update(id string, fn func(*Session) error) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	next := *s
	if err := fn(&next); err != nil {
		return Session{}, err
	}
	next.LastSeen = r.now()
	*s = next
	return next, nil
}
