package symptoms

import (
	"context"
	"errors"
	"sync"
)

// ErrStale means a newer check from the same client superseded this one.
var ErrStale = errors.New("superseded by a newer check")

// Ticket identifies one in-flight check.
type Ticket struct {
	client string
	gen    uint64
}

type flight struct {
	gen    uint64
	cancel context.CancelFunc
}

// Tracker keeps at most one live check per client. Starting a new check
// cancels the previous one, whose result is then reported as stale.
type Tracker struct {
	mu      sync.Mutex
	next    uint64
	flights map[string]flight
}

func NewTracker() *Tracker {
	return &Tracker{flights: make(map[string]flight)}
}

// Begin registers a check for client and returns the context it must run
// under. An empty client id is not tracked.
func (t *Tracker) Begin(ctx context.Context, client string) (context.Context, Ticket) {
	if client == "" {
		return ctx, Ticket{}
	}
	ctx, cancel := context.WithCancel(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()

	if prev, ok := t.flights[client]; ok {
		prev.cancel()
	}
	t.next++
	t.flights[client] = flight{gen: t.next, cancel: cancel}
	return ctx, Ticket{client: client, gen: t.next}
}

// Finish releases the ticket. It returns ErrStale when another check for the
// same client started in the meantime.
func (t *Tracker) Finish(tk Ticket) error {
	if tk.client == "" {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	cur, ok := t.flights[tk.client]
	if !ok || cur.gen != tk.gen {
		return ErrStale
	}
	cur.cancel()
	delete(t.flights, tk.client)
	return nil
}

// InFlight reports how many clients have a check running.
func (t *Tracker) InFlight() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.flights)
}
