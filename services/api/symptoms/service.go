package symptoms

import (
	"context"
	"fmt"
	"time"

	"github.com/02loveslollipop/aquahealth/services/api/fixtures"
	"github.com/02loveslollipop/aquahealth/services/api/models"
)

// Service resolves selected symptom ids and runs one guarded check per client.
type Service struct {
	checker Checker
	tracker *Tracker
	timeout time.Duration
	catalog []models.Symptom
}

func NewService(checker Checker, timeout time.Duration) *Service {
	return &Service{
		checker: checker,
		tracker: NewTracker(),
		timeout: timeout,
		catalog: fixtures.Symptoms(),
	}
}

// Symptoms lists the selectable symptoms.
func (s *Service) Symptoms() []models.Symptom {
	out := make([]models.Symptom, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// Lookup finds a symptom by id.
func (s *Service) Lookup(id string) (models.Symptom, error) {
	for _, sym := range s.catalog {
		if sym.ID == id {
			return sym, nil
		}
	}
	return models.Symptom{}, fmt.Errorf("%w: %s", ErrUnknownSymptom, id)
}

// Resolve maps ids to display names, dropping duplicates and keeping order.
func (s *Service) Resolve(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, ErrNoSymptoms
	}
	seen := make(map[string]bool, len(ids))
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		sym, err := s.Lookup(id)
		if err != nil {
			return nil, err
		}
		names = append(names, sym.Name)
	}
	return names, nil
}

// Check assesses the symptoms for client. A check superseded by a newer one
// from the same client returns ErrStale instead of its result.
func (s *Service) Check(ctx context.Context, client string, ids []string) (*models.SymptomCheckResult, error) {
	names, err := s.Resolve(ids)
	if err != nil {
		return nil, err
	}

	ctx, ticket := s.tracker.Begin(ctx, client)
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	res, err := s.checker.Check(ctx, names)
	if staleErr := s.tracker.Finish(ticket); staleErr != nil {
		return nil, staleErr
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}
