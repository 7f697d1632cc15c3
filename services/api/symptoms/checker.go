// Package symptoms produces informational symptom assessments, either from a
// generative-AI endpoint or from a canned mock.
package symptoms

import (
	"context"
	"errors"
	"log"

	"github.com/02loveslollipop/aquahealth/services/api/config"
	"github.com/02loveslollipop/aquahealth/services/api/fixtures"
	"github.com/02loveslollipop/aquahealth/services/api/models"
)

var (
	ErrNoSymptoms     = errors.New("at least one symptom is required")
	ErrUnknownSymptom = errors.New("unknown symptom")
)

// FailureMessage is what users see when an assessment cannot be produced.
const FailureMessage = "Failed to get a response. Please try again later."

// Checker assesses a list of symptom display names.
type Checker interface {
	Check(ctx context.Context, symptoms []string) (*models.SymptomCheckResult, error)
}

// New returns the AI checker when a key is configured, the mock otherwise.
func New(cfg config.Config) Checker {
	if cfg.UseMockAI() {
		log.Printf("symptom checker: no AI key configured, serving mock assessments")
		return MockChecker{}
	}
	log.Printf("symptom checker: using model %s at %s", cfg.AIModel, cfg.AIBaseURL)
	return NewAIChecker(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
}

// MockChecker always returns the fixed Moderate assessment.
type MockChecker struct{}

func (MockChecker) Check(ctx context.Context, symptoms []string) (*models.SymptomCheckResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res := fixtures.MockAssessment()
	return &res, nil
}
