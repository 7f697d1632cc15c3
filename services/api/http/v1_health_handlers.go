package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/aquahealth/services/api/symptoms"
)

// handleV1ListSymptoms returns the selectable symptoms
// GET /api/v1/health/symptoms
func (s *Server) handleV1ListSymptoms(c *gin.Context) {
	list := s.symptoms.Symptoms()
	c.JSON(http.StatusOK, gin.H{
		"data": list,
		"meta": gin.H{
			"count": len(list),
		},
	})
}

// handleV1CheckSymptoms runs an informational assessment for the selected symptoms.
// A newer check from the same client makes this one answer 409.
// POST /api/v1/health/check {"symptoms": ["fever"], "client_id": "..."}
func (s *Server) handleV1CheckSymptoms(c *gin.Context) {
	var req struct {
		Symptoms []string `json:"symptoms"`
		ClientID string   `json:"client_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client := req.ClientID
	if client == "" {
		client = c.GetHeader("X-Client-ID")
	}

	result, err := s.symptoms.Check(c.Request.Context(), client, req.Symptoms)
	switch {
	case errors.Is(err, symptoms.ErrNoSymptoms), errors.Is(err, symptoms.ErrUnknownSymptom):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, symptoms.ErrStale):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.Printf("symptom check failed client=%q symptoms=%v: %v", client, req.Symptoms, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": symptoms.FailureMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": result,
		"meta": gin.H{
			"mock":       s.cfg.UseMockAI(),
			"disclaimer": "This is for informational purposes and not a medical diagnosis.",
		},
	})
}
