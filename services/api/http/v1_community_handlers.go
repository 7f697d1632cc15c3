package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/02loveslollipop/aquahealth/services/api/fixtures"
	"github.com/02loveslollipop/aquahealth/services/api/models"
)

// handleV1SubmitReport records an anonymous symptom report
// POST /api/v1/community/reports {"symptom_id": "fever"}
func (s *Server) handleV1SubmitReport(c *gin.Context) {
	var req struct {
		SymptomID string `json:"symptom_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sym, err := s.symptoms.Lookup(req.SymptomID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub := models.SymptomSubmission{
		ID:         uuid.NewString(),
		SymptomID:  sym.ID,
		Symptom:    sym.Name,
		ReportedAt: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := s.store.AddSymptomReport(ctx, sub); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":    sub,
		"message": "Thank you! Your anonymous report has been submitted.",
	})
}

// handleV1Dashboard returns report totals per symptom and the weekly trend
// GET /api/v1/community/dashboard
func (s *Server) handleV1Dashboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	counts, err := s.store.SymptomReportCounts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	trend, err := s.store.SymptomTrend(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	total := 0
	for _, r := range counts {
		total += r.Count
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"total_reports":  total,
			"by_symptom":     counts,
			"trend":          trend,
			"trend_symptoms": fixtures.TrendSymptoms,
		},
		"meta": gin.H{
			"generated_at": time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// handleV1SubmitFeedback stores free-text user feedback
// POST /api/v1/feedback {"text": "..."}
func (s *Server) handleV1SubmitFeedback(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "feedback text is required"})
		return
	}

	fb := models.Feedback{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := s.store.AddFeedback(ctx, fb); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": fb,
	})
}
