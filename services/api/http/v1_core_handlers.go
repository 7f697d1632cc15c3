package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/aquahealth/services/api/db"
	"github.com/02loveslollipop/aquahealth/services/api/fixtures"
)

const summaryAlertCount = 2

// handleV1Summary returns the home screen: the primary water source and the latest alerts
// GET /api/v1/core/summary
func (s *Server) handleV1Summary(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	sources, err := s.store.ListWaterSources(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	alerts, err := s.store.ListAlerts(ctx, summaryAlertCount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	data := gin.H{"recent_alerts": alerts}
	if len(sources) > 0 {
		data["primary_source"] = sources[0]
	}

	c.JSON(http.StatusOK, gin.H{
		"data": data,
		"meta": gin.H{
			"water_sources": len(sources),
			"generated_at":  time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// handleV1ListWaterSources returns all water sources
// GET /api/v1/core/water-sources
func (s *Server) handleV1ListWaterSources(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	sources, err := s.store.ListWaterSources(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": sources,
		"meta": gin.H{
			"count": len(sources),
		},
	})
}

// handleV1GetWaterSource returns one water source
// GET /api/v1/core/water-sources/:id
func (s *Server) handleV1GetWaterSource(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	source, err := s.store.GetWaterSource(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "water source not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": source,
	})
}

// handleV1ListHealthCenters returns all health centers
// GET /api/v1/core/health-centers
func (s *Server) handleV1ListHealthCenters(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	centers, err := s.store.ListHealthCenters(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": centers,
		"meta": gin.H{
			"count": len(centers),
		},
	})
}

// handleV1GetHealthCenter returns one health center
// GET /api/v1/core/health-centers/:id
func (s *Server) handleV1GetHealthCenter(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	center, err := s.store.GetHealthCenter(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "health center not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": center,
	})
}

// handleV1ListAlerts returns alerts, most recent first
// GET /api/v1/core/alerts?limit=10
func (s *Server) handleV1ListAlerts(c *gin.Context) {
	limit := 0
	if l := c.Query("limit"); l != "" {
		val, err := strconv.Atoi(l)
		if err != nil || val <= 0 || val > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = val
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	alerts, err := s.store.ListAlerts(ctx, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": alerts,
		"meta": gin.H{
			"count": len(alerts),
		},
	})
}

// handleV1Education returns the educational content cards
// GET /api/v1/core/education
func (s *Server) handleV1Education(c *gin.Context) {
	topics := fixtures.Education()
	c.JSON(http.StatusOK, gin.H{
		"data": topics,
		"meta": gin.H{
			"count": len(topics),
		},
	})
}

// intParam parses a positive integer path parameter, writing a 400 when it is not one.
func intParam(c *gin.Context, name string) (int, bool) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
