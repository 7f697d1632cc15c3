package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/aquahealth/services/api/geo"
	"github.com/02loveslollipop/aquahealth/services/api/session"
)

// display filters the catalog by query and groups the remaining pins.
func (s *Server) display(query string) []geo.DisplayItem {
	items := geo.Filter(s.catalog.Items(), query)
	return geo.Group(items, s.cfg.ClusterRadius)
}

func displayMeta(display []geo.DisplayItem, query string, radius float64) gin.H {
	clusters, points := 0, 0
	for _, d := range display {
		if d.IsCluster() {
			clusters++
		}
		points += len(d.Points())
	}
	return gin.H{
		"count":    len(display),
		"clusters": clusters,
		"points":   points,
		"query":    query,
		"radius":   radius,
	}
}

// handleV1MapItems returns the filtered, clustered map pins
// GET /api/v1/map/items?q=well&format=geojson
func (s *Server) handleV1MapItems(c *gin.Context) {
	query := c.Query("q")
	display := s.display(query)

	switch c.DefaultQuery("format", "json") {
	case "geojson":
		c.JSON(http.StatusOK, geo.FeatureCollection(display))
	case "json":
		c.JSON(http.StatusOK, gin.H{
			"data": display,
			"meta": displayMeta(display, query, s.cfg.ClusterRadius),
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be json or geojson"})
	}
}

// handleV1ClusterFit returns the viewport that frames a cluster, without any session
// GET /api/v1/map/clusters/:cluster_id/fit?q=
func (s *Server) handleV1ClusterFit(c *gin.Context) {
	clusterID := c.Param("cluster_id")
	if _, err := geo.SeedFromClusterID(clusterID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cluster, ok := geo.FindCluster(s.display(c.Query("q")), clusterID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "cluster not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"cluster":  cluster,
			"viewport": geo.FitToCluster(*cluster),
		},
	})
}

// handleV1CreateSession starts a map view at the default viewport
// POST /api/v1/map/sessions
func (s *Server) handleV1CreateSession(c *gin.Context) {
	sess := s.sessions.Create()
	c.JSON(http.StatusCreated, s.sessionView(sess))
}

// handleV1GetSession returns a map view with its current pins
// GET /api/v1/map/sessions/:id
func (s *Server) handleV1GetSession(c *gin.Context) {
	sess, err := s.sessions.Get(c.Param("id"))
	if err != nil {
		writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.sessionView(sess))
}

// handleV1SetSessionQuery changes the search text of a map view
// PUT /api/v1/map/sessions/:id/query
func (s *Server) handleV1SetSessionQuery(c *gin.Context) {
	var req struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := s.sessions.SetQuery(c.Param("id"), req.Query)
	if err != nil {
		writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.sessionView(sess))
}

// handleV1FocusCluster selects a cluster and zooms the view to fit it
// POST /api/v1/map/sessions/:id/clusters/:cluster_id/focus
func (s *Server) handleV1FocusCluster(c *gin.Context) {
	id := c.Param("id")
	current, err := s.sessions.Get(id)
	if err != nil {
		writeSessionError(c, err)
		return
	}

	sess, err := s.sessions.FocusCluster(id, s.display(current.Query), c.Param("cluster_id"))
	if err != nil {
		writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sess})
}

// handleV1SelectItem selects one pin without moving the view
// POST /api/v1/map/sessions/:id/select {"key": "health-2"}
func (s *Server) handleV1SelectItem(c *gin.Context) {
	var req struct {
		Key string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	key, err := geo.ParseKey(req.Key)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	current, err := s.sessions.Get(id)
	if err != nil {
		writeSessionError(c, err)
		return
	}

	sess, err := s.sessions.Select(id, s.display(current.Query), key)
	if err != nil {
		writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sess})
}

// handleV1ResetSession restores the default viewport and clears the selection
// POST /api/v1/map/sessions/:id/reset
func (s *Server) handleV1ResetSession(c *gin.Context) {
	sess, err := s.sessions.Reset(c.Param("id"))
	if err != nil {
		writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sess})
}

func (s *Server) sessionView(sess session.Session) gin.H {
	display := s.display(sess.Query)
	return gin.H{
		"data": gin.H{
			"session": sess,
			"items":   display,
		},
		"meta": displayMeta(display, sess.Query, s.cfg.ClusterRadius),
	}
}

func writeSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound),
		errors.Is(err, session.ErrUnknownCluster),
		errors.Is(err, session.ErrUnknownItem):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
