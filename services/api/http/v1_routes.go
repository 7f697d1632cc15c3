package http

// registerV1Routes sets up the v1 API structure
// Groups: /api/v1/core, /api/v1/map, /api/v1/health, /api/v1/community
func (s *Server) registerV1Routes() {
	v1 := s.engine.Group("/api/v1")
	v1.Use(apiVersionMiddleware()) // Add X-API-Version: v1 header

	// Core endpoints - reference data
	core := v1.Group("/core")
	{
		core.GET("/summary", s.handleV1Summary)
		core.GET("/water-sources", s.handleV1ListWaterSources)
		core.GET("/water-sources/:id", s.handleV1GetWaterSource)
		core.GET("/health-centers", s.handleV1ListHealthCenters)
		core.GET("/health-centers/:id", s.handleV1GetHealthCenter)
		core.GET("/alerts", s.handleV1ListAlerts)
		core.GET("/education", s.handleV1Education)
	}

	// Map endpoints - clustering, viewport fit and per-client view state
	mapGroup := v1.Group("/map")
	{
		mapGroup.GET("/items", s.handleV1MapItems)
		mapGroup.GET("/clusters/:cluster_id/fit", s.handleV1ClusterFit)

		mapGroup.POST("/sessions", s.handleV1CreateSession)
		mapGroup.GET("/sessions/:id", s.handleV1GetSession)
		mapGroup.PUT("/sessions/:id/query", s.handleV1SetSessionQuery)
		mapGroup.POST("/sessions/:id/clusters/:cluster_id/focus", s.handleV1FocusCluster)
		mapGroup.POST("/sessions/:id/select", s.handleV1SelectItem)
		mapGroup.POST("/sessions/:id/reset", s.handleV1ResetSession)
	}

	// Health endpoints - symptom checker
	health := v1.Group("/health")
	{
		health.GET("/symptoms", s.handleV1ListSymptoms)
		health.POST("/check", s.handleV1CheckSymptoms)
	}

	// Community endpoints - anonymous reporting and dashboard
	community := v1.Group("/community")
	{
		community.POST("/reports", s.handleV1SubmitReport)
		community.GET("/dashboard", s.handleV1Dashboard)
	}

	v1.POST("/feedback", s.handleV1SubmitFeedback)
}
