package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/subtitle-ai/zirnevis/pkg/version"
)

// healthHandler handles GET /health. Only our own components (database,
// worker pool) are checked; external providers are excluded so an ASR or
// LLM outage cannot get the service restarted.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	ok := true
	body := gin.H{
		"ok":      true,
		"version": version.Full(),
	}

	if s.dbClient != nil {
		dbHealth, err := s.dbClient.Health(reqCtx)
		body["database"] = dbHealth
		if err != nil {
			ok = false
		}
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		body["queue"] = poolHealth
		if poolHealth != nil && !poolHealth.IsHealthy {
			ok = false
		}
	}

	body["ok"] = ok
	status := http.StatusOK
	if !ok {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, body)
}
