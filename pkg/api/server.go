// Package api exposes the HTTP surface: upload, status, and artifact
// download. Uploading a file IS the enqueue; everything else about a job
// happens in the background workers.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/subtitle-ai/zirnevis/pkg/config"
	"github.com/subtitle-ai/zirnevis/pkg/database"
	"github.com/subtitle-ai/zirnevis/pkg/queue"
	"github.com/subtitle-ai/zirnevis/pkg/services"
	"github.com/subtitle-ai/zirnevis/pkg/storage"
)

// PoolHealthReporter is the slice of the worker pool the API consults.
type PoolHealthReporter interface {
	Health() *queue.PoolHealth
}

// Server holds the handler dependencies.
type Server struct {
	cfg      *config.Config
	dbClient *database.Client
	store    *storage.Store
	jobs     *services.JobService
	pool     PoolHealthReporter
}

// NewServer creates the API server. pool may be nil (health then reports
// no queue information).
func NewServer(cfg *config.Config, dbClient *database.Client, store *storage.Store, jobs *services.JobService, pool PoolHealthReporter) *Server {
	return &Server{
		cfg:      cfg,
		dbClient: dbClient,
		store:    store,
		jobs:     jobs,
		pool:     pool,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.healthHandler)
	r.POST("/jobs", s.createJobHandler)
	r.GET("/jobs/:job_id", s.getJobHandler)
	r.GET("/jobs/:job_id/download/:kind", s.downloadHandler)

	return r
}
