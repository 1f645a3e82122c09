package api

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/subtitle-ai/zirnevis/pkg/models"
	"github.com/subtitle-ai/zirnevis/pkg/services"
)

// createJobHandler handles POST /jobs. The uploaded file is saved under
// the job's id and the job row is inserted in queue_state=queued, which
// is all the enqueueing there is.
func (s *Server) createJobHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' is required"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer func() { _ = src.Close() }()

	jobID := uuid.NewString()
	inputPath, err := s.store.SaveUpload(jobID, fileHeader.Filename, src)
	if err != nil {
		slog.Error("Failed to save upload", "job_id", jobID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save upload"})
		return
	}

	j, err := s.jobs.CreateJob(c.Request.Context(), services.CreateJobInput{
		ID:       jobID,
		InputURI: inputPath,
		Shape:    s.cfg.Subtitle,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	slog.Info("Job created", "job_id", j.ID, "filename", fileHeader.Filename)
	c.JSON(http.StatusOK, models.CreateJobResponse{
		JobID:  j.ID,
		Status: string(j.Status),
	})
}

// getJobHandler handles GET /jobs/:job_id.
func (s *Server) getJobHandler(c *gin.Context) {
	j, err := s.jobs.GetJob(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.JobStatusResponse{
		JobID:           j.ID,
		Status:          string(j.Status),
		RiskLevel:       j.RiskLevel,
		DifficultyScore: j.DifficultyScore,
		StrategistConf:  j.StrategistConf,
		Genre:           j.Genre,
		Tone:            j.Tone,
		DomainTags:      j.DomainTags,
	})
}

// downloadHandler handles GET /jobs/:job_id/download/:kind.
// 400 for an unknown kind, 404 until the pipeline has produced the
// artifact.
func (s *Server) downloadHandler(c *gin.Context) {
	jobID := c.Param("job_id")
	kind := c.Param("kind")

	path, ok := s.store.ArtifactPath(jobID, kind)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown artifact kind"})
		return
	}
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "artifact not available"})
		return
	}

	c.FileAttachment(path, filepath.Base(path))
}
