package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/forgelab/repoforge/internal/errors"
	"github.com/forgelab/repoforge/internal/status"
	"github.com/forgelab/repoforge/internal/storage"
)

// Handler handles API requests
type Handler struct {
	reader *status.Reader
	store  storage.Storage
}

// NewHandler creates a new API handler
func NewHandler(reader *status.Reader, store storage.Storage) *Handler {
	return &Handler{
		reader: reader,
		store:  store,
	}
}

// HealthCheck returns service liveness
// GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetProgress returns corpus completion state
// GET /api/v1/progress
func (h *Handler) GetProgress(c *gin.Context) {
	progress, err := h.reader.Progress(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": progress,
	})
}

// GetLatestRun returns the most recent generation run
// GET /api/v1/runs/latest
func (h *Handler) GetLatestRun(c *gin.Context) {
	run, err := h.store.GetLatestRun(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if run == nil {
		respondError(c, apperrors.NewNotFoundError("run"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": run,
	})
}

// ListRepos returns ledger rows for generated repositories
// GET /api/v1/repos?limit=50
func (h *Handler) ListRepos(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 1000 {
			limit = n
		}
	}

	records, err := h.store.ListRepoRecords(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": records,
	})
}

// GetRepo returns the ledger row for one repository
// GET /api/v1/repos/:name
func (h *Handler) GetRepo(c *gin.Context) {
	name := c.Param("name")

	record, err := h.store.GetRepoRecord(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	if record == nil {
		respondError(c, apperrors.NewNotFoundError("repository"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": record,
	})
}

// respondError sends an error response
func respondError(c *gin.Context, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		status := http.StatusInternalServerError
		switch appErr.Code {
		case apperrors.ErrCodeNotFound:
			status = http.StatusNotFound
		case apperrors.ErrCodeInvalidSpec:
			status = http.StatusBadRequest
		case apperrors.ErrCodeAlreadyExists:
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": gin.H{
			"code":    "INTERNAL_ERROR",
			"message": err.Error(),
		},
	})
}
