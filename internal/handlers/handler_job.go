package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qrasickz/vovabank_backend/internal/apperrors"
	portssvc "github.com/qrasickz/vovabank_backend/internal/core/ports/services"
	"github.com/qrasickz/vovabank_backend/internal/core/services"
	"github.com/qrasickz/vovabank_backend/internal/dto"
	"github.com/qrasickz/vovabank_backend/internal/middleware"
)

// jobHandler handles the job catalog and the employment loop.
type jobHandler struct {
	jobService portssvc.JobSvcFacade
}

func newJobHandler(js portssvc.JobSvcFacade) *jobHandler {
	return &jobHandler{jobService: js}
}

// registerJobRoutes registers the job routes.
func registerJobRoutes(rg *gin.RouterGroup, jobService portssvc.JobSvcFacade) {
	h := newJobHandler(jobService)

	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.listJobs)
		jobs.POST("/:id/apply", h.apply)
		jobs.POST("/salary", h.collectSalary)
		jobs.POST("/task", h.completeTask)
	}
}

func (h *jobHandler) listJobs(c *gin.Context) {
	jobs := h.jobService.ListJobs(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"jobs": dto.ToJobResponses(jobs)})
}

func (h *jobHandler) apply(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	job, err := h.jobService.Apply(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Job not found"})
			return
		}
		logger.Error("Failed to apply for job", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to apply for job"})
		return
	}

	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

func (h *jobHandler) collectSalary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.jobService.CollectSalary(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSalaryAlreadyClaimed):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Salary already claimed today"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "You are not employed"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		default:
			logger.Error("Failed to collect salary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to collect salary"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *jobHandler) completeTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CompleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	err := h.jobService.CompleteTask(c.Request.Context(), userID, req.TaskLabel)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "You are not employed"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		default:
			logger.Error("Failed to award task reward", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to award task reward"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
