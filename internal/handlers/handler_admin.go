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

// adminHandler handles the administrative surface. Role checks live in the
// services; the handlers only map the errors.
type adminHandler struct {
	userService portssvc.UserSvcFacade
	engine      portssvc.TransactionSvcFacade
}

func newAdminHandler(us portssvc.UserSvcFacade, engine portssvc.TransactionSvcFacade) *adminHandler {
	return &adminHandler{userService: us, engine: engine}
}

// registerAdminRoutes registers the admin routes.
func registerAdminRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, engine portssvc.TransactionSvcFacade) {
	h := newAdminHandler(userService, engine)

	admin := rg.Group("/admin")
	{
		admin.GET("/users", h.listUsers)
		admin.PATCH("/users/:id", h.updateUser)
		admin.PUT("/users/:id/balance", h.setBalance)
	}
}

func (h *adminHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
			return
		}
		logger.Error("Failed to list users", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list users"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

func (h *adminHandler) updateUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.AdminUpdateUser(c.Request.Context(), actorID, c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		default:
			logger.Error("Failed to update user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update user"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *adminHandler) setBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.AdminSetBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	err := h.engine.AdjustBalance(c.Request.Context(), actorID, c.Param("id"), req.Balance, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		case errors.Is(err, services.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Balance must not be negative"})
		default:
			logger.Error("Failed to set balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to set balance"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
