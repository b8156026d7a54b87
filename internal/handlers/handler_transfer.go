package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/qrasickz/vovabank_backend/internal/core/ports/services"
	"github.com/qrasickz/vovabank_backend/internal/core/services"
	"github.com/qrasickz/vovabank_backend/internal/dto"
	"github.com/qrasickz/vovabank_backend/internal/middleware"
)

// transferHandler handles peer-to-peer transfers by card number.
type transferHandler struct {
	engine portssvc.TransactionSvcFacade
}

func newTransferHandler(engine portssvc.TransactionSvcFacade) *transferHandler {
	return &transferHandler{engine: engine}
}

// registerTransferRoutes registers the transfer route.
func registerTransferRoutes(rg *gin.RouterGroup, engine portssvc.TransactionSvcFacade) {
	h := newTransferHandler(engine)
	rg.POST("/transfers", h.createTransfer)
}

func (h *transferHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	err := h.engine.Transfer(c.Request.Context(), userID, req.ToCardNumber, req.Amount, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSenderNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Sender account not found"})
		case errors.Is(err, services.ErrCardNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Target card not found"})
		case errors.Is(err, services.ErrCardBlocked):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Target card is blocked"})
		case errors.Is(err, services.ErrInsufficientFunds):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Insufficient funds"})
		case errors.Is(err, services.ErrSelfTransfer):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Cannot transfer to your own card"})
		case errors.Is(err, services.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Amount must be positive"})
		default:
			logger.Error("Failed to execute transfer", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to execute transfer"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
