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

// casinoHandler handles the three casino games.
type casinoHandler struct {
	casinoService portssvc.CasinoSvcFacade
}

func newCasinoHandler(cs portssvc.CasinoSvcFacade) *casinoHandler {
	return &casinoHandler{casinoService: cs}
}

// registerCasinoRoutes registers the game routes.
func registerCasinoRoutes(rg *gin.RouterGroup, casinoService portssvc.CasinoSvcFacade) {
	h := newCasinoHandler(casinoService)

	casino := rg.Group("/casino")
	{
		casino.POST("/slots", h.playSlots)
		casino.POST("/coinflip", h.playCoinFlip)
		casino.POST("/roulette", h.playRoulette)
	}
}

// respondWagerError maps engine failures shared by every game.
func respondWagerError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Bet must be positive"})
	case errors.Is(err, services.ErrInsufficientFunds):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Insufficient funds"})
	default:
		logger.Error("Failed to settle game", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to settle game"})
	}
}

func (h *casinoHandler) playSlots(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	result, err := h.casinoService.PlaySlots(c.Request.Context(), userID, req.Bet)
	if err != nil {
		respondWagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *casinoHandler) playCoinFlip(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CoinFlipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	result, err := h.casinoService.PlayCoinFlip(c.Request.Context(), userID, req.Bet, req.Pick)
	if err != nil {
		respondWagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *casinoHandler) playRoulette(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.RouletteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	result, err := h.casinoService.PlayRoulette(c.Request.Context(), userID, req.Bet, req.Pick)
	if err != nil {
		respondWagerError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
