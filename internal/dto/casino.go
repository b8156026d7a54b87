package dto

import (
	"github.com/qrasickz/vovabank_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SlotsRequest places one slot-machine bet.
type SlotsRequest struct {
	Bet decimal.Decimal `json:"bet" binding:"required"`
}

// CoinFlipRequest places one coin-flip bet on the picked side.
type CoinFlipRequest struct {
	Bet  decimal.Decimal `json:"bet" binding:"required"`
	Pick domain.CoinSide `json:"pick" binding:"required,oneof=HEADS TAILS"`
}

// RouletteRequest places one roulette bet on the picked color.
type RouletteRequest struct {
	Bet  decimal.Decimal      `json:"bet" binding:"required"`
	Pick domain.RouletteColor `json:"pick" binding:"required,oneof=RED BLACK GREEN"`
}
