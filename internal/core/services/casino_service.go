package services

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"github.com/qrasickz/vovabank_backend/internal/core/domain"
	portssvc "github.com/qrasickz/vovabank_backend/internal/core/ports/services"
)

// slotSymbols is the reel alphabet. The last two entries carry the big
// triple payouts.
var slotSymbols = []string{"🍒", "🍋", "🍇", "🔔", "💎", "7️⃣"}

// Payout multipliers. A multiplier below 1 is a partial loss; 0 forfeits
// the whole stake.
var (
	multTripleSeven   = decimal.NewFromInt(20)
	multTripleDiamond = decimal.NewFromInt(10)
	multTripleOther   = decimal.NewFromInt(5)
	multPair          = decimal.NewFromFloat(0.5)
	multEven          = decimal.NewFromInt(2)
	multGreen         = decimal.NewFromInt(14)
)

// casinoService derives game outcomes and hands them to the transaction
// engine for settlement. The roll source is injectable so outcomes can be
// forced deterministically.
type casinoService struct {
	BaseService
	engine portssvc.TransactionSvcFacade
	roll   func() float64
}

// CasinoServiceOption configures the casino service.
type CasinoServiceOption func(*casinoService)

// WithRoll overrides the uniform random source used to derive outcomes.
func WithRoll(roll func() float64) CasinoServiceOption {
	return func(s *casinoService) { s.roll = roll }
}

// NewCasinoService creates the casino service on top of the engine.
func NewCasinoService(engine portssvc.TransactionSvcFacade, opts ...CasinoServiceOption) portssvc.CasinoSvcFacade {
	s := &casinoService{engine: engine, roll: rand.Float64}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.CasinoSvcFacade = (*casinoService)(nil)

func (s *casinoService) spinReel() string {
	idx := int(s.roll() * float64(len(slotSymbols)))
	if idx >= len(slotSymbols) {
		idx = len(slotSymbols) - 1
	}
	return slotSymbols[idx]
}

func slotsMultiplier(reels [3]string) decimal.Decimal {
	switch {
	case reels[0] == reels[1] && reels[1] == reels[2]:
		switch reels[0] {
		case "7️⃣":
			return multTripleSeven
		case "💎":
			return multTripleDiamond
		default:
			return multTripleOther
		}
	case reels[0] == reels[1] || reels[1] == reels[2] || reels[0] == reels[2]:
		return multPair
	default:
		return decimal.Zero
	}
}

func (s *casinoService) PlaySlots(ctx context.Context, userID string, bet decimal.Decimal) (*domain.SlotsResult, error) {
	reels := [3]string{s.spinReel(), s.spinReel(), s.spinReel()}
	mult := slotsMultiplier(reels)

	balance, err := s.engine.Wager(ctx, userID, bet, mult, fmt.Sprintf("Slots %s%s%s", reels[0], reels[1], reels[2]))
	if err != nil {
		return nil, err
	}
	return &domain.SlotsResult{Reels: reels, Multiplier: mult, NewBalance: balance}, nil
}

func (s *casinoService) PlayCoinFlip(ctx context.Context, userID string, bet decimal.Decimal, pick domain.CoinSide) (*domain.CoinFlipResult, error) {
	outcome := domain.CoinHeads
	if s.roll() < 0.5 {
		outcome = domain.CoinTails
	}
	won := outcome == pick
	mult := decimal.Zero
	if won {
		mult = multEven
	}

	balance, err := s.engine.Wager(ctx, userID, bet, mult, fmt.Sprintf("Coin flip: %s", outcome))
	if err != nil {
		return nil, err
	}
	return &domain.CoinFlipResult{Outcome: outcome, Won: won, NewBalance: balance}, nil
}

func (s *casinoService) PlayRoulette(ctx context.Context, userID string, bet decimal.Decimal, pick domain.RouletteColor) (*domain.RouletteResult, error) {
	r := s.roll()
	var outcome domain.RouletteColor
	switch {
	case r < 0.05:
		outcome = domain.RouletteGreen
	case r < 0.525:
		outcome = domain.RouletteRed
	default:
		outcome = domain.RouletteBlack
	}

	won := outcome == pick
	mult := decimal.Zero
	if won {
		if outcome == domain.RouletteGreen {
			mult = multGreen
		} else {
			mult = multEven
		}
	}

	balance, err := s.engine.Wager(ctx, userID, bet, mult, fmt.Sprintf("Roulette: %s", outcome))
	if err != nil {
		return nil, err
	}
	return &domain.RouletteResult{Outcome: outcome, Won: won, Multiplier: mult, NewBalance: balance}, nil
}
