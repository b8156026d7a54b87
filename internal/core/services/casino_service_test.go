package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/qrasickz/vovabank_backend/internal/core/domain"
	"github.com/qrasickz/vovabank_backend/internal/core/services"
)

// rollSequence returns queued roll values in order, then repeats the last.
func rollSequence(values ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}

type CasinoServiceTestSuite struct {
	suite.Suite
	mockEngine *MockTransactionService
	ctx        context.Context
	userID     string
	bet        decimal.Decimal
}

func (suite *CasinoServiceTestSuite) SetupTest() {
	suite.mockEngine = new(MockTransactionService)
	suite.ctx = context.Background()
	suite.userID = uuid.NewString()
	suite.bet = decimal.NewFromInt(10)
}

func (suite *CasinoServiceTestSuite) TestSlots_TripleSevenPays20x() {
	// reel index 5 of 6 is the seven
	svc := services.NewCasinoService(suite.mockEngine, services.WithRoll(rollSequence(0.9, 0.9, 0.9)))

	suite.mockEngine.On("Wager", suite.ctx, suite.userID, suite.bet,
		mock.MatchedBy(func(m decimal.Decimal) bool { return m.Equal(decimal.NewFromInt(20)) }),
		mock.Anything,
	).Return(decimal.NewFromInt(200), nil).Once()

	result, err := svc.PlaySlots(suite.ctx, suite.userID, suite.bet)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), [3]string{"7️⃣", "7️⃣", "7️⃣"}, result.Reels)
	assert.True(suite.T(), result.Multiplier.Equal(decimal.NewFromInt(20)))
	assert.True(suite.T(), result.NewBalance.Equal(decimal.NewFromInt(200)))
	suite.mockEngine.AssertExpectations(suite.T())
}

func (suite *CasinoServiceTestSuite) TestSlots_TripleDiamondPays10x() {
	// reel index 4 of 6 is the diamond
	svc := services.NewCasinoService(suite.mockEngine, services.WithRoll(rollSequence(0.7, 0.7, 0.7)))

	suite.mockEngine.On("Wager", suite.ctx, suite.userID, suite.bet,
		mock.MatchedBy(func(m decimal.Decimal) bool { return m.Equal(decimal.NewFromInt(10)) }),
		mock.Anything,
	).Return(decimal.NewFromInt(100), nil).Once()

	result, err := svc.PlaySlots(suite.ctx, suite.userID, suite.bet)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), [3]string{"💎", "💎", "💎"}, result.Reels)
}

func (suite *CasinoServiceTestSuite) TestSlots_OtherTriplePays5x() {
	// reel index 0: cherries
	svc := services.NewCasinoService(suite.mockEngine, services.WithRoll(rollSequence(0.0, 0.0, 0.0)))

	suite.mockEngine.On("Wager", suite.ctx, suite.userID, suite.bet,
		mock.MatchedBy(func(m decimal.Decimal) bool { return m.Equal(decimal.NewFromInt(5)) }),
		mock.Anything,
	).Return(decimal.NewFromInt(50), nil).Once()

	_, err := svc.PlaySlots(suite.ctx, suite.userID, suite.bet)
	assert.NoError(suite.T(), err)
}

func (suite *CasinoServiceTestSuite) TestSlots_PairPaysHalf() {
	// two cherries, one seven
	svc := services.NewCasinoService(suite.mockEngine, services.WithRoll(rollSequence(0.0, 0.0, 0.9)))

	suite.mockEngine.On("Wager", suite.ctx, suite.userID, suite.bet,
		mock.MatchedBy(func(m decimal.Decimal) bool { return m.Equal(decimal.NewFromFloat(0.5)) }),
		mock.Anything,
	).Return(decimal.NewFromInt(95), nil).Once()

	_, err := svc.PlaySlots(suite.ctx, suite.userID, suite.bet)
	assert.NoError(suite.T(), err)
}

func (suite *CasinoServiceTestSuite) TestSlots_NoMatchLoses() {
	// three distinct symbols
	svc := services.NewCasinoService(suite.mockEngine, services.WithRoll(rollSequence(0.0, 0.2, 0.9)))

	suite.mockEngine.On("Wager", suite.ctx, suite.userID, suite.bet,
		mock.MatchedBy(func(m decimal.Decimal) bool { return m.IsZero() }),
		mock.Anything,
	).Return(decimal.NewFromInt(90), nil).Once()

	_, err := svc.PlaySlots(suite.ctx, suite.userID, suite.bet)
	assert.NoError(suite.T(), err)
}

func (suite *CasinoServiceTestSuite) TestCoinFlip_WinDoubles() {
	// roll >= 0.5 lands heads
	svc := services.NewCasinoService(suite.mockEngine, services.WithRoll(rollSequence(0.9)))

	suite.mockEngine.On("Wager", suite.ctx, suite.userID, suite.bet,
		mock.MatchedBy(func(m decimal.Decimal) bool { return m.Equal(decimal.NewFromInt(2)) }),
		"Coin flip: HEADS",
	).Return(decimal.NewFromInt(110), nil).Once()

	result, err := svc.PlayCoinFlip(suite.ctx, suite.userID, suite.bet, domain.CoinHeads)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), result.Won)
	assert.Equal(suite.T(), domain.CoinHeads, result.Outcome)
}

func (suite *CasinoServiceTestSuite) TestCoinFlip_LossForfeits() {
	// roll < 0.5 lands tails
	svc := services.NewCasinoService(suite.mockEngine, services.WithRoll(rollSequence(0.1)))

	suite.mockEngine.On("Wager", suite.ctx, suite.userID, suite.bet,
		mock.MatchedBy(func(m decimal.Decimal) bool { return m.IsZero() }),
		"Coin flip: TAILS",
	).Return(decimal.NewFromInt(90), nil).Once()

	result, err := svc.PlayCoinFlip(suite.ctx, suite.userID, suite.bet, domain.CoinHeads)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), result.Won)
	assert.Equal(suite.T(), domain.CoinTails, result.Outcome)
}

func (suite *CasinoServiceTestSuite) TestRoulette_GreenPays14x() {
	svc := services.NewCasinoService(suite.mockEngine, services.WithRoll(rollSequence(0.01)))

	suite.mockEngine.On("Wager", suite.ctx, suite.userID, suite.bet,
		mock.MatchedBy(func(m decimal.Decimal) bool { return m.Equal(decimal.NewFromInt(14)) }),
		"Roulette: GREEN",
	).Return(decimal.NewFromInt(240), nil).Once()

	result, err := svc.PlayRoulette(suite.ctx, suite.userID, suite.bet, domain.RouletteGreen)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), result.Won)
	assert.Equal(suite.T(), domain.RouletteGreen, result.Outcome)
}

func (suite *CasinoServiceTestSuite) TestRoulette_RedPaysDouble() {
	svc := services.NewCasinoService(suite.mockEngine, services.WithRoll(rollSequence(0.3)))

	suite.mockEngine.On("Wager", suite.ctx, suite.userID, suite.bet,
		mock.MatchedBy(func(m decimal.Decimal) bool { return m.Equal(decimal.NewFromInt(2)) }),
		"Roulette: RED",
	).Return(decimal.NewFromInt(110), nil).Once()

	result, err := svc.PlayRoulette(suite.ctx, suite.userID, suite.bet, domain.RouletteRed)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), result.Won)
}

func (suite *CasinoServiceTestSuite) TestRoulette_WrongPickLoses() {
	svc := services.NewCasinoService(suite.mockEngine, services.WithRoll(rollSequence(0.9)))

	suite.mockEngine.On("Wager", suite.ctx, suite.userID, suite.bet,
		mock.MatchedBy(func(m decimal.Decimal) bool { return m.IsZero() }),
		"Roulette: BLACK",
	).Return(decimal.NewFromInt(90), nil).Once()

	result, err := svc.PlayRoulette(suite.ctx, suite.userID, suite.bet, domain.RouletteRed)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), result.Won)
	assert.Equal(suite.T(), domain.RouletteBlack, result.Outcome)
}

func TestCasinoServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CasinoServiceTestSuite))
}
