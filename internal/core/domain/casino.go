package domain

import "github.com/shopspring/decimal"

// CoinSide is a coin-flip pick.
type CoinSide string

const (
	CoinHeads CoinSide = "HEADS"
	CoinTails CoinSide = "TAILS"
)

// RouletteColor is a roulette pick or outcome.
type RouletteColor string

const (
	RouletteRed   RouletteColor = "RED"
	RouletteBlack RouletteColor = "BLACK"
	RouletteGreen RouletteColor = "GREEN"
)

// SlotsResult is the settled outcome of one slot-machine spin.
type SlotsResult struct {
	Reels      [3]string       `json:"reels"`
	Multiplier decimal.Decimal `json:"multiplier"`
	NewBalance decimal.Decimal `json:"newBalance"`
}

// CoinFlipResult is the settled outcome of one coin flip.
type CoinFlipResult struct {
	Outcome    CoinSide        `json:"outcome"`
	Won        bool            `json:"won"`
	NewBalance decimal.Decimal `json:"newBalance"`
}

// RouletteResult is the settled outcome of one roulette spin.
type RouletteResult struct {
	Outcome    RouletteColor   `json:"outcome"`
	Won        bool            `json:"won"`
	Multiplier decimal.Decimal `json:"multiplier"`
	NewBalance decimal.Decimal `json:"newBalance"`
}
