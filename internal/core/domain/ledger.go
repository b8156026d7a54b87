package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryCategory classifies a balance-affecting event.
type EntryCategory string

const (
	CategoryTransfer   EntryCategory = "TRANSFER"
	CategoryDeposit    EntryCategory = "DEPOSIT"
	CategoryWithdrawal EntryCategory = "WITHDRAWAL"
	CategoryGame       EntryCategory = "GAME"
	CategorySalary     EntryCategory = "SALARY"
)

// CounterpartyKind distinguishes real user accounts from the system
// parties that appear in ledger entries.
type CounterpartyKind string

const (
	PartyAccount CounterpartyKind = "ACCOUNT"
	PartySystem  CounterpartyKind = "SYSTEM"
	PartyCasino  CounterpartyKind = "CASINO"
	PartyJob     CounterpartyKind = "JOB"
)

// Counterparty is one side of a ledger entry. UserID is set only when
// Kind is PartyAccount; sentinel parties carry no id.
type Counterparty struct {
	Kind   CounterpartyKind `json:"kind"`
	UserID string           `json:"userID,omitempty"`
}

func AccountParty(userID string) Counterparty {
	return Counterparty{Kind: PartyAccount, UserID: userID}
}

func SystemParty() Counterparty { return Counterparty{Kind: PartySystem} }
func CasinoParty() Counterparty { return Counterparty{Kind: PartyCasino} }
func JobParty() Counterparty    { return Counterparty{Kind: PartyJob} }

// Involves reports whether the entry touches the given user on either side.
func (e *LedgerEntry) Involves(userID string) bool {
	return (e.From.Kind == PartyAccount && e.From.UserID == userID) ||
		(e.To.Kind == PartyAccount && e.To.UserID == userID)
}

// LedgerEntry is the immutable record of one balance-affecting event.
// Amount is always positive; direction is implied by the From/To pair.
// The ledger is append-only and is the sole audit trail.
type LedgerEntry struct {
	EntryID     string          `json:"entryID"`
	From        Counterparty    `json:"from"`
	To          Counterparty    `json:"to"`
	Amount      decimal.Decimal `json:"amount"`
	Category    EntryCategory   `json:"category"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}
