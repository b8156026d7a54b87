package dto

import "github.com/shopspring/decimal"

// TransferRequest moves money from the authenticated user to the owner of
// the target card. Amount positivity is enforced by the transaction engine.
type TransferRequest struct {
	ToCardNumber string          `json:"toCardNumber" binding:"required,cardnumber"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Description  string          `json:"description" binding:"max=140"`
}
