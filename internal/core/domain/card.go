package domain

// CardNetwork is the payment network printed on a virtual card.
type CardNetwork string

const (
	NetworkVisa       CardNetwork = "VISA"
	NetworkMastercard CardNetwork = "MASTERCARD"
)

// CardTier is a cosmetic grouping; it has no effect on balance logic.
type CardTier string

const (
	TierSilver   CardTier = "SILVER"
	TierGold     CardTier = "GOLD"
	TierPlatinum CardTier = "PLATINUM"
)

// Card is a virtual payment instrument owned by exactly one user.
// Cards hold no balance of their own; transfers resolve the owning user
// by card number. A blocked card cannot receive transfers.
type Card struct {
	CardID    string      `json:"cardID"`
	UserID    string      `json:"userID"`
	Number    string      `json:"number"` // "5375 XXXX XXXX XXXX", globally unique
	Expiry    string      `json:"expiry"`
	CVV       string      `json:"cvv"`
	PIN       string      `json:"pin"`
	Network   CardNetwork `json:"network"`
	Tier      CardTier    `json:"tier"`
	IsBlocked bool        `json:"isBlocked"`
}
