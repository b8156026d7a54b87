package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// issuerPrefix is the fixed 4-digit issuer identifier printed on every card.
const issuerPrefix = "5375"

// randIntn returns a uniform random int in [0, n) from crypto/rand.
func randIntn(n int64) (int64, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		return 0, fmt.Errorf("failed to read random int: %w", err)
	}
	return v.Int64(), nil
}

// GenerateCardNumber produces a formatted card number: the issuer prefix
// followed by three random 4-digit groups, space separated.
func GenerateCardNumber() (string, error) {
	groups := make([]string, 0, 4)
	groups = append(groups, issuerPrefix)
	for i := 0; i < 3; i++ {
		n, err := randIntn(9000)
		if err != nil {
			return "", err
		}
		groups = append(groups, fmt.Sprintf("%04d", 1000+n))
	}
	return strings.Join(groups, " "), nil
}

// GenerateCVV produces a random 3-digit card verification value.
func GenerateCVV() (string, error) {
	n, err := randIntn(900)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%03d", 100+n), nil
}

// GeneratePIN produces a random 4-digit card PIN.
func GeneratePIN() (string, error) {
	n, err := randIntn(9000)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", 1000+n), nil
}

// PickCardNetwork chooses a payment network label for a new card.
func PickCardNetwork() (string, error) {
	n, err := randIntn(2)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "VISA", nil
	}
	return "MASTERCARD", nil
}
