package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCardNumber_Format(t *testing.T) {
	number, err := GenerateCardNumber()
	require.NoError(t, err)

	groups := strings.Fields(number)
	require.Len(t, groups, 4)
	assert.Equal(t, "5375", groups[0])
	for _, g := range groups {
		assert.Len(t, g, 4)
	}
}

func TestGenerateCVV_ThreeDigits(t *testing.T) {
	cvv, err := GenerateCVV()
	require.NoError(t, err)
	assert.Len(t, cvv, 3)
	assert.NotEqual(t, "0", cvv[:1])
}

func TestGeneratePIN_FourDigits(t *testing.T) {
	pin, err := GeneratePIN()
	require.NoError(t, err)
	assert.Len(t, pin, 4)
	assert.NotEqual(t, "0", pin[:1])
}

func TestPickCardNetwork_KnownValues(t *testing.T) {
	network, err := PickCardNetwork()
	require.NoError(t, err)
	assert.Contains(t, []string{"VISA", "MASTERCARD"}, network)
}
