package dto

import (
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators installs the custom binding tags into gin's
// validator engine. Called once at startup.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("cardnumber", validCardNumber)
	}
}

// validCardNumber accepts 16 digits in any whitespace formatting.
func validCardNumber(fl validator.FieldLevel) bool {
	digits := strings.Join(strings.Fields(fl.Field().String()), "")
	if len(digits) != 16 {
		return false
	}
	for _, r := range digits {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
