package validators

import (
	"strings"
	"unicode"
)

// IsPhoneValid aceita dígitos com separadores comuns (+, espaço, -, parênteses)
// e de 7 a 15 dígitos no total.
func IsPhoneValid(phone string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return false
	}

	digits := 0
	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}

	return digits >= 7 && digits <= 15
}
