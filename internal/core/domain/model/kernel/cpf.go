package kernel

import (
	"fmt"
	"strings"

	"mailroom/internal/pkg/errs"
)

// CPFLength is the number of digits in a Brazilian individual taxpayer identifier.
const CPFLength = 11

// CPF is the collector identifier captured at pickup: exactly eleven digits.
// Check digits are not verified; the front desk records what the collector presents.
type CPF struct {
	digits string
}

// StripNonDigits removes every rune that is not an ASCII digit.
func StripNonDigits(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
}

// TruncateCPFInput normalizes in-progress keyboard input: non-digits are dropped and the
// result is cut to CPFLength digits. It never fails; NewCPF decides validity.
func TruncateCPFInput(raw string) string {
	digits := StripNonDigits(raw)
	if len(digits) > CPFLength {
		digits = digits[:CPFLength]
	}
	return digits
}

// NewCPF normalizes "123.456.789-01" to "12345678901" and rejects anything that does not
// leave exactly eleven digits.
func NewCPF(raw string) (CPF, error) {
	digits := StripNonDigits(raw)
	if digits == "" {
		return CPF{}, errs.NewValueIsRequiredError("collector_cpf")
	}
	if len(digits) != CPFLength {
		return CPF{}, errs.NewValueIsInvalidErrorWithCause(
			"collector_cpf",
			fmt.Errorf("expected %d digits, got %d", CPFLength, len(digits)),
		)
	}
	return CPF{digits: digits}, nil
}

// String returns the eleven digits without punctuation.
func (c CPF) String() string {
	return c.digits
}

// IsZero reports whether c is the zero value.
func (c CPF) IsZero() bool {
	return c.digits == ""
}
