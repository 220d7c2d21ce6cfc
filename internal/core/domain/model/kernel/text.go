package kernel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"mailroom/internal/pkg/errs"
)

// MaxTextLength is the size of every varchar(255) column, counted in characters.
const MaxTextLength = 255

// RequiredText trims value and checks that it is present and at most MaxTextLength
// characters long. field names the input in the returned error.
func RequiredText(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errs.NewValueIsRequiredError(field)
	}
	if n := utf8.RuneCountInString(value); n > MaxTextLength {
		return "", errs.NewValueIsOutOfRangeErrorWithCause(field, n, 1, MaxTextLength,
			fmt.Errorf("%s is longer than %d characters", field, MaxTextLength))
	}
	return value, nil
}
