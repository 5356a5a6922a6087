package validator

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MinLength is the minimum number of characters, after trimming, that an analysis needs.
const MinLength = 20

// ErrInputTooShort is returned when the trimmed input has fewer than MinLength characters.
var ErrInputTooShort = errors.New("input too short")

// Message is what the user sees when validation fails.
const Message = "Please enter a longer text to analyze"

// Validate checks that text is long enough to be worth sending to the model.
func Validate(text string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(text))
	if n < MinLength {
		return fmt.Errorf("%w: %d characters, need at least %d", ErrInputTooShort, n, MinLength)
	}
	return nil
}
