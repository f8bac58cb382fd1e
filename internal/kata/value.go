package kata

import (
	"unicode/utf8"

	"github.com/aalvaropc/kata/internal/domain"
)

// ProcessValue returns the character count of a text value, or twice a number.
func ProcessValue(v domain.Value) float64 {
	switch v.Kind() {
	case domain.ValueNumber:
		n, _ := v.AsNumber()
		return n * 2
	default:
		s, _ := v.AsText()
		return float64(utf8.RuneCountInString(s))
	}
}
