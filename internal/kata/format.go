package kata

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aalvaropc/kata/internal/domain"
)

// FormatString converts text fully to upper or lower case.
// Callers that have no preference pass domain.DefaultLetterCase.
func FormatString(text string, lc domain.LetterCase) string {
	// Casers keep state between calls and are not shared.
	if lc == domain.Lower {
		return cases.Lower(language.Und).String(text)
	}
	return cases.Upper(language.Und).String(text)
}
