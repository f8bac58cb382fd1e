package kata

import "github.com/aalvaropc/kata/internal/domain"

const (
	Weekday = "Weekday"
	Weekend = "Weekend"
)

// DayType classifies Saturday and Sunday as Weekend and every other day as Weekday.
func DayType(d domain.Day) string {
	if d == domain.Saturday || d == domain.Sunday {
		return Weekend
	}
	return Weekday
}
