package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Day is an ordinal weekday, Monday-first (Monday=0 ... Sunday=6).
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (d Day) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Day) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayNames[d]
}

// ParseDay accepts a weekday name ("saturday", "Sat") or its ordinal ("5").
func ParseDay(s string) (Day, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return 0, &DomainError{Kind: KindInvalidInput, Msg: "day is empty"}
	}

	if n, err := strconv.Atoi(in); err == nil {
		d := Day(n)
		if !d.Valid() {
			return 0, &DomainError{Kind: KindInvalidInput, Msg: fmt.Sprintf("day ordinal %d out of range 0-6", n)}
		}
		return d, nil
	}

	for i, name := range dayNames {
		lower := strings.ToLower(name)
		if in == lower || (len(in) >= 3 && strings.HasPrefix(lower, in)) {
			return Day(i), nil
		}
	}
	return 0, &DomainError{Kind: KindInvalidInput, Msg: fmt.Sprintf("unknown day %q", s)}
}
