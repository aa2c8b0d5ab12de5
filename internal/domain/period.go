package domain

import (
	"fmt"
	"regexp"
)

var periodKeyPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])(\d{4})$`)

// ReturnPeriod identifies the statutory filing period of a return.
// Exactly one return document exists per period for a registration.
type ReturnPeriod struct {
	Month int `json:"month" db:"period_month"`
	Year  int `json:"year" db:"period_year"`
}

// Valid reports whether the period has a real month and a 4-digit year.
func (p ReturnPeriod) Valid() bool {
	return p.Month >= 1 && p.Month <= 12 && p.Year >= 1000 && p.Year <= 9999
}

// Key renders the period in the GSTN "MMYYYY" form used as the draft slot key.
func (p ReturnPeriod) Key() string {
	return fmt.Sprintf("%02d%04d", p.Month, p.Year)
}

// String implements fmt.Stringer.
func (p ReturnPeriod) String() string { return p.Key() }

// ParsePeriod parses an "MMYYYY" key back into a ReturnPeriod.
func ParsePeriod(key string) (ReturnPeriod, error) {
	m := periodKeyPattern.FindStringSubmatch(key)
	if m == nil {
		return ReturnPeriod{}, ErrInvalidPeriod
	}
	var p ReturnPeriod
	fmt.Sscanf(m[1], "%d", &p.Month)
	fmt.Sscanf(m[2], "%d", &p.Year)
	return p, nil
}
