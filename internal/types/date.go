// Package types implements special types for Campus Budget Buddy.
package types

import (
	"regexp"
	"strings"
	"time"
)

// Date is a calendar date with optional time of day.
//
// It exists so that expense dates can be submitted and stored both as
// full RFC3339 timestamps and as plain "YYYY-MM-DD" dates.
type Date time.Time

var dateOnly = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

// ParseDate parses a string in RFC3339 or RFC3339 full-date format and
// returns the Date value it represents.
func ParseDate(s string) (Date, error) {
	pattern := time.RFC3339
	if dateOnly.MatchString(s) {
		pattern = "2006-01-02"
	}

	t, err := time.Parse(pattern, s)
	if err != nil {
		return Date{}, err
	}

	return Date(t), nil
}

// String returns the date formatted as RFC3339.
func (d Date) String() string {
	return time.Time(d).Format(time.RFC3339)
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return time.Time(d).MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The date is expected to be a string in a format accepted by ParseDate.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Time returns the date as a time.Time.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Before reports whether the date instant d is before the time instant t.
func (d Date) Before(t time.Time) bool {
	return time.Time(d).Before(t)
}

// After reports whether the date instant d is after the time instant t.
func (d Date) After(t time.Time) bool {
	return time.Time(d).After(t)
}

// Equal reports whether d and e represent the same instant.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}
