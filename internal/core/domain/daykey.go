package domain

import (
	"errors"
	"fmt"
	"time"
)

const DayKeyLayout = "2006-01-02"

var ErrInvalidDayKey = errors.New("invalid day key (must be YYYY-MM-DD)")

// DayKey identifies one calendar day. Its canonical form is YYYY-MM-DD.
type DayKey string

// DayKeyOf returns the calendar day of t in t's own location.
func DayKeyOf(t time.Time) DayKey {
	return DayKey(t.Format(DayKeyLayout))
}

// TodayKey returns the calendar day of now in loc. A nil loc means time.Local.
func TodayKey(now time.Time, loc *time.Location) DayKey {
	if loc == nil {
		loc = time.Local
	}
	return DayKeyOf(now.In(loc))
}

func ParseDayKey(s string) (DayKey, error) {
	t, err := time.Parse(DayKeyLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDayKey, s)
	}
	// time.Parse accepts some non-canonical inputs; only the exact layout is a key.
	if t.Format(DayKeyLayout) != s {
		return "", fmt.Errorf("%w: %q", ErrInvalidDayKey, s)
	}
	return DayKey(s), nil
}

func (k DayKey) String() string {
	return string(k)
}

func (k DayKey) Valid() bool {
	_, err := ParseDayKey(string(k))
	return err == nil
}

// Date returns midnight UTC of the day. Arithmetic is done in UTC so that
// DST transitions of the local zone never shift a day.
func (k DayKey) Date() (time.Time, error) {
	if _, err := ParseDayKey(string(k)); err != nil {
		return time.Time{}, err
	}
	t, _ := time.Parse(DayKeyLayout, string(k))
	return t, nil
}

// Offset returns the key delta days away from k. Negative deltas go back in time.
func (k DayKey) Offset(delta int) (DayKey, error) {
	t, err := k.Date()
	if err != nil {
		return "", err
	}
	return DayKeyOf(t.AddDate(0, 0, delta)), nil
}

// Weekday returns the short English weekday name, e.g. "Mon".
func (k DayKey) Weekday() string {
	t, err := k.Date()
	if err != nil {
		return ""
	}
	return t.Weekday().String()[:3]
}
