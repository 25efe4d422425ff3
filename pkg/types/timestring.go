package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	timeLayout    = "15:04"
	minutesPerDay = 24 * 60
)

var (
	// ErrInvalidTimeString is returned when a value is not a HH:MM wall-clock time
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow is returned when arithmetic leaves the bounds of a single day
	ErrTimeOverflow = errors.New("time is out of day bounds")
)

// TimeString is a wall-clock time of day without a date, normalized to HH:MM
type TimeString string

// NewTimeString builds a TimeString from the clock part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and normalizes a HH:MM string ("9:00" becomes "09:00")
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(t), nil
}

// NewTimeStringFromMinutes builds a TimeString from minutes since midnight
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOverflow, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate reports whether the value is a well-formed HH:MM time
func (t TimeString) Validate() error {
	_, err := t.parse()
	return err
}

// Hour returns the hour part, or -1 for a malformed value
func (t TimeString) Hour() int {
	p, err := t.parse()
	if err != nil {
		return -1
	}
	return p.Hour()
}

// Minute returns the minute part, or -1 for a malformed value
func (t TimeString) Minute() int {
	p, err := t.parse()
	if err != nil {
		return -1
	}
	return p.Minute()
}

// Minutes returns minutes since midnight, or -1 for a malformed value
func (t TimeString) Minutes() int {
	p, err := t.parse()
	if err != nil {
		return -1
	}
	return p.Hour()*60 + p.Minute()
}

// AddMinutes shifts the time within the same day; crossing midnight is an error
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(t.Minutes() + minutes)
}

// AddMinutesWrapped shifts the time and wraps around midnight like a wall clock
func (t TimeString) AddMinutesWrapped(minutes int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	total := (t.Minutes() + minutes) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return NewTimeStringFromMinutes(total)
}

// IsBefore returns true if t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter returns true if t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// String returns the HH:MM representation
func (t TimeString) String() string {
	return string(t)
}

func (t TimeString) parse() (time.Time, error) {
	p, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return p, nil
}
