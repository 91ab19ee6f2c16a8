package booking

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidDate     = errors.New("date must be a valid calendar date (YYYY-MM-DD)")
	ErrInvalidTime     = errors.New("time must be a valid time of day (HH:mm)")
	ErrNegativePrice   = errors.New("total price cannot be negative")
	ErrInvalidCurrency = errors.New("invalid currency code")
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Schedule combines a calendar date and a time of day into a single UTC
// timestamp. Parsing is strict: impossible dates (2024-02-30) and
// out-of-range times (25:99) are rejected, never coerced.
type Schedule struct {
	startsAt time.Time
}

func NewSchedule(date, timeOfDay string) (Schedule, error) {
	day, err := time.ParseInLocation(dateLayout, strings.TrimSpace(date), time.UTC)
	if err != nil {
		return Schedule{}, ErrInvalidDate
	}

	clock, err := time.ParseInLocation(timeLayout, strings.TrimSpace(timeOfDay), time.UTC)
	if err != nil {
		return Schedule{}, ErrInvalidTime
	}

	startsAt := time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC)
	return Schedule{startsAt: startsAt}, nil
}

func ScheduleFromTime(t time.Time) Schedule {
	return Schedule{startsAt: t.UTC()}
}

func (s Schedule) StartsAt() time.Time {
	return s.startsAt
}

func (s Schedule) Date() string {
	return s.startsAt.Format(dateLayout)
}

func (s Schedule) TimeOfDay() string {
	return s.startsAt.Format(timeLayout)
}

// Money is a total price in whole currency units.
type Money struct {
	units    int64
	currency string
}

func NewMoney(units int64, currency string) (Money, error) {
	if units < 0 {
		return Money{}, ErrNegativePrice
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = "USD"
	}
	if len(currency) != 3 {
		return Money{}, ErrInvalidCurrency
	}
	return Money{units: units, currency: currency}, nil
}

func (m Money) Units() int64 {
	return m.units
}

func (m Money) Currency() string {
	return m.currency
}
