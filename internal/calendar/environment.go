// Package calendar provides the trading environment: valid trading
// instants and day-advancement rules for synthetic data generation.
package calendar

import "time"

// OneTradingDay is the step used to advance from one trading instant to the next.
const OneTradingDay = 24 * time.Hour

// defaultFirstOpen is the first trading instant of the default environment:
// Tuesday 2024-01-02 14:30 UTC (2024-01-01 is a holiday).
var defaultFirstOpen = time.Date(2024, time.January, 2, 14, 30, 0, 0, time.UTC)

// defaultHolidays are the non-trading weekdays of the default environment.
var defaultHolidays = []time.Time{
	time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC),
	time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC),
}

// Environment defines valid trading instants for one simulation run.
// FirstOpen is fixed at construction; PeriodEnd is assigned by the run
// composer once the last generated timestamp is known.
type Environment struct {
	FirstOpen time.Time
	PeriodEnd time.Time

	holidays map[string]struct{} // keyed by yyyy-mm-dd in UTC
}

// NewEnvironment creates the default deterministic trading environment:
// weekdays at 14:30 UTC starting Tuesday 2024-01-02, with a fixed holiday set.
func NewEnvironment() *Environment {
	return NewEnvironmentAt(defaultFirstOpen, defaultHolidays...)
}

// NewEnvironmentAt creates a trading environment with a custom first open
// instant and holiday set. Holidays are matched by UTC date.
func NewEnvironmentAt(firstOpen time.Time, holidays ...time.Time) *Environment {
	hs := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		hs[dateKey(h)] = struct{}{}
	}
	return &Environment{
		FirstOpen: firstOpen.UTC(),
		holidays:  hs,
	}
}

// IsTradingDay reports whether t falls on a valid trading day
// (a weekday that is not a holiday).
func (e *Environment) IsTradingDay(t time.Time) bool {
	t = t.UTC()
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	_, holiday := e.holidays[dateKey(t)]
	return !holiday
}

// NextTradingInstant returns the next valid trading instant at or after
// after+step, skipping weekends and holidays one day at a time. The result
// is strictly after the input for any positive step.
func (e *Environment) NextTradingInstant(after time.Time, step time.Duration) time.Time {
	t := after.UTC().Add(step)
	for !e.IsTradingDay(t) {
		t = t.Add(OneTradingDay)
	}
	return t
}

func dateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
