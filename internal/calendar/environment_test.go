package calendar

import (
	"testing"
	"time"
)

func TestNewEnvironment_FirstOpen(t *testing.T) {
	env := NewEnvironment()

	want := time.Date(2024, time.January, 2, 14, 30, 0, 0, time.UTC)
	if !env.FirstOpen.Equal(want) {
		t.Errorf("FirstOpen mismatch: got %v, want %v", env.FirstOpen, want)
	}
	if !env.PeriodEnd.IsZero() {
		t.Errorf("PeriodEnd should be zero before a run, got %v", env.PeriodEnd)
	}
}

func TestIsTradingDay(t *testing.T) {
	env := NewEnvironment()

	cases := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"weekday", time.Date(2024, time.January, 3, 14, 30, 0, 0, time.UTC), true},
		{"saturday", time.Date(2024, time.January, 6, 14, 30, 0, 0, time.UTC), false},
		{"sunday", time.Date(2024, time.January, 7, 14, 30, 0, 0, time.UTC), false},
		{"new year holiday", time.Date(2024, time.January, 1, 14, 30, 0, 0, time.UTC), false},
		{"christmas holiday", time.Date(2024, time.December, 25, 14, 30, 0, 0, time.UTC), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := env.IsTradingDay(tc.t); got != tc.want {
				t.Errorf("IsTradingDay(%v) = %v, want %v", tc.t, got, tc.want)
			}
		})
	}
}

func TestNextTradingInstant_SkipsWeekend(t *testing.T) {
	env := NewEnvironment()

	// Friday 2024-01-05 14:30 + one day lands on Saturday; expect Monday.
	friday := time.Date(2024, time.January, 5, 14, 30, 0, 0, time.UTC)
	got := env.NextTradingInstant(friday, OneTradingDay)

	want := time.Date(2024, time.January, 8, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NextTradingInstant = %v, want %v", got, want)
	}
}

func TestNextTradingInstant_SkipsHoliday(t *testing.T) {
	// Thursday 2024-07-04 is a holiday; Wednesday + one day must land on Friday.
	env := NewEnvironment()

	wednesday := time.Date(2024, time.July, 3, 14, 30, 0, 0, time.UTC)
	got := env.NextTradingInstant(wednesday, OneTradingDay)

	want := time.Date(2024, time.July, 5, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NextTradingInstant = %v, want %v", got, want)
	}
}

func TestNextTradingInstant_StrictlyIncreasing(t *testing.T) {
	env := NewEnvironment()

	cur := env.FirstOpen
	for i := 0; i < 400; i++ {
		next := env.NextTradingInstant(cur, OneTradingDay)
		if !next.After(cur) {
			t.Fatalf("instant %d not strictly increasing: %v -> %v", i, cur, next)
		}
		if !env.IsTradingDay(next) {
			t.Fatalf("instant %d is not a trading day: %v", i, next)
		}
		cur = next
	}
}

func TestNewEnvironmentAt_CustomHolidays(t *testing.T) {
	firstOpen := time.Date(2024, time.March, 4, 14, 30, 0, 0, time.UTC) // Monday
	holiday := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)     // Tuesday
	env := NewEnvironmentAt(firstOpen, holiday)

	got := env.NextTradingInstant(firstOpen, OneTradingDay)
	want := time.Date(2024, time.March, 6, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NextTradingInstant = %v, want %v", got, want)
	}
}
