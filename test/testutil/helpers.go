// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"testing"
	"time"

	"github.com/airline-ops/airline-inventory-system/internal/domain"
)

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, timeStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", timeStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format as UTC midnight.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// MustClockTime parses an HH:MM clock time.
// It fails the test if parsing fails.
func MustClockTime(t *testing.T, clockStr string) domain.ClockTime {
	t.Helper()
	ct, err := domain.ParseClockTime(clockStr)
	if err != nil {
		t.Fatalf("Failed to parse clock time %s: %v", clockStr, err)
	}
	return ct
}

// Seats builds a ClassWindowPrice from raw (seats, pricePercentage) pairs
// per class. It fails the test on invalid window configurations.
func Seats(t *testing.T, economy, premium, business [][2]int) domain.ClassWindowPrice {
	t.Helper()
	toWindows := func(pairs [][2]int) []domain.SeatWindow {
		out := make([]domain.SeatWindow, 0, len(pairs))
		for _, p := range pairs {
			out = append(out, domain.SeatWindow{Seats: p[0], PricePercentage: p[1]})
		}
		return out
	}
	cwp, err := domain.NewClassWindowPrice(toWindows(economy), toWindows(premium), toWindows(business))
	if err != nil {
		t.Fatalf("Failed to build seat windows: %v", err)
	}
	return cwp
}

// StandardSeats builds the seat configuration used across tests: a
// 100/30/20 airplane with economy windows 40/40/20 at 50/75/100 percent,
// premium 20/10 at 80/100, business 10/10 at 90/100.
func StandardSeats(t *testing.T) domain.ClassWindowPrice {
	t.Helper()
	return Seats(t,
		[][2]int{{40, 50}, {40, 75}, {20, 100}},
		[][2]int{{20, 80}, {10, 100}},
		[][2]int{{10, 90}, {10, 100}},
	)
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
