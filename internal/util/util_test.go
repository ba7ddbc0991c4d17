package util

import (
	"testing"
	"time"
)

func TestExponentialBackoff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		base     time.Duration
		max      time.Duration
		attempt  int
		expected time.Duration
	}{
		{name: "first attempt uses base", base: 30 * time.Second, max: time.Hour, attempt: 0, expected: 30 * time.Second},
		{name: "doubles per attempt", base: 30 * time.Second, max: time.Hour, attempt: 2, expected: 2 * time.Minute},
		{name: "capped at max", base: 30 * time.Second, max: time.Hour, attempt: 10, expected: time.Hour},
		{name: "negative attempt treated as zero", base: time.Second, max: time.Minute, attempt: -3, expected: time.Second},
		{name: "zero max means uncapped", base: time.Second, max: 0, attempt: 4, expected: 16 * time.Second},
		{name: "zero base", base: 0, max: time.Hour, attempt: 3, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ExponentialBackoff(tt.base, tt.max, tt.attempt); got != tt.expected {
				t.Fatalf("ExponentialBackoff(%s, %s, %d) = %s, want %s", tt.base, tt.max, tt.attempt, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
