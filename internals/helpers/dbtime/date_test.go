package dbtime

import (
	"testing"
	"time"
)

func TestNormalizeDateDropsTimeOfDay(t *testing.T) {
	in := time.Date(2025, 11, 14, 9, 30, 12, 500, time.UTC)
	got := NormalizeDate(in)
	want := time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("NormalizeDate(%v) = %v, want %v", in, got, want)
	}
}

func TestSameCalendarDayCollides(t *testing.T) {
	morning := time.Date(2025, 11, 14, 9, 0, 0, 0, time.UTC)
	night := time.Date(2025, 11, 14, 23, 0, 0, 0, time.UTC)
	if !SameCalendarDay(morning, night) {
		t.Fatalf("expected %v and %v to share an upsert key", morning, night)
	}

	nextDay := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)
	if SameCalendarDay(morning, nextDay) {
		t.Fatalf("expected %v and %v to use distinct keys", morning, nextDay)
	}
}

func TestNormalizeDateConvertsZone(t *testing.T) {
	// 23:30 UTC-5 is already the next day in UTC
	loc := time.FixedZone("UTC-5", -5*3600)
	in := time.Date(2025, 11, 14, 23, 30, 0, 0, loc)
	got := NormalizeDate(in)
	want := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("NormalizeDate(%v) = %v, want %v", in, got, want)
	}
}

func TestParseDateParam(t *testing.T) {
	got, err := ParseDateParam("2025-11-14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	got, err = ParseDateParam("2025-11-14T23:00:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if _, err := ParseDateParam("14/11/2025"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
