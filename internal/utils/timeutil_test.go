package utils

import (
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	a := time.Date(2026, time.March, 10, 0, 0, 1, 0, time.UTC)
	b := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC)
	c := time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Error("instants on the same date should match")
	}
	if SameDay(b, c) {
		t.Error("adjacent midnights are different days")
	}
}

func TestStartAndEndOfDay(t *testing.T) {
	ts := time.Date(2026, time.March, 10, 14, 30, 45, 123, time.UTC)

	start := StartOfDay(ts)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		t.Errorf("StartOfDay = %v", start)
	}
	end := EndOfDay(ts)
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("EndOfDay = %v", end)
	}
	if !SameDay(start, end) {
		t.Error("start and end should stay on the same day")
	}
}

func TestCombineDateAndTime(t *testing.T) {
	got, err := CombineDateAndTime("2026-03-10", "17:45", time.UTC)
	if err != nil {
		t.Fatalf("CombineDateAndTime: %v", err)
	}
	want := time.Date(2026, time.March, 10, 17, 45, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := CombineDateAndTime("03/10/2026", "17:45", time.UTC); err == nil {
		t.Error("expected error for bad date format")
	}
	if _, err := CombineDateAndTime("2026-03-10", "5pm", time.UTC); err == nil {
		t.Error("expected error for bad time format")
	}
}

func TestValidateTimeFormat(t *testing.T) {
	if !ValidateTimeFormat("09:05") {
		t.Error("09:05 should be valid")
	}
	if ValidateTimeFormat("25:00") {
		t.Error("25:00 should be invalid")
	}
	if ValidateTimeFormat("") {
		t.Error("empty string should be invalid")
	}
}
