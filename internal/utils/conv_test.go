package utils

import (
	"testing"
	"time"
)

func TestStringToInt(t *testing.T) {
	if got := StringToInt("42"); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if got := StringToInt("not a number"); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
	if got := StringToInt(""); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestDaysSinceJoined(t *testing.T) {
	if got := DaysSinceJoined(time.Now().Add(-49 * time.Hour)); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if got := DaysSinceJoined(time.Now()); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}
