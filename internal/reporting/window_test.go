package reporting

import (
	"errors"
	"testing"
	"time"
)

var refNow = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

func TestInWindow_PastDirection(t *testing.T) {
	cases := []struct {
		name string
		ts   time.Time
		w    Window
		want bool
	}{
		{"late same day is today", time.Date(2025, 1, 10, 23, 59, 0, 0, time.UTC), WindowToday, true},
		{"seven days ago in week", time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), WindowThisWeek, true},
		{"seven days ago not today", time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), WindowToday, false},
		{"eight days ago out of week", time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), WindowThisWeek, false},
		{"eight days ago in month", time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), WindowThisMonth, true},
		{"thirty-one days ago out of month", time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC), WindowThisMonth, false},
		{"future date out of past week", time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC), WindowThisWeek, false},
		{"anything in all", time.Date(1999, 6, 1, 0, 0, 0, 0, time.UTC), WindowAll, true},
	}

	for _, tc := range cases {
		if got := InWindow(tc.ts, tc.w, DirectionPast, refNow); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestInWindow_FutureDirection(t *testing.T) {
	cases := []struct {
		name string
		ts   time.Time
		w    Window
		want bool
	}{
		{"due today is today", time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC), WindowToday, true},
		{"due today excluded from upcoming week", time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC), WindowThisWeek, false},
		{"due in seven days in week", time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), WindowThisWeek, true},
		{"due in seven days not later", time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), WindowLater, false},
		{"due in eight days is later", time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC), WindowLater, true},
		{"due in eight days out of week", time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC), WindowThisWeek, false},
		{"past due out of upcoming week", time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC), WindowThisWeek, false},
		{"due in thirty days in month", time.Date(2025, 2, 9, 0, 0, 0, 0, time.UTC), WindowThisMonth, true},
	}

	for _, tc := range cases {
		if got := InWindow(tc.ts, tc.w, DirectionFuture, refNow); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestInWindowString(t *testing.T) {
	ok, err := InWindowString("2025-01-03", WindowThisWeek, DirectionPast, refNow)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !ok {
		t.Fatalf("expected date-only timestamp inside week")
	}

	ok, err = InWindowString("2025-01-10T23:59:00Z", WindowToday, DirectionPast, refNow)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !ok {
		t.Fatalf("expected RFC3339 timestamp to count as today")
	}

	if _, err := InWindowString("not-a-date", WindowAll, DirectionPast, refNow); !errors.Is(err, ErrInvalidTimestamp) {
		t.Fatalf("expected ErrInvalidTimestamp, got %v", err)
	}
	if _, err := InWindowString("", WindowAll, DirectionPast, refNow); !errors.Is(err, ErrInvalidTimestamp) {
		t.Fatalf("expected ErrInvalidTimestamp on empty, got %v", err)
	}
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow(" This_Week ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if w != WindowThisWeek {
		t.Fatalf("expected this_week, got %s", w)
	}

	w, err = ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if w != WindowAll {
		t.Fatalf("expected empty input to default to all, got %s", w)
	}

	if _, err := ParseWindow("yesterday"); !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}
}
