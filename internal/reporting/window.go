package reporting

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Window string

const (
	WindowAll       Window = "all"
	WindowToday     Window = "today"
	WindowThisWeek  Window = "this_week"
	WindowThisMonth Window = "this_month"
	WindowLater     Window = "later"
)

// Direction selects which way a window looks from the reference day.
type Direction int

const (
	// DirectionPast classifies past-facing fields such as createdAt.
	DirectionPast Direction = iota
	// DirectionFuture classifies future-facing fields such as dueDate.
	DirectionFuture
)

var (
	ErrInvalidWindow    = errors.New("invalid time window")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

func ParseWindow(s string) (Window, error) {
	switch w := Window(strings.ToLower(strings.TrimSpace(s))); w {
	case "":
		return WindowAll, nil
	case WindowAll, WindowToday, WindowThisWeek, WindowThisMonth, WindowLater:
		return w, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidWindow, s)
	}
}

// InWindow reports whether ts falls inside the window relative to now. Both
// sides are bucketed to their UTC calendar day first, then compared by day
// difference. Past windows include the reference day; future windows exclude
// it ("this week" on a due date means upcoming, not today), and "later"
// means strictly more than 7 days ahead.
func InWindow(ts time.Time, w Window, dir Direction, now time.Time) bool {
	if w == WindowAll {
		return true
	}

	d := daysFromToday(ts, now) // positive = past
	if dir == DirectionFuture {
		d = -d // positive = upcoming
	}

	switch w {
	case WindowToday:
		return d == 0
	case WindowThisWeek:
		if dir == DirectionFuture {
			return d > 0 && d <= 7
		}
		return d >= 0 && d <= 7
	case WindowThisMonth:
		if dir == DirectionFuture {
			return d > 0 && d <= 30
		}
		return d >= 0 && d <= 30
	case WindowLater:
		return dir == DirectionFuture && d > 7
	default:
		return false
	}
}

// InWindowString is the ISO-8601 entry point. Malformed input fails with
// ErrInvalidTimestamp rather than silently matching no window.
func InWindowString(iso string, w Window, dir Direction, now time.Time) (bool, error) {
	ts, err := ParseTimestamp(iso)
	if err != nil {
		return false, err
	}
	return InWindow(ts, w, dir, now), nil
}

// ParseTimestamp accepts RFC 3339 or a bare calendar date.
func ParseTimestamp(iso string) (time.Time, error) {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidTimestamp)
	}
	if ts, err := time.Parse(time.RFC3339, iso); err == nil {
		return ts, nil
	}
	if ts, err := time.Parse("2006-01-02", iso); err == nil {
		return ts, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, iso)
}

func daysFromToday(ts, now time.Time) int {
	day := midnightUTC(ts)
	today := midnightUTC(now)

	ms := today.Sub(day).Milliseconds()
	const dayMs = int64(24 * time.Hour / time.Millisecond)
	if ms >= 0 {
		// Ceiling division so a partial day never rounds into the
		// neighbouring bucket.
		return int((ms + dayMs - 1) / dayMs)
	}
	// Truncation already rounds negative deltas toward zero, which is the
	// ceiling for a negative value.
	return int(ms / dayMs)
}

func midnightUTC(ts time.Time) time.Time {
	u := ts.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
