package domain

import (
	"encoding/json"
	"time"
)

// DaySchedule is one weekday entry of a store's operating hours.
// JSON field names match the storefront app payload.
type DaySchedule struct {
	Active   bool   `json:"ativo"`
	OpensAt  string `json:"abre"`
	ClosesAt string `json:"fecha"`
}

// WeeklySchedule maps weekday keys ("domingo".."sabado") to hours.
// A missing key means the store is closed that day.
type WeeklySchedule map[string]DaySchedule

// weekdayKeys is indexed by time.Weekday (Sunday=0 .. Saturday=6),
// so the lookup does not depend on locale.
var weekdayKeys = [7]string{
	"domingo",
	"segunda",
	"terca",
	"quarta",
	"quinta",
	"sexta",
	"sabado",
}

// ParseWeeklySchedule decodes the schedule payload stored on the store row.
func ParseWeeklySchedule(raw string) (WeeklySchedule, error) {
	if raw == "" {
		return nil, nil
	}
	var schedule WeeklySchedule
	if err := json.Unmarshal([]byte(raw), &schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// IsOpenAt reports whether the store is accepting orders at the given instant.
// The manual switch wins when off; otherwise the current weekday's entry
// decides. Any misconfiguration (missing schedule, inactive day, missing or
// malformed bounds) evaluates to closed rather than erroring the storefront.
//
// Windows with fecha earlier than abre (overnight hours) evaluate to closed
// for the whole day: the bounds are built on the current date, so no instant
// can satisfy both.
func (s *Store) IsOpenAt(now time.Time) bool {
	if !s.Open {
		return false
	}
	if s.Schedule == nil {
		return false
	}

	day, ok := s.Schedule[weekdayKeys[int(now.Weekday())]]
	if !ok || !day.Active || day.OpensAt == "" || day.ClosesAt == "" {
		return false
	}

	opens, err := atClock(now, day.OpensAt)
	if err != nil {
		return false
	}
	closes, err := atClock(now, day.ClosesAt)
	if err != nil {
		return false
	}

	// Bounds are inclusive on both ends.
	return !now.Before(opens) && !now.After(closes)
}

// atClock anchors an "HH:MM" clock value on the date of ref.
func atClock(ref time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(ref.Year(), ref.Month(), ref.Day(), t.Hour(), t.Minute(), 0, 0, ref.Location()), nil
}
