package models

import (
	"fmt"
	"time"
)

// WeekDays lists the schedule keys in display order, Monday first.
var WeekDays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// TimeBlock is a contiguous availability window within one day.
// Start and end are 24-hour "HH:MM" strings.
type TimeBlock struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// NewTimeBlock builds a TimeBlock and rejects windows whose end does not
// come strictly after their start. Blocks fabricated by the service always
// go through here; raw client edits do not (see UpdateTimeBlock).
func NewTimeBlock(start, end string) (TimeBlock, error) {
	s, err := time.Parse("15:04", start)
	if err != nil {
		return TimeBlock{}, fmt.Errorf("invalid start time %q: %w", start, err)
	}
	e, err := time.Parse("15:04", end)
	if err != nil {
		return TimeBlock{}, fmt.Errorf("invalid end time %q: %w", end, err)
	}
	if !e.After(s) {
		return TimeBlock{}, fmt.Errorf("end time %q must be after start time %q", end, start)
	}
	return TimeBlock{StartTime: start, EndTime: end}, nil
}

// DefaultTimeBlock returns the 09:00-17:00 window seeded whenever a day is
// activated or a new block is appended.
func DefaultTimeBlock() TimeBlock {
	return mustTimeBlock("09:00", "17:00")
}

// mustTimeBlock is for blocks the service fabricates itself; an invalid
// window here is a programming error, not user input.
func mustTimeBlock(start, end string) TimeBlock {
	tb, err := NewTimeBlock(start, end)
	if err != nil {
		panic(err)
	}
	return tb
}

// DaySchedule represents one weekday's availability. When IsActive is false
// the day has no bookable time and carries no blocks.
type DaySchedule struct {
	DayOfWeek  int         `json:"day_of_week"`
	IsActive   bool        `json:"is_active"`
	TimeBlocks []TimeBlock `json:"time_blocks"`
}

// WeeklySchedule maps the seven fixed day keys to their configuration.
type WeeklySchedule map[string]*DaySchedule

// NewWeeklySchedule returns a schedule with all seven days present and inactive.
func NewWeeklySchedule() WeeklySchedule {
	ws := make(WeeklySchedule, len(WeekDays))
	for i, day := range WeekDays {
		ws[day] = &DaySchedule{DayOfWeek: i}
	}
	return ws
}

// DayIndex resolves a day key to its 0-based index (Monday=0).
func DayIndex(day string) (int, bool) {
	for i, d := range WeekDays {
		if d == day {
			return i, true
		}
	}
	return 0, false
}

// ActiveDays returns the active day entries ordered Monday..Sunday.
func (ws WeeklySchedule) ActiveDays() []DaySchedule {
	var out []DaySchedule
	for _, day := range WeekDays {
		if ds, ok := ws[day]; ok && ds != nil && ds.IsActive {
			out = append(out, *ds)
		}
	}
	return out
}

// HasActiveDay reports whether at least one day is bookable.
func (ws WeeklySchedule) HasActiveDay() bool {
	return len(ws.ActiveDays()) > 0
}
