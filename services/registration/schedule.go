package registration

import (
	"fmt"

	"medagenda/models"
)

// The weekly schedule sub-editor. All four operations mutate the draft's
// schedule in place; persistence is the wizard service's job.

func dayEntry(ws models.WeeklySchedule, day string) (*models.DaySchedule, error) {
	idx, ok := models.DayIndex(day)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDay, day)
	}
	ds, ok := ws[day]
	if !ok || ds == nil {
		ds = &models.DaySchedule{DayOfWeek: idx}
		ws[day] = ds
	}
	return ds, nil
}

// SetDayActive toggles a day. Activation seeds a single default block when
// the day has none. Deactivation discards the day's blocks entirely: the
// next activation starts fresh from the default block, prior custom windows
// are lost.
func SetDayActive(ws models.WeeklySchedule, day string, active bool) error {
	ds, err := dayEntry(ws, day)
	if err != nil {
		return err
	}
	ds.IsActive = active
	if active {
		if len(ds.TimeBlocks) == 0 {
			ds.TimeBlocks = []models.TimeBlock{models.DefaultTimeBlock()}
		}
	} else {
		ds.TimeBlocks = nil
	}
	return nil
}

// AddTimeBlock appends a default 09:00-17:00 block to a day. No adjacency or
// overlap detection against existing blocks.
func AddTimeBlock(ws models.WeeklySchedule, day string) error {
	ds, err := dayEntry(ws, day)
	if err != nil {
		return err
	}
	ds.TimeBlocks = append(ds.TimeBlocks, models.DefaultTimeBlock())
	return nil
}

// RemoveTimeBlock drops a block by position. Removing the last remaining
// block of a day is refused, which keeps "active day implies at least one
// block" without ever representing an active-but-empty day.
func RemoveTimeBlock(ws models.WeeklySchedule, day string, index int) error {
	ds, err := dayEntry(ws, day)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(ds.TimeBlocks) {
		return fmt.Errorf("%w: %s[%d]", ErrBlockIndexOutOfRange, day, index)
	}
	if len(ds.TimeBlocks) == 1 {
		return ErrLastTimeBlock
	}
	ds.TimeBlocks = append(ds.TimeBlocks[:index], ds.TimeBlocks[index+1:]...)
	return nil
}

// UpdateTimeBlock replaces the start or end string of one block in place.
// No chronological check: a client may hold an inverted window mid-edit.
// Blocks the service fabricates itself always come from models.NewTimeBlock.
func UpdateTimeBlock(ws models.WeeklySchedule, day string, index int, field, value string) error {
	ds, err := dayEntry(ws, day)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(ds.TimeBlocks) {
		return fmt.Errorf("%w: %s[%d]", ErrBlockIndexOutOfRange, day, index)
	}
	switch field {
	case "start_time":
		ds.TimeBlocks[index].StartTime = value
	case "end_time":
		ds.TimeBlocks[index].EndTime = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}
