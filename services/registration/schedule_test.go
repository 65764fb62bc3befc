package registration

import (
	"testing"

	"medagenda/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDayActiveSeedsDefaultBlock(t *testing.T) {
	ws := models.NewWeeklySchedule()

	require.NoError(t, SetDayActive(ws, "tuesday", true))
	day := ws["tuesday"]
	assert.True(t, day.IsActive)
	require.Len(t, day.TimeBlocks, 1)
	assert.Equal(t, models.DefaultTimeBlock(), day.TimeBlocks[0])
}

func TestDeactivationDiscardsCustomBlocks(t *testing.T) {
	ws := models.NewWeeklySchedule()
	require.NoError(t, SetDayActive(ws, "monday", true))
	require.NoError(t, AddTimeBlock(ws, "monday"))
	require.NoError(t, UpdateTimeBlock(ws, "monday", 0, "start_time", "07:30"))
	require.NoError(t, UpdateTimeBlock(ws, "monday", 1, "end_time", "20:00"))
	require.Len(t, ws["monday"].TimeBlocks, 2)

	// Deactivate, then reactivate: the custom windows are gone and the day
	// is back to the single default block. Round trip does not preserve.
	require.NoError(t, SetDayActive(ws, "monday", false))
	assert.False(t, ws["monday"].IsActive)
	assert.Empty(t, ws["monday"].TimeBlocks)

	require.NoError(t, SetDayActive(ws, "monday", true))
	require.Len(t, ws["monday"].TimeBlocks, 1)
	assert.Equal(t, models.DefaultTimeBlock(), ws["monday"].TimeBlocks[0])
}

func TestAddTimeBlockAppends(t *testing.T) {
	ws := models.NewWeeklySchedule()
	require.NoError(t, SetDayActive(ws, "friday", true))
	require.NoError(t, AddTimeBlock(ws, "friday"))
	require.NoError(t, AddTimeBlock(ws, "friday"))

	// Appended regardless of adjacency; duplicates allowed.
	assert.Len(t, ws["friday"].TimeBlocks, 3)
}

func TestRemoveTimeBlock(t *testing.T) {
	ws := models.NewWeeklySchedule()
	require.NoError(t, SetDayActive(ws, "monday", true))
	require.NoError(t, AddTimeBlock(ws, "monday"))
	require.NoError(t, UpdateTimeBlock(ws, "monday", 1, "start_time", "18:00"))

	require.NoError(t, RemoveTimeBlock(ws, "monday", 0))
	require.Len(t, ws["monday"].TimeBlocks, 1)
	assert.Equal(t, "18:00", ws["monday"].TimeBlocks[0].StartTime)

	// Last block of the day is protected.
	err := RemoveTimeBlock(ws, "monday", 0)
	assert.ErrorIs(t, err, ErrLastTimeBlock)
	assert.Len(t, ws["monday"].TimeBlocks, 1)
}

func TestRemoveTimeBlockIndexOutOfRange(t *testing.T) {
	ws := models.NewWeeklySchedule()
	require.NoError(t, SetDayActive(ws, "monday", true))
	require.NoError(t, AddTimeBlock(ws, "monday"))

	assert.ErrorIs(t, RemoveTimeBlock(ws, "monday", 5), ErrBlockIndexOutOfRange)
	assert.ErrorIs(t, RemoveTimeBlock(ws, "monday", -1), ErrBlockIndexOutOfRange)
}

func TestUpdateTimeBlockRawReplace(t *testing.T) {
	ws := models.NewWeeklySchedule()
	require.NoError(t, SetDayActive(ws, "monday", true))

	// No chronological check on raw edits: end before start is accepted.
	require.NoError(t, UpdateTimeBlock(ws, "monday", 0, "start_time", "18:00"))
	require.NoError(t, UpdateTimeBlock(ws, "monday", 0, "end_time", "08:00"))
	assert.Equal(t, "18:00", ws["monday"].TimeBlocks[0].StartTime)
	assert.Equal(t, "08:00", ws["monday"].TimeBlocks[0].EndTime)

	assert.ErrorIs(t, UpdateTimeBlock(ws, "monday", 0, "midpoint", "12:00"), ErrUnknownField)
}

func TestScheduleUnknownDay(t *testing.T) {
	ws := models.NewWeeklySchedule()
	assert.ErrorIs(t, SetDayActive(ws, "funday", true), ErrUnknownDay)
	assert.ErrorIs(t, AddTimeBlock(ws, "funday"), ErrUnknownDay)
	assert.ErrorIs(t, RemoveTimeBlock(ws, "funday", 0), ErrUnknownDay)
	assert.ErrorIs(t, UpdateTimeBlock(ws, "funday", 0, "start_time", "10:00"), ErrUnknownDay)
}
