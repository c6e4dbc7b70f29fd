package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nominalabs/nomina-backend-go/internal/domain/schedule"
)

// 2025-06-02 is a Monday; the week runs through Sunday 2025-06-08.
var testMonday = date(2025, time.June, 2)

func dayShiftCatalog() map[string]*schedule.ScheduleDefinition {
	return map[string]*schedule.ScheduleDefinition{
		"day-8h": {
			ID:       "day-8h",
			Name:     "day shift",
			Segments: []schedule.TimeSegment{{Start: "08:00", End: "16:00"}},
		},
		"night-8h": {
			ID:       "night-8h",
			Name:     "night shift",
			Segments: []schedule.TimeSegment{{Start: "22:00", End: "06:00"}},
		},
	}
}

func assignmentsOn(scheduleID string, dates ...time.Time) []*schedule.ShiftAssignment {
	out := make([]*schedule.ShiftAssignment, 0, len(dates))
	for _, d := range dates {
		out = append(out, &schedule.ShiftAssignment{
			EmployeeID: "emp-1",
			WorkDate:   d,
			ScheduleID: scheduleID,
		})
	}
	return out
}

func TestMondayOf(t *testing.T) {
	for offset := 0; offset < 7; offset++ {
		d := testMonday.AddDate(0, 0, offset)
		assert.Equal(t, testMonday, mondayOf(d), "day %s", d.Format("2006-01-02"))
	}
	assert.Equal(t, testMonday.AddDate(0, 0, 7), mondayOf(testMonday.AddDate(0, 0, 7)))
}

func TestBuildWeeksRestHonoredWithSixShifts(t *testing.T) {
	// Setup: Mon through Sat, Sunday untouched, rest policy fixed Sunday.
	var dates []time.Time
	for i := 0; i < 6; i++ {
		dates = append(dates, testMonday.AddDate(0, 0, i))
	}

	// Act
	weeks, warnings := buildWeeks(assignmentsOn("day-8h", dates...), dayShiftCatalog(), time.Sunday)

	// Assert: six worked shifts alone never cost a compensation day.
	require.Len(t, weeks, 1)
	assert.Empty(t, warnings)
	assert.True(t, weeks[0].restHonored)
	assert.False(t, weeks[0].extraRestDay)
	assert.Len(t, weeks[0].shifts, 6)
}

func TestBuildWeeksSeventhShiftOnRestDayAddsCompensation(t *testing.T) {
	// Setup: Mon through Sun, seven shifts, rest day Sunday.
	var dates []time.Time
	for i := 0; i < 7; i++ {
		dates = append(dates, testMonday.AddDate(0, 0, i))
	}

	weeks, _ := buildWeeks(assignmentsOn("day-8h", dates...), dayShiftCatalog(), time.Sunday)

	require.Len(t, weeks, 1)
	assert.False(t, weeks[0].restHonored)
	assert.True(t, weeks[0].extraRestDay)
}

func TestBuildWeeksRestDayWorkedButFewShifts(t *testing.T) {
	// A single Sunday shift breaks the rest day without reaching the
	// six-shift bar for compensation.
	weeks, _ := buildWeeks(
		assignmentsOn("day-8h", testMonday.AddDate(0, 0, 6)),
		dayShiftCatalog(), time.Sunday)

	require.Len(t, weeks, 1)
	assert.False(t, weeks[0].restHonored)
	assert.False(t, weeks[0].extraRestDay)
}

func TestBuildWeeksUnknownScheduleCountsZeroHoursWithWarning(t *testing.T) {
	assignments := assignmentsOn("day-8h", testMonday)
	assignments = append(assignments, assignmentsOn("ghost", testMonday.AddDate(0, 0, 1))...)

	weeks, warnings := buildWeeks(assignments, dayShiftCatalog(), time.Sunday)

	require.Len(t, weeks, 1)
	require.Len(t, weeks[0].shifts, 2)
	assert.Equal(t, 480, weeks[0].shifts[0].totalMinutes)
	assert.Equal(t, 0, weeks[0].shifts[1].totalMinutes)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "unknown schedule")
}

func TestBuildWeeksMalformedSegmentSkippedOthersStillCount(t *testing.T) {
	// Setup: a split schedule whose middle segment fails to parse. The
	// two valid segments must still be paid.
	catalog := map[string]*schedule.ScheduleDefinition{
		"split": {
			ID:   "split",
			Name: "split day",
			Segments: []schedule.TimeSegment{
				{Start: "08:00", End: "12:00"},
				{Start: "9:00", End: "13:00"},
				{Start: "13:00", End: "17:00"},
			},
		},
	}

	// Act
	weeks, warnings := buildWeeks(assignmentsOn("split", testMonday), catalog, time.Sunday)

	// Assert
	require.Len(t, weeks, 1)
	require.Len(t, weeks[0].shifts, 1)
	assert.Equal(t, 480, weeks[0].shifts[0].totalMinutes)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "segment skipped")
}

func TestBuildWeeksSplitsAcrossMondayBoundary(t *testing.T) {
	assignments := assignmentsOn("day-8h",
		testMonday.AddDate(0, 0, 5), // Saturday
		testMonday.AddDate(0, 0, 7), // next Monday
	)

	weeks, _ := buildWeeks(assignments, dayShiftCatalog(), time.Sunday)

	require.Len(t, weeks, 2)
	assert.Equal(t, testMonday, weeks[0].monday)
	assert.Equal(t, testMonday.AddDate(0, 0, 7), weeks[1].monday)
}

func TestBuildWeeksNightMinutesResolved(t *testing.T) {
	weeks, warnings := buildWeeks(assignmentsOn("night-8h", testMonday), dayShiftCatalog(), time.Sunday)

	require.Len(t, weeks, 1)
	assert.Empty(t, warnings)
	assert.Equal(t, 480, weeks[0].shifts[0].totalMinutes)
	assert.Equal(t, 480, weeks[0].shifts[0].nightMinutes)
}
