package schedule

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSegmentMinutes(t *testing.T) {
	tests := []struct {
		name    string
		segment TimeSegment
		minutes int
	}{
		{"day shift", TimeSegment{Start: "09:00", End: "17:00"}, 480},
		{"full night shift crossing midnight", TimeSegment{Start: "22:00", End: "06:00"}, 480},
		{"evening into early morning", TimeSegment{Start: "18:00", End: "02:00"}, 480},
		{"short morning block", TimeSegment{Start: "05:00", End: "09:00"}, 240},
		{"half hour after midnight", TimeSegment{Start: "00:00", End: "00:30"}, 30},
		{"zero-length segment counts nothing", TimeSegment{Start: "08:00", End: "08:00"}, 0},
		{"zero-length at midnight counts nothing", TimeSegment{Start: "00:00", End: "00:00"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.segment.Minutes()
			require.NoError(t, err)
			assert.Equal(t, tt.minutes, got)
		})
	}
}

func TestTimeSegmentNightMinutes(t *testing.T) {
	tests := []struct {
		name    string
		segment TimeSegment
		night   int
	}{
		{"pure day shift has no night minutes", TimeSegment{Start: "09:00", End: "17:00"}, 0},
		{"22:00-06:00 is entirely night", TimeSegment{Start: "22:00", End: "06:00"}, 480},
		{"18:00-02:00 has four night hours", TimeSegment{Start: "18:00", End: "02:00"}, 240},
		{"05:00-09:00 touches one early night hour", TimeSegment{Start: "05:00", End: "09:00"}, 60},
		{"21:00-05:00 has seven night hours", TimeSegment{Start: "21:00", End: "05:00"}, 420},
		{"ends exactly at night start", TimeSegment{Start: "14:00", End: "22:00"}, 0},
		{"starts exactly at night end", TimeSegment{Start: "06:00", End: "14:00"}, 0},
		{"zero-length inside the night window", TimeSegment{Start: "23:00", End: "23:00"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.segment.NightMinutes()
			require.NoError(t, err)
			assert.Equal(t, tt.night, got)
		})
	}
}

func TestTimeSegmentNightNeverExceedsTotal(t *testing.T) {
	segments := []TimeSegment{
		{Start: "00:00", End: "23:59"},
		{Start: "23:00", End: "07:00"},
		{Start: "22:00", End: "06:00"},
		{Start: "03:15", End: "11:45"},
	}

	for _, seg := range segments {
		total, err := seg.Minutes()
		require.NoError(t, err)
		night, err := seg.NightMinutes()
		require.NoError(t, err)
		assert.LessOrEqual(t, night, total, "segment %s-%s", seg.Start, seg.End)
	}
}

func TestScheduleWorkedHours(t *testing.T) {
	// Setup: a split schedule with a half-hour fraction.
	def := &ScheduleDefinition{
		Name: "split day",
		Segments: []TimeSegment{
			{Start: "08:00", End: "12:00"},
			{Start: "13:00", End: "16:30"},
		},
	}

	// Act
	minutes, err := def.WorkedMinutes()
	require.NoError(t, err)
	hours, err := def.WorkedHours()
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 450, minutes)
	assert.True(t, hours.Equal(decimal.RequireFromString("7.5")), "got %s", hours)
}

func TestScheduleNightMinutesSumsSegments(t *testing.T) {
	def := &ScheduleDefinition{
		Segments: []TimeSegment{
			{Start: "18:00", End: "23:00"}, // 1 night hour
			{Start: "00:00", End: "04:00"}, // 4 night hours
		},
	}

	night, err := def.NightMinutes()
	require.NoError(t, err)
	assert.Equal(t, 300, night)
}

func TestTimeSegmentInvalidClockTime(t *testing.T) {
	_, err := TimeSegment{Start: "25:00", End: "06:00"}.Minutes()
	assert.Error(t, err)

	_, err = TimeSegment{Start: "22:00", End: "6:00"}.NightMinutes()
	assert.Error(t, err)
}
