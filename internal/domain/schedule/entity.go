package schedule

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nominalabs/nomina-backend-go/internal/pkg/validator"
)

const minutesPerDay = 1440

// Night hours run from 22:00 to 06:00. On the two-day minute timeline a
// segment can occupy, that window appears three times: the tail of the
// previous night, the full 22:00-06:00 block, and the head of the night
// after next midnight.
var nightWindows = [][2]int{
	{0, 360},
	{1320, 1800},
	{2760, 2880},
}

// TimeSegment is one contiguous block of a work schedule, expressed as
// "HH:MM" wall clock strings. An end before the start means the segment
// crosses midnight into the next day; identical start and end is a
// zero-length segment and contributes nothing.
type TimeSegment struct {
	Start string
	End   string
}

// bounds returns the segment as minute offsets on a 0..2880 timeline
// anchored at the shift date's midnight.
func (s TimeSegment) bounds() (int, int, error) {
	start, err := validator.ParseClockMinutes(s.Start)
	if err != nil {
		return 0, 0, err
	}
	end, err := validator.ParseClockMinutes(s.End)
	if err != nil {
		return 0, 0, err
	}
	if end < start {
		end += minutesPerDay
	}
	return start, end, nil
}

// Minutes returns the segment's total worked minutes.
func (s TimeSegment) Minutes() (int, error) {
	start, end, err := s.bounds()
	if err != nil {
		return 0, err
	}
	return end - start, nil
}

// NightMinutes returns the minutes of the segment that fall inside the
// 22:00-06:00 night window.
func (s TimeSegment) NightMinutes() (int, error) {
	start, end, err := s.bounds()
	if err != nil {
		return 0, err
	}
	night := 0
	for _, w := range nightWindows {
		night += overlap(start, end, w[0], w[1])
	}
	return night, nil
}

func overlap(aStart, aEnd, bStart, bEnd int) int {
	lo := aStart
	if bStart > lo {
		lo = bStart
	}
	hi := aEnd
	if bEnd < hi {
		hi = bEnd
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}

type ScheduleDefinition struct {
	ID        string
	CompanyID string
	Name      string
	Segments  []TimeSegment
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkedMinutes sums the minutes of all segments.
func (d *ScheduleDefinition) WorkedMinutes() (int, error) {
	total := 0
	for _, seg := range d.Segments {
		m, err := seg.Minutes()
		if err != nil {
			return 0, err
		}
		total += m
	}
	return total, nil
}

// NightMinutes sums the night-window minutes of all segments.
func (d *ScheduleDefinition) NightMinutes() (int, error) {
	total := 0
	for _, seg := range d.Segments {
		m, err := seg.NightMinutes()
		if err != nil {
			return 0, err
		}
		total += m
	}
	return total, nil
}

// WorkedHours returns the schedule's total duration in hours as an exact
// decimal, so a 7h30m schedule reads 7.5 rather than a float.
func (d *ScheduleDefinition) WorkedHours() (decimal.Decimal, error) {
	minutes, err := d.WorkedMinutes()
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60)), nil
}

type ShiftAssignment struct {
	ID         string
	CompanyID  string
	EmployeeID string
	WorkDate   time.Time
	ScheduleID string
	CreatedAt  time.Time
}
