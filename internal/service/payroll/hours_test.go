package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var threshold48 = decimal.NewFromInt(48)

func noHolidays() map[string]bool { return map[string]bool{} }

// week of testMonday with one 8h day shift per given weekday offset.
func weekOfDayShifts(offsets ...int) []weeklyWindow {
	w := weeklyWindow{monday: testMonday}
	for _, off := range offsets {
		w.shifts = append(w.shifts, shiftHours{
			date:         testMonday.AddDate(0, 0, off),
			totalMinutes: 480,
		})
	}
	return []weeklyWindow{w}
}

func assertHours(t *testing.T, want string, got decimal.Decimal, label string) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "%s: want %s, got %s", label, want, got)
}

func TestClassifyWeeksOrdinaryDayShiftsEarnNothingExtra(t *testing.T) {
	b := classifyWeeks(weekOfDayShifts(0, 1, 2, 3, 4), noHolidays(), time.Sunday, threshold48)

	assertHours(t, "0", b.dayOvertime, "day overtime")
	assertHours(t, "0", b.nightSurcharge, "night surcharge")
	assertHours(t, "0", b.daySundaySurch, "sunday surcharge")
}

func TestClassifyWeeksNightShiftEarnsNightSurcharge(t *testing.T) {
	weeks := []weeklyWindow{{monday: testMonday, shifts: []shiftHours{
		{date: testMonday, totalMinutes: 480, nightMinutes: 480},
	}}}

	b := classifyWeeks(weeks, noHolidays(), time.Sunday, threshold48)

	assertHours(t, "8", b.nightSurcharge, "night surcharge")
	assertHours(t, "0", b.nightOvertime, "night overtime")
}

func TestClassifyWeeksOvertimeSplitAtThreshold(t *testing.T) {
	// Five 8h shifts then a 10h Saturday shift: 48h fills the weekly
	// threshold, the last 2h spill into ordinary day overtime.
	weeks := weekOfDayShifts(0, 1, 2, 3, 4)
	weeks[0].shifts = append(weeks[0].shifts, shiftHours{
		date:         testMonday.AddDate(0, 0, 5),
		totalMinutes: 600,
	})

	b := classifyWeeks(weeks, noHolidays(), time.Sunday, threshold48)

	assertHours(t, "2", b.dayOvertime, "day overtime")
	assertHours(t, "0", b.nightOvertime, "night overtime")
}

func TestClassifyWeeksMixedNightShiftSplitsExactly(t *testing.T) {
	// 44h already worked, then an 18:00-02:00 shift (8h, half night):
	// 4h normal and 4h overtime, each split evenly between day and night.
	weeks := []weeklyWindow{{monday: testMonday, shifts: []shiftHours{
		{date: testMonday, totalMinutes: 480},
		{date: testMonday.AddDate(0, 0, 1), totalMinutes: 480},
		{date: testMonday.AddDate(0, 0, 2), totalMinutes: 480},
		{date: testMonday.AddDate(0, 0, 3), totalMinutes: 480},
		{date: testMonday.AddDate(0, 0, 4), totalMinutes: 480},
		{date: testMonday.AddDate(0, 0, 5), totalMinutes: 240},
		{date: testMonday.AddDate(0, 0, 5), totalMinutes: 480, nightMinutes: 240},
	}}}

	b := classifyWeeks(weeks, noHolidays(), time.Sunday, threshold48)

	assertHours(t, "2", b.nightSurcharge, "normal night share")
	assertHours(t, "2", b.dayOvertime, "day overtime")
	assertHours(t, "2", b.nightOvertime, "night overtime")

	// Day and night overtime shares sum back to the overtime portion.
	assertHours(t, "4", b.dayOvertime.Add(b.nightOvertime), "overtime total")
}

func TestClassifyWeeksMandatoryRestShiftIsAllOvertime(t *testing.T) {
	// A single shift on the rest weekday with an otherwise empty week:
	// all 8 hours land in sunday/holiday-class day overtime, none at
	// normal rate, regardless of the weekly total.
	weeks := []weeklyWindow{{monday: testMonday, shifts: []shiftHours{
		{date: testMonday.AddDate(0, 0, 6), totalMinutes: 480},
	}}}

	b := classifyWeeks(weeks, noHolidays(), time.Sunday, threshold48)

	assertHours(t, "8", b.dayHolidayOT, "rest day overtime")
	assertHours(t, "0", b.daySundaySurch, "sunday surcharge")
	assertHours(t, "0", b.dayOvertime, "ordinary overtime")
}

func TestClassifyWeeksSundayUnderThresholdEarnsSurcharge(t *testing.T) {
	// Five weekday shifts (40h) plus a Sunday shift in the same week,
	// rest day Wednesday and unworked: Sunday stays under the threshold
	// and earns the day sunday surcharge with zero ordinary overtime.
	weeks := weekOfDayShifts(0, 1, 3, 4, 5)
	weeks[0].shifts = append(weeks[0].shifts, shiftHours{
		date:         testMonday.AddDate(0, 0, 6),
		totalMinutes: 480,
	})

	b := classifyWeeks(weeks, noHolidays(), time.Wednesday, threshold48)

	assertHours(t, "8", b.daySundaySurch, "sunday surcharge")
	assertHours(t, "0", b.dayOvertime, "ordinary overtime")
	assertHours(t, "0", b.dayHolidayOT, "sunday/holiday overtime")
}

func TestClassifyWeeksHolidayShift(t *testing.T) {
	holidays := map[string]bool{"2025-06-04": true}
	weeks := []weeklyWindow{{monday: testMonday, shifts: []shiftHours{
		{date: date(2025, time.June, 4), totalMinutes: 480, nightMinutes: 120},
	}}}

	b := classifyWeeks(weeks, holidays, time.Sunday, threshold48)

	assertHours(t, "6", b.dayHolidaySurch, "holiday day surcharge")
	assertHours(t, "2", b.nightHolidaySurch, "holiday night surcharge")
	assertHours(t, "0", b.dayHolidayOT, "holiday overtime")
}

func TestClassifyWeeksZeroMinuteShiftIsSkipped(t *testing.T) {
	weeks := []weeklyWindow{{monday: testMonday, shifts: []shiftHours{
		{date: testMonday, totalMinutes: 0},
		{date: testMonday.AddDate(0, 0, 1), totalMinutes: 480},
	}}}

	b := classifyWeeks(weeks, noHolidays(), time.Sunday, threshold48)

	assertHours(t, "0", b.dayOvertime, "day overtime")
	assertHours(t, "0", b.nightSurcharge, "night surcharge")
}

func TestClassifyWeeksRunningTotalResetsEachWeek(t *testing.T) {
	// 48h in week one, then a normal shift in week two: no overtime.
	weeks := weekOfDayShifts(0, 1, 2, 3, 4, 5)
	weeks = append(weeks, weeklyWindow{
		monday: testMonday.AddDate(0, 0, 7),
		shifts: []shiftHours{{date: testMonday.AddDate(0, 0, 7), totalMinutes: 480}},
	})

	b := classifyWeeks(weeks, noHolidays(), time.Sunday, threshold48)

	assertHours(t, "0", b.dayOvertime, "day overtime")
}

func TestNormalPlusOvertimeConservation(t *testing.T) {
	// Shifts of uneven lengths around the threshold: the portions must
	// re-sum to the worked hours with nothing double counted or lost.
	minutes := []int{480, 555, 600, 480, 510, 495}
	var shifts []shiftHours
	totalWorked := 0
	for i, m := range minutes {
		shifts = append(shifts, shiftHours{date: testMonday.AddDate(0, 0, i), totalMinutes: m})
		totalWorked += m
	}
	weeks := []weeklyWindow{{monday: testMonday, shifts: shifts}}

	b := classifyWeeks(weeks, noHolidays(), time.Sunday, threshold48)

	// All shifts are ordinary daytime, so overtime is the only bucket
	// with hours; normal = worked - overtime must equal the threshold
	// overflow exactly.
	worked := minutesToHours(totalWorked)
	wantOvertime := worked.Sub(threshold48)
	assert.True(t, b.dayOvertime.Equal(wantOvertime), "want %s, got %s", wantOvertime, b.dayOvertime)
}
