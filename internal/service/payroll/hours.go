package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// hourBuckets collects classified hours for one employee over a pay
// period. A given hour lands in exactly one overtime bucket or earns at
// most one surcharge; day and night shares of any split sum back to the
// portion they divide.
type hourBuckets struct {
	dayOvertime       decimal.Decimal
	nightOvertime     decimal.Decimal
	dayHolidayOT      decimal.Decimal
	nightHolidayOT    decimal.Decimal
	nightSurcharge    decimal.Decimal
	dayHolidaySurch   decimal.Decimal
	nightHolidaySurch decimal.Decimal
	daySundaySurch    decimal.Decimal
	nightSundaySurch  decimal.Decimal
}

var sixty = decimal.NewFromInt(60)

func minutesToHours(m int) decimal.Decimal {
	return decimal.NewFromInt(int64(m)).Div(sixty)
}

// classifyWeeks runs the strict left-fold over each week's date-ordered
// shifts: split against the running weekly total first, then route the
// normal and overtime portions by day class. The running total grows by
// the shift's full hours regardless of classification.
func classifyWeeks(
	weeks []weeklyWindow,
	holidays map[string]bool,
	restWeekday time.Weekday,
	weeklyThreshold decimal.Decimal,
) hourBuckets {
	var b hourBuckets

	for _, week := range weeks {
		running := decimal.Zero
		for _, sh := range week.shifts {
			if sh.totalMinutes <= 0 {
				continue
			}
			hours := minutesToHours(sh.totalMinutes)

			remaining := weeklyThreshold.Sub(running)
			if remaining.IsNegative() {
				remaining = decimal.Zero
			}
			normal := decimal.Min(hours, remaining)
			overtime := hours.Sub(normal)

			classifyShift(&b, sh, normal, overtime, classifyDay(sh.date, holidays, restWeekday))

			running = running.Add(hours)
		}
	}

	return b
}

// classifyShift routes one shift's normal and overtime portions into
// buckets. Day/night splits use the exact night-minute proportion; the
// day share is the complement so the two always sum to the portion.
func classifyShift(b *hourBuckets, sh shiftHours, normal, overtime decimal.Decimal, class dayClass) {
	nightOf := func(portion decimal.Decimal) decimal.Decimal {
		if sh.nightMinutes <= 0 {
			return decimal.Zero
		}
		return portion.
			Mul(decimal.NewFromInt(int64(sh.nightMinutes))).
			Div(decimal.NewFromInt(int64(sh.totalMinutes)))
	}

	switch class {
	case dayMandatoryRest:
		// Working the mandatory rest day has no normal-rate portion.
		all := normal.Add(overtime)
		night := nightOf(all)
		b.dayHolidayOT = b.dayHolidayOT.Add(all.Sub(night))
		b.nightHolidayOT = b.nightHolidayOT.Add(night)

	case dayHoliday:
		normalNight := nightOf(normal)
		b.dayHolidaySurch = b.dayHolidaySurch.Add(normal.Sub(normalNight))
		b.nightHolidaySurch = b.nightHolidaySurch.Add(normalNight)
		otNight := nightOf(overtime)
		b.dayHolidayOT = b.dayHolidayOT.Add(overtime.Sub(otNight))
		b.nightHolidayOT = b.nightHolidayOT.Add(otNight)

	case daySunday:
		normalNight := nightOf(normal)
		b.daySundaySurch = b.daySundaySurch.Add(normal.Sub(normalNight))
		b.nightSundaySurch = b.nightSundaySurch.Add(normalNight)
		otNight := nightOf(overtime)
		b.dayHolidayOT = b.dayHolidayOT.Add(overtime.Sub(otNight))
		b.nightHolidayOT = b.nightHolidayOT.Add(otNight)

	default:
		b.nightSurcharge = b.nightSurcharge.Add(nightOf(normal))
		otNight := nightOf(overtime)
		b.dayOvertime = b.dayOvertime.Add(overtime.Sub(otNight))
		b.nightOvertime = b.nightOvertime.Add(otNight)
	}
}
