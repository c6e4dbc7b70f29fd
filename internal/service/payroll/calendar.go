package payroll

import (
	"time"

	"github.com/nominalabs/nomina-backend-go/internal/domain/employee"
)

type dayClass int

const (
	dayOrdinary dayClass = iota
	daySunday
	dayHoliday
	dayMandatoryRest
)

const dateKeyLayout = "2006-01-02"

// classifyDay labels a calendar date for the hour classifier. The order
// is load-bearing: a holiday falling on the mandatory rest day is
// classified as mandatory rest because working it pays the highest tier.
func classifyDay(date time.Time, holidays map[string]bool, restWeekday time.Weekday) dayClass {
	switch {
	case date.Weekday() == restWeekday:
		return dayMandatoryRest
	case holidays[date.Format(dateKeyLayout)]:
		return dayHoliday
	case date.Weekday() == time.Sunday:
		return daySunday
	default:
		return dayOrdinary
	}
}

// resolveRestDay returns the employee's mandatory rest weekday. For
// pattern-derived employees it is the first weekday, in Sunday-first
// order, with no schedule in the weekly pattern. The second return is
// false when the pattern covers every weekday and Sunday had to be
// assumed.
func resolveRestDay(emp *employee.Employee) (time.Weekday, bool) {
	if emp.RestDayPolicy != employee.RestPolicyPatternDerived {
		return time.Sunday, true
	}

	assigned := make(map[int]bool, len(emp.PatternDays))
	for _, d := range emp.PatternDays {
		assigned[d] = true
	}
	for d := 0; d < 7; d++ {
		if !assigned[d] {
			return time.Weekday(d), true
		}
	}
	return time.Sunday, false
}
