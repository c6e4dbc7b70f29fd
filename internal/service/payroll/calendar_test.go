package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nominalabs/nomina-backend-go/internal/domain/employee"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifyDayPriority(t *testing.T) {
	// 2025-06-08 is a Sunday.
	sunday := date(2025, time.June, 8)
	holidays := map[string]bool{"2025-06-08": true}

	// A holiday on the mandatory rest day classifies as mandatory rest,
	// never holiday: working it pays the highest tier.
	assert.Equal(t, dayMandatoryRest, classifyDay(sunday, holidays, time.Sunday))

	// Same date with rest on Monday: the holiday wins over Sunday.
	assert.Equal(t, dayHoliday, classifyDay(sunday, holidays, time.Monday))

	// Plain Sunday with rest elsewhere.
	assert.Equal(t, daySunday, classifyDay(sunday, map[string]bool{}, time.Monday))
}

func TestClassifyDayOrdinary(t *testing.T) {
	// 2025-06-04 is a Wednesday.
	wednesday := date(2025, time.June, 4)

	assert.Equal(t, dayOrdinary, classifyDay(wednesday, map[string]bool{}, time.Sunday))
	assert.Equal(t, dayHoliday, classifyDay(wednesday, map[string]bool{"2025-06-04": true}, time.Sunday))
	assert.Equal(t, dayMandatoryRest, classifyDay(wednesday, map[string]bool{}, time.Wednesday))
}

func TestResolveRestDayFixedSunday(t *testing.T) {
	emp := &employee.Employee{RestDayPolicy: employee.RestPolicyFixedSunday}

	restDay, derived := resolveRestDay(emp)
	assert.Equal(t, time.Sunday, restDay)
	assert.True(t, derived)
}

func TestResolveRestDayPatternDerived(t *testing.T) {
	// Monday through Saturday assigned, Sunday free.
	emp := &employee.Employee{
		RestDayPolicy: employee.RestPolicyPatternDerived,
		PatternDays:   []int{1, 2, 3, 4, 5, 6},
	}
	restDay, derived := resolveRestDay(emp)
	assert.Equal(t, time.Sunday, restDay)
	assert.True(t, derived)

	// Sunday and Monday assigned: Tuesday is the first free day in
	// Sunday-first order.
	emp.PatternDays = []int{0, 1, 3, 4, 5, 6}
	restDay, derived = resolveRestDay(emp)
	assert.Equal(t, time.Tuesday, restDay)
	assert.True(t, derived)
}

func TestResolveRestDayFullPatternFallsBackToSunday(t *testing.T) {
	emp := &employee.Employee{
		RestDayPolicy: employee.RestPolicyPatternDerived,
		PatternDays:   []int{0, 1, 2, 3, 4, 5, 6},
	}

	restDay, derived := resolveRestDay(emp)
	assert.Equal(t, time.Sunday, restDay)
	assert.False(t, derived)
}
