package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rest day policies. fixed_sunday always treats Sunday as the mandatory
// rest day; pattern_derived derives it from the weekdays left unassigned
// in the employee's weekly pattern.
const (
	RestPolicyFixedSunday    = "fixed_sunday"
	RestPolicyPatternDerived = "pattern_derived"
)

type Employee struct {
	ID                 string
	CompanyID          string
	Name               string
	Code               string
	BaseSalary         decimal.Decimal
	TransportAllowance decimal.Decimal
	SolidarityFund     decimal.Decimal
	RestDayPolicy      string
	// PatternDays lists the weekdays (0 = Sunday .. 6 = Saturday) that
	// carry a schedule in the employee's reference week.
	PatternDays []int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
