package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/nominalabs/nomina-backend-go/internal/domain/employee"
	"github.com/nominalabs/nomina-backend-go/internal/domain/payroll"
)

var (
	one           = decimal.NewFromInt(1)
	half          = decimal.RequireFromString("0.5")
	statutoryRate = decimal.RequireFromString("0.04")
)

// computeWage turns classified hour buckets into the monetary
// breakdown. Every component is rounded to 2 decimals on its own and
// totals are sums of rounded components, so earned minus deductions
// equals net bit-exactly.
func computeWage(
	emp *employee.Employee,
	b hourBuckets,
	extraRestDays int,
	formulas *payroll.SurchargeFormulas,
	periodType string,
) *payroll.WageBreakdown {
	hourlyRate := emp.BaseSalary.Div(formulas.HourlyDivisor)
	dailyRate := emp.BaseSalary.Div(formulas.DailyDivisor)

	value := func(hours, pct decimal.Decimal) decimal.Decimal {
		return hours.Mul(hourlyRate).Mul(one.Add(pct)).Round(2)
	}

	factor := one
	if periodType == payroll.PeriodHalfMonth {
		factor = half
	}

	out := &payroll.WageBreakdown{
		EmployeeID: emp.ID,
		CompanyID:  emp.CompanyID,
		PeriodType: periodType,
		Status:     payroll.StatusDraft,
	}

	out.ProratedSalary = emp.BaseSalary.Mul(factor).Round(2)
	out.ProratedAllowance = emp.TransportAllowance.Mul(factor).Round(2)

	out.DayOvertimeHours = b.dayOvertime
	out.DayOvertimeValue = value(b.dayOvertime, formulas.DayOvertimePct)
	out.NightOvertimeHours = b.nightOvertime
	out.NightOvertimeValue = value(b.nightOvertime, formulas.NightOvertimePct)
	out.DayHolidayOTHours = b.dayHolidayOT
	out.DayHolidayOTValue = value(b.dayHolidayOT, formulas.DaySundayHolidayOTPct)
	out.NightHolidayOTHours = b.nightHolidayOT
	out.NightHolidayOTValue = value(b.nightHolidayOT, formulas.NightSundayHolidayOTPct)

	out.NightSurchargeHours = b.nightSurcharge
	out.NightSurchargeValue = value(b.nightSurcharge, formulas.NightSurchargePct)
	out.HolidaySurchargeHours = b.dayHolidaySurch.Add(b.nightHolidaySurch)
	out.HolidaySurchargeValue = value(b.dayHolidaySurch, formulas.DayHolidaySurchargePct).
		Add(value(b.nightHolidaySurch, formulas.NightHolidaySurchargePct))
	out.SundaySurchargeHours = b.daySundaySurch.Add(b.nightSundaySurch)
	out.SundaySurchargeValue = value(b.daySundaySurch, formulas.DaySundaySurchargePct).
		Add(value(b.nightSundaySurch, formulas.NightSundaySurchargePct))

	out.ExtraRestDays = extraRestDays
	out.ExtraRestDayValue = dailyRate.Mul(decimal.NewFromInt(int64(extraRestDays))).Round(2)

	overtimeTotal := out.DayOvertimeValue.
		Add(out.NightOvertimeValue).
		Add(out.DayHolidayOTValue).
		Add(out.NightHolidayOTValue)
	surchargeTotal := out.NightSurchargeValue.
		Add(out.HolidaySurchargeValue).
		Add(out.SundaySurchargeValue)

	out.TotalEarned = out.ProratedSalary.
		Add(out.ProratedAllowance).
		Add(overtimeTotal).
		Add(surchargeTotal).
		Add(out.ExtraRestDayValue)

	// Transport allowance is excluded from the deduction basis.
	basis := out.TotalEarned.Sub(out.ProratedAllowance)
	out.HealthDeduction = basis.Mul(statutoryRate).Round(2)
	out.PensionDeduction = basis.Mul(statutoryRate).Round(2)
	out.SolidarityDeduction = emp.SolidarityFund.Mul(factor).Round(2)
	out.TotalDeductions = out.HealthDeduction.
		Add(out.PensionDeduction).
		Add(out.SolidarityDeduction)

	out.NetPay = out.TotalEarned.Sub(out.TotalDeductions)

	return out
}
