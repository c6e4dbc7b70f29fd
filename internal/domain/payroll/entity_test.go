package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDefaultFormulasAreValid(t *testing.T) {
	// Setup
	f := DefaultFormulas("company-1")

	// Act
	err := f.Validate()

	// Assert
	require.NoError(t, err)
	assert.True(t, f.HourlyDivisor.Equal(dec("240")))
	assert.True(t, f.DailyDivisor.Equal(dec("30")))
	assert.True(t, f.WeeklyHourThreshold.Equal(dec("48")))
	assert.True(t, f.NightSurchargePct.Equal(dec("0.35")))
	assert.True(t, f.NightSundayHolidayOTPct.Equal(dec("1.50")))
}

func TestFormulasValidateRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *SurchargeFormulas)
		wantErr error
	}{
		{
			name:    "zero hourly divisor",
			mutate:  func(f *SurchargeFormulas) { f.HourlyDivisor = decimal.Zero },
			wantErr: ErrInvalidDivisor,
		},
		{
			name:    "negative daily divisor",
			mutate:  func(f *SurchargeFormulas) { f.DailyDivisor = dec("-30") },
			wantErr: ErrInvalidDivisor,
		},
		{
			name:    "zero weekly threshold",
			mutate:  func(f *SurchargeFormulas) { f.WeeklyHourThreshold = decimal.Zero },
			wantErr: ErrInvalidThreshold,
		},
		{
			name:    "negative coefficient",
			mutate:  func(f *SurchargeFormulas) { f.DayOvertimePct = dec("-0.25") },
			wantErr: ErrNegativeCoefficient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			f := DefaultFormulas("company-1")
			tt.mutate(f)

			// Act
			err := f.Validate()

			// Assert
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFormulasValidateAllowsZeroCoefficients(t *testing.T) {
	// Setup
	f := DefaultFormulas("company-1")
	f.NightSurchargePct = decimal.Zero
	f.DaySundaySurchargePct = decimal.Zero

	// Act
	err := f.Validate()

	// Assert
	assert.NoError(t, err)
}

func TestUpdateFormulasRequestAppliesOnlySuppliedFields(t *testing.T) {
	// Setup
	f := DefaultFormulas("company-1")
	night := dec("0.40")
	threshold := dec("44")
	req := &UpdateFormulasRequest{
		NightSurchargePct:   &night,
		WeeklyHourThreshold: &threshold,
	}

	// Act
	req.Apply(f)

	// Assert
	assert.True(t, f.NightSurchargePct.Equal(dec("0.40")))
	assert.True(t, f.WeeklyHourThreshold.Equal(dec("44")))
	// Untouched fields keep their previous values.
	assert.True(t, f.HourlyDivisor.Equal(dec("240")))
	assert.True(t, f.DayOvertimePct.Equal(dec("0.25")))
}

func TestRunPayrollRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		req       RunPayrollRequest
		wantField string
	}{
		{
			name: "valid full month",
			req:  RunPayrollRequest{PeriodStart: "2025-06-01", PeriodEnd: "2025-06-30", PeriodType: PeriodFullMonth},
		},
		{
			name:      "bad start date",
			req:       RunPayrollRequest{PeriodStart: "06/01/2025", PeriodEnd: "2025-06-30", PeriodType: PeriodFullMonth},
			wantField: "period_start",
		},
		{
			name:      "end before start",
			req:       RunPayrollRequest{PeriodStart: "2025-06-30", PeriodEnd: "2025-06-01", PeriodType: PeriodFullMonth},
			wantField: "period_end",
		},
		{
			name:      "unknown period type",
			req:       RunPayrollRequest{PeriodStart: "2025-06-01", PeriodEnd: "2025-06-30", PeriodType: "weekly"},
			wantField: "period_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate()

			if tt.wantField == "" {
				assert.Empty(t, errs)
				return
			}
			require.NotEmpty(t, errs)
			assert.Contains(t, errs.ToMap(), tt.wantField)
		})
	}
}

func TestCorrectBreakdownRequestValidate(t *testing.T) {
	earned := dec("2500000")

	t.Run("requires a note", func(t *testing.T) {
		req := CorrectBreakdownRequest{TotalEarned: &earned}

		errs := req.Validate()

		require.NotEmpty(t, errs)
		assert.Contains(t, errs.ToMap(), "note")
	})

	t.Run("requires at least one override", func(t *testing.T) {
		req := CorrectBreakdownRequest{Note: "typo in earned total"}

		errs := req.Validate()

		require.NotEmpty(t, errs)
		assert.Contains(t, errs.ToMap(), "total_earned")
	})

	t.Run("rejects negative totals", func(t *testing.T) {
		negative := dec("-1")
		req := CorrectBreakdownRequest{Note: "bad", TotalDeductions: &negative}

		errs := req.Validate()

		require.NotEmpty(t, errs)
		assert.Contains(t, errs.ToMap(), "total_deductions")
	})

	t.Run("accepts a complete correction", func(t *testing.T) {
		req := CorrectBreakdownRequest{Note: "adjusted after audit", TotalEarned: &earned}

		errs := req.Validate()

		assert.Empty(t, errs)
	})
}
