package employee

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nominalabs/nomina-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name               string          `json:"name"`
	Code               string          `json:"code"`
	BaseSalary         decimal.Decimal `json:"base_salary"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	SolidarityFund     decimal.Decimal `json:"solidarity_fund"`
	RestDayPolicy      string          `json:"rest_day_policy"`
	PatternDays        []int           `json:"pattern_days"`
}

func (r *CreateEmployeeRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	r.Code = strings.TrimSpace(r.Code)

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code is required"})
	} else if !validator.IsValidEmployeeCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code must match YYYY-NNNN"})
	}

	if r.BaseSalary.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "base salary must be positive"})
	}
	if r.TransportAllowance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "transport_allowance", Message: "transport allowance cannot be negative"})
	}
	if r.SolidarityFund.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "solidarity_fund", Message: "solidarity fund cannot be negative"})
	}

	if r.RestDayPolicy == "" {
		r.RestDayPolicy = RestPolicyFixedSunday
	}
	if !validator.IsInSlice(r.RestDayPolicy, []string{RestPolicyFixedSunday, RestPolicyPatternDerived}) {
		errs = append(errs, validator.ValidationError{Field: "rest_day_policy", Message: "rest day policy must be fixed_sunday or pattern_derived"})
	}

	for _, d := range r.PatternDays {
		if d < 0 || d > 6 {
			errs = append(errs, validator.ValidationError{Field: "pattern_days", Message: "pattern days must be between 0 (Sunday) and 6 (Saturday)"})
			break
		}
	}

	return errs
}

type UpdateEmployeeRequest struct {
	Name               *string          `json:"name"`
	BaseSalary         *decimal.Decimal `json:"base_salary"`
	TransportAllowance *decimal.Decimal `json:"transport_allowance"`
	SolidarityFund     *decimal.Decimal `json:"solidarity_fund"`
	RestDayPolicy      *string          `json:"rest_day_policy"`
	PatternDays        []int            `json:"pattern_days"`
	IsActive           *bool            `json:"is_active"`
}

func (r *UpdateEmployeeRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.BaseSalary != nil && r.BaseSalary.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "base salary must be positive"})
	}
	if r.TransportAllowance != nil && r.TransportAllowance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "transport_allowance", Message: "transport allowance cannot be negative"})
	}
	if r.SolidarityFund != nil && r.SolidarityFund.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "solidarity_fund", Message: "solidarity fund cannot be negative"})
	}
	if r.RestDayPolicy != nil && !validator.IsInSlice(*r.RestDayPolicy, []string{RestPolicyFixedSunday, RestPolicyPatternDerived}) {
		errs = append(errs, validator.ValidationError{Field: "rest_day_policy", Message: "rest day policy must be fixed_sunday or pattern_derived"})
	}
	for _, d := range r.PatternDays {
		if d < 0 || d > 6 {
			errs = append(errs, validator.ValidationError{Field: "pattern_days", Message: "pattern days must be between 0 (Sunday) and 6 (Saturday)"})
			break
		}
	}

	return errs
}

type EmployeeResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Code               string          `json:"code"`
	BaseSalary         decimal.Decimal `json:"base_salary"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	SolidarityFund     decimal.Decimal `json:"solidarity_fund"`
	RestDayPolicy      string          `json:"rest_day_policy"`
	PatternDays        []int           `json:"pattern_days"`
	IsActive           bool            `json:"is_active"`
	CreatedAt          time.Time       `json:"created_at"`
}

func ToResponse(e *Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:                 e.ID,
		Name:               e.Name,
		Code:               e.Code,
		BaseSalary:         e.BaseSalary,
		TransportAllowance: e.TransportAllowance,
		SolidarityFund:     e.SolidarityFund,
		RestDayPolicy:      e.RestDayPolicy,
		PatternDays:        e.PatternDays,
		IsActive:           e.IsActive,
		CreatedAt:          e.CreatedAt,
	}
}
