package payroll

import "errors"

var (
	// Configuration errors abort a whole run before any result exists.
	ErrFormulasNotFound    = errors.New("surcharge formulas not configured")
	ErrInvalidDivisor      = errors.New("rate divisor must be greater than zero")
	ErrInvalidThreshold    = errors.New("weekly hour threshold must be greater than zero")
	ErrNegativeCoefficient = errors.New("surcharge coefficients cannot be negative")

	ErrInvalidPeriod       = errors.New("invalid pay period")
	ErrRunNotFound         = errors.New("payroll run not found")
	ErrBreakdownNotFound   = errors.New("wage breakdown not found")
	ErrAlreadyDelivered    = errors.New("wage breakdown already delivered")
	ErrNotDelivered        = errors.New("only delivered breakdowns can be corrected")
	ErrNoActiveEmployees   = errors.New("no active employees to run payroll for")
)
