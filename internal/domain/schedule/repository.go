package schedule

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, d *ScheduleDefinition) error
	GetByID(ctx context.Context, companyID string, id string) (*ScheduleDefinition, error)
	ListByCompany(ctx context.Context, companyID string) ([]*ScheduleDefinition, error)
	Update(ctx context.Context, d *ScheduleDefinition) error
	Delete(ctx context.Context, companyID string, id string) error
}

type AssignmentRepository interface {
	Create(ctx context.Context, a *ShiftAssignment) error
	GetByID(ctx context.Context, companyID string, id string) (*ShiftAssignment, error)
	ListByEmployeeAndRange(ctx context.Context, companyID string, employeeID string, from, to time.Time) ([]*ShiftAssignment, error)
	ListByCompanyAndRange(ctx context.Context, companyID string, from, to time.Time) ([]*ShiftAssignment, error)
	ExistsForScheduleBefore(ctx context.Context, scheduleID string, before time.Time) (bool, error)
	Delete(ctx context.Context, companyID string, id string) error
}
