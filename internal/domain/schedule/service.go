package schedule

import "context"

type Service interface {
	Create(ctx context.Context, req *CreateScheduleRequest) (*ScheduleResponse, error)
	GetByID(ctx context.Context, id string) (*ScheduleResponse, error)
	List(ctx context.Context) ([]*ScheduleResponse, error)
	Update(ctx context.Context, id string, req *UpdateScheduleRequest) (*ScheduleResponse, error)
	Delete(ctx context.Context, id string) error

	Assign(ctx context.Context, req *CreateAssignmentRequest) (*AssignmentResponse, error)
	ListAssignments(ctx context.Context, employeeID string, from, to string) ([]*AssignmentResponse, error)
	DeleteAssignment(ctx context.Context, id string) error
}
