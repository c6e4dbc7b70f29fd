package employee

import "context"

type Service interface {
	Create(ctx context.Context, req *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (*EmployeeResponse, error)
	List(ctx context.Context, activeOnly bool) ([]*EmployeeResponse, error)
	Update(ctx context.Context, id string, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}
