package employee

import "context"

type Repository interface {
	Create(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, companyID string, id string) (*Employee, error)
	GetByCode(ctx context.Context, companyID string, code string) (*Employee, error)
	ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]*Employee, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, companyID string, id string) error
}
