package payroll

import "context"

type FormulasRepository interface {
	GetByCompany(ctx context.Context, companyID string) (*SurchargeFormulas, error)
	Upsert(ctx context.Context, f *SurchargeFormulas) error
}

type RunRepository interface {
	Create(ctx context.Context, run *PayrollRun) error
	GetByID(ctx context.Context, companyID string, id string) (*PayrollRun, error)
	ListByCompany(ctx context.Context, companyID string) ([]*PayrollRun, error)
}

type BreakdownRepository interface {
	Create(ctx context.Context, b *WageBreakdown) error
	GetByID(ctx context.Context, companyID string, id string) (*WageBreakdown, error)
	List(ctx context.Context, companyID string, filter BreakdownFilter) ([]*WageBreakdown, error)
	UpdateStatus(ctx context.Context, companyID string, id string, status string) error
	ApplyCorrection(ctx context.Context, b *WageBreakdown) error
}
