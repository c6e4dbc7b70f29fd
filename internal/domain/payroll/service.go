package payroll

import "context"

type Service interface {
	GetFormulas(ctx context.Context) (*FormulasResponse, error)
	UpdateFormulas(ctx context.Context, req *UpdateFormulasRequest) (*FormulasResponse, error)

	RunPayroll(ctx context.Context, req *RunPayrollRequest) (*RunResponse, error)
	ListRuns(ctx context.Context) ([]*RunResponse, error)
	GetRun(ctx context.Context, id string) (*RunResponse, error)

	ListBreakdowns(ctx context.Context, filter BreakdownFilter) ([]*BreakdownResponse, error)
	GetBreakdown(ctx context.Context, id string) (*BreakdownResponse, error)
	DeliverBreakdown(ctx context.Context, id string) (*BreakdownResponse, error)
	CorrectBreakdown(ctx context.Context, id string, req *CorrectBreakdownRequest) (*BreakdownResponse, error)
}
