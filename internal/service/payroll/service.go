package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/nominalabs/nomina-backend-go/internal/domain/employee"
	"github.com/nominalabs/nomina-backend-go/internal/domain/holiday"
	"github.com/nominalabs/nomina-backend-go/internal/domain/payroll"
	"github.com/nominalabs/nomina-backend-go/internal/domain/schedule"
	"github.com/nominalabs/nomina-backend-go/internal/pkg/database"
	"github.com/nominalabs/nomina-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db             *database.DB
	engine         *Engine
	formulasRepo   payroll.FormulasRepository
	runRepo        payroll.RunRepository
	breakdownRepo  payroll.BreakdownRepository
	employeeRepo   employee.Repository
	scheduleRepo   schedule.Repository
	assignmentRepo schedule.AssignmentRepository
	holidayRepo    holiday.Repository
}

func NewPayrollService(
	db *database.DB,
	formulasRepo payroll.FormulasRepository,
	runRepo payroll.RunRepository,
	breakdownRepo payroll.BreakdownRepository,
	employeeRepo employee.Repository,
	scheduleRepo schedule.Repository,
	assignmentRepo schedule.AssignmentRepository,
	holidayRepo holiday.Repository,
) payroll.Service {
	return &PayrollServiceImpl{
		db:             db,
		engine:         NewEngine(),
		formulasRepo:   formulasRepo,
		runRepo:        runRepo,
		breakdownRepo:  breakdownRepo,
		employeeRepo:   employeeRepo,
		scheduleRepo:   scheduleRepo,
		assignmentRepo: assignmentRepo,
		holidayRepo:    holidayRepo,
	}
}

// Helper to get company_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return companyID, userID, nil
}

// ========== FORMULAS ==========

func (s *PayrollServiceImpl) GetFormulas(ctx context.Context) (*payroll.FormulasResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	formulas, err := s.formulasRepo.GetByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, payroll.ErrFormulasNotFound) {
			return payroll.ToFormulasResponse(payroll.DefaultFormulas(companyID)), nil
		}
		return nil, err
	}

	return payroll.ToFormulasResponse(formulas), nil
}

func (s *PayrollServiceImpl) UpdateFormulas(ctx context.Context, req *payroll.UpdateFormulasRequest) (*payroll.FormulasResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	formulas, err := s.formulasRepo.GetByCompany(ctx, companyID)
	if err != nil {
		if !errors.Is(err, payroll.ErrFormulasNotFound) {
			return nil, err
		}
		formulas = payroll.DefaultFormulas(companyID)
	}

	req.Apply(formulas)
	if err := formulas.Validate(); err != nil {
		return nil, err
	}

	if err := s.formulasRepo.Upsert(ctx, formulas); err != nil {
		return nil, err
	}

	return payroll.ToFormulasResponse(formulas), nil
}

// ========== RUNS ==========

func (s *PayrollServiceImpl) RunPayroll(ctx context.Context, req *payroll.RunPayrollRequest) (*payroll.RunResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	periodStart, err := time.Parse("2006-01-02", req.PeriodStart)
	if err != nil {
		return nil, payroll.ErrInvalidPeriod
	}
	periodEnd, err := time.Parse("2006-01-02", req.PeriodEnd)
	if err != nil {
		return nil, payroll.ErrInvalidPeriod
	}

	input, err := s.materializeInput(ctx, companyID, periodStart, periodEnd, req.PeriodType)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.Run(*input)
	if err != nil {
		return nil, err
	}

	run := &payroll.PayrollRun{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		PeriodStart:     periodStart,
		PeriodEnd:       periodEnd,
		PeriodType:      req.PeriodType,
		TotalEarned:     result.TotalEarned,
		TotalDeductions: result.TotalDeductions,
		TotalNet:        result.TotalNet,
		EmployeeCount:   result.EmployeeCount,
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.runRepo.Create(txCtx, run); err != nil {
			return err
		}
		for _, b := range result.Breakdowns {
			b.ID = uuid.New().String()
			b.RunID = run.ID
			if err := s.breakdownRepo.Create(txCtx, b); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return payroll.ToRunResponse(run), nil
}

// materializeInput loads everything the engine reads, once, so the run
// sees a consistent snapshot of configuration and catalog data.
func (s *PayrollServiceImpl) materializeInput(
	ctx context.Context,
	companyID string,
	periodStart, periodEnd time.Time,
	periodType string,
) (*PeriodInput, error) {
	formulas, err := s.formulasRepo.GetByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListByCompany(ctx, companyID, true)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, payroll.ErrNoActiveEmployees
	}

	definitions, err := s.scheduleRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	schedules := make(map[string]*schedule.ScheduleDefinition, len(definitions))
	for _, d := range definitions {
		schedules[d.ID] = d
	}

	holidayList, err := s.holidayRepo.ListByRange(ctx, companyID, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	holidays := make(map[string]bool, len(holidayList))
	for _, h := range holidayList {
		holidays[h.HolidayDate.Format("2006-01-02")] = true
	}

	assignments, err := s.assignmentRepo.ListByCompanyAndRange(ctx, companyID, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	byEmployee := make(map[string][]*schedule.ShiftAssignment)
	for _, a := range assignments {
		byEmployee[a.EmployeeID] = append(byEmployee[a.EmployeeID], a)
	}

	input := &PeriodInput{
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		PeriodType:  periodType,
		Formulas:    formulas,
		Schedules:   schedules,
		Holidays:    holidays,
	}
	for _, emp := range employees {
		input.Employees = append(input.Employees, EmployeeInput{
			Employee: emp,
			Shifts:   byEmployee[emp.ID],
		})
	}

	return input, nil
}

func (s *PayrollServiceImpl) ListRuns(ctx context.Context) ([]*payroll.RunResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	runs, err := s.runRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	out := make([]*payroll.RunResponse, 0, len(runs))
	for _, run := range runs {
		out = append(out, payroll.ToRunResponse(run))
	}
	return out, nil
}

func (s *PayrollServiceImpl) GetRun(ctx context.Context, id string) (*payroll.RunResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	run, err := s.runRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return payroll.ToRunResponse(run), nil
}

// ========== BREAKDOWNS ==========

func (s *PayrollServiceImpl) ListBreakdowns(ctx context.Context, filter payroll.BreakdownFilter) ([]*payroll.BreakdownResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	breakdowns, err := s.breakdownRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}

	out := make([]*payroll.BreakdownResponse, 0, len(breakdowns))
	for _, b := range breakdowns {
		out = append(out, payroll.ToBreakdownResponse(b))
	}
	return out, nil
}

func (s *PayrollServiceImpl) GetBreakdown(ctx context.Context, id string) (*payroll.BreakdownResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	b, err := s.breakdownRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return payroll.ToBreakdownResponse(b), nil
}

func (s *PayrollServiceImpl) DeliverBreakdown(ctx context.Context, id string) (*payroll.BreakdownResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	b, err := s.breakdownRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if b.Status != payroll.StatusDraft {
		return nil, payroll.ErrAlreadyDelivered
	}

	if err := s.breakdownRepo.UpdateStatus(ctx, companyID, id, payroll.StatusDelivered); err != nil {
		return nil, err
	}
	b.Status = payroll.StatusDelivered
	return payroll.ToBreakdownResponse(b), nil
}

func (s *PayrollServiceImpl) CorrectBreakdown(ctx context.Context, id string, req *payroll.CorrectBreakdownRequest) (*payroll.BreakdownResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	b, err := s.breakdownRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	// A correction is a manual edit of a delivered record, never a
	// recompute. Drafts are simply re-run instead.
	if b.Status != payroll.StatusDelivered {
		return nil, payroll.ErrNotDelivered
	}

	if req.TotalEarned != nil {
		b.TotalEarned = *req.TotalEarned
	}
	if req.TotalDeductions != nil {
		b.TotalDeductions = *req.TotalDeductions
	}
	b.NetPay = b.TotalEarned.Sub(b.TotalDeductions)
	b.Status = payroll.StatusCorrected
	b.CorrectionNote = &req.Note

	if err := s.breakdownRepo.ApplyCorrection(ctx, b); err != nil {
		return nil, err
	}
	return payroll.ToBreakdownResponse(b), nil
}
