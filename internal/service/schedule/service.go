package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/nominalabs/nomina-backend-go/internal/domain/employee"
	"github.com/nominalabs/nomina-backend-go/internal/domain/schedule"
)

type ScheduleServiceImpl struct {
	scheduleRepo   schedule.Repository
	assignmentRepo schedule.AssignmentRepository
	employeeRepo   employee.Repository
	now            func() time.Time
}

func NewScheduleService(
	scheduleRepo schedule.Repository,
	assignmentRepo schedule.AssignmentRepository,
	employeeRepo employee.Repository,
) schedule.Service {
	return &ScheduleServiceImpl{
		scheduleRepo:   scheduleRepo,
		assignmentRepo: assignmentRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
}

func companyFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}

// ========== SCHEDULES ==========

func (s *ScheduleServiceImpl) Create(ctx context.Context, req *schedule.CreateScheduleRequest) (*schedule.ScheduleResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	d := &schedule.ScheduleDefinition{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      req.Name,
		Segments:  req.ToSegments(),
	}
	if err := s.scheduleRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	return schedule.ToResponse(d)
}

func (s *ScheduleServiceImpl) GetByID(ctx context.Context, id string) (*schedule.ScheduleResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	d, err := s.scheduleRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return schedule.ToResponse(d)
}

func (s *ScheduleServiceImpl) List(ctx context.Context) ([]*schedule.ScheduleResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	definitions, err := s.scheduleRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	out := make([]*schedule.ScheduleResponse, 0, len(definitions))
	for _, d := range definitions {
		resp, err := schedule.ToResponse(d)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *ScheduleServiceImpl) Update(ctx context.Context, id string, req *schedule.UpdateScheduleRequest) (*schedule.ScheduleResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	d, err := s.scheduleRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Segments != nil {
		// Segments referenced by processed history are frozen; changing
		// them would silently rewrite past payroll inputs.
		today := s.now().Truncate(24 * time.Hour)
		inUse, err := s.assignmentRepo.ExistsForScheduleBefore(ctx, id, today)
		if err != nil {
			return nil, err
		}
		if inUse {
			return nil, schedule.ErrScheduleInUse
		}
		d.Segments = req.ToSegments()
	}

	if err := s.scheduleRepo.Update(ctx, d); err != nil {
		return nil, err
	}
	return schedule.ToResponse(d)
}

func (s *ScheduleServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return err
	}

	inUse, err := s.assignmentRepo.ExistsForScheduleBefore(ctx, id, s.now().Truncate(24*time.Hour))
	if err != nil {
		return err
	}
	if inUse {
		return schedule.ErrScheduleInUse
	}
	return s.scheduleRepo.Delete(ctx, companyID, id)
}

// ========== ASSIGNMENTS ==========

func (s *ScheduleServiceImpl) Assign(ctx context.Context, req *schedule.CreateAssignmentRequest) (*schedule.AssignmentResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, companyID, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !emp.IsActive {
		return nil, employee.ErrEmployeeInactive
	}

	if _, err := s.scheduleRepo.GetByID(ctx, companyID, req.ScheduleID); err != nil {
		return nil, err
	}

	workDate, err := time.Parse("2006-01-02", req.WorkDate)
	if err != nil {
		return nil, errors.New("work date must be YYYY-MM-DD")
	}

	a := &schedule.ShiftAssignment{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		EmployeeID: req.EmployeeID,
		WorkDate:   workDate,
		ScheduleID: req.ScheduleID,
	}
	if err := s.assignmentRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return schedule.ToAssignmentResponse(a), nil
}

func (s *ScheduleServiceImpl) ListAssignments(ctx context.Context, employeeID string, from, to string) ([]*schedule.AssignmentResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, errors.New("from date must be YYYY-MM-DD")
	}
	toDate, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, errors.New("to date must be YYYY-MM-DD")
	}

	var assignments []*schedule.ShiftAssignment
	if employeeID != "" {
		assignments, err = s.assignmentRepo.ListByEmployeeAndRange(ctx, companyID, employeeID, fromDate, toDate)
	} else {
		assignments, err = s.assignmentRepo.ListByCompanyAndRange(ctx, companyID, fromDate, toDate)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*schedule.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, schedule.ToAssignmentResponse(a))
	}
	return out, nil
}

func (s *ScheduleServiceImpl) DeleteAssignment(ctx context.Context, id string) error {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return err
	}
	return s.assignmentRepo.Delete(ctx, companyID, id)
}
