package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/nominalabs/nomina-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.Repository
}

func NewEmployeeService(employeeRepo employee.Repository) employee.Service {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
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

func (s *EmployeeServiceImpl) Create(ctx context.Context, req *employee.CreateEmployeeRequest) (*employee.EmployeeResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.employeeRepo.GetByCode(ctx, companyID, req.Code)
	if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, employee.ErrEmployeeCodeExists
	}

	e := &employee.Employee{
		ID:                 uuid.New().String(),
		CompanyID:          companyID,
		Name:               req.Name,
		Code:               req.Code,
		BaseSalary:         req.BaseSalary,
		TransportAllowance: req.TransportAllowance,
		SolidarityFund:     req.SolidarityFund,
		RestDayPolicy:      req.RestDayPolicy,
		PatternDays:        req.PatternDays,
		IsActive:           true,
	}
	if err := s.employeeRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	return employee.ToResponse(e), nil
}

func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (*employee.EmployeeResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	e, err := s.employeeRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return employee.ToResponse(e), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, activeOnly bool) ([]*employee.EmployeeResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListByCompany(ctx, companyID, activeOnly)
	if err != nil {
		return nil, err
	}

	out := make([]*employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, employee.ToResponse(e))
	}
	return out, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req *employee.UpdateEmployeeRequest) (*employee.EmployeeResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	e, err := s.employeeRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.BaseSalary != nil {
		e.BaseSalary = *req.BaseSalary
	}
	if req.TransportAllowance != nil {
		e.TransportAllowance = *req.TransportAllowance
	}
	if req.SolidarityFund != nil {
		e.SolidarityFund = *req.SolidarityFund
	}
	if req.RestDayPolicy != nil {
		e.RestDayPolicy = *req.RestDayPolicy
	}
	if req.PatternDays != nil {
		e.PatternDays = req.PatternDays
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}

	if err := s.employeeRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return employee.ToResponse(e), nil
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, companyID, id)
}
