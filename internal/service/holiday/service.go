package holiday

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/nominalabs/nomina-backend-go/internal/domain/holiday"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.Repository
}

func NewHolidayService(holidayRepo holiday.Repository) holiday.Service {
	return &HolidayServiceImpl{holidayRepo: holidayRepo}
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

func (s *HolidayServiceImpl) Create(ctx context.Context, req *holiday.CreateHolidayRequest) (*holiday.HolidayResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	holidayDate, err := time.Parse("2006-01-02", req.HolidayDate)
	if err != nil {
		return nil, errors.New("holiday date must be YYYY-MM-DD")
	}

	h := &holiday.Holiday{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		HolidayDate: holidayDate,
		Description: req.Description,
	}
	if err := s.holidayRepo.Create(ctx, h); err != nil {
		return nil, err
	}
	return holiday.ToResponse(h), nil
}

func (s *HolidayServiceImpl) List(ctx context.Context, from, to string) ([]*holiday.HolidayResponse, error) {
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

	holidays, err := s.holidayRepo.ListByRange(ctx, companyID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	out := make([]*holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, holiday.ToResponse(h))
	}
	return out, nil
}

func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return err
	}
	return s.holidayRepo.Delete(ctx, companyID, id)
}
