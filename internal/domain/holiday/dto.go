package holiday

import (
	"strings"

	"github.com/nominalabs/nomina-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	HolidayDate string `json:"holiday_date"`
	Description string `json:"description"`
}

func (r *CreateHolidayRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	r.Description = strings.TrimSpace(r.Description)

	if _, ok := validator.IsValidDate(r.HolidayDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "holiday_date", Message: "holiday date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description is required"})
	}

	return errs
}

type HolidayResponse struct {
	ID          string `json:"id"`
	HolidayDate string `json:"holiday_date"`
	Description string `json:"description"`
}

func ToResponse(h *Holiday) *HolidayResponse {
	return &HolidayResponse{
		ID:          h.ID,
		HolidayDate: h.HolidayDate.Format("2006-01-02"),
		Description: h.Description,
	}
}
