package schedule

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nominalabs/nomina-backend-go/internal/pkg/validator"
)

type SegmentRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type CreateScheduleRequest struct {
	Name     string           `json:"name"`
	Segments []SegmentRequest `json:"segments"`
}

func validateSegments(segments []SegmentRequest, errs validator.ValidationErrors) validator.ValidationErrors {
	if len(segments) == 0 {
		errs = append(errs, validator.ValidationError{Field: "segments", Message: "at least one segment is required"})
		return errs
	}
	for _, seg := range segments {
		if !validator.IsValidClockTime(seg.Start) || !validator.IsValidClockTime(seg.End) {
			errs = append(errs, validator.ValidationError{Field: "segments", Message: "segment times must be HH:MM"})
			return errs
		}
		if seg.Start == seg.End {
			errs = append(errs, validator.ValidationError{Field: "segments", Message: "segment start and end must differ"})
			return errs
		}
	}
	return errs
}

func (r *CreateScheduleRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	return validateSegments(r.Segments, errs)
}

func (r *CreateScheduleRequest) ToSegments() []TimeSegment {
	segments := make([]TimeSegment, 0, len(r.Segments))
	for _, seg := range r.Segments {
		segments = append(segments, TimeSegment{Start: seg.Start, End: seg.End})
	}
	return segments
}

type UpdateScheduleRequest struct {
	Name     *string          `json:"name"`
	Segments []SegmentRequest `json:"segments"`
}

func (r *UpdateScheduleRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.Segments != nil {
		errs = validateSegments(r.Segments, errs)
	}

	return errs
}

func (r *UpdateScheduleRequest) ToSegments() []TimeSegment {
	segments := make([]TimeSegment, 0, len(r.Segments))
	for _, seg := range r.Segments {
		segments = append(segments, TimeSegment{Start: seg.Start, End: seg.End})
	}
	return segments
}

type SegmentResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ScheduleResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Segments    []SegmentResponse `json:"segments"`
	WorkedHours decimal.Decimal   `json:"worked_hours"`
	CreatedAt   time.Time         `json:"created_at"`
}

func ToResponse(d *ScheduleDefinition) (*ScheduleResponse, error) {
	hours, err := d.WorkedHours()
	if err != nil {
		return nil, err
	}
	segments := make([]SegmentResponse, 0, len(d.Segments))
	for _, seg := range d.Segments {
		segments = append(segments, SegmentResponse{Start: seg.Start, End: seg.End})
	}
	return &ScheduleResponse{
		ID:          d.ID,
		Name:        d.Name,
		Segments:    segments,
		WorkedHours: hours,
		CreatedAt:   d.CreatedAt,
	}, nil
}

type CreateAssignmentRequest struct {
	EmployeeID string `json:"employee_id"`
	WorkDate   string `json:"work_date"`
	ScheduleID string `json:"schedule_id"`
}

func (r *CreateAssignmentRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee is required"})
	}
	if validator.IsEmpty(r.ScheduleID) {
		errs = append(errs, validator.ValidationError{Field: "schedule_id", Message: "schedule is required"})
	}
	if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "work_date", Message: "work date must be YYYY-MM-DD"})
	}

	return errs
}

type AssignmentResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	WorkDate   string `json:"work_date"`
	ScheduleID string `json:"schedule_id"`
}

func ToAssignmentResponse(a *ShiftAssignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		WorkDate:   a.WorkDate.Format("2006-01-02"),
		ScheduleID: a.ScheduleID,
	}
}
