package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nominalabs/nomina-backend-go/internal/domain/schedule"
	"github.com/nominalabs/nomina-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	Assign(w http.ResponseWriter, r *http.Request)
	ListAssignments(w http.ResponseWriter, r *http.Request)
	DeleteAssignment(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.Service
}

func NewScheduleHandler(scheduleService schedule.Service) ScheduleHandler {
	return &scheduleHandlerImpl{scheduleService: scheduleService}
}

// ========== SCHEDULES ==========

func (h *scheduleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	result, err := h.scheduleService.Create(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Schedule created", result)
}

func (h *scheduleHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *scheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *scheduleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	result, err := h.scheduleService.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *scheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Schedule deleted", nil)
}

// ========== ASSIGNMENTS ==========

func (h *scheduleHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	result, err := h.scheduleService.Assign(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Shift assigned", result)
}

func (h *scheduleHandlerImpl) ListAssignments(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		response.BadRequest(w, "from and to query parameters are required", nil)
		return
	}

	result, err := h.scheduleService.ListAssignments(r.Context(), r.URL.Query().Get("employee_id"), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *scheduleHandlerImpl) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.DeleteAssignment(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift assignment deleted", nil)
}
