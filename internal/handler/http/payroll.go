package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nominalabs/nomina-backend-go/internal/domain/payroll"
	"github.com/nominalabs/nomina-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	// Formulas
	GetFormulas(w http.ResponseWriter, r *http.Request)
	UpdateFormulas(w http.ResponseWriter, r *http.Request)

	// Runs
	RunPayroll(w http.ResponseWriter, r *http.Request)
	ListRuns(w http.ResponseWriter, r *http.Request)
	GetRun(w http.ResponseWriter, r *http.Request)

	// Breakdowns
	ListBreakdowns(w http.ResponseWriter, r *http.Request)
	GetBreakdown(w http.ResponseWriter, r *http.Request)
	DeliverBreakdown(w http.ResponseWriter, r *http.Request)
	CorrectBreakdown(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== FORMULAS ==========

func (h *payrollHandlerImpl) GetFormulas(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetFormulas(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *payrollHandlerImpl) UpdateFormulas(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateFormulasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.UpdateFormulas(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ========== RUNS ==========

func (h *payrollHandlerImpl) RunPayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.RunPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	result, err := h.payrollService.RunPayroll(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Payroll run completed", result)
}

func (h *payrollHandlerImpl) ListRuns(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListRuns(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetRun(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ========== BREAKDOWNS ==========

func (h *payrollHandlerImpl) ListBreakdowns(w http.ResponseWriter, r *http.Request) {
	filter := payroll.BreakdownFilter{
		RunID:      r.URL.Query().Get("run_id"),
		EmployeeID: r.URL.Query().Get("employee_id"),
		Status:     r.URL.Query().Get("status"),
	}

	result, err := h.payrollService.ListBreakdowns(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetBreakdown(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *payrollHandlerImpl) DeliverBreakdown(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.DeliverBreakdown(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Wage breakdown delivered", result)
}

func (h *payrollHandlerImpl) CorrectBreakdown(w http.ResponseWriter, r *http.Request) {
	var req payroll.CorrectBreakdownRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	result, err := h.payrollService.CorrectBreakdown(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Wage breakdown corrected", result)
}
