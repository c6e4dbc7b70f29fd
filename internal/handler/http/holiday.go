package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nominalabs/nomina-backend-go/internal/domain/holiday"
	"github.com/nominalabs/nomina-backend-go/internal/handler/http/response"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService holiday.Service
}

func NewHolidayHandler(holidayService holiday.Service) HolidayHandler {
	return &holidayHandlerImpl{holidayService: holidayService}
}

func (h *holidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	result, err := h.holidayService.Create(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Holiday created", result)
}

func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		response.BadRequest(w, "from and to query parameters are required", nil)
		return
	}

	result, err := h.holidayService.List(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *holidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.holidayService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Holiday deleted", nil)
}
