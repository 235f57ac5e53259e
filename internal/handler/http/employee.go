package http

import (
	"net/http"
	"strings"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// List handles GET /employees
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.List(r.Context(), strings.TrimSpace(r.URL.Query().Get("employee_id")))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithTotal(w, result, len(result))
}

// Summary handles GET /employees/summary
func (h *employeeHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.Summary(r.Context(), rangeFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithTotal(w, result, len(result))
}

// History handles GET /employees/{employeeID}/attendance
func (h *employeeHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.employeeService.History(r.Context(), employeeID, rangeFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
