package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Import(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
	CalendarDates(w http.ResponseWriter, r *http.Request)
	DeleteAll(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	maxUploadBytes    int64
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, maxUploadBytes int64) AttendanceHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 << 20
	}
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		maxUploadBytes:    maxUploadBytes,
	}
}

// rangeFromQuery reads start_date, end_date and employee_id.
func rangeFromQuery(r *http.Request) attendance.RangeRequest {
	q := r.URL.Query()
	return attendance.RangeRequest{
		StartDate:  strings.TrimSpace(q.Get("start_date")),
		EndDate:    strings.TrimSpace(q.Get("end_date")),
		EmployeeID: strings.TrimSpace(q.Get("employee_id")),
	}
}

// Import handles POST /attendance/import. Accepts multipart with a 'data' JSON field
// and an optional source 'file', or a plain JSON body.
func (h *attendanceHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var req attendance.ImportRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
		if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				response.BadRequest(w, fmt.Sprintf("Upload exceeds the %d byte limit", tooLarge.Limit), nil)
				return
			}
			slog.Error("Failed to parse multipart form", "error", err)
			response.BadRequest(w, "Failed to parse form data", nil)
			return
		}

		// Get JSON data from 'data' field
		dataJSON := r.FormValue("data")
		if dataJSON == "" {
			response.BadRequest(w, "Field 'data' is required", nil)
			return
		}
		if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
			slog.Error("Failed to unmarshal JSON data", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}

		// Source file is optional
		file, fileHeader, err := r.FormFile("file")
		switch {
		case err == nil:
			defer file.Close()
			req.File = file
			req.FileHeader = fileHeader
		case !errors.Is(err, http.ErrMissingFile):
			slog.Error("Failed to get file from form", "error", err)
			response.BadRequest(w, "Invalid file upload", nil)
			return
		}
	} else {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
	}

	result, err := h.attendanceService.Import(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance imported", result)
}

// List handles GET /attendance
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.List(r.Context(), rangeFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithTotal(w, result, len(result))
}

// ListByDate handles GET /attendance/date
func (h *attendanceHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		response.BadRequest(w, "date query parameter is required", nil)
		return
	}

	result, err := h.attendanceService.ListByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithTotal(w, result, len(result))
}

// CalendarDates handles GET /attendance/calendar-dates
func (h *attendanceHandlerImpl) CalendarDates(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.CalendarDates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteAll handles DELETE /attendance
func (h *attendanceHandlerImpl) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.DeleteAll(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "All attendance data deleted", nil)
}
