package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/settings"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/handler/http/response"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Recalculate(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService   settings.SettingsService
	attendanceService attendance.AttendanceService
}

func NewSettingsHandler(settingsService settings.SettingsService, attendanceService attendance.AttendanceService) SettingsHandler {
	return &settingsHandlerImpl{
		settingsService:   settingsService,
		attendanceService: attendanceService,
	}
}

// Get handles GET /settings
func (h *settingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.GetSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update handles PUT /settings
func (h *settingsHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.settingsService.UpdateSettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings updated", result)
}

// Recalculate handles POST /settings/recalculate
func (h *settingsHandlerImpl) Recalculate(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecalculateRequest
	if force := r.URL.Query().Get("force"); force != "" {
		parsed, err := strconv.ParseBool(force)
		if err != nil {
			response.BadRequest(w, "invalid force parameter", nil)
			return
		}
		req.Force = parsed
	}

	result, err := h.attendanceService.Recalculate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance recalculated", result)
}
