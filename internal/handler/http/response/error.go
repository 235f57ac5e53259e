package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/settings"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/upload"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error. Invalid schedule configs land here too.
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Time and range errors
	case errors.Is(err, clock.ErrInvalidTimeFormat),
		errors.Is(err, clock.ErrInvalidPunchOrder),
		errors.Is(err, attendance.ErrInvalidDateRange),
		errors.Is(err, report.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)

	case errors.Is(err, settings.ErrInvalidScheduleConfig):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Employee not found")

	// Upload domain errors
	case errors.Is(err, upload.ErrFutureDate),
		errors.Is(err, upload.ErrDateMismatch),
		errors.Is(err, upload.ErrNoRecords):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, upload.ErrDuplicateUpload):
		Conflict(w, err.Error())
	case errors.Is(err, upload.ErrUploadNotFound):
		NotFound(w, "No upload found")
	case errors.Is(err, upload.ErrFileNotFound):
		NotFound(w, "Uploaded file not found")

	// Report domain errors
	case errors.Is(err, report.ErrNoData):
		NotFound(w, err.Error())

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
