package upload

import "errors"

var (
	ErrFutureDate      = errors.New("attendance date cannot be in the future")
	ErrDuplicateUpload = errors.New("attendance data for this date has already been uploaded")
	ErrDateMismatch    = errors.New("target date does not appear in the uploaded rows")
	ErrNoRecords       = errors.New("no attendance rows to import")
	ErrUploadNotFound  = errors.New("no upload history found")
	ErrFileNotFound    = errors.New("source file not available for the latest upload")
)
