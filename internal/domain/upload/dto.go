package upload

import (
	"io"
	"time"
)

type UploadResponse struct {
	ID               string    `json:"id"`
	FileName         *string   `json:"file_name"`
	Checksum         *string   `json:"checksum,omitempty"`
	TargetDate       string    `json:"target_date"`
	RecordsProcessed int       `json:"records_processed"`
	RecordsSuccess   int       `json:"records_success"`
	RecordsFailed    int       `json:"records_failed"`
	Status           string    `json:"status"`
	ErrorLog         *string   `json:"error_log,omitempty"`
	UploadedAt       time.Time `json:"uploaded_at"`
}

func NewUploadResponse(u Upload) UploadResponse {
	return UploadResponse{
		ID:               u.ID,
		FileName:         u.FileName,
		Checksum:         u.Checksum,
		TargetDate:       u.TargetDate.Format("2006-01-02"),
		RecordsProcessed: u.RecordsProcessed,
		RecordsSuccess:   u.RecordsSuccess,
		RecordsFailed:    u.RecordsFailed,
		Status:           u.Status,
		ErrorLog:         u.ErrorLog,
		UploadedAt:       u.UploadedAt,
	}
}

// LatestUploadResponse carries a time-limited link to the stored source file.
type LatestUploadResponse struct {
	UploadResponse
	FileURL   string    `json:"file_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// FileDownload streams a stored source file. Callers close Body.
type FileDownload struct {
	FileName    string
	ContentType string
	Body        io.ReadCloser
}
