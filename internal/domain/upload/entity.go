package upload

import "time"

const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusPartial    = "partial"
	StatusFailed     = "failed"
)

// Upload is one import history entry.
type Upload struct {
	ID               string
	FileName         *string
	StoredPath       *string
	Checksum         *string
	TargetDate       time.Time
	RecordsProcessed int
	RecordsSuccess   int
	RecordsFailed    int
	Status           string
	ErrorLog         *string
	UploadedAt       time.Time
}

// StatusFor picks the history status from the import counters.
func StatusFor(success, failed int) string {
	switch {
	case success == 0:
		return StatusFailed
	case failed > 0:
		return StatusPartial
	default:
		return StatusCompleted
	}
}
