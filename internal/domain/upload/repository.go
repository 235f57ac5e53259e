package upload

import (
	"context"
	"time"
)

type UploadRepository interface {
	// Create fails with a unique violation when the target date was already imported
	Create(ctx context.Context, u Upload) (Upload, error)

	// Finish stores the final counters, status and error log of an import
	Finish(ctx context.Context, u Upload) error

	// ExistsForDate reports whether an import already targeted the date
	ExistsForDate(ctx context.Context, date time.Time) (bool, error)

	// List returns the most recent entries first
	List(ctx context.Context, limit int) ([]Upload, error)

	// LatestWithFile returns the newest entry that kept its source file
	LatestWithFile(ctx context.Context) (Upload, error)

	DeleteAll(ctx context.Context) error
}
