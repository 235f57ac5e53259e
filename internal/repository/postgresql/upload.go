package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/upload"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const uploadColumns = `
	id, file_name, file_path, checksum, target_date,
	records_processed, records_success, records_failed, status, error_log, uploaded_at`

type uploadRepository struct {
	db *database.DB
}

func NewUploadRepository(db *database.DB) upload.UploadRepository {
	return &uploadRepository{db: db}
}

// Create implements upload.UploadRepository.
func (r *uploadRepository) Create(ctx context.Context, u upload.Upload) (upload.Upload, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO upload_history (
			id, file_name, file_path, checksum, target_date,
			records_processed, records_success, records_failed, status, error_log
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING uploaded_at
	`

	err := q.QueryRow(ctx, query,
		u.ID,
		u.FileName,
		u.StoredPath,
		u.Checksum,
		u.TargetDate,
		u.RecordsProcessed,
		u.RecordsSuccess,
		u.RecordsFailed,
		u.Status,
		u.ErrorLog,
	).Scan(&u.UploadedAt)
	if err != nil {
		return upload.Upload{}, fmt.Errorf("failed to create upload history: %w", err)
	}

	return u, nil
}

// Finish implements upload.UploadRepository.
func (r *uploadRepository) Finish(ctx context.Context, u upload.Upload) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE upload_history SET
			records_processed = $2,
			records_success   = $3,
			records_failed    = $4,
			status            = $5,
			error_log         = $6
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, u.ID, u.RecordsProcessed, u.RecordsSuccess, u.RecordsFailed, u.Status, u.ErrorLog)
	if err != nil {
		return fmt.Errorf("failed to finish upload history: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return upload.ErrUploadNotFound
	}
	return nil
}

// ExistsForDate implements upload.UploadRepository.
func (r *uploadRepository) ExistsForDate(ctx context.Context, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM upload_history WHERE target_date = $1)`, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check upload history: %w", err)
	}
	return exists, nil
}

// List implements upload.UploadRepository.
func (r *uploadRepository) List(ctx context.Context, limit int) ([]upload.Upload, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + uploadColumns + `
		FROM upload_history
		ORDER BY uploaded_at DESC
		LIMIT $1`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upload history: %w", err)
	}
	defer rows.Close()

	uploads := []upload.Upload{}
	for rows.Next() {
		u, err := scanUpload(rows)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate upload history: %w", err)
	}

	return uploads, nil
}

// LatestWithFile implements upload.UploadRepository.
func (r *uploadRepository) LatestWithFile(ctx context.Context) (upload.Upload, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + uploadColumns + `
		FROM upload_history
		WHERE file_path IS NOT NULL
		ORDER BY uploaded_at DESC
		LIMIT 1`

	u, err := scanUpload(q.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return upload.Upload{}, upload.ErrUploadNotFound
		}
		return upload.Upload{}, err
	}
	return u, nil
}

// DeleteAll implements upload.UploadRepository.
func (r *uploadRepository) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM upload_history`); err != nil {
		return fmt.Errorf("failed to delete upload history: %w", err)
	}
	return nil
}

func scanUpload(row pgx.Row) (upload.Upload, error) {
	var u upload.Upload
	err := row.Scan(
		&u.ID, &u.FileName, &u.StoredPath, &u.Checksum, &u.TargetDate,
		&u.RecordsProcessed, &u.RecordsSuccess, &u.RecordsFailed, &u.Status, &u.ErrorLog, &u.UploadedAt,
	)
	if err != nil {
		return upload.Upload{}, fmt.Errorf("failed to scan upload history: %w", err)
	}
	return u, nil
}
