package attendance

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/settings"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/upload"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/checksum"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/storage"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/validator"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/sync/errgroup"
)

const maxErrorLogLines = 50

// Options tunes the batch operations.
type Options struct {
	// Workers bounds concurrent record writes during import and recalculation
	Workers int
	// MaxFileBytes caps the stored source file
	MaxFileBytes int64
	// Now is the wall clock used to reject future dates
	Now func() time.Time
}

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employeeRepo employee.EmployeeRepository
	uploadRepo   upload.UploadRepository
	configs      settings.ConfigProvider
	fileStorage  storage.FileStorage
	opts         Options
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	uploadRepo upload.UploadRepository,
	configs settings.ConfigProvider,
	fileStorage storage.FileStorage,
	opts Options,
) attendance.AttendanceService {
	if opts.Workers <= 0 {
		opts.Workers = 8
	}
	if opts.MaxFileBytes <= 0 {
		opts.MaxFileBytes = 10 << 20
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		employeeRepo:         employeeRepo,
		uploadRepo:           uploadRepo,
		configs:              configs,
		fileStorage:          fileStorage,
		opts:                 opts,
	}
}

func (s *AttendanceServiceImpl) today() time.Time {
	return attendance.NormalizeDate(s.opts.Now().UTC())
}

func (s *AttendanceServiceImpl) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, fn)
}

// importRow is a row that passed date parsing.
type importRow struct {
	index int
	date  time.Time
	row   attendance.ImportRow
}

// Import implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Import(ctx context.Context, req attendance.ImportRequest) (attendance.ImportResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ImportResponse{}, err
	}
	if len(req.Rows) == 0 {
		return attendance.ImportResponse{}, upload.ErrNoRecords
	}

	today := s.today()
	rowErrors := make([]attendance.RowError, 0)
	rows := make([]importRow, 0, len(req.Rows))
	dates := make(map[time.Time]bool)

	for i, row := range req.Rows {
		d, ok := validator.IsValidDate(strings.TrimSpace(row.Date))
		switch {
		case !ok:
			rowErrors = append(rowErrors, attendance.RowError{Row: i + 1, EmployeeID: row.EmployeeID, Message: "date must be in YYYY-MM-DD format"})
		case d.After(today):
			rowErrors = append(rowErrors, attendance.RowError{Row: i + 1, EmployeeID: row.EmployeeID, Message: upload.ErrFutureDate.Error()})
		default:
			rows = append(rows, importRow{index: i + 1, date: d, row: row})
			dates[d] = true
		}
	}

	// The import is filed under the requested date, or the earliest date in the rows.
	var effective time.Time
	if !validator.IsEmpty(req.TargetDate) {
		effective, _ = validator.IsValidDate(req.TargetDate)
		if effective.After(today) {
			return attendance.ImportResponse{}, upload.ErrFutureDate
		}
		if !dates[effective] {
			return attendance.ImportResponse{}, upload.ErrDateMismatch
		}
	} else {
		if len(rows) == 0 {
			return attendance.ImportResponse{}, fmt.Errorf("%w: no row has a valid date", upload.ErrNoRecords)
		}
		effective = rows[0].date
		for _, r := range rows[1:] {
			if r.date.Before(effective) {
				effective = r.date
			}
		}
	}

	exists, err := s.uploadRepo.ExistsForDate(ctx, effective)
	if err != nil {
		return attendance.ImportResponse{}, err
	}
	if exists {
		return attendance.ImportResponse{}, upload.ErrDuplicateUpload
	}

	uploadID, err := uuid.NewV7()
	if err != nil {
		return attendance.ImportResponse{}, fmt.Errorf("failed to generate upload id: %w", err)
	}

	history := upload.Upload{
		ID:               uploadID.String(),
		TargetDate:       effective,
		RecordsProcessed: len(req.Rows),
		Status:           upload.StatusProcessing,
	}
	if err := s.storeSourceFile(ctx, req, &history); err != nil {
		return attendance.ImportResponse{}, err
	}

	created, err := s.uploadRepo.Create(ctx, history)
	if err != nil {
		s.discardSourceFile(ctx, history)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return attendance.ImportResponse{}, upload.ErrDuplicateUpload
		}
		return attendance.ImportResponse{}, err
	}
	history = created

	cfg, release := s.configs.Hold()
	defer release()

	rows, dupErrors := dedupeRows(rows)
	rowErrors = append(rowErrors, dupErrors...)

	var (
		mu      sync.Mutex
		success atomic.Int64
	)
	fail := func(r importRow, msg string) {
		mu.Lock()
		rowErrors = append(rowErrors, attendance.RowError{Row: r.index, EmployeeID: r.row.EmployeeID, Message: msg})
		mu.Unlock()
	}

	var g errgroup.Group
	g.SetLimit(s.opts.Workers)
	for _, r := range rows {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				fail(r, err.Error())
				return nil
			}
			if err := s.importRow(ctx, r, history.ID, cfg); err != nil {
				fail(r, err.Error())
				return nil
			}
			success.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(rowErrors, func(i, j int) bool { return rowErrors[i].Row < rowErrors[j].Row })

	history.RecordsSuccess = int(success.Load())
	history.RecordsFailed = len(rowErrors)
	history.Status = upload.StatusFor(history.RecordsSuccess, history.RecordsFailed)
	history.ErrorLog = errorLog(rowErrors)

	if err := s.uploadRepo.Finish(ctx, history); err != nil {
		return attendance.ImportResponse{}, err
	}

	slog.Info("Attendance import finished",
		"upload_id", history.ID,
		"target_date", effective.Format("2006-01-02"),
		"processed", history.RecordsProcessed,
		"success", history.RecordsSuccess,
		"failed", history.RecordsFailed,
		"config_version", cfg.Version,
	)

	return attendance.ImportResponse{
		UploadID:         history.ID,
		TargetDate:       effective.Format("2006-01-02"),
		RecordsProcessed: history.RecordsProcessed,
		RecordsSuccess:   history.RecordsSuccess,
		RecordsFailed:    history.RecordsFailed,
		Errors:           rowErrors,
	}, nil
}

// importRow classifies and writes one row together with its roster entry.
func (s *AttendanceServiceImpl) importRow(ctx context.Context, r importRow, uploadID string, cfg settings.ScheduleConfig) error {
	id := strings.TrimSpace(r.row.EmployeeID)
	if !validator.IsValidEmployeeID(id) {
		return fmt.Errorf("invalid employee_id %q", r.row.EmployeeID)
	}

	in, err := clock.ParseOptional(r.row.PunchIn)
	if err != nil {
		return fmt.Errorf("punch_in_time: %w", err)
	}
	out, err := clock.ParseOptional(r.row.PunchOut)
	if err != nil {
		return fmt.Errorf("punch_out_time: %w", err)
	}
	breakStart, err := clock.ParseOptional(r.row.BreakStart)
	if err != nil {
		return fmt.Errorf("break_start_time: %w", err)
	}
	breakEnd, err := clock.ParseOptional(r.row.BreakEnd)
	if err != nil {
		return fmt.Errorf("break_end_time: %w", err)
	}

	record := attendance.Record{
		EmployeeID:   id,
		EmployeeName: strings.TrimSpace(r.row.EmployeeName),
		Date:         attendance.NormalizeDate(r.date),
		PunchIn:      in,
		PunchOut:     out,
		BreakStart:   breakStart,
		BreakEnd:     breakEnd,
		UploadID:     &uploadID,
	}
	if err := ClassifyRecord(&record, cfg); err != nil {
		return err
	}

	if err := s.employeeRepo.Upsert(ctx, employee.Employee{EmployeeID: id, EmployeeName: record.EmployeeName}); err != nil {
		return err
	}
	return s.AttendanceRepository.Upsert(ctx, record)
}

// dedupeRows keeps the last row per employee and date.
func dedupeRows(rows []importRow) ([]importRow, []attendance.RowError) {
	type key struct {
		employeeID string
		date       time.Time
	}

	last := make(map[key]int, len(rows))
	for i, r := range rows {
		last[key{strings.TrimSpace(r.row.EmployeeID), r.date}] = i
	}

	kept := make([]importRow, 0, len(last))
	var errs []attendance.RowError
	for i, r := range rows {
		if last[key{strings.TrimSpace(r.row.EmployeeID), r.date}] != i {
			errs = append(errs, attendance.RowError{
				Row:        r.index,
				EmployeeID: r.row.EmployeeID,
				Message:    "duplicate employee and date, a later row replaces it",
			})
			continue
		}
		kept = append(kept, r)
	}
	return kept, errs
}

func errorLog(errs []attendance.RowError) *string {
	if len(errs) == 0 {
		return nil
	}

	var b strings.Builder
	for i, e := range errs {
		if i == maxErrorLogLines {
			fmt.Fprintf(&b, "... and %d more", len(errs)-maxErrorLogLines)
			break
		}
		fmt.Fprintf(&b, "row %d (%s): %s\n", e.Row, e.EmployeeID, e.Message)
	}
	text := strings.TrimRight(b.String(), "\n")
	return &text
}

func (s *AttendanceServiceImpl) storeSourceFile(ctx context.Context, req attendance.ImportRequest, history *upload.Upload) error {
	if req.File == nil || req.FileHeader == nil {
		return nil
	}

	data, err := io.ReadAll(io.LimitReader(req.File, s.opts.MaxFileBytes+1))
	if err != nil {
		return fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if int64(len(data)) > s.opts.MaxFileBytes {
		return validator.ValidationErrors{{
			Field:   "file",
			Message: fmt.Sprintf("file exceeds %d bytes", s.opts.MaxFileBytes),
		}}
	}

	sum := checksum.FromBytes(data)
	name := filepath.Base(req.FileHeader.Filename)
	path := fmt.Sprintf("uploads/%s/%s%s", history.TargetDate.Format("2006-01-02"), history.ID, strings.ToLower(filepath.Ext(name)))

	contentType := req.FileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	stored, err := s.fileStorage.Upload(ctx, bytes.NewReader(data), path, contentType)
	if err != nil {
		return fmt.Errorf("failed to store uploaded file: %w", err)
	}

	history.FileName = &name
	history.StoredPath = &stored
	history.Checksum = &sum
	return nil
}

func (s *AttendanceServiceImpl) discardSourceFile(ctx context.Context, history upload.Upload) {
	if history.StoredPath == nil {
		return
	}
	if err := s.fileStorage.Delete(ctx, *history.StoredPath); err != nil {
		slog.Error("Failed to remove orphaned upload file", "path", *history.StoredPath, "error", err)
	}
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, req attendance.RangeRequest) ([]attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	filter := req.Filter()
	if filter.EmployeeID != "" {
		emps, err := s.employeeRepo.List(ctx, filter.EmployeeID)
		if err != nil {
			return nil, err
		}
		if len(emps) == 0 {
			return nil, attendance.ErrRecordNotFound
		}
	}

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return attendance.NewRecordResponses(records), nil
}

// ListByDate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByDate(ctx context.Context, date string) ([]attendance.RecordResponse, error) {
	d, ok := validator.IsValidDate(date)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}

	records, err := s.AttendanceRepository.List(ctx, attendance.Filter{StartDate: &d, EndDate: &d})
	if err != nil {
		return nil, err
	}
	return attendance.NewRecordResponses(records), nil
}

// CalendarDates implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CalendarDates(ctx context.Context) (attendance.CalendarDatesResponse, error) {
	dates, err := s.AttendanceRepository.ListDates(ctx)
	if err != nil {
		return attendance.CalendarDatesResponse{}, err
	}

	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format("2006-01-02"))
	}
	return attendance.CalendarDatesResponse{Dates: out, Count: len(out)}, nil
}

// DeleteAll implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAll(ctx context.Context) error {
	err := s.inTx(ctx, func(txCtx context.Context) error {
		if err := s.AttendanceRepository.DeleteAll(txCtx); err != nil {
			return err
		}
		if err := s.uploadRepo.DeleteAll(txCtx); err != nil {
			return err
		}
		return s.employeeRepo.DeleteAll(txCtx)
	})
	if err != nil {
		return fmt.Errorf("failed to delete attendance data: %w", err)
	}

	slog.Info("All attendance data deleted")
	return nil
}

// Recalculate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Recalculate(ctx context.Context, req attendance.RecalculateRequest) (attendance.RecalculateResponse, error) {
	cfg, release := s.configs.Hold()
	defer release()

	records, err := s.AttendanceRepository.ListStale(ctx, cfg.Version, req.Force)
	if err != nil {
		return attendance.RecalculateResponse{}, err
	}

	var updated, failed atomic.Int64

	var g errgroup.Group
	g.SetLimit(s.opts.Workers)
	for _, rec := range records {
		g.Go(func() error {
			if ctx.Err() != nil {
				failed.Add(1)
				return nil
			}

			before := rec.Classification()
			beforeVersion := rec.ConfigVersion
			if err := ClassifyRecord(&rec, cfg); err != nil {
				slog.Error("Failed to classify attendance record",
					"employee_id", rec.EmployeeID, "date", rec.Date.Format("2006-01-02"), "error", err)
				failed.Add(1)
				return nil
			}
			if beforeVersion == rec.ConfigVersion && sameClassification(before, rec.Classification()) {
				return nil
			}

			if err := s.AttendanceRepository.UpdateDerived(ctx, rec); err != nil {
				slog.Error("Failed to update attendance record",
					"employee_id", rec.EmployeeID, "date", rec.Date.Format("2006-01-02"), "error", err)
				failed.Add(1)
				return nil
			}
			updated.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	result := attendance.RecalculateResponse{
		ConfigVersion:    cfg.Version,
		RecordsProcessed: len(records),
		RecordsUpdated:   int(updated.Load()),
		RecordsFailed:    int(failed.Load()),
	}
	slog.Info("Attendance recalculation finished",
		"config_version", result.ConfigVersion,
		"processed", result.RecordsProcessed,
		"updated", result.RecordsUpdated,
		"failed", result.RecordsFailed,
		"force", req.Force,
	)
	return result, nil
}

func sameClassification(a, b attendance.Classification) bool {
	if a.Status != b.Status || a.IsLate != b.IsLate || a.BreakMinutes != b.BreakMinutes || a.IsEarlyDeparture != b.IsEarlyDeparture {
		return false
	}
	if a.BreakDuration != b.BreakDuration || a.BreakExceeded != b.BreakExceeded || a.IsBreakOutsideWindow != b.IsBreakOutsideWindow {
		return false
	}
	if a.WorkingHours == nil || b.WorkingHours == nil {
		return a.WorkingHours == nil && b.WorkingHours == nil
	}
	return *a.WorkingHours == *b.WorkingHours
}
