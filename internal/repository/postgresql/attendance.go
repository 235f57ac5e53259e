package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const recordColumns = `
	employee_id, employee_name, date, punch_in_time, punch_out_time,
	break_start_time, break_end_time,
	working_hours, break_minutes, status, is_late, is_early_departure,
	break_duration, break_exceeded, is_break_outside_window,
	config_version, upload_id, created_at, updated_at`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Upsert(ctx context.Context, record attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			employee_id, employee_name, date, punch_in_time, punch_out_time,
			break_start_time, break_end_time,
			working_hours, break_minutes, status, is_late, is_early_departure,
			break_duration, break_exceeded, is_break_outside_window,
			config_version, upload_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			employee_name      = EXCLUDED.employee_name,
			punch_in_time      = EXCLUDED.punch_in_time,
			punch_out_time     = EXCLUDED.punch_out_time,
			break_start_time   = EXCLUDED.break_start_time,
			break_end_time     = EXCLUDED.break_end_time,
			working_hours      = EXCLUDED.working_hours,
			break_minutes      = EXCLUDED.break_minutes,
			status             = EXCLUDED.status,
			is_late            = EXCLUDED.is_late,
			is_early_departure = EXCLUDED.is_early_departure,
			break_duration     = EXCLUDED.break_duration,
			break_exceeded     = EXCLUDED.break_exceeded,
			is_break_outside_window = EXCLUDED.is_break_outside_window,
			config_version     = EXCLUDED.config_version,
			upload_id          = EXCLUDED.upload_id,
			updated_at         = NOW()
	`

	_, err := q.Exec(ctx, query,
		record.EmployeeID,
		record.EmployeeName,
		record.Date,
		clockText(record.PunchIn),
		clockText(record.PunchOut),
		clockText(record.BreakStart),
		clockText(record.BreakEnd),
		record.WorkingHours,
		record.BreakMinutes,
		string(record.Status),
		record.IsLate,
		record.IsEarlyDeparture,
		record.BreakDuration,
		record.BreakExceeded,
		record.IsBreakOutsideWindow,
		record.ConfigVersion,
		record.UploadID,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	where := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	query := `SELECT ` + recordColumns + `
		FROM attendance_records
		WHERE ` + where + `
		ORDER BY date ASC, employee_id ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// ListDates implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListDates(ctx context.Context) ([]time.Time, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, `SELECT DISTINCT date FROM attendance_records ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan attendance date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance dates: %w", err)
	}

	return dates, nil
}

// ListStale implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListStale(ctx context.Context, configVersion int64, force bool) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + recordColumns + `
		FROM attendance_records
		WHERE $2 OR config_version <> $1
		ORDER BY date ASC, employee_id ASC`

	rows, err := q.Query(ctx, query, configVersion, force)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale attendance records: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// UpdateDerived implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpdateDerived(ctx context.Context, record attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records SET
			working_hours      = $3,
			break_minutes      = $4,
			status             = $5,
			is_late            = $6,
			is_early_departure = $7,
			break_duration     = $8,
			break_exceeded     = $9,
			is_break_outside_window = $10,
			config_version     = $11,
			updated_at         = NOW()
		WHERE employee_id = $1 AND date = $2
	`

	tag, err := q.Exec(ctx, query,
		record.EmployeeID,
		record.Date,
		record.WorkingHours,
		record.BreakMinutes,
		string(record.Status),
		record.IsLate,
		record.IsEarlyDeparture,
		record.BreakDuration,
		record.BreakExceeded,
		record.IsBreakOutsideWindow,
		record.ConfigVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update attendance record %s/%s: %w",
			record.EmployeeID, record.Date.Format("2006-01-02"), pgx.ErrNoRows)
	}

	return nil
}

// DeleteAll implements attendance.AttendanceRepository.
func (a *attendanceRepository) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, a.db)

	if _, err := q.Exec(ctx, `DELETE FROM attendance_records`); err != nil {
		return fmt.Errorf("failed to delete attendance records: %w", err)
	}
	return nil
}

func collectRecords(rows pgx.Rows) ([]attendance.Record, error) {
	records := []attendance.Record{}
	for rows.Next() {
		var (
			r                    attendance.Record
			in, out              *string
			breakStart, breakEnd *string
			status               string
		)
		err := rows.Scan(
			&r.EmployeeID, &r.EmployeeName, &r.Date, &in, &out,
			&breakStart, &breakEnd,
			&r.WorkingHours, &r.BreakMinutes, &status, &r.IsLate, &r.IsEarlyDeparture,
			&r.BreakDuration, &r.BreakExceeded, &r.IsBreakOutsideWindow,
			&r.ConfigVersion, &r.UploadID, &r.CreatedAt, &r.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}

		if r.PunchIn, err = parseClockText(in); err != nil {
			return nil, fmt.Errorf("stored punch_in_time for %s: %w", r.EmployeeID, err)
		}
		if r.PunchOut, err = parseClockText(out); err != nil {
			return nil, fmt.Errorf("stored punch_out_time for %s: %w", r.EmployeeID, err)
		}
		if r.BreakStart, err = parseClockText(breakStart); err != nil {
			return nil, fmt.Errorf("stored break_start_time for %s: %w", r.EmployeeID, err)
		}
		if r.BreakEnd, err = parseClockText(breakEnd); err != nil {
			return nil, fmt.Errorf("stored break_end_time for %s: %w", r.EmployeeID, err)
		}
		r.Status = attendance.Status(status)
		r.Date = attendance.NormalizeDate(r.Date)

		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}

func clockText(c *clock.Clock) *string {
	if c == nil {
		return nil
	}
	s := c.String()
	return &s
}

func parseClockText(s *string) (*clock.Clock, error) {
	if s == nil {
		return nil, nil
	}
	return clock.ParseOptional(*s)
}
