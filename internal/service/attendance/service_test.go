package attendance

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/settings"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/upload"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/checksum"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/storage"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ===== TEST DOUBLES =====

type recordKey struct {
	employeeID string
	date       string
}

type memoryAttendanceRepository struct {
	mu         sync.Mutex
	records    map[recordKey]attendance.Record
	failUpdate map[recordKey]bool
}

func newMemoryAttendanceRepository() *memoryAttendanceRepository {
	return &memoryAttendanceRepository{
		records:    make(map[recordKey]attendance.Record),
		failUpdate: make(map[recordKey]bool),
	}
}

func keyOf(r attendance.Record) recordKey {
	return recordKey{r.EmployeeID, r.Date.Format("2006-01-02")}
}

func (m *memoryAttendanceRepository) Upsert(ctx context.Context, record attendance.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[keyOf(record)] = record
	return nil
}

func (m *memoryAttendanceRepository) sorted(keep func(attendance.Record) bool) []attendance.Record {
	out := []attendance.Record{}
	for _, r := range m.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].EmployeeID < out[j].EmployeeID
	})
	return out
}

func (m *memoryAttendanceRepository) List(ctx context.Context, f attendance.Filter) ([]attendance.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(func(r attendance.Record) bool {
		if f.EmployeeID != "" && r.EmployeeID != f.EmployeeID {
			return false
		}
		if f.StartDate != nil && r.Date.Before(*f.StartDate) {
			return false
		}
		if f.EndDate != nil && r.Date.After(*f.EndDate) {
			return false
		}
		return true
	}), nil
}

func (m *memoryAttendanceRepository) ListDates(ctx context.Context) ([]time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := map[time.Time]bool{}
	var dates []time.Time
	for _, r := range m.sorted(func(attendance.Record) bool { return true }) {
		if !seen[r.Date] {
			seen[r.Date] = true
			dates = append(dates, r.Date)
		}
	}
	return dates, nil
}

func (m *memoryAttendanceRepository) ListStale(ctx context.Context, version int64, force bool) ([]attendance.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(func(r attendance.Record) bool { return force || r.ConfigVersion != version }), nil
}

func (m *memoryAttendanceRepository) UpdateDerived(ctx context.Context, record attendance.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := keyOf(record)
	if m.failUpdate[k] {
		return errors.New("write failed")
	}
	stored, ok := m.records[k]
	if !ok {
		return errors.New("missing record")
	}
	stored.Apply(record.Classification(), record.ConfigVersion)
	m.records[k] = stored
	return nil
}

func (m *memoryAttendanceRepository) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = make(map[recordKey]attendance.Record)
	return nil
}

type memoryEmployeeRepository struct {
	mu   sync.Mutex
	emps map[string]employee.Employee
}

func newMemoryEmployeeRepository(ids ...string) *memoryEmployeeRepository {
	m := &memoryEmployeeRepository{emps: make(map[string]employee.Employee)}
	for _, id := range ids {
		m.emps[id] = employee.Employee{EmployeeID: id}
	}
	return m
}

func (m *memoryEmployeeRepository) Upsert(ctx context.Context, emp employee.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emps[emp.EmployeeID] = emp
	return nil
}

func (m *memoryEmployeeRepository) List(ctx context.Context, employeeID string) ([]employee.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []employee.Employee{}
	for id, e := range m.emps {
		if employeeID == "" || id == employeeID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, nil
}

func (m *memoryEmployeeRepository) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emps = make(map[string]employee.Employee)
	return nil
}

type MockUploadRepository struct {
	mock.Mock
}

func (m *MockUploadRepository) Create(ctx context.Context, u upload.Upload) (upload.Upload, error) {
	args := m.Called(ctx, u)
	if args.Error(1) != nil {
		return upload.Upload{}, args.Error(1)
	}
	return u, nil
}

func (m *MockUploadRepository) Finish(ctx context.Context, u upload.Upload) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUploadRepository) ExistsForDate(ctx context.Context, date time.Time) (bool, error) {
	args := m.Called(ctx, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockUploadRepository) List(ctx context.Context, limit int) ([]upload.Upload, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]upload.Upload), args.Error(1)
}

func (m *MockUploadRepository) LatestWithFile(ctx context.Context) (upload.Upload, error) {
	args := m.Called(ctx)
	return args.Get(0).(upload.Upload), args.Error(1)
}

func (m *MockUploadRepository) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type staticConfigs struct {
	mu  sync.Mutex
	cfg settings.ScheduleConfig
}

func (c *staticConfigs) Get() settings.ScheduleConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

func (c *staticConfigs) Hold() (settings.ScheduleConfig, func()) {
	return c.Get(), func() {}
}

func (c *staticConfigs) set(cfg settings.ScheduleConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = cfg
}

type fixture struct {
	svc       attendance.AttendanceService
	records   *memoryAttendanceRepository
	employees *memoryEmployeeRepository
	uploads   *MockUploadRepository
	configs   *staticConfigs
	files     *storage.LocalStorage
}

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()

	files, err := storage.NewLocalStorage(t.TempDir(), "http://localhost/files")
	require.NoError(t, err)

	cfg := settings.DefaultScheduleConfig()
	cfg.Version = 1

	f := &fixture{
		records:   newMemoryAttendanceRepository(),
		employees: newMemoryEmployeeRepository(),
		uploads:   new(MockUploadRepository),
		configs:   &staticConfigs{cfg: cfg},
		files:     files,
	}
	f.svc = NewAttendanceService(nil, f.records, f.employees, f.uploads, f.configs, files, Options{
		Workers: 4,
		Now:     func() time.Time { return fixedNow },
	})
	return f
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func seed(t *testing.T, f *fixture, employeeID, day, in, out string) {
	t.Helper()
	p := punches(in, out)
	require.NoError(t, f.records.Upsert(context.Background(), attendance.Record{
		EmployeeID: employeeID,
		Date:       date(day),
		PunchIn:    p.PunchIn,
		PunchOut:   p.PunchOut,
		Status:     attendance.StatusPresent,
	}))
	require.NoError(t, f.employees.Upsert(context.Background(), employee.Employee{EmployeeID: employeeID}))
}

// ===== RECALCULATION =====

func TestRecalculate_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seed(t, f, "EMP001", "2024-05-01", "09:15", "17:00")
	seed(t, f, "EMP001", "2024-05-02", "09:00", "12:30")
	seed(t, f, "EMP002", "2024-05-01", "", "")
	seed(t, f, "EMP002", "2024-05-02", "08:55", "18:05")

	first, err := f.svc.Recalculate(ctx, attendance.RecalculateRequest{})
	require.NoError(t, err)
	assert.Equal(t, 4, first.RecordsProcessed)
	assert.Zero(t, first.RecordsFailed)
	snapshot, _ := f.records.List(ctx, attendance.Filter{})

	resumed, err := f.svc.Recalculate(ctx, attendance.RecalculateRequest{})
	require.NoError(t, err)
	assert.Zero(t, resumed.RecordsProcessed, "stamped records are not stale")

	forced, err := f.svc.Recalculate(ctx, attendance.RecalculateRequest{Force: true})
	require.NoError(t, err)
	assert.Equal(t, 4, forced.RecordsProcessed)
	assert.Zero(t, forced.RecordsUpdated)

	again, _ := f.records.List(ctx, attendance.Filter{})
	assert.Equal(t, snapshot, again)

	byKey := map[recordKey]attendance.Record{}
	for _, r := range again {
		byKey[keyOf(r)] = r
		assert.Equal(t, int64(1), r.ConfigVersion)
	}
	assert.Equal(t, attendance.StatusLate, byKey[recordKey{"EMP001", "2024-05-01"}].Status)
	assert.Equal(t, attendance.StatusHalfDay, byKey[recordKey{"EMP001", "2024-05-02"}].Status)
	assert.Equal(t, attendance.StatusAbsent, byKey[recordKey{"EMP002", "2024-05-01"}].Status)
	assert.Nil(t, byKey[recordKey{"EMP002", "2024-05-01"}].WorkingHours)
}

func TestRecalculate_NeverTouchesPunches(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seed(t, f, "EMP001", "2024-05-01", "09:15", "17:00")

	_, err := f.svc.Recalculate(ctx, attendance.RecalculateRequest{Force: true})
	require.NoError(t, err)

	got, _ := f.records.List(ctx, attendance.Filter{})
	require.Len(t, got, 1)
	assert.Equal(t, "09:15", got[0].PunchIn.String())
	assert.Equal(t, "17:00", got[0].PunchOut.String())
}

func TestRecalculate_AppliesNewSchedule(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seed(t, f, "EMP001", "2024-05-01", "09:15", "17:00")

	_, err := f.svc.Recalculate(ctx, attendance.RecalculateRequest{})
	require.NoError(t, err)

	cfg := f.configs.Get()
	cfg.StandardStartTime = clock.MustParse("09:30")
	cfg.Version = 2
	f.configs.set(cfg)

	res, err := f.svc.Recalculate(ctx, attendance.RecalculateRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.ConfigVersion)
	assert.Equal(t, 1, res.RecordsUpdated)

	got, _ := f.records.List(ctx, attendance.Filter{})
	assert.Equal(t, attendance.StatusPresent, got[0].Status)
	assert.False(t, got[0].IsLate)
}

func TestRecalculate_CountsFailuresAndContinues(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seed(t, f, "EMP001", "2024-05-01", "10:00", "09:00") // 23h span
	seed(t, f, "EMP002", "2024-05-01", "09:00", "18:00")
	seed(t, f, "EMP003", "2024-05-01", "09:00", "18:00")
	f.records.failUpdate[recordKey{"EMP003", "2024-05-01"}] = true

	res, err := f.svc.Recalculate(ctx, attendance.RecalculateRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, res.RecordsProcessed)
	assert.Equal(t, 1, res.RecordsUpdated)
	assert.Equal(t, 2, res.RecordsFailed)

	// Failed rows stay stale and are picked up by the next run.
	stale, _ := f.records.ListStale(ctx, 1, false)
	assert.Len(t, stale, 2)
}

// ===== IMPORT =====

func TestImport_ClassifiesAndCountsRows(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.uploads.On("ExistsForDate", ctx, date("2024-05-02")).Return(false, nil)
	f.uploads.On("Create", ctx, mock.MatchedBy(func(u upload.Upload) bool {
		return u.Status == upload.StatusProcessing && u.TargetDate.Equal(date("2024-05-02"))
	})).Return(upload.Upload{}, nil)
	f.uploads.On("Finish", ctx, mock.MatchedBy(func(u upload.Upload) bool {
		return u.RecordsProcessed == 5 && u.RecordsSuccess == 3 && u.RecordsFailed == 2 &&
			u.Status == upload.StatusPartial && u.ErrorLog != nil
	})).Return(nil)

	res, err := f.svc.Import(ctx, attendance.ImportRequest{
		TargetDate: "2024-05-02",
		Rows: []attendance.ImportRow{
			{EmployeeID: "EMP001", EmployeeName: "Ana", Date: "2024-05-02", PunchIn: "09:15", PunchOut: "17:00"},
			{EmployeeID: "EMP002", EmployeeName: "Budi", Date: "2024-05-02", PunchIn: "09:00", PunchOut: "12:30"},
			{EmployeeID: "EMP003", EmployeeName: "Citra", Date: "2024-05-02"},
			{EmployeeID: "EMP004", EmployeeName: "Dewi", Date: "2024-05-02", PunchIn: "9am", PunchOut: "17:00"},
			{EmployeeID: "EMP005", EmployeeName: "Eko", Date: "05/02/2024", PunchIn: "09:00", PunchOut: "17:00"},
		},
	})
	require.NoError(t, err)
	f.uploads.AssertExpectations(t)

	assert.Equal(t, 5, res.RecordsProcessed)
	assert.Equal(t, 3, res.RecordsSuccess)
	assert.Equal(t, 2, res.RecordsFailed)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, 4, res.Errors[0].Row)
	assert.Contains(t, res.Errors[0].Message, "punch_in_time")
	assert.Equal(t, 5, res.Errors[1].Row)
	id, err := uuid.Parse(res.UploadID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())

	stored, _ := f.records.List(ctx, attendance.Filter{})
	require.Len(t, stored, 3)
	assert.Equal(t, attendance.StatusLate, stored[0].Status)
	assert.Equal(t, attendance.StatusHalfDay, stored[1].Status)
	assert.Equal(t, attendance.StatusAbsent, stored[2].Status)
	for _, r := range stored {
		assert.Equal(t, int64(1), r.ConfigVersion)
		require.NotNil(t, r.UploadID)
		assert.Equal(t, res.UploadID, *r.UploadID)
	}

	roster, _ := f.employees.List(ctx, "")
	assert.Len(t, roster, 3)
}

func TestImport_RecordsBreakPunches(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.uploads.On("ExistsForDate", ctx, date("2024-05-02")).Return(false, nil)
	f.uploads.On("Create", ctx, mock.Anything).Return(upload.Upload{}, nil)
	f.uploads.On("Finish", ctx, mock.Anything).Return(nil)

	res, err := f.svc.Import(ctx, attendance.ImportRequest{
		Rows: []attendance.ImportRow{
			{EmployeeID: "EMP001", Date: "2024-05-02", PunchIn: "09:00", PunchOut: "18:00", BreakStart: "12:30", BreakEnd: "14:00"},
			{EmployeeID: "EMP002", Date: "2024-05-02", PunchIn: "09:00", PunchOut: "18:00", BreakStart: "14:00", BreakEnd: "13:00"},
			{EmployeeID: "EMP003", Date: "2024-05-02", PunchIn: "09:00", PunchOut: "18:00", BreakStart: "lunch", BreakEnd: "13:00"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.RecordsSuccess)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, 2, res.Errors[0].Row)
	assert.Contains(t, res.Errors[0].Message, "break ends before it starts")
	assert.Equal(t, 3, res.Errors[1].Row)
	assert.Contains(t, res.Errors[1].Message, "break_start_time")

	stored, _ := f.records.List(ctx, attendance.Filter{EmployeeID: "EMP001"})
	require.Len(t, stored, 1)
	assert.Equal(t, "12:30", stored[0].BreakStart.String())
	assert.Equal(t, "14:00", stored[0].BreakEnd.String())
	assert.Equal(t, 90, stored[0].BreakDuration)
	assert.True(t, stored[0].BreakExceeded)
	assert.True(t, stored[0].IsBreakOutsideWindow)
	assert.Equal(t, 60, stored[0].BreakMinutes)
}

func TestImport_EffectiveDateDefaultsToEarliestRow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.uploads.On("ExistsForDate", ctx, date("2024-05-01")).Return(false, nil).Once()
	f.uploads.On("Create", ctx, mock.Anything).Return(upload.Upload{}, nil)
	f.uploads.On("Finish", ctx, mock.Anything).Return(nil)

	res, err := f.svc.Import(ctx, attendance.ImportRequest{
		Rows: []attendance.ImportRow{
			{EmployeeID: "EMP001", Date: "2024-05-03", PunchIn: "09:00", PunchOut: "18:00"},
			{EmployeeID: "EMP001", Date: "2024-05-01", PunchIn: "09:00", PunchOut: "18:00"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", res.TargetDate)
	assert.Equal(t, 2, res.RecordsSuccess)
	f.uploads.AssertExpectations(t)
}

func TestImport_RejectsBadBatches(t *testing.T) {
	ctx := context.Background()
	row := attendance.ImportRow{EmployeeID: "EMP001", Date: "2024-05-02", PunchIn: "09:00", PunchOut: "18:00"}

	t.Run("empty", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Import(ctx, attendance.ImportRequest{})
		assert.ErrorIs(t, err, upload.ErrNoRecords)
	})

	t.Run("future target date", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Import(ctx, attendance.ImportRequest{TargetDate: "2024-06-01", Rows: []attendance.ImportRow{row}})
		assert.ErrorIs(t, err, upload.ErrFutureDate)
	})

	t.Run("target date not in rows", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Import(ctx, attendance.ImportRequest{TargetDate: "2024-05-03", Rows: []attendance.ImportRow{row}})
		assert.ErrorIs(t, err, upload.ErrDateMismatch)
	})

	t.Run("date already imported", func(t *testing.T) {
		f := newFixture(t)
		f.uploads.On("ExistsForDate", ctx, date("2024-05-02")).Return(true, nil)
		_, err := f.svc.Import(ctx, attendance.ImportRequest{Rows: []attendance.ImportRow{row}})
		assert.ErrorIs(t, err, upload.ErrDuplicateUpload)
		f.uploads.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("malformed target date", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Import(ctx, attendance.ImportRequest{TargetDate: "02-05-2024", Rows: []attendance.ImportRow{row}})
		var verrs validator.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Contains(t, verrs.ToMap(), "target_date")
	})

	t.Run("no valid row dates", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Import(ctx, attendance.ImportRequest{Rows: []attendance.ImportRow{{EmployeeID: "EMP001", Date: "yesterday"}}})
		assert.ErrorIs(t, err, upload.ErrNoRecords)
	})
}

func TestImport_LaterDuplicateRowWins(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.uploads.On("ExistsForDate", ctx, mock.Anything).Return(false, nil)
	f.uploads.On("Create", ctx, mock.Anything).Return(upload.Upload{}, nil)
	f.uploads.On("Finish", ctx, mock.Anything).Return(nil)

	res, err := f.svc.Import(ctx, attendance.ImportRequest{
		Rows: []attendance.ImportRow{
			{EmployeeID: "EMP001", Date: "2024-05-02", PunchIn: "10:00", PunchOut: "18:00"},
			{EmployeeID: "EMP001", Date: "2024-05-02", PunchIn: "09:00", PunchOut: "18:00"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.RecordsSuccess)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 1, res.Errors[0].Row)

	stored, _ := f.records.List(ctx, attendance.Filter{})
	require.Len(t, stored, 1)
	assert.Equal(t, "09:00", stored[0].PunchIn.String())
	assert.Equal(t, attendance.StatusPresent, stored[0].Status)
}

type memoryFile struct {
	*bytes.Reader
}

func (memoryFile) Close() error { return nil }

func TestImport_StoresSourceFileWithChecksum(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	payload := []byte("raw spreadsheet bytes")

	var created upload.Upload
	f.uploads.On("ExistsForDate", ctx, mock.Anything).Return(false, nil)
	f.uploads.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(upload.Upload)
	}).Return(upload.Upload{}, nil)
	f.uploads.On("Finish", ctx, mock.Anything).Return(nil)

	header := &multipart.FileHeader{
		Filename: "may.xlsx",
		Header:   textproto.MIMEHeader{"Content-Type": {"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"}},
		Size:     int64(len(payload)),
	}
	_, err := f.svc.Import(ctx, attendance.ImportRequest{
		Rows:       []attendance.ImportRow{{EmployeeID: "EMP001", Date: "2024-05-02", PunchIn: "09:00", PunchOut: "18:00"}},
		File:       memoryFile{bytes.NewReader(payload)},
		FileHeader: header,
	})
	require.NoError(t, err)

	require.NotNil(t, created.FileName)
	assert.Equal(t, "may.xlsx", *created.FileName)
	require.NotNil(t, created.Checksum)
	assert.Equal(t, checksum.FromBytes(payload), *created.Checksum)
	require.NotNil(t, created.StoredPath)

	rc, err := f.files.Download(ctx, *created.StoredPath)
	require.NoError(t, err)
	defer rc.Close()
	body, _ := io.ReadAll(rc)
	assert.Equal(t, payload, body)
}

// ===== QUERIES =====

func TestList_UnknownEmployee(t *testing.T) {
	f := newFixture(t)
	seed(t, f, "EMP001", "2024-05-01", "09:00", "18:00")

	_, err := f.svc.List(context.Background(), attendance.RangeRequest{EmployeeID: "EMP999"})
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestList_FiltersByRange(t *testing.T) {
	f := newFixture(t)
	seed(t, f, "EMP001", "2024-04-30", "09:00", "18:00")
	seed(t, f, "EMP001", "2024-05-01", "09:00", "18:00")
	seed(t, f, "EMP002", "2024-05-02", "09:00", "18:00")

	got, err := f.svc.List(context.Background(), attendance.RangeRequest{StartDate: "2024-05-01", EndDate: "2024-05-31"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-05-01", got[0].Date)
	assert.Equal(t, "2024-05-02", got[1].Date)

	_, err = f.svc.List(context.Background(), attendance.RangeRequest{StartDate: "2024-05-31", EndDate: "2024-05-01"})
	assert.ErrorIs(t, err, attendance.ErrInvalidDateRange)
}

func TestListByDateAndCalendarDates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seed(t, f, "EMP001", "2024-05-01", "09:00", "18:00")
	seed(t, f, "EMP002", "2024-05-01", "09:00", "18:00")
	seed(t, f, "EMP001", "2024-05-03", "09:00", "18:00")

	day, err := f.svc.ListByDate(ctx, "2024-05-01")
	require.NoError(t, err)
	assert.Len(t, day, 2)

	_, err = f.svc.ListByDate(ctx, "May 1st")
	var verrs validator.ValidationErrors
	assert.True(t, errors.As(err, &verrs))

	cal, err := f.svc.CalendarDates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-05-01", "2024-05-03"}, cal.Dates)
	assert.Equal(t, 2, cal.Count)
}

func TestDeleteAll(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seed(t, f, "EMP001", "2024-05-01", "09:00", "18:00")
	f.uploads.On("DeleteAll", mock.Anything).Return(nil).Once()

	require.NoError(t, f.svc.DeleteAll(ctx))

	records, _ := f.records.List(ctx, attendance.Filter{})
	assert.Empty(t, records)
	roster, _ := f.employees.List(ctx, "")
	assert.Empty(t, roster)
	f.uploads.AssertExpectations(t)
}
