package dashboard

import (
	"sort"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// rate returns 100*part/total rounded to 2 decimals, 0 for an empty total.
func rate(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return decimal.NewFromInt(int64(part)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(total))).
		Round(2).
		InexactFloat64()
}

func isLate(r attendance.Record) bool {
	return r.Status == attendance.StatusLate || r.IsLate
}

// Summarize computes the headline statistics of a record set.
func Summarize(records []attendance.Record) dashboard.StatisticsSummary {
	var (
		summary   dashboard.StatisticsSummary
		employees = make(map[string]struct{})
		hours     = decimal.Zero
		withHours int
		present   int
	)

	for _, r := range records {
		employees[r.EmployeeID] = struct{}{}

		switch r.Status {
		case attendance.StatusPresent:
			summary.PresentCount++
		case attendance.StatusAbsent:
			summary.AbsentCount++
		case attendance.StatusLate:
			summary.LateCount++
		case attendance.StatusHalfDay:
			summary.HalfDayCount++
		}
		if r.Status.CountsAsPresent() {
			present++
		}
		if r.BreakExceeded {
			summary.BreakExceededCount++
		}
		if r.IsBreakOutsideWindow {
			summary.BreakOutsideWindowCount++
		}

		if r.WorkingHours != nil {
			hours = hours.Add(decimal.NewFromFloat(*r.WorkingHours))
			withHours++
		}
	}

	summary.TotalRecords = len(records)
	summary.TotalEmployees = len(employees)
	summary.AttendanceRate = rate(present, len(records))
	if withHours > 0 {
		summary.AverageWorkingHours = hours.Div(decimal.NewFromInt(int64(withHours))).Round(2).InexactFloat64()
	}
	return summary
}

// ByEmployee rolls records up per employee. Every roster entry is present in the
// result even without records in range.
func ByEmployee(records []attendance.Record, roster []employee.Employee) map[string]dashboard.EmployeeRollup {
	rollups := make(map[string]dashboard.EmployeeRollup, len(roster))
	hours := make(map[string]decimal.Decimal, len(roster))

	for _, e := range roster {
		rollups[e.EmployeeID] = dashboard.EmployeeRollup{EmployeeID: e.EmployeeID, EmployeeName: e.EmployeeName}
	}

	for _, r := range records {
		roll, ok := rollups[r.EmployeeID]
		if !ok {
			roll = dashboard.EmployeeRollup{EmployeeID: r.EmployeeID}
		}
		if roll.EmployeeName == "" {
			roll.EmployeeName = r.EmployeeName
		}

		roll.TotalRecords++
		if r.Status.CountsAsPresent() {
			roll.Present++
		}
		if r.Status == attendance.StatusAbsent {
			roll.Absent++
		}
		if r.Status == attendance.StatusHalfDay {
			roll.HalfDay++
		}
		if isLate(r) {
			roll.Late++
		}
		if r.WorkingHours != nil {
			hours[r.EmployeeID] = hours[r.EmployeeID].Add(decimal.NewFromFloat(*r.WorkingHours))
		}
		rollups[r.EmployeeID] = roll
	}

	for id, roll := range rollups {
		roll.TotalHours = hours[id].Round(2).InexactFloat64()
		roll.AttendanceRate = rate(roll.Present, roll.TotalRecords)
		rollups[id] = roll
	}
	return rollups
}

// SortedRollups orders employee rollups by ID.
func SortedRollups(rollups map[string]dashboard.EmployeeRollup) []dashboard.EmployeeRollup {
	out := make([]dashboard.EmployeeRollup, 0, len(rollups))
	for _, r := range rollups {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out
}

// ByMonth groups records by YYYY-MM, ordered ascending.
func ByMonth(records []attendance.Record) []dashboard.MonthlyRollup {
	months := make(map[string]*dashboard.MonthlyRollup)
	for _, r := range records {
		key := r.Date.Format("2006-01")
		m, ok := months[key]
		if !ok {
			m = &dashboard.MonthlyRollup{Month: key, Label: dashboard.MonthLabel(key)}
			months[key] = m
		}

		m.Total++
		if r.Status.CountsAsPresent() {
			m.Present++
		}
		if r.Status == attendance.StatusAbsent {
			m.Absent++
		}
		if isLate(r) {
			m.Late++
		}
	}

	out := make([]dashboard.MonthlyRollup, 0, len(months))
	for _, m := range months {
		m.Rate = rate(m.Present, m.Total)
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}
