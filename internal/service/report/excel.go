package report

import (
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/clock"
	dashboardservice "github.com/cmlabs-hris/attendance-dashboard-go/internal/service/dashboard"
	"github.com/xuri/excelize/v2"
)

const (
	recordsSheet   = "Attendance"
	employeesSheet = "Employees"
)

var recordHeaders = []interface{}{
	"Employee ID", "Employee Name", "Date", "Punch In", "Punch Out",
	"Working Hours", "Break (min)", "Status", "Late", "Early Departure",
	"Break Start", "Break End", "Break Duration (min)", "Break Exceeded", "Break Outside Window",
}

var employeeHeaders = []interface{}{
	"Employee ID", "Employee Name", "Records", "Present", "Absent",
	"Late", "Half Day", "Total Hours", "Attendance Rate (%)",
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func clockCell(c *clock.Clock) string {
	if c == nil {
		return "-"
	}
	return c.String()
}

func recordRow(r attendance.Record) []interface{} {
	var hours interface{} = "-"
	if r.WorkingHours != nil {
		hours = *r.WorkingHours
	}
	return []interface{}{
		r.EmployeeID,
		r.EmployeeName,
		r.Date.Format("2006-01-02"),
		clockCell(r.PunchIn),
		clockCell(r.PunchOut),
		hours,
		r.BreakMinutes,
		string(r.Status),
		yesNo(r.IsLate),
		yesNo(r.IsEarlyDeparture),
		clockCell(r.BreakStart),
		clockCell(r.BreakEnd),
		r.BreakDuration,
		yesNo(r.BreakExceeded),
		yesNo(r.IsBreakOutsideWindow),
	}
}

func renderExcel(data reportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", recordsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(employeesSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	// Records
	if err := f.SetSheetRow(recordsSheet, "A1", &recordHeaders); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(recordsSheet, "A1", "O1", headerStyle); err != nil {
		return nil, err
	}
	for i, r := range data.records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := recordRow(r)
		if err := f.SetSheetRow(recordsSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(recordsSheet, "A", "B", 20); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(recordsSheet, "C", "O", 14); err != nil {
		return nil, err
	}

	// Employees
	if err := f.SetSheetRow(employeesSheet, "A1", &employeeHeaders); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(employeesSheet, "A1", "I1", headerStyle); err != nil {
		return nil, err
	}
	rollups := dashboardservice.SortedRollups(dashboardservice.ByEmployee(data.records, data.roster))
	for i, e := range rollups {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			e.EmployeeID, e.EmployeeName, e.TotalRecords, e.Present, e.Absent,
			e.Late, e.HalfDay, e.TotalHours, e.AttendanceRate,
		}
		if err := f.SetSheetRow(employeesSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(employeesSheet, "A", "B", 20); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
