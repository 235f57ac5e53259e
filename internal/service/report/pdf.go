package report

import (
	"bytes"
	"fmt"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/dashboard"
	dashboardservice "github.com/cmlabs-hris/attendance-dashboard-go/internal/service/dashboard"
	"github.com/jung-kurt/gofpdf"
)

type pdfColumn struct {
	title string
	width float64
	align string
}

func tableHeader(pdf *gofpdf.Fpdf, cols []pdfColumn) {
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(68, 114, 196)
	pdf.SetTextColor(255, 255, 255)
	for _, c := range cols {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(0, 0, 0)
}

func tableRow(pdf *gofpdf.Fpdf, cols []pdfColumn, values []string) {
	for i, c := range cols {
		pdf.CellFormat(c.width, 6, values[i], "1", 0, c.align, false, 0, "")
	}
	pdf.Ln(-1)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
}

func renderPDF(data reportData) ([]byte, error) {
	summary := dashboardservice.Summarize(data.records)
	monthly := dashboardservice.ByMonth(data.records)
	employees := dashboardservice.SortedRollups(dashboardservice.ByEmployee(data.records, data.roster))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Attendance Report", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Attendance Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Period: %s to %s",
		data.filter.StartDate.Format("02 January 2006"), data.filter.EndDate.Format("02 January 2006")))
	pdf.Ln(6)
	if data.filter.EmployeeID != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Employee: %s", data.filter.EmployeeID))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Schedule: %s - %s, break %s - %s (max %d min), half day below %s",
		data.config.StandardStartTime, data.config.StandardEndTime,
		data.config.StandardBreakStart, data.config.StandardBreakEnd,
		data.config.MaxBreakDuration, data.config.HalfDayTime))
	pdf.Ln(6)

	section(pdf, "Summary")
	metricCols := []pdfColumn{{"Metric", 90, "L"}, {"Value", 90, "R"}}
	tableHeader(pdf, metricCols)
	for _, m := range summaryMetrics(summary) {
		tableRow(pdf, metricCols, m)
	}

	section(pdf, "Monthly")
	monthCols := []pdfColumn{
		{"Month", 50, "L"}, {"Total", 25, "R"}, {"Present", 25, "R"},
		{"Absent", 25, "R"}, {"Late", 25, "R"}, {"Rate (%)", 30, "R"},
	}
	tableHeader(pdf, monthCols)
	for _, m := range monthly {
		tableRow(pdf, monthCols, []string{
			m.Label,
			fmt.Sprint(m.Total),
			fmt.Sprint(m.Present),
			fmt.Sprint(m.Absent),
			fmt.Sprint(m.Late),
			fmt.Sprintf("%.2f", m.Rate),
		})
	}

	section(pdf, "Employees")
	empCols := []pdfColumn{
		{"Employee ID", 28, "L"}, {"Name", 46, "L"}, {"Present", 18, "R"}, {"Absent", 18, "R"},
		{"Late", 15, "R"}, {"Half Day", 18, "R"}, {"Hours", 20, "R"}, {"Rate (%)", 17, "R"},
	}
	tableHeader(pdf, empCols)
	for _, e := range employees {
		tableRow(pdf, empCols, []string{
			e.EmployeeID,
			e.EmployeeName,
			fmt.Sprint(e.Present),
			fmt.Sprint(e.Absent),
			fmt.Sprint(e.Late),
			fmt.Sprint(e.HalfDay),
			fmt.Sprintf("%.2f", e.TotalHours),
			fmt.Sprintf("%.2f", e.AttendanceRate),
		})
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 8)
	pdf.Cell(0, 6, fmt.Sprintf("Generated at %s", data.generatedAt.Format("02 January 2006 15:04:05")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func summaryMetrics(s dashboard.StatisticsSummary) [][]string {
	return [][]string{
		{"Total records", fmt.Sprint(s.TotalRecords)},
		{"Employees", fmt.Sprint(s.TotalEmployees)},
		{"Present", fmt.Sprint(s.PresentCount)},
		{"Late", fmt.Sprint(s.LateCount)},
		{"Half day", fmt.Sprint(s.HalfDayCount)},
		{"Absent", fmt.Sprint(s.AbsentCount)},
		{"Attendance rate", fmt.Sprintf("%.2f%%", s.AttendanceRate)},
		{"Average working hours", fmt.Sprintf("%.2f", s.AverageWorkingHours)},
		{"Breaks over limit", fmt.Sprint(s.BreakExceededCount)},
		{"Breaks outside window", fmt.Sprint(s.BreakOutsideWindowCount)},
	}
}
