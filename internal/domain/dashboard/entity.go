package dashboard

// StatisticsSummary is recomputed per query and never stored.
type StatisticsSummary struct {
	TotalRecords        int     `json:"total_records"`
	TotalEmployees      int     `json:"total_employees"`
	AttendanceRate      float64 `json:"attendance_rate"`
	AverageWorkingHours float64 `json:"average_working_hours"`
	PresentCount        int     `json:"present_count"`
	AbsentCount         int     `json:"absent_count"`
	LateCount           int     `json:"late_count"`
	HalfDayCount        int     `json:"half_day_count"`

	BreakExceededCount      int `json:"break_exceeded_count"`
	BreakOutsideWindowCount int `json:"break_outside_window_count"`
}

// EmployeeRollup accumulates one employee's records. Present includes half days,
// Late counts any record flagged late.
type EmployeeRollup struct {
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	Present        int     `json:"present"`
	Absent         int     `json:"absent"`
	Late           int     `json:"late"`
	HalfDay        int     `json:"half_day"`
	TotalHours     float64 `json:"total_hours"`
	TotalRecords   int     `json:"total_records"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// MonthlyRollup groups records by the YYYY-MM of their date.
type MonthlyRollup struct {
	Month   string  `json:"month"`
	Label   string  `json:"label"`
	Total   int     `json:"total"`
	Present int     `json:"present"`
	Absent  int     `json:"absent"`
	Late    int     `json:"late"`
	Rate    float64 `json:"rate"`
}
