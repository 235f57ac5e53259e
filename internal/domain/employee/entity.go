package employee

import "time"

// Employee is a roster entry, created the first time an import mentions the ID.
type Employee struct {
	EmployeeID   string
	EmployeeName string
	CreatedAt    time.Time
}
