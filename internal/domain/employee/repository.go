package employee

import "context"

type EmployeeRepository interface {
	// Upsert inserts the employee or refreshes the stored name
	Upsert(ctx context.Context, emp Employee) error

	// List returns the roster ordered by ID. A non-empty employeeID narrows it to one entry.
	List(ctx context.Context, employeeID string) ([]Employee, error)

	DeleteAll(ctx context.Context) error
}
