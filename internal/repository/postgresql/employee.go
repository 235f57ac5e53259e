package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Upsert implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Upsert(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (employee_id, employee_name)
		VALUES ($1, $2)
		ON CONFLICT (employee_id) DO UPDATE SET
			employee_name = CASE
				WHEN EXCLUDED.employee_name = '' THEN employees.employee_name
				ELSE EXCLUDED.employee_name
			END
	`

	if _, err := q.Exec(ctx, query, emp.EmployeeID, emp.EmployeeName); err != nil {
		return fmt.Errorf("failed to upsert employee: %w", err)
	}
	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, employeeID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, employee_name, created_at
		FROM employees
		WHERE ($1 = '' OR employee_id = $1)
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	emps := []employee.Employee{}
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(&e.EmployeeID, &e.EmployeeName, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		emps = append(emps, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return emps, nil
}

// DeleteAll implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM employees`); err != nil {
		return fmt.Errorf("failed to delete employees: %w", err)
	}
	return nil
}
