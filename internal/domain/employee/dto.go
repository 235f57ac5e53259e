package employee

import "time"

type EmployeeResponse struct {
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewEmployeeResponses(emps []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(emps))
	for _, e := range emps {
		out = append(out, EmployeeResponse{
			EmployeeID:   e.EmployeeID,
			EmployeeName: e.EmployeeName,
			CreatedAt:    e.CreatedAt,
		})
	}
	return out
}
