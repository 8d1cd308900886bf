package employee

import "context"

// EmployeeService defines business logic for employee management (admin only)
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
}
