package employee

import (
	"context"
)

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByUserID resolves the employee record linked to a login account.
	// Returns ErrEmployeeNotFound when the account has no linked employee.
	GetByUserID(ctx context.Context, userID string) (Employee, error)

	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	Count(ctx context.Context) (int64, error)
}
