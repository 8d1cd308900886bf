package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrAccountNotLinked     = errors.New("your account is not linked to an employee record, please contact an admin")
	ErrAccountAlreadyLinked = errors.New("user account is already linked to another employee")
	ErrNegativeSalary       = errors.New("salary must not be negative")
)
