package employee

import (
	"time"

	"github.com/absensi-hq/absensi-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name       string  `json:"name"`
	Position   string  `json:"position"`
	Department string  `json:"department"`
	Salary     string  `json:"salary"`
	JoinDate   string  `json:"join_date"` // YYYY-MM-DD, defaults to today
	UserID     *string `json:"user_id"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position is required"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}

	if validator.IsEmpty(r.Salary) {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary is required"})
	} else if salary, err := decimal.NewFromString(r.Salary); err != nil {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be a number"})
	} else if salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}

	if r.JoinDate != "" {
		if _, ok := validator.IsValidDate(r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "join_date", Message: "join_date must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID         string  `json:"-"`
	Name       *string `json:"name"`
	Position   *string `json:"position"`
	Department *string `json:"department"`
	Salary     *string `json:"salary"`
	JoinDate   *string `json:"join_date"`
	UserID     *string `json:"user_id"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.Salary != nil {
		if salary, err := decimal.NewFromString(*r.Salary); err != nil {
			errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be a number"})
		} else if salary.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
		}
	}
	if r.JoinDate != nil && *r.JoinDate != "" {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "join_date", Message: "join_date must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Search     *string // matches name, case-insensitive
	Department *string
	Page       int
	Limit      int
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	UserID     *string `json:"user_id,omitempty"`
	Name       string  `json:"name"`
	Position   string  `json:"position"`
	Department string  `json:"department"`
	Salary     string  `json:"salary"`
	JoinDate   string  `json:"join_date"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}

// NewEmployeeResponse maps an Employee entity to its API shape.
func NewEmployeeResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         emp.ID,
		UserID:     emp.UserID,
		Name:       emp.Name,
		Position:   emp.Position,
		Department: emp.Department,
		Salary:     emp.Salary.String(),
		JoinDate:   emp.JoinDate.Format("2006-01-02"),
		CreatedAt:  emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  emp.UpdatedAt.Format(time.RFC3339),
	}
}
