package employee

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/absensi-hq/absensi-backend-go/internal/domain/employee"
	"github.com/absensi-hq/absensi-backend-go/internal/domain/user"
	"github.com/absensi-hq/absensi-backend-go/internal/pkg/clock"
	"github.com/absensi-hq/absensi-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	db    postgresql.TxBeginner
	clock clock.Clock
	loc   *time.Location
	employee.EmployeeRepository
	user.UserRepository
}

func NewEmployeeService(
	db postgresql.TxBeginner,
	clk clock.Clock,
	loc *time.Location,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		clock:              clk,
		loc:                loc,
		EmployeeRepository: employeeRepo,
		UserRepository:     userRepo,
	}
}

func actorFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

// Create implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	actorID, err := actorFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	salary, err := decimal.NewFromString(req.Salary)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse salary: %w", err)
	}

	joinDate := e.clock.Now(ctx).In(e.loc)
	if req.JoinDate != "" {
		joinDate, _ = time.ParseInLocation("2006-01-02", req.JoinDate, time.UTC)
	}
	joinDate = time.Date(joinDate.Year(), joinDate.Month(), joinDate.Day(), 0, 0, 0, 0, time.UTC)

	// The user-link verification and the insert share one transaction so the
	// linked account cannot disappear between the two statements.
	var created employee.Employee
	err = postgresql.WithTransaction(ctx, e.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if req.UserID != nil {
			if _, err := e.UserRepository.GetByID(txCtx, *req.UserID); err != nil {
				if errors.Is(err, user.ErrUserNotFound) {
					return user.ErrUserNotFound
				}
				return fmt.Errorf("failed to verify linked user: %w", err)
			}
		}

		created, err = e.EmployeeRepository.Create(txCtx, employee.Employee{
			UserID:     req.UserID,
			Name:       req.Name,
			Position:   req.Position,
			Department: req.Department,
			Salary:     salary,
			JoinDate:   joinDate,
			CreatedBy:  actorID,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, employee.ErrAccountAlreadyLinked) || errors.Is(err, user.ErrUserNotFound) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.NewEmployeeResponse(created), nil
}

// Get implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee.NewEmployeeResponse(emp), nil
}

// Update implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var emp employee.Employee
	err := postgresql.WithTransaction(ctx, e.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		emp, err = e.EmployeeRepository.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return employee.ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to get employee: %w", err)
		}

		if req.Name != nil {
			emp.Name = *req.Name
		}
		if req.Position != nil {
			emp.Position = *req.Position
		}
		if req.Department != nil {
			emp.Department = *req.Department
		}
		if req.Salary != nil {
			salary, err := decimal.NewFromString(*req.Salary)
			if err != nil {
				return fmt.Errorf("failed to parse salary: %w", err)
			}
			emp.Salary = salary
		}
		if req.JoinDate != nil && *req.JoinDate != "" {
			joinDate, _ := time.ParseInLocation("2006-01-02", *req.JoinDate, time.UTC)
			emp.JoinDate = joinDate
		}
		if req.UserID != nil {
			if _, err := e.UserRepository.GetByID(txCtx, *req.UserID); err != nil {
				if errors.Is(err, user.ErrUserNotFound) {
					return user.ErrUserNotFound
				}
				return fmt.Errorf("failed to verify linked user: %w", err)
			}
			emp.UserID = req.UserID
		}

		return e.EmployeeRepository.Update(txCtx, emp)
	})
	if err != nil {
		switch {
		case errors.Is(err, employee.ErrEmployeeNotFound),
			errors.Is(err, employee.ErrAccountAlreadyLinked),
			errors.Is(err, user.ErrUserNotFound):
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee.NewEmployeeResponse(emp), nil
}

// Delete implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := e.EmployeeRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// List implements employee.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	employees, total, err := e.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.NewEmployeeResponse(emp))
	}

	totalPages := 0
	if filter.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(filter.Limit)))
	}

	return employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Employees:  responses,
	}, nil
}
