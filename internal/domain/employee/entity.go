package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	UserID     *string // optional link to a login account, unique when set
	Name       string
	Position   string
	Department string
	Salary     decimal.Decimal
	JoinDate   time.Time
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
