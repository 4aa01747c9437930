package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense statuses — only validated expenses count against profit.
const (
	ExpensePending   = "pending"
	ExpenseValidated = "validated"
)

// Expense is a treasury outflow, realized or projected.
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Description string          `gorm:"not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Type        string          `gorm:"type:varchar(20);not null;default:'realized'"` // realized | projected
	Category    string
	Status      string `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt   time.Time
}

func (e *Expense) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// FinancialGoal tracks a savings/revenue target in the treasury view.
type FinancialGoal struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"not null"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Deadline      *time.Time
	Status        string `gorm:"type:varchar(20);not null;default:'active'"` // active | reached | abandoned
	CreatedAt     time.Time
}

func (g *FinancialGoal) BeforeCreate(*gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
