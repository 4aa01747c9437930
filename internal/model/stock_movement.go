package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Movement directions.
const (
	DirectionEntry = "entry" // increases product quantity
	DirectionExit  = "exit"  // decreases product quantity
)

// StockMovement is one row of the stock ledger: an immutable record of a
// single quantity change, its cause, and its actor. Rows are never updated;
// deleting one applies the inverse effect to the product quantity first.
// ProductName is a snapshot taken at movement time so the log stays readable
// after product renames or deletions.
type StockMovement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName string    `gorm:"not null"`
	Direction   string    `gorm:"type:varchar(10);not null"` // entry | exit
	Quantity    int       `gorm:"not null"`                  // magnitude, always positive
	Reason      string
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time
}

func (m *StockMovement) TableName() string { return "stock_movements" }

func (m *StockMovement) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// SignedDelta is the movement's effect on product quantity: positive for an
// entry, negative for an exit.
func (m *StockMovement) SignedDelta() int {
	if m.Direction == DirectionEntry {
		return m.Quantity
	}
	return -m.Quantity
}
