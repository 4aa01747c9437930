package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a catalog entry. Quantity is never written directly by handlers:
// every change goes through the stock ledger so the movement log stays the
// single explanation for the on-hand figure.
type Product struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"index;not null"`
	Category      string          `gorm:"index"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	SalePrice     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Quantity      int             `gorm:"not null;default:0"`
	MinStock      int             `gorm:"not null;default:5"`
	Image         *string
	Barcode       *string `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
