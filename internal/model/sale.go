package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Discount types applied at checkout.
const (
	DiscountPercent = "percent"
	DiscountAmount  = "amount"
)

// Sale is a checkout header. It owns its items: deleting a sale deletes the
// items and reverses their stock effect through the ledger.
type Sale struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	InvoiceNumber string     `gorm:"uniqueIndex;not null"`
	ClientID      *uuid.UUID `gorm:"type:uuid;index"`
	UserID        uuid.UUID  `gorm:"type:uuid;index"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DiscountType  string          `gorm:"type:varchar(10);not null;default:'percent'"`
	DiscountValue decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(20);not null;default:'cash'"`
	CreatedAt     time.Time

	Items  []SaleItem `gorm:"foreignKey:SaleID"`
	Client *Client    `gorm:"foreignKey:ClientID"`
	User   *User      `gorm:"foreignKey:UserID"`
}

func (s *Sale) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// SaleItem is one line of a sale. ProductName and UnitPrice are snapshots so
// the invoice stays stable when the catalog changes later.
type SaleItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SaleID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName string    `gorm:"not null"`
	Quantity    int       `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

func (i *SaleItem) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
