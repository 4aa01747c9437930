package model

import "github.com/shopspring/decimal"

// CompanyConfig is the singleton row (ID=1) holding branding and invoice
// settings rendered on receipts.
type CompanyConfig struct {
	ID            int    `gorm:"primaryKey"`
	Name          string `gorm:"not null;default:'ORION POS'"`
	Logo          *string
	Address       string
	Phone         string
	Email         string
	Website       string
	InvoiceHeader string
	InvoiceFooter string          `gorm:"default:'Thank you for your purchase!'"`
	Currency      string          `gorm:"type:varchar(10);not null;default:'Ar'"`
	TaxRate       decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
}

func (CompanyConfig) TableName() string { return "company_config" }
