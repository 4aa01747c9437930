package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// SaleItemRequest leaves unit_price optional; a zero or omitted price falls
// back to the product's catalog sale price at checkout.
type SaleItemRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  int             `json:"quantity"   validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest is the checkout payload. Either an existing client id or
// an inline client name may be supplied; both are optional (anonymous sale).
type CreateSaleRequest struct {
	ClientID      *string           `json:"client_id"      validate:"omitempty,uuid"`
	ClientName    string            `json:"client_name"    validate:"omitempty,max=120"`
	ClientPhone   string            `json:"client_phone"   validate:"omitempty,max=30"`
	ClientEmail   string            `json:"client_email"   validate:"omitempty,email"`
	Items         []SaleItemRequest `json:"items"          validate:"required,min=1,dive"`
	DiscountType  string            `json:"discount_type"  validate:"omitempty,oneof=percent amount"`
	DiscountValue decimal.Decimal   `json:"discount_value"`
	PaymentMethod string            `json:"payment_method" validate:"omitempty,oneof=cash card mobile transfer"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type SaleFilter struct {
	Period string `form:"period" validate:"omitempty,oneof=today week month"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

type SaleResponse struct {
	ID            string             `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	ClientID      *string            `json:"client_id"`
	ClientName    string             `json:"client_name,omitempty"`
	UserID        string             `json:"user_id"`
	UserName      string             `json:"user_name,omitempty"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	DiscountType  string             `json:"discount_type"`
	DiscountValue decimal.Decimal    `json:"discount_value"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	Items         []SaleItemResponse `json:"items"`
	CreatedAt     string             `json:"created_at"`
}

type SaleListItem struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	ClientName    string          `json:"client_name,omitempty"`
	UserName      string          `json:"user_name,omitempty"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     string          `json:"created_at"`
}

type SaleListResponse struct {
	Data  []SaleListItem `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}
