package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name          string          `json:"name"           validate:"required,min=1,max=120"`
	Category      string          `json:"category"       validate:"omitempty,max=60"`
	PurchasePrice decimal.Decimal `json:"purchase_price" validate:"min=0"`
	SalePrice     decimal.Decimal `json:"sale_price"     validate:"required,gt=0"`
	Quantity      int             `json:"quantity"       validate:"min=0"`
	MinStock      int             `json:"min_stock"      validate:"min=0"`
	Image         *string         `json:"image"`
	Barcode       *string         `json:"barcode"`
}

// UpdateProductRequest carries the full editable field set; Quantity changes
// are translated into an "admin adjustment" ledger movement.
type UpdateProductRequest struct {
	Name          string          `json:"name"           validate:"required,min=1,max=120"`
	Category      string          `json:"category"       validate:"omitempty,max=60"`
	PurchasePrice decimal.Decimal `json:"purchase_price" validate:"min=0"`
	SalePrice     decimal.Decimal `json:"sale_price"     validate:"required,gt=0"`
	Quantity      int             `json:"quantity"       validate:"min=0"`
	MinStock      int             `json:"min_stock"      validate:"min=0"`
	Image         *string         `json:"image"`
	Barcode       *string         `json:"barcode"`
}

type AddStockRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductFilter struct {
	Name     string `form:"name"`
	Category string `form:"category"`
	Barcode  string `form:"barcode"`
	LowStock bool   `form:"low_stock"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"` // hidden from cashiers
	SalePrice     decimal.Decimal  `json:"sale_price"`
	Quantity      int              `json:"quantity"`
	MinStock      int              `json:"min_stock"`
	Image         *string          `json:"image"`
	Barcode       *string          `json:"barcode"`
	CreatedAt     string           `json:"created_at"`
	UpdatedAt     string           `json:"updated_at"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

type AddStockResponse struct {
	ID          string `json:"id"`
	NewQuantity int    `json:"new_quantity"`
}

// PriceCheckResponse is returned by the public barcode price lookup.
type PriceCheckResponse struct {
	Name      string          `json:"name"`
	SalePrice decimal.Decimal `json:"sale_price"`
	Available int             `json:"available"`
	Category  string          `json:"category"`
}
