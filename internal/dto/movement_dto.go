package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateMovementRequest is the privileged manual-movement payload.
type CreateMovementRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Direction string `json:"direction"  validate:"required,oneof=entry exit"`
	Quantity  int    `json:"quantity"   validate:"required,gt=0"`
	Reason    string `json:"reason"     validate:"omitempty,max=240"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type MovementFilter struct {
	ProductID string `form:"product_id" validate:"omitempty,uuid"`
	Direction string `form:"direction"  validate:"omitempty,oneof=entry exit"`
	Period    string `form:"period"     validate:"omitempty,oneof=today week month"`
	Page      int    `form:"page,default=1"    validate:"min=1"`
	Limit     int    `form:"limit,default=100" validate:"min=1,max=500"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MovementResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Direction   string `json:"direction"`
	Quantity    int    `json:"quantity"`
	Reason      string `json:"reason"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type MovementListResponse struct {
	Data  []MovementResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

type CreateMovementResponse struct {
	ID          string `json:"id"`
	NewQuantity int    `json:"new_quantity"`
}
