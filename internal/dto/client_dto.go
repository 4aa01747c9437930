package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateClientRequest struct {
	Name    string `json:"name"    validate:"required,min=1,max=120"`
	Phone   string `json:"phone"   validate:"omitempty,max=30"`
	Email   string `json:"email"   validate:"omitempty,email"`
	Address string `json:"address" validate:"omitempty,max=240"`
}

type UpdateClientRequest struct {
	Name    string `json:"name"    validate:"required,min=1,max=120"`
	Phone   string `json:"phone"   validate:"omitempty,max=30"`
	Email   string `json:"email"   validate:"omitempty,email"`
	Address string `json:"address" validate:"omitempty,max=240"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClientResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	CreatedAt string `json:"created_at"`
}

// ClientDetailResponse embeds the client's purchase history.
type ClientDetailResponse struct {
	ClientResponse
	Sales []SaleListItem `json:"sales"`
}
