package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=4"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type CreateUserRequest struct {
	Username string `json:"username"  validate:"required,min=1,max=150"`
	Password string `json:"password"  validate:"required,min=6"`
	Role     string `json:"role"      validate:"required,oneof=admin cashier"`
	FullName string `json:"full_name" validate:"omitempty,max=120"`
}

type UpdateUserRequest struct {
	Username string `json:"username"  validate:"omitempty,min=1,max=150"`
	Password string `json:"password"  validate:"omitempty,min=6"`
	Role     string `json:"role"      validate:"omitempty,oneof=admin cashier"`
	FullName string `json:"full_name" validate:"omitempty,max=120"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	FullName  string `json:"full_name"`
	IsDefault bool   `json:"is_default"`
	CreatedAt string `json:"created_at"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"`
	User         UserResponse `json:"user"`
}
