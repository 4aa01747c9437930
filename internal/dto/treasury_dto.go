package dto

import "github.com/shopspring/decimal"

// ─── Expenses ────────────────────────────────────────────────────────────────

type CreateExpenseRequest struct {
	Description string          `json:"description" validate:"required,min=1,max=240"`
	Amount      decimal.Decimal `json:"amount"      validate:"required,gt=0"`
	Type        string          `json:"type"        validate:"omitempty,oneof=realized projected"`
	Category    string          `json:"category"    validate:"omitempty,max=60"`
	Status      string          `json:"status"      validate:"omitempty,oneof=pending validated"`
}

type UpdateExpenseRequest struct {
	Description string          `json:"description" validate:"required,min=1,max=240"`
	Amount      decimal.Decimal `json:"amount"      validate:"required,gt=0"`
	Type        string          `json:"type"        validate:"required,oneof=realized projected"`
	Category    string          `json:"category"    validate:"omitempty,max=60"`
	Status      string          `json:"status"      validate:"required,oneof=pending validated"`
}

type ExpenseResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"created_at"`
}

// ─── Financial goals ─────────────────────────────────────────────────────────

type CreateGoalRequest struct {
	Name         string          `json:"name"          validate:"required,min=1,max=120"`
	TargetAmount decimal.Decimal `json:"target_amount" validate:"required,gt=0"`
	Deadline     *string         `json:"deadline"      validate:"omitempty,datetime=2006-01-02"`
}

type UpdateGoalRequest struct {
	Name          string          `json:"name"           validate:"required,min=1,max=120"`
	TargetAmount  decimal.Decimal `json:"target_amount"  validate:"required,gt=0"`
	CurrentAmount decimal.Decimal `json:"current_amount" validate:"min=0"`
	Deadline      *string         `json:"deadline"       validate:"omitempty,datetime=2006-01-02"`
	Status        string          `json:"status"         validate:"omitempty,oneof=active reached abandoned"`
}

type GoalResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      *string         `json:"deadline"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"created_at"`
}

// ─── Company config ──────────────────────────────────────────────────────────

type UpdateConfigRequest struct {
	Name          string          `json:"name"           validate:"required,min=1,max=120"`
	Logo          *string         `json:"logo"`
	Address       string          `json:"address"        validate:"omitempty,max=240"`
	Phone         string          `json:"phone"          validate:"omitempty,max=30"`
	Email         string          `json:"email"          validate:"omitempty,email"`
	Website       string          `json:"website"        validate:"omitempty,max=120"`
	InvoiceHeader string          `json:"invoice_header" validate:"omitempty,max=240"`
	InvoiceFooter string          `json:"invoice_footer" validate:"omitempty,max=240"`
	Currency      string          `json:"currency"       validate:"omitempty,max=10"`
	TaxRate       decimal.Decimal `json:"tax_rate"       validate:"min=0"`
}

type ConfigResponse struct {
	Name          string          `json:"name"`
	Logo          *string         `json:"logo"`
	Address       string          `json:"address"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Website       string          `json:"website"`
	InvoiceHeader string          `json:"invoice_header"`
	InvoiceFooter string          `json:"invoice_footer"`
	Currency      string          `json:"currency"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
}
