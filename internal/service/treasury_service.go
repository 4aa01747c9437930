package service

import (
	"context"
	"errors"
	"time"

	"orionpos/internal/apierror"
	"orionpos/internal/dto"
	"orionpos/internal/model"
	"orionpos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TreasuryService manages expenses and financial goals.
type TreasuryService interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error)
	ListExpenses(ctx context.Context) ([]dto.ExpenseResponse, error)
	UpdateExpense(ctx context.Context, id uuid.UUID, req dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error)
	DeleteExpense(ctx context.Context, id uuid.UUID) error

	CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*dto.GoalResponse, error)
	ListGoals(ctx context.Context) ([]dto.GoalResponse, error)
	UpdateGoal(ctx context.Context, id uuid.UUID, req dto.UpdateGoalRequest) (*dto.GoalResponse, error)
	DeleteGoal(ctx context.Context, id uuid.UUID) error
}

type treasuryService struct {
	expenses repository.ExpenseRepository
	goals    repository.GoalRepository
}

func NewTreasuryService(expenses repository.ExpenseRepository, goals repository.GoalRepository) TreasuryService {
	return &treasuryService{expenses: expenses, goals: goals}
}

// ── Expenses ─────────────────────────────────────────────────────────────────

func (s *treasuryService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	e := &model.Expense{
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Status:      req.Status,
	}
	if e.Type == "" {
		e.Type = "realized"
	}
	if e.Status == "" {
		e.Status = model.ExpensePending
	}
	if err := s.expenses.Create(ctx, e); err != nil {
		return nil, err
	}
	resp := expenseToResponse(e)
	return &resp, nil
}

func (s *treasuryService) ListExpenses(ctx context.Context) ([]dto.ExpenseResponse, error) {
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ExpenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = expenseToResponse(&e)
	}
	return resp, nil
}

func (s *treasuryService) UpdateExpense(ctx context.Context, id uuid.UUID, req dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	e, err := s.expenses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("expense not found")
		}
		return nil, err
	}
	e.Description = req.Description
	e.Amount = req.Amount
	e.Type = req.Type
	e.Category = req.Category
	e.Status = req.Status
	if err := s.expenses.Update(ctx, e); err != nil {
		return nil, err
	}
	resp := expenseToResponse(e)
	return &resp, nil
}

func (s *treasuryService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	if _, err := s.expenses.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("expense not found")
		}
		return err
	}
	return s.expenses.Delete(ctx, id)
}

// ── Financial goals ──────────────────────────────────────────────────────────

func (s *treasuryService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*dto.GoalResponse, error) {
	g := &model.FinancialGoal{
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		Status:       "active",
	}
	if req.Deadline != nil {
		d, err := time.Parse("2006-01-02", *req.Deadline)
		if err != nil {
			return nil, apierror.Validation("deadline must be YYYY-MM-DD")
		}
		g.Deadline = &d
	}
	if err := s.goals.Create(ctx, g); err != nil {
		return nil, err
	}
	resp := goalToResponse(g)
	return &resp, nil
}

func (s *treasuryService) ListGoals(ctx context.Context) ([]dto.GoalResponse, error) {
	goals, err := s.goals.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.GoalResponse, len(goals))
	for i, g := range goals {
		resp[i] = goalToResponse(&g)
	}
	return resp, nil
}

func (s *treasuryService) UpdateGoal(ctx context.Context, id uuid.UUID, req dto.UpdateGoalRequest) (*dto.GoalResponse, error) {
	g, err := s.goals.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("financial goal not found")
		}
		return nil, err
	}
	g.Name = req.Name
	g.TargetAmount = req.TargetAmount
	g.CurrentAmount = req.CurrentAmount
	if req.Status != "" {
		g.Status = req.Status
	}
	if req.Deadline != nil {
		d, err := time.Parse("2006-01-02", *req.Deadline)
		if err != nil {
			return nil, apierror.Validation("deadline must be YYYY-MM-DD")
		}
		g.Deadline = &d
	}
	// A goal whose current amount reaches the target flips to reached.
	if g.Status == "active" && g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) {
		g.Status = "reached"
	}
	if err := s.goals.Update(ctx, g); err != nil {
		return nil, err
	}
	resp := goalToResponse(g)
	return &resp, nil
}

func (s *treasuryService) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	if _, err := s.goals.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("financial goal not found")
		}
		return err
	}
	return s.goals.Delete(ctx, id)
}

func expenseToResponse(e *model.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          e.ID.String(),
		Description: e.Description,
		Amount:      e.Amount,
		Type:        e.Type,
		Category:    e.Category,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func goalToResponse(g *model.FinancialGoal) dto.GoalResponse {
	r := dto.GoalResponse{
		ID:            g.ID.String(),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Status:        g.Status,
		CreatedAt:     g.CreatedAt.Format(time.RFC3339),
	}
	if g.Deadline != nil {
		d := g.Deadline.Format("2006-01-02")
		r.Deadline = &d
	}
	return r
}
