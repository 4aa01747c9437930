package repository

import (
	"context"
	"time"

	"orionpos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseRepository is the access contract for expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, e *model.Expense) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Expense, error)
	List(ctx context.Context) ([]model.Expense, error)
	Update(ctx context.Context, e *model.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	SumSince(ctx context.Context, since time.Time, expenseType string) (decimal.Decimal, error)
}

type expenseRepo struct{ db *gorm.DB }

func NewExpenseRepository(db *gorm.DB) ExpenseRepository { return &expenseRepo{db: db} }

func (r *expenseRepo) Create(ctx context.Context, e *model.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *expenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Expense, error) {
	var e model.Expense
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *expenseRepo) List(ctx context.Context) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) Update(ctx context.Context, e *model.Expense) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *expenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Expense{}, "id = ?", id).Error
}

func (r *expenseRepo) SumSince(ctx context.Context, since time.Time, expenseType string) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	q := r.db.WithContext(ctx).Model(&model.Expense{}).
		Select("SUM(amount)").
		Where("created_at >= ?", since)
	if expenseType != "" {
		q = q.Where("type = ?", expenseType)
	}
	if err := q.Scan(&sum).Error; err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

// GoalRepository is the access contract for financial goals.
type GoalRepository interface {
	Create(ctx context.Context, g *model.FinancialGoal) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.FinancialGoal, error)
	List(ctx context.Context) ([]model.FinancialGoal, error)
	Update(ctx context.Context, g *model.FinancialGoal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type goalRepo struct{ db *gorm.DB }

func NewGoalRepository(db *gorm.DB) GoalRepository { return &goalRepo{db: db} }

func (r *goalRepo) Create(ctx context.Context, g *model.FinancialGoal) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *goalRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.FinancialGoal, error) {
	var g model.FinancialGoal
	err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error
	return &g, err
}

func (r *goalRepo) List(ctx context.Context) ([]model.FinancialGoal, error) {
	var goals []model.FinancialGoal
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&goals).Error
	return goals, err
}

func (r *goalRepo) Update(ctx context.Context, g *model.FinancialGoal) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *goalRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FinancialGoal{}, "id = ?", id).Error
}
