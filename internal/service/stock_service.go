package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orionpos/internal/apierror"
	"orionpos/internal/dto"
	"orionpos/internal/model"
	"orionpos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockService owns the stock ledger: every change to a product quantity
// goes through here and lands as a movement row inside the same transaction.
// Reading product.quantity and replaying the movement log must always agree.
type StockService interface {
	RecordMovement(ctx context.Context, userID uuid.UUID, req dto.CreateMovementRequest) (*dto.CreateMovementResponse, error)
	DeleteMovement(ctx context.Context, id uuid.UUID) error
	AddStock(ctx context.Context, userID uuid.UUID, productID uuid.UUID, req dto.AddStockRequest) (*dto.AddStockResponse, error)
	ListMovements(ctx context.Context, filter dto.MovementFilter) (*dto.MovementListResponse, error)

	// ApplyTx records a movement and adjusts the product quantity inside an
	// ongoing transaction. Exits fail with InsufficientStock before any write
	// when the product does not hold enough quantity.
	ApplyTx(tx *gorm.DB, m *model.StockMovement) error
}

type stockService struct {
	movementRepo repository.MovementRepository
	productRepo  repository.ProductRepository
}

func NewStockService(movementRepo repository.MovementRepository, productRepo repository.ProductRepository) StockService {
	return &stockService{movementRepo: movementRepo, productRepo: productRepo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *stockService) ApplyTx(tx *gorm.DB, m *model.StockMovement) error {
	p, err := s.productRepo.FindByIDTx(tx, m.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("product not found")
		}
		return err
	}
	if m.Direction == model.DirectionExit && p.Quantity < m.Quantity {
		return apierror.InsufficientStock(fmt.Sprintf(
			"insufficient stock for %q: have %d, need %d", p.Name, p.Quantity, m.Quantity))
	}
	m.ProductName = p.Name
	if err := s.productRepo.AdjustQuantityTx(tx, m.ProductID, m.SignedDelta()); err != nil {
		return err
	}
	return s.movementRepo.CreateTx(tx, m)
}

// ── Manual movements ─────────────────────────────────────────────────────────

func (s *stockService) RecordMovement(ctx context.Context, userID uuid.UUID, req dto.CreateMovementRequest) (*dto.CreateMovementResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, apierror.Validation("invalid product_id")
	}

	m := &model.StockMovement{
		ProductID: productID,
		Direction: req.Direction,
		Quantity:  req.Quantity,
		Reason:    req.Reason,
		UserID:    userID,
	}
	if m.Reason == "" {
		m.Reason = "manual movement"
	}

	var resp *dto.CreateMovementResponse
	err = runTx(ctx, s.movementRepo.DB(), func(tx *gorm.DB) error {
		if err := s.ApplyTx(tx, m); err != nil {
			return err
		}
		p, err := s.productRepo.FindByIDTx(tx, productID)
		if err != nil {
			return err
		}
		resp = &dto.CreateMovementResponse{ID: m.ID.String(), NewQuantity: p.Quantity}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// DeleteMovement removes a ledger row and applies the inverse adjustment so
// the product quantity stays consistent with the remaining log. Reverting an
// entry can never push the quantity below zero; the subtraction is clamped.
func (s *stockService) DeleteMovement(ctx context.Context, id uuid.UUID) error {
	m, err := s.movementRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("stock movement not found")
		}
		return err
	}

	return runTx(ctx, s.movementRepo.DB(), func(tx *gorm.DB) error {
		p, err := s.productRepo.FindByIDTx(tx, m.ProductID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		// Product may be gone; the row is still removable.
		if err == nil {
			newQty := p.Quantity - m.SignedDelta()
			if newQty < 0 {
				newQty = 0
			}
			if err := s.productRepo.SetQuantityTx(tx, m.ProductID, newQty); err != nil {
				return err
			}
		}
		return s.movementRepo.DeleteTx(tx, m.ID)
	})
}

// ── Quick restock ────────────────────────────────────────────────────────────

func (s *stockService) AddStock(ctx context.Context, userID uuid.UUID, productID uuid.UUID, req dto.AddStockRequest) (*dto.AddStockResponse, error) {
	m := &model.StockMovement{
		ProductID: productID,
		Direction: model.DirectionEntry,
		Quantity:  req.Quantity,
		Reason:    "replenishment",
		UserID:    userID,
	}

	var resp *dto.AddStockResponse
	err := runTx(ctx, s.movementRepo.DB(), func(tx *gorm.DB) error {
		if err := s.ApplyTx(tx, m); err != nil {
			return err
		}
		p, err := s.productRepo.FindByIDTx(tx, productID)
		if err != nil {
			return err
		}
		resp = &dto.AddStockResponse{ID: productID.String(), NewQuantity: p.Quantity}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ── Queries ──────────────────────────────────────────────────────────────────

func (s *stockService) ListMovements(ctx context.Context, filter dto.MovementFilter) (*dto.MovementListResponse, error) {
	since := periodCutoff(filter.Period, time.Now())
	movements, total, err := s.movementRepo.List(ctx, filter, since)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, movementToResponse(&m))
	}
	return &dto.MovementListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// periodCutoff maps a period keyword to its inclusive lower bound in local
// time. Cutoffs are computed in Go so the repositories stay dialect-neutral.
func periodCutoff(period string, now time.Time) *time.Time {
	var t time.Time
	switch period {
	case "today":
		t = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "week":
		// Monday of the current week
		offset := (int(now.Weekday()) + 6) % 7
		day := now.AddDate(0, 0, -offset)
		t = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
	case "month":
		t = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		return nil
	}
	return &t
}

func movementToResponse(m *model.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID.String(),
		ProductID:   m.ProductID.String(),
		ProductName: m.ProductName,
		Direction:   m.Direction,
		Quantity:    m.Quantity,
		Reason:      m.Reason,
		UserID:      m.UserID.String(),
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}
