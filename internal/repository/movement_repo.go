package repository

import (
	"context"
	"time"

	"orionpos/internal/dto"
	"orionpos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MovementRepository is the access contract for the stock movement log.
// The log is append-only from the business side: rows are created inside the
// same transaction that touches product.quantity, and only ever removed by the
// explicit movement-deletion operation which writes the inverse adjustment.
type MovementRepository interface {
	Create(ctx context.Context, m *model.StockMovement) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.StockMovement, error)
	List(ctx context.Context, filter dto.MovementFilter, since *time.Time) ([]model.StockMovement, int64, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]model.StockMovement, error)

	// Used inside transactions. Callers must pass the tx instance.
	CreateTx(tx *gorm.DB, m *model.StockMovement) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	DeleteByProductTx(tx *gorm.DB, productID uuid.UUID) error

	DB() *gorm.DB
}

type movementRepo struct{ db *gorm.DB }

func NewMovementRepository(db *gorm.DB) MovementRepository { return &movementRepo{db: db} }

func (r *movementRepo) Create(ctx context.Context, m *model.StockMovement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *movementRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.StockMovement, error) {
	var m model.StockMovement
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *movementRepo) List(ctx context.Context, filter dto.MovementFilter, since *time.Time) ([]model.StockMovement, int64, error) {
	var movements []model.StockMovement
	var total int64

	q := r.db.WithContext(ctx).Model(&model.StockMovement{})

	if filter.ProductID != "" {
		q = q.Where("product_id = ?", filter.ProductID)
	}
	if filter.Direction != "" {
		q = q.Where("direction = ?", filter.Direction)
	}
	if since != nil {
		q = q.Where("created_at >= ?", *since)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("created_at DESC").Limit(filter.Limit).Offset(offset).Find(&movements).Error
	return movements, total, err
}

func (r *movementRepo) ListByProduct(ctx context.Context, productID uuid.UUID) ([]model.StockMovement, error) {
	var movements []model.StockMovement
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&movements).Error
	return movements, err
}

func (r *movementRepo) CreateTx(tx *gorm.DB, m *model.StockMovement) error {
	return tx.Create(m).Error
}

func (r *movementRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.StockMovement{}, "id = ?", id).Error
}

func (r *movementRepo) DeleteByProductTx(tx *gorm.DB, productID uuid.UUID) error {
	return tx.Delete(&model.StockMovement{}, "product_id = ?", productID).Error
}

func (r *movementRepo) DB() *gorm.DB { return r.db }
