package repository

import (
	"context"
	"time"

	"orionpos/internal/dto"
	"orionpos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaleRepository is the access contract for sales and their line items.
type SaleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	List(ctx context.Context, filter dto.SaleFilter, since *time.Time) ([]model.Sale, int64, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Sale, error)
	ListSince(ctx context.Context, since time.Time) ([]model.Sale, error)

	// Used inside transactions. Callers must pass the tx instance.
	CreateTx(tx *gorm.DB, s *model.Sale) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	DB() *gorm.DB
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Client").
		Preload("User").
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *saleRepo) List(ctx context.Context, filter dto.SaleFilter, since *time.Time) ([]model.Sale, int64, error) {
	var sales []model.Sale
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Sale{})
	if since != nil {
		q = q.Where("created_at >= ?", *since)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Items").Preload("Client").Preload("User").
		Order("created_at DESC").Limit(filter.Limit).Offset(offset).
		Find(&sales).Error
	return sales, total, err
}

func (r *saleRepo) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) ListSince(ctx context.Context, since time.Time) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) CreateTx(tx *gorm.DB, s *model.Sale) error {
	return tx.Create(s).Error
}

func (r *saleRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Delete(&model.SaleItem{}, "sale_id = ?", id).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Sale{}, "id = ?", id).Error
}

func (r *saleRepo) DB() *gorm.DB { return r.db }
