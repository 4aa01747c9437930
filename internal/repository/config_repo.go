package repository

import (
	"context"
	"errors"

	"orionpos/internal/model"

	"gorm.io/gorm"
)

// ConfigRepository is the access contract for the company config singleton.
// The table holds exactly one row with id 1; Get creates it on first read.
type ConfigRepository interface {
	Get(ctx context.Context) (*model.CompanyConfig, error)
	Update(ctx context.Context, c *model.CompanyConfig) error
}

type configRepo struct{ db *gorm.DB }

func NewConfigRepository(db *gorm.DB) ConfigRepository { return &configRepo{db: db} }

func (r *configRepo) Get(ctx context.Context) (*model.CompanyConfig, error) {
	var c model.CompanyConfig
	err := r.db.WithContext(ctx).First(&c, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = model.CompanyConfig{ID: 1}
		if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
			return nil, err
		}
		// Re-read so column defaults are populated.
		err = r.db.WithContext(ctx).First(&c, "id = ?", 1).Error
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *configRepo) Update(ctx context.Context, c *model.CompanyConfig) error {
	c.ID = 1
	return r.db.WithContext(ctx).Save(c).Error
}
