package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is a registered customer. Sales may reference a client but do not
// require one (anonymous checkout).
type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"index;not null"`
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time

	Sales []Sale `gorm:"foreignKey:ClientID"`
}

func (c *Client) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
