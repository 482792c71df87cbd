package model

import "github.com/google/uuid"

// Category is a named grouping of products within one shop
type Category struct {
	BaseModel
	ShopID uuid.UUID `gorm:"type:uuid;not null;index" json:"shop_id" validate:"uuid_required"`
	Shop   *Shop     `gorm:"foreignKey:ShopID" json:"shop,omitempty" validate:"-"`
	Name   string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Color  string    `gorm:"type:varchar(20)" json:"color,omitempty"`
	Icon   string    `gorm:"type:varchar(50)" json:"icon,omitempty"`
}
