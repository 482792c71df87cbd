package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LowStockThreshold is the quantity at or below which a product counts as
// low stock. Shared by the filter, the stats aggregates, and any consumer
// of the low-stock flag.
const LowStockThreshold = 3

// Product is a stocked item belonging to one category in one shop.
// Image is an inline data URI stored as text, not a blob reference.
type Product struct {
	BaseModel
	ShopID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"shop_id" validate:"uuid_required"`
	Shop        *Shop           `gorm:"foreignKey:ShopID" json:"shop,omitempty" validate:"-"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id" validate:"uuid_required"`
	Category    *Category       `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category,omitempty" validate:"-"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Quantity    int             `gorm:"default:0" json:"quantity" validate:"gte=0"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"price"`
	Image       *string         `gorm:"type:text" json:"image"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	LastUpdated time.Time       `gorm:"not null" json:"last_updated"`
}

// IsLowStock reports whether the product is at or below the threshold
func (p *Product) IsLowStock() bool {
	return p.Quantity <= LowStockThreshold
}

// ProductResponse carries last_updated as epoch milliseconds
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	ShopID      uuid.UUID       `json:"shop_id"`
	CategoryID  uuid.UUID       `json:"category_id"`
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Image       *string         `json:"image"`
	Description string          `json:"description,omitempty"`
	LastUpdated int64           `json:"last_updated"`
}

func (p *Product) ToResponse() ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		ShopID:      p.ShopID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Quantity:    p.Quantity,
		Price:       p.Price,
		Image:       p.Image,
		Description: p.Description,
		LastUpdated: p.LastUpdated.UnixMilli(),
	}
}
