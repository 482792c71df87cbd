package model

import "github.com/google/uuid"

// Shop is a tenant-scoped inventory owned by exactly one user.
// There is no edit or delete surface for shops.
type Shop struct {
	BaseModel
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id" validate:"uuid_required"`
	Owner   *User     `gorm:"foreignKey:OwnerID" json:"owner,omitempty" validate:"-"`
	Name    string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Color   string    `gorm:"type:varchar(20)" json:"color"`
}

// ShopResponse carries the creation time as epoch milliseconds
type ShopResponse struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt int64     `json:"created_at"`
}

func (s *Shop) ToResponse() ShopResponse {
	return ShopResponse{
		ID:        s.ID,
		OwnerID:   s.OwnerID,
		Name:      s.Name,
		Color:     s.Color,
		CreatedAt: s.CreatedAt.UnixMilli(),
	}
}
