package repository

import (
	"go-shopstock-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShopRepository interface {
	Create(shop *model.Shop) error
	FindByOwner(ownerID uuid.UUID) ([]model.Shop, error)
	FindByID(id uuid.UUID) (*model.Shop, error)
}

type shopRepo struct {
	db *gorm.DB
}

func NewShopRepo(db *gorm.DB) ShopRepository {
	return &shopRepo{db}
}

func (r *shopRepo) Create(shop *model.Shop) error {
	return r.db.Create(shop).Error
}

// FindByOwner returns the owner's shops ordered newest-first
func (r *shopRepo) FindByOwner(ownerID uuid.UUID) ([]model.Shop, error) {
	var shops []model.Shop
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&shops).Error
	return shops, err
}

func (r *shopRepo) FindByID(id uuid.UUID) (*model.Shop, error) {
	var shop model.Shop
	if err := r.db.First(&shop, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}
