package repository

import (
	"time"

	"go-shopstock-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindByShop(shopID uuid.UUID) ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) error
	UpdateQuantity(id uuid.UUID, quantity int, lastUpdated time.Time) error
	DeleteByCategory(tx *gorm.DB, categoryID uuid.UUID) (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindByShop(shopID uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("shop_id = ?", shopID).Order("created_at ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

// UpdateQuantity is the fast path: only quantity and last_updated change
func (r *productRepo) UpdateQuantity(id uuid.UUID, quantity int, lastUpdated time.Time) error {
	return r.db.Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":     quantity,
			"last_updated": lastUpdated,
		}).Error
}

// DeleteByCategory removes every product of a category inside the caller's
// transaction and reports how many rows went away
func (r *productRepo) DeleteByCategory(tx *gorm.DB, categoryID uuid.UUID) (int64, error) {
	res := tx.Delete(&model.Product{}, "category_id = ?", categoryID)
	return res.RowsAffected, res.Error
}
