package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-shopstock-api/internal/model"
	"go-shopstock-api/internal/repository"
	"go-shopstock-api/internal/ws"
	"go-shopstock-api/pkg/validator"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrCategoryNameEmpty = errors.New("category name must not be empty")
	ErrCategoryWrongShop = errors.New("category does not belong to this shop")
	ErrNegativeQuantity  = errors.New("quantity must not be negative")

	// ErrValidation wraps field-level validation failures so handlers can
	// tell a bad request apart from an internal failure
	ErrValidation = errors.New("validation failed")
)

// ProductInput carries the mutable product fields for create and the full
// replace on edit.
type ProductInput struct {
	Name        string
	CategoryID  uuid.UUID
	Quantity    int
	Price       decimal.Decimal
	Image       *string
	Description string
}

type InventoryService interface {
	ListCategories(ownerID, shopID uuid.UUID) ([]model.Category, error)
	CreateCategory(ownerID, shopID uuid.UUID, name, color, icon string) (*model.Category, error)
	UpdateCategory(ownerID, categoryID uuid.UUID, name, color, icon string) (*model.Category, error)
	DeleteCategory(ownerID, categoryID uuid.UUID) (int64, error)

	ListProducts(ownerID, shopID uuid.UUID, term string, lowStockOnly bool) ([]model.Product, error)
	ShopProducts(ownerID, shopID uuid.UUID) ([]model.Product, error)
	CreateProduct(ownerID, shopID uuid.UUID, input ProductInput) (*model.Product, error)
	UpdateProduct(ownerID, productID uuid.UUID, input ProductInput) (*model.Product, error)
	DeleteProduct(ownerID, productID uuid.UUID) error
	UpdateQuantity(ownerID, productID uuid.UUID, quantity int) (*model.Product, error)
	Stats(ownerID, shopID uuid.UUID) (*ShopStats, error)
}

type inventoryService struct {
	shopRepo     repository.ShopRepository
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	runInTx      func(fn func(tx *gorm.DB) error) error
	wsHub        *ws.Hub
}

func NewInventoryService(
	shopRepo repository.ShopRepository,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	db *gorm.DB,
	hub *ws.Hub,
) InventoryService {
	return &inventoryService{
		shopRepo:     shopRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		runInTx:      func(fn func(tx *gorm.DB) error) error { return db.Transaction(fn) },
		wsHub:        hub,
	}
}

// ownedShop enforces tenancy for every shop-scoped operation
func (s *inventoryService) ownedShop(shopID, ownerID uuid.UUID) (*model.Shop, error) {
	shop, err := s.shopRepo.FindByID(shopID)
	if err != nil {
		return nil, ErrShopNotFound
	}
	if shop.OwnerID != ownerID {
		return nil, ErrNotShopOwner
	}
	return shop, nil
}

// ============ Categories ============

func (s *inventoryService) ListCategories(ownerID, shopID uuid.UUID) ([]model.Category, error) {
	if _, err := s.ownedShop(shopID, ownerID); err != nil {
		return nil, err
	}
	return s.categoryRepo.FindByShop(shopID)
}

func (s *inventoryService) CreateCategory(ownerID, shopID uuid.UUID, name, color, icon string) (*model.Category, error) {
	if _, err := s.ownedShop(shopID, ownerID); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameEmpty
	}

	category := &model.Category{
		ShopID: shopID,
		Name:   name,
		Color:  color,
		Icon:   icon,
	}
	if errs := validator.ValidateStruct(category); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, errs[0].Message())
	}

	if err := s.categoryRepo.Create(category); err != nil {
		zap.L().Error("failed to create category", zap.Error(err))
		return nil, errors.New("failed to create category")
	}

	go s.wsHub.Publish(ws.EventCategoryCreated, category)

	return category, nil
}

func (s *inventoryService) UpdateCategory(ownerID, categoryID uuid.UUID, name, color, icon string) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(categoryID)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	if _, err := s.ownedShop(category.ShopID, ownerID); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameEmpty
	}

	category.Name = name
	category.Color = color
	category.Icon = icon

	if err := s.categoryRepo.Update(category); err != nil {
		zap.L().Error("failed to update category", zap.Error(err))
		return nil, errors.New("failed to update category")
	}

	go s.wsHub.Publish(ws.EventCategoryUpdated, category)

	return category, nil
}

// DeleteCategory removes the category and every product referencing it in
// one transaction, so the store can never hold orphaned products. Returns
// how many products went away with it.
func (s *inventoryService) DeleteCategory(ownerID, categoryID uuid.UUID) (int64, error) {
	category, err := s.categoryRepo.FindByID(categoryID)
	if err != nil {
		return 0, ErrCategoryNotFound
	}
	if _, err := s.ownedShop(category.ShopID, ownerID); err != nil {
		return 0, err
	}

	var deletedProducts int64
	err = s.runInTx(func(tx *gorm.DB) error {
		count, err := s.productRepo.DeleteByCategory(tx, categoryID)
		if err != nil {
			return err
		}
		deletedProducts = count
		return s.categoryRepo.Delete(tx, categoryID)
	})
	if err != nil {
		zap.L().Error("failed to delete category", zap.String("category_id", categoryID.String()), zap.Error(err))
		return 0, errors.New("failed to delete category")
	}

	go s.wsHub.Publish(ws.EventCategoryDeleted, map[string]interface{}{
		"id":               categoryID,
		"shop_id":          category.ShopID,
		"deleted_products": deletedProducts,
	})

	return deletedProducts, nil
}

// ============ Products ============

func (s *inventoryService) ShopProducts(ownerID, shopID uuid.UUID) ([]model.Product, error) {
	if _, err := s.ownedShop(shopID, ownerID); err != nil {
		return nil, err
	}
	return s.productRepo.FindByShop(shopID)
}

func (s *inventoryService) ListProducts(ownerID, shopID uuid.UUID, term string, lowStockOnly bool) ([]model.Product, error) {
	products, err := s.ShopProducts(ownerID, shopID)
	if err != nil {
		return nil, err
	}
	return FilterProducts(products, term, lowStockOnly), nil
}

// buildProduct assembles and validates a product row from input, shared by
// create and edit. The category must exist and live in the same shop.
func (s *inventoryService) buildProduct(product *model.Product, shopID uuid.UUID, input ProductInput) error {
	category, err := s.categoryRepo.FindByID(input.CategoryID)
	if err != nil {
		return ErrCategoryNotFound
	}
	if category.ShopID != shopID {
		return ErrCategoryWrongShop
	}

	if input.Image != nil && *input.Image != "" {
		if err := ValidateImageDataURI(*input.Image); err != nil {
			return err
		}
	}

	product.ShopID = shopID
	product.CategoryID = input.CategoryID
	product.Name = strings.TrimSpace(input.Name)
	product.Quantity = input.Quantity
	product.Price = input.Price
	product.Image = input.Image
	product.Description = input.Description
	product.LastUpdated = time.Now().UTC()

	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, errs[0].Message())
	}
	return nil
}

func (s *inventoryService) CreateProduct(ownerID, shopID uuid.UUID, input ProductInput) (*model.Product, error) {
	if _, err := s.ownedShop(shopID, ownerID); err != nil {
		return nil, err
	}

	var product model.Product
	if err := s.buildProduct(&product, shopID, input); err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(&product); err != nil {
		zap.L().Error("failed to create product", zap.Error(err))
		return nil, errors.New("failed to create product")
	}

	go s.wsHub.Publish(ws.EventProductCreated, product.ToResponse())

	return &product, nil
}

// UpdateProduct is a full replace of all mutable fields
func (s *inventoryService) UpdateProduct(ownerID, productID uuid.UUID, input ProductInput) (*model.Product, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	if _, err := s.ownedShop(product.ShopID, ownerID); err != nil {
		return nil, err
	}

	if err := s.buildProduct(product, product.ShopID, input); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(product); err != nil {
		zap.L().Error("failed to update product", zap.Error(err))
		return nil, errors.New("failed to update product")
	}

	go s.wsHub.Publish(ws.EventProductUpdated, product.ToResponse())

	return product, nil
}

func (s *inventoryService) DeleteProduct(ownerID, productID uuid.UUID) error {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return ErrProductNotFound
	}
	if _, err := s.ownedShop(product.ShopID, ownerID); err != nil {
		return err
	}

	if err := s.productRepo.Delete(productID); err != nil {
		zap.L().Error("failed to delete product", zap.Error(err))
		return errors.New("failed to delete product")
	}

	go s.wsHub.Publish(ws.EventProductDeleted, map[string]interface{}{
		"id":      productID,
		"shop_id": product.ShopID,
	})

	return nil
}

// UpdateQuantity is the stepper fast path: only quantity and last_updated
// change, and the persisted row comes back so clients can reconcile.
func (s *inventoryService) UpdateQuantity(ownerID, productID uuid.UUID, quantity int) (*model.Product, error) {
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	if _, err := s.ownedShop(product.ShopID, ownerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.productRepo.UpdateQuantity(productID, quantity, now); err != nil {
		zap.L().Error("failed to update quantity", zap.String("product_id", productID.String()), zap.Error(err))
		return nil, errors.New("failed to update quantity")
	}

	product.Quantity = quantity
	product.LastUpdated = now

	go s.wsHub.Publish(ws.EventQuantityUpdated, map[string]interface{}{
		"id":           productID,
		"shop_id":      product.ShopID,
		"quantity":     quantity,
		"last_updated": now.UnixMilli(),
	})

	return product, nil
}

// Stats aggregates over the full unfiltered product set of the shop
func (s *inventoryService) Stats(ownerID, shopID uuid.UUID) (*ShopStats, error) {
	products, err := s.ShopProducts(ownerID, shopID)
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(products)
	stats.ShopID = shopID.String()
	return &stats, nil
}
