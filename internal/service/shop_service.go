package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-shopstock-api/internal/model"
	"go-shopstock-api/internal/repository"
	"go-shopstock-api/internal/ws"
)

var (
	ErrShopNotFound  = errors.New("shop not found")
	ErrNotShopOwner  = errors.New("shop does not belong to the current user")
	ErrShopNameEmpty = errors.New("shop name must not be empty")
)

type ShopService interface {
	ListShops(ownerID uuid.UUID) ([]model.ShopResponse, error)
	CreateShop(ownerID uuid.UUID, name, color string) (*model.ShopResponse, error)
	ShopForOwner(shopID, ownerID uuid.UUID) (*model.Shop, error)
}

type shopService struct {
	shopRepo repository.ShopRepository
	wsHub    *ws.Hub
}

func NewShopService(shopRepo repository.ShopRepository, hub *ws.Hub) ShopService {
	return &shopService{shopRepo: shopRepo, wsHub: hub}
}

// ListShops returns the caller's shops ordered newest-first
func (s *shopService) ListShops(ownerID uuid.UUID) ([]model.ShopResponse, error) {
	shops, err := s.shopRepo.FindByOwner(ownerID)
	if err != nil {
		zap.L().Error("failed to list shops", zap.String("owner_id", ownerID.String()), zap.Error(err))
		return nil, err
	}

	responses := make([]model.ShopResponse, len(shops))
	for i, shop := range shops {
		responses[i] = shop.ToResponse()
	}
	return responses, nil
}

func (s *shopService) CreateShop(ownerID uuid.UUID, name, color string) (*model.ShopResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrShopNameEmpty
	}

	shop := &model.Shop{
		OwnerID: ownerID,
		Name:    name,
		Color:   color,
	}
	if err := s.shopRepo.Create(shop); err != nil {
		zap.L().Error("failed to create shop", zap.Error(err))
		return nil, errors.New("failed to create shop")
	}

	resp := shop.ToResponse()
	go s.wsHub.Publish(ws.EventShopCreated, resp)

	return &resp, nil
}

// ShopForOwner loads a shop and enforces tenancy: every shop-scoped
// operation must go through this check.
func (s *shopService) ShopForOwner(shopID, ownerID uuid.UUID) (*model.Shop, error) {
	shop, err := s.shopRepo.FindByID(shopID)
	if err != nil {
		return nil, ErrShopNotFound
	}
	if shop.OwnerID != ownerID {
		return nil, ErrNotShopOwner
	}
	return shop, nil
}
