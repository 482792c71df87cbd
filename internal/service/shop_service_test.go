package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"go-shopstock-api/internal/model"
	"go-shopstock-api/internal/ws"
)

func TestCreateShop(t *testing.T) {
	ownerID := uuid.New()

	t.Run("trims the name and creates", func(t *testing.T) {
		repo := &MockShopRepo{}
		svc := NewShopService(repo, ws.NewHub())

		shop, err := svc.CreateShop(ownerID, "  Corner Store  ", "#6366f1")
		assert.NoError(t, err)
		assert.Equal(t, "Corner Store", shop.Name)
		assert.Equal(t, "#6366f1", shop.Color)
		assert.Equal(t, ownerID, shop.OwnerID)
		assert.Len(t, repo.Shops, 1)
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		repo := &MockShopRepo{}
		svc := NewShopService(repo, ws.NewHub())

		_, err := svc.CreateShop(ownerID, "   ", "#fff")
		assert.ErrorIs(t, err, ErrShopNameEmpty)
		assert.Empty(t, repo.Shops)
	})
}

func TestListShops(t *testing.T) {
	ownerID := uuid.New()
	repo := &MockShopRepo{Shops: []model.Shop{
		{BaseModel: model.BaseModel{ID: uuid.New()}, OwnerID: ownerID, Name: "Newest"},
		{BaseModel: model.BaseModel{ID: uuid.New()}, OwnerID: ownerID, Name: "Oldest"},
		{BaseModel: model.BaseModel{ID: uuid.New()}, OwnerID: uuid.New(), Name: "Foreign"},
	}}
	svc := NewShopService(repo, ws.NewHub())

	shops, err := svc.ListShops(ownerID)
	assert.NoError(t, err)
	assert.Len(t, shops, 2)
	assert.Equal(t, "Newest", shops[0].Name)
	assert.Equal(t, "Oldest", shops[1].Name)
}

func TestShopForOwner(t *testing.T) {
	ownerID := uuid.New()
	shopID := uuid.New()
	repo := &MockShopRepo{Shops: []model.Shop{
		{BaseModel: model.BaseModel{ID: shopID}, OwnerID: ownerID, Name: "Mine"},
	}}
	svc := NewShopService(repo, ws.NewHub())

	t.Run("owner gets the shop", func(t *testing.T) {
		shop, err := svc.ShopForOwner(shopID, ownerID)
		assert.NoError(t, err)
		assert.Equal(t, "Mine", shop.Name)
	})

	t.Run("foreign owner is rejected", func(t *testing.T) {
		_, err := svc.ShopForOwner(shopID, uuid.New())
		assert.ErrorIs(t, err, ErrNotShopOwner)
	})

	t.Run("unknown shop", func(t *testing.T) {
		_, err := svc.ShopForOwner(uuid.New(), ownerID)
		assert.ErrorIs(t, err, ErrShopNotFound)
	})
}
