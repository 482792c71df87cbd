package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-shopstock-api/internal/ai"
	"go-shopstock-api/internal/model"
	"go-shopstock-api/internal/repository"
)

var ErrProductNameEmpty = errors.New("product name must not be empty")

// Suggester is the opaque external function from a product name and the
// existing category names to a suggestion
type Suggester interface {
	Suggest(ctx context.Context, productName string, categoryNames []string) (*ai.Suggestion, error)
}

type AIService interface {
	SuggestProductDetails(ctx context.Context, ownerID, shopID uuid.UUID, productName string) (*model.AIPrediction, error)
}

type aiService struct {
	shopRepo     repository.ShopRepository
	categoryRepo repository.CategoryRepository
	suggester    Suggester
}

func NewAIService(shopRepo repository.ShopRepository, categoryRepo repository.CategoryRepository, suggester Suggester) AIService {
	return &aiService{
		shopRepo:     shopRepo,
		categoryRepo: categoryRepo,
		suggester:    suggester,
	}
}

// SuggestProductDetails asks the model for prefill details. A nil prediction
// with a nil error means "no suggestion available"; upstream failures never
// break the product form flow. The suggested category is resolved to an id
// only on an exact name match, and no category is ever auto-created.
func (s *aiService) SuggestProductDetails(ctx context.Context, ownerID, shopID uuid.UUID, productName string) (*model.AIPrediction, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return nil, ErrProductNameEmpty
	}

	shop, err := s.shopRepo.FindByID(shopID)
	if err != nil {
		return nil, ErrShopNotFound
	}
	if shop.OwnerID != ownerID {
		return nil, ErrNotShopOwner
	}

	categories, err := s.categoryRepo.FindByShop(shopID)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}

	suggestion, err := s.suggester.Suggest(ctx, productName, names)
	if err != nil {
		zap.L().Info("ai suggestion unavailable", zap.String("product", productName), zap.Error(err))
		return nil, nil
	}

	prediction := &model.AIPrediction{
		SuggestedCategory: suggestion.SuggestedCategory,
		ShortDescription:  suggestion.ShortDescription,
	}
	for _, c := range categories {
		if c.Name == suggestion.SuggestedCategory {
			id := c.ID
			prediction.CategoryID = &id
			break
		}
	}

	return prediction, nil
}
