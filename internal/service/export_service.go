package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-shopstock-api/internal/model"
	"go-shopstock-api/internal/repository"
)

// ErrNoProducts signals that the export is a no-op for an empty shop
var ErrNoProducts = errors.New("no products to export")

// csvBOM makes spreadsheet tools detect UTF-8 so the Arabic header and
// right-to-left content render correctly.
const csvBOM = "\uFEFF"

// uncategorizedLabel is emitted when a product's category cannot be resolved
const uncategorizedLabel = "غير مصنف"

var csvHeaders = []string{"اسم المنتج", "القسم", "الكمية", "السعر", "الوصف"}

type ExportResult struct {
	Filename string
	Data     []byte
}

type ExportService interface {
	ExportCSV(ownerID, shopID uuid.UUID) (*ExportResult, error)
}

type exportService struct {
	shopRepo     repository.ShopRepository
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

func NewExportService(
	shopRepo repository.ShopRepository,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
) ExportService {
	return &exportService{
		shopRepo:     shopRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

func (s *exportService) ExportCSV(ownerID, shopID uuid.UUID) (*ExportResult, error) {
	shop, err := s.shopRepo.FindByID(shopID)
	if err != nil {
		return nil, ErrShopNotFound
	}
	if shop.OwnerID != ownerID {
		return nil, ErrNotShopOwner
	}

	products, err := s.productRepo.FindByShop(shopID)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNoProducts
	}

	categories, err := s.categoryRepo.FindByShop(shopID)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		Filename: ExportFilename(shop.Name, time.Now()),
		Data:     BuildCSV(products, categories),
	}, nil
}

// ExportFilename embeds the shop name and the current date
func ExportFilename(shopName string, now time.Time) string {
	return fmt.Sprintf("inventory_%s_%s.csv", shopName, now.Format("2006-01-02"))
}

// BuildCSV renders the export artifact: BOM-prefixed UTF-8, fixed column
// order (name, category, quantity, price, description), string fields always
// double-quoted with internal quotes doubled, numeric fields bare.
func BuildCSV(products []model.Product, categories []model.Category) []byte {
	categoryNames := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	var b strings.Builder
	b.WriteString(csvBOM)
	b.WriteString(strings.Join(csvHeaders, ","))

	for _, p := range products {
		categoryName, ok := categoryNames[p.CategoryID]
		if !ok {
			categoryName = uncategorizedLabel
		}

		b.WriteString("\n")
		b.WriteString(quoteField(p.Name))
		b.WriteString(",")
		b.WriteString(quoteField(categoryName))
		b.WriteString(",")
		b.WriteString(strconv.Itoa(p.Quantity))
		b.WriteString(",")
		b.WriteString(p.Price.String())
		b.WriteString(",")
		b.WriteString(quoteField(p.Description))
	}

	return []byte(b.String())
}

// quoteField applies standard CSV escaping: wrap in double quotes, double
// any internal double quotes
func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
