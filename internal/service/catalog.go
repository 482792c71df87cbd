package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"go-shopstock-api/internal/model"
)

// FilterProducts keeps a product when its name case-insensitively contains
// the search term AND (the low-stock filter is off OR the quantity is at or
// below the threshold). An empty term matches everything.
func FilterProducts(products []model.Product, term string, lowStockOnly bool) []model.Product {
	term = strings.ToLower(term)
	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		if lowStockOnly && !p.IsLowStock() {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// ShopStats are computed over the full unfiltered product set of a shop,
// never over a filtered view.
type ShopStats struct {
	ShopID              string          `json:"shop_id"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
	TotalUnits          int             `json:"total_units"`
	LowStockCount       int             `json:"low_stock_count"`
}

func ComputeStats(products []model.Product) ShopStats {
	stats := ShopStats{TotalInventoryValue: decimal.Zero}
	for _, p := range products {
		stats.TotalInventoryValue = stats.TotalInventoryValue.Add(
			p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
		stats.TotalUnits += p.Quantity
		if p.IsLowStock() {
			stats.LowStockCount++
		}
	}
	return stats
}
