package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"go-shopstock-api/internal/model"
)

func makeProduct(name string, quantity int, price int64) model.Product {
	return model.Product{
		Name:     name,
		Quantity: quantity,
		Price:    decimal.NewFromInt(price),
	}
}

func TestFilterProducts(t *testing.T) {
	products := []model.Product{
		makeProduct("Cola Bottle", 10, 5),
		makeProduct("cola can", 2, 3),
		makeProduct("Orange Juice", 3, 7),
		makeProduct("Water", 20, 1),
	}

	testCases := []struct {
		name          string
		term          string
		lowStockOnly  bool
		expectedNames []string
	}{
		{
			name:          "empty term matches everything",
			term:          "",
			expectedNames: []string{"Cola Bottle", "cola can", "Orange Juice", "Water"},
		},
		{
			name:          "search is case-insensitive",
			term:          "COLA",
			expectedNames: []string{"Cola Bottle", "cola can"},
		},
		{
			name:          "low stock keeps quantity at or below threshold",
			lowStockOnly:  true,
			expectedNames: []string{"cola can", "Orange Juice"},
		},
		{
			name:          "search and low stock combine with AND",
			term:          "cola",
			lowStockOnly:  true,
			expectedNames: []string{"cola can"},
		},
		{
			name:          "no match yields empty slice",
			term:          "banana",
			expectedNames: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			filtered := FilterProducts(products, tc.term, tc.lowStockOnly)

			names := make([]string, len(filtered))
			for i, p := range filtered {
				names[i] = p.Name
			}
			assert.Equal(t, tc.expectedNames, names)
		})
	}
}

func TestComputeStats(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		stats := ComputeStats(nil)
		assert.True(t, stats.TotalInventoryValue.IsZero())
		assert.Equal(t, 0, stats.TotalUnits)
		assert.Equal(t, 0, stats.LowStockCount)
	})

	t.Run("aggregates over the full set", func(t *testing.T) {
		products := []model.Product{
			makeProduct("A", 2, 10), // value 20, low stock
			makeProduct("B", 5, 4),  // value 20
			makeProduct("C", 0, 99), // value 0, low stock
		}

		stats := ComputeStats(products)

		assert.True(t, stats.TotalInventoryValue.Equal(decimal.NewFromInt(40)),
			"expected 40, got %s", stats.TotalInventoryValue)
		assert.Equal(t, 7, stats.TotalUnits)
		assert.Equal(t, 2, stats.LowStockCount)
	})

	t.Run("threshold boundary", func(t *testing.T) {
		products := []model.Product{
			makeProduct("at threshold", model.LowStockThreshold, 1),
			makeProduct("above threshold", model.LowStockThreshold+1, 1),
		}

		stats := ComputeStats(products)
		assert.Equal(t, 1, stats.LowStockCount)
	})
}

func TestStatsConsistentWithFilter(t *testing.T) {
	// The low-stock count and the low-stock filter must agree on the same set
	products := []model.Product{
		makeProduct("A", 1, 1),
		makeProduct("B", 3, 1),
		makeProduct("C", 4, 1),
		makeProduct("D", 100, 1),
	}

	stats := ComputeStats(products)
	filtered := FilterProducts(products, "", true)

	assert.Equal(t, stats.LowStockCount, len(filtered))
}
