package catalog

import (
	"fmt"

	"github.com/swiftora/marketplace/internal/domain/shared"
)

// LowStockThreshold is the stock count at or below which an item is "Low Stock"
const LowStockThreshold = 10

// StockLevel classifies stock for display
type StockLevel string

const (
	StockLevelIn  StockLevel = "In Stock"
	StockLevelLow StockLevel = "Low Stock"
	StockLevelOut StockLevel = "Out of Stock"
)

// StockLevelOf classifies a stock count
func StockLevelOf(stock int) StockLevel {
	switch {
	case stock > LowStockThreshold:
		return StockLevelIn
	case stock > 0:
		return StockLevelLow
	default:
		return StockLevelOut
	}
}

// CheckOrderQuantity validates a requested quantity against a known stock bound.
// The bound may come from a stale snapshot; the store makes the final decision.
func CheckOrderQuantity(quantity, stock int) error {
	if quantity <= 0 {
		return shared.ErrInvalidQuantity
	}
	if quantity > stock {
		return shared.ErrInsufficientStock.WithMessage(
			fmt.Sprintf("Quantity exceeds available stock (%d)", stock))
	}
	return nil
}
