package catalog

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftora/marketplace/internal/domain/shared"
)

func samplePrices() Prices {
	return Prices{
		CostPrice:     decimal.NewFromInt(40),
		PurchasePrice: decimal.NewFromInt(45),
		SalesPrice:    decimal.NewFromInt(60),
		MRPPrice:      decimal.NewFromInt(65),
		Discount:      decimal.NewFromInt(10),
	}
}

// =============================================================================
// Product creation
// =============================================================================

func TestNewProduct(t *testing.T) {
	supplierID := uuid.New()

	t.Run("creates product and raises ProductAdded", func(t *testing.T) {
		p, err := NewProduct(supplierID, " APL-001 ", "Organic Apples", 5, samplePrices(), ProductDetails{Unit: "kg"})
		require.NoError(t, err)

		assert.Equal(t, "APL-001", p.SKU)
		assert.Equal(t, 5, p.Stock)
		assert.True(t, p.BelongsTo(supplierID))
		assert.False(t, p.BelongsTo(uuid.New()))

		events := p.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeProductAdded, events[0].EventType())
	})

	tests := []struct {
		name   string
		sku    string
		pname  string
		stock  int
		prices Prices
	}{
		{"empty sku", "", "Apples", 1, samplePrices()},
		{"empty name", "SKU", " ", 1, samplePrices()},
		{"negative stock", "SKU", "Apples", -1, samplePrices()},
		{"negative price", "SKU", "Apples", 1, Prices{SalesPrice: decimal.NewFromInt(-1)}},
		{"discount above 100", "SKU", "Apples", 1, Prices{Discount: decimal.NewFromInt(101)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProduct(supplierID, tt.sku, tt.pname, tt.stock, tt.prices, ProductDetails{})
			assert.True(t, errors.Is(err, shared.ErrInvalidInput))
		})
	}
}

// =============================================================================
// Stock rules
// =============================================================================

func TestCheckOrderQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		stock    int
		wantErr  error
	}{
		{"zero quantity", 0, 5, shared.ErrInvalidQuantity},
		{"negative quantity", -5, 5, shared.ErrInvalidQuantity},
		{"one over stock", 6, 5, shared.ErrInsufficientStock},
		{"exactly stock", 5, 5, nil},
		{"below stock", 3, 5, nil},
		{"out of stock", 1, 0, shared.ErrInsufficientStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckOrderQuantity(tt.quantity, tt.stock)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestProduct_DecrementStock(t *testing.T) {
	p, err := NewProduct(uuid.New(), "MLK-1", "Fresh Milk", 5, samplePrices(), ProductDetails{})
	require.NoError(t, err)
	p.ClearDomainEvents()

	require.NoError(t, p.DecrementStock(3))
	assert.Equal(t, 2, p.Stock)
	assert.Equal(t, 2, p.Version)
	require.Len(t, p.GetDomainEvents(), 1)

	err = p.DecrementStock(3)
	assert.True(t, errors.Is(err, shared.ErrInsufficientStock))
	assert.Equal(t, 2, p.Stock, "stock never goes negative")
}

func TestStockLevelOf(t *testing.T) {
	assert.Equal(t, StockLevelIn, StockLevelOf(11))
	assert.Equal(t, StockLevelLow, StockLevelOf(10))
	assert.Equal(t, StockLevelLow, StockLevelOf(1))
	assert.Equal(t, StockLevelOut, StockLevelOf(0))
}

func TestProduct_NetSalesPriceAndExpiry(t *testing.T) {
	yesterday := time.Now().Add(-24 * time.Hour)
	p, err := NewProduct(uuid.New(), "BRD-1", "Whole Grain Bread", 20, samplePrices(), ProductDetails{ExpiryDate: &yesterday})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(54).Equal(p.NetSalesPrice()))
	assert.True(t, p.IsExpired(time.Now()))
	assert.Equal(t, StockLevelIn, p.StockLevel())
}
