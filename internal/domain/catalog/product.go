package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/swiftora/marketplace/internal/domain/shared"
)

var hundred = decimal.NewFromInt(100)

// Prices groups the price points a supplier records for a product
type Prices struct {
	CostPrice     decimal.Decimal
	PurchasePrice decimal.Decimal
	SalesPrice    decimal.Decimal
	MRPPrice      decimal.Decimal
	// Discount is a percentage between 0 and 100
	Discount decimal.Decimal
}

func (p Prices) validate() error {
	for _, price := range []decimal.Decimal{p.CostPrice, p.PurchasePrice, p.SalesPrice, p.MRPPrice} {
		if price.IsNegative() {
			return shared.ErrInvalidInput.WithMessage("Prices cannot be negative")
		}
	}
	if p.Discount.IsNegative() || p.Discount.GreaterThan(hundred) {
		return shared.ErrInvalidInput.WithMessage("Discount must be between 0 and 100")
	}
	return nil
}

// Product is an item in a supplier's catalog. It is owned by exactly one
// supplier and its stock never goes below zero.
type Product struct {
	shared.BaseAggregateRoot
	SupplierID uuid.UUID
	SKU        string
	Name       string
	Company    string
	Barcode    string
	Category   string
	HSNNo      string
	Unit       string
	Prices
	Stock      int
	ExpiryDate *time.Time
}

// ProductDetails carries the optional descriptive fields of a product
type ProductDetails struct {
	Company    string
	Barcode    string
	Category   string
	HSNNo      string
	Unit       string
	ExpiryDate *time.Time
}

// NewProduct creates a new product in a supplier's catalog
func NewProduct(supplierID uuid.UUID, sku, name string, stock int, prices Prices, details ProductDetails) (*Product, error) {
	if supplierID == uuid.Nil {
		return nil, shared.ErrInvalidInput.WithMessage("Product must belong to a supplier")
	}
	sku = strings.TrimSpace(sku)
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.ErrInvalidInput.WithMessage("Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.ErrInvalidInput.WithMessage("Product name cannot exceed 200 characters")
	}
	if stock < 0 {
		return nil, shared.ErrInvalidInput.WithMessage("Stock cannot be negative")
	}
	if err := prices.validate(); err != nil {
		return nil, err
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SupplierID:        supplierID,
		SKU:               sku,
		Name:              name,
		Company:           details.Company,
		Barcode:           details.Barcode,
		Category:          details.Category,
		HSNNo:             details.HSNNo,
		Unit:              details.Unit,
		Prices:            prices,
		Stock:             stock,
		ExpiryDate:        details.ExpiryDate,
	}

	product.AddDomainEvent(NewProductAddedEvent(product))

	return product, nil
}

// DecrementStock removes quantity from stock
func (p *Product) DecrementStock(quantity int) error {
	if err := CheckOrderQuantity(quantity, p.Stock); err != nil {
		return err
	}

	p.Stock -= quantity
	p.Modified(time.Now())

	p.AddDomainEvent(NewProductStockChangedEvent(p, -quantity))

	return nil
}

// BelongsTo reports whether the product is in the given supplier's catalog
func (p *Product) BelongsTo(supplierID uuid.UUID) bool {
	return p.SupplierID == supplierID
}

// IsExpired reports whether the product has an expiry date at or before now
func (p *Product) IsExpired(now time.Time) bool {
	return p.ExpiryDate != nil && !p.ExpiryDate.After(now)
}

// StockLevel returns the display classification of the current stock
func (p *Product) StockLevel() StockLevel {
	return StockLevelOf(p.Stock)
}

// NetSalesPrice applies the discount to the sales price
func (p *Product) NetSalesPrice() decimal.Decimal {
	if p.Discount.IsZero() {
		return p.SalesPrice
	}
	factor := hundred.Sub(p.Discount).Div(hundred)
	return p.SalesPrice.Mul(factor).Round(2)
}

func validateSKU(sku string) error {
	if sku == "" {
		return shared.ErrInvalidInput.WithMessage("SKU cannot be empty")
	}
	if len(sku) > 64 {
		return shared.ErrInvalidInput.WithMessage("SKU cannot exceed 64 characters")
	}
	return nil
}
