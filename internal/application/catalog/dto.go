package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/swiftora/marketplace/internal/domain/catalog"
)

// AddProductRequest is a new catalog entry
type AddProductRequest struct {
	SKU           string
	Name          string
	Company       string
	Barcode       string
	Category      string
	HSNNo         string
	Unit          string
	CostPrice     decimal.Decimal
	PurchasePrice decimal.Decimal
	SalesPrice    decimal.Decimal
	MRPPrice      decimal.Decimal
	Discount      decimal.Decimal
	Stock         int
	ExpiryDate    *time.Time
}

// ProductResponse is a product as shown to suppliers and ordering
// supermarkets
type ProductResponse struct {
	ID            uuid.UUID          `json:"product_id"`
	SupplierID    uuid.UUID          `json:"supplier_id"`
	SKU           string             `json:"sku"`
	Name          string             `json:"product_name"`
	Company       string             `json:"company,omitempty"`
	Barcode       string             `json:"barcode,omitempty"`
	Category      string             `json:"category,omitempty"`
	HSNNo         string             `json:"hsn_no,omitempty"`
	Unit          string             `json:"unit,omitempty"`
	CostPrice     decimal.Decimal    `json:"cost_price"`
	PurchasePrice decimal.Decimal    `json:"purchase_price"`
	SalesPrice    decimal.Decimal    `json:"sales_price"`
	MRPPrice      decimal.Decimal    `json:"mrp_price"`
	Discount      decimal.Decimal    `json:"discount"`
	NetSalesPrice decimal.Decimal    `json:"net_sales_price"`
	Stock         int                `json:"stock"`
	StockLevel    catalog.StockLevel `json:"stock_level"`
	ExpiryDate    *time.Time         `json:"expiry_date,omitempty"`
	Expired       bool               `json:"expired"`
	CreatedAt     time.Time          `json:"created_at"`
}

// ToProductResponse converts a domain product as of now
func ToProductResponse(p *catalog.Product, now time.Time) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		SupplierID:    p.SupplierID,
		SKU:           p.SKU,
		Name:          p.Name,
		Company:       p.Company,
		Barcode:       p.Barcode,
		Category:      p.Category,
		HSNNo:         p.HSNNo,
		Unit:          p.Unit,
		CostPrice:     p.CostPrice,
		PurchasePrice: p.PurchasePrice,
		SalesPrice:    p.SalesPrice,
		MRPPrice:      p.MRPPrice,
		Discount:      p.Discount,
		NetSalesPrice: p.NetSalesPrice(),
		Stock:         p.Stock,
		StockLevel:    p.StockLevel(),
		ExpiryDate:    p.ExpiryDate,
		Expired:       p.IsExpired(now),
		CreatedAt:     p.CreatedAt,
	}
}

// ToProductResponses converts a slice of domain products
func ToProductResponses(products []catalog.Product, now time.Time) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = ToProductResponse(&products[i], now)
	}
	return out
}

func (r AddProductRequest) prices() catalog.Prices {
	return catalog.Prices{
		CostPrice:     r.CostPrice,
		PurchasePrice: r.PurchasePrice,
		SalesPrice:    r.SalesPrice,
		MRPPrice:      r.MRPPrice,
		Discount:      r.Discount,
	}
}

func (r AddProductRequest) details() catalog.ProductDetails {
	return catalog.ProductDetails{
		Company:    r.Company,
		Barcode:    r.Barcode,
		Category:   r.Category,
		HSNNo:      r.HSNNo,
		Unit:       r.Unit,
		ExpiryDate: r.ExpiryDate,
	}
}
