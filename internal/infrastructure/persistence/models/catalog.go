package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/swiftora/marketplace/internal/domain/catalog"
)

// ProductModel is the persistence model for the Product aggregate.
// SKUs are unique within a supplier.
type ProductModel struct {
	AggregateModel
	SupplierID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_products_supplier_sku,priority:1"`
	SKU           string          `gorm:"column:sku;type:varchar(64);not null;uniqueIndex:idx_products_supplier_sku,priority:2"`
	Name          string          `gorm:"column:product_name;type:varchar(200);not null"`
	Company       string          `gorm:"type:varchar(200)"`
	Barcode       string          `gorm:"type:varchar(64)"`
	Category      string          `gorm:"type:varchar(100)"`
	HSNNo         string          `gorm:"column:hsn_no;type:varchar(20)"`
	Unit          string          `gorm:"type:varchar(20)"`
	CostPrice     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	SalesPrice    decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	MRPPrice      decimal.Decimal `gorm:"column:mrp_price;type:decimal(18,2);not null;default:0"`
	Discount      decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Stock         int             `gorm:"not null;default:0;check:stock >= 0"`
	ExpiryDate    *time.Time
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the model to a domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseAggregateRoot: m.AggregateRoot(),
		SupplierID:        m.SupplierID,
		SKU:               m.SKU,
		Name:              m.Name,
		Company:           m.Company,
		Barcode:           m.Barcode,
		Category:          m.Category,
		HSNNo:             m.HSNNo,
		Unit:              m.Unit,
		Prices: catalog.Prices{
			CostPrice:     m.CostPrice,
			PurchasePrice: m.PurchasePrice,
			SalesPrice:    m.SalesPrice,
			MRPPrice:      m.MRPPrice,
			Discount:      m.Discount,
		},
		Stock:      m.Stock,
		ExpiryDate: m.ExpiryDate,
	}
}

// FromDomain populates the model from a domain Product
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.SupplierID = p.SupplierID
	m.SKU = p.SKU
	m.Name = p.Name
	m.Company = p.Company
	m.Barcode = p.Barcode
	m.Category = p.Category
	m.HSNNo = p.HSNNo
	m.Unit = p.Unit
	m.CostPrice = p.CostPrice
	m.PurchasePrice = p.PurchasePrice
	m.SalesPrice = p.SalesPrice
	m.MRPPrice = p.MRPPrice
	m.Discount = p.Discount
	m.Stock = p.Stock
	m.ExpiryDate = p.ExpiryDate
}

// ProductModelFromDomain creates a new model from a domain Product
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
