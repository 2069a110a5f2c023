package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/catalog"
	"github.com/swiftora/marketplace/internal/domain/shared"
	"github.com/swiftora/marketplace/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db, now: time.Now}
}

// FindByID finds a product by ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "Product")
	}
	return model.ToDomain(), nil
}

// FindBySupplier lists a supplier's products ordered by name
func (r *GormProductRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]catalog.Product, error) {
	return r.find(r.db.WithContext(ctx).Where("supplier_id = ?", supplierID))
}

// FindBySuppliers lists the products of several suppliers
func (r *GormProductRepository) FindBySuppliers(ctx context.Context, supplierIDs []uuid.UUID) ([]catalog.Product, error) {
	if len(supplierIDs) == 0 {
		return []catalog.Product{}, nil
	}
	return r.find(r.db.WithContext(ctx).Where("supplier_id IN ?", supplierIDs))
}

func (r *GormProductRepository) find(query *gorm.DB) ([]catalog.Product, error) {
	var rows []models.ProductModel
	if err := query.Order("product_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]catalog.Product, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// CreateIfAbsent inserts against idx_products_supplier_sku and reports
// whether the row was written
func (r *GormProductRepository) CreateIfAbsent(ctx context.Context, product *catalog.Product) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "supplier_id"}, {Name: "sku"}},
			DoNothing: true,
		}).
		Create(models.ProductModelFromDomain(product))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Save(models.ProductModelFromDomain(product)).Error
}

// TryDecrementStock removes quantity in one conditional UPDATE. Zero rows
// affected means the stock bound would be violated, or the product is gone.
func (r *GormProductRepository) TryDecrementStock(ctx context.Context, productID uuid.UUID, quantity int) (bool, error) {
	if quantity <= 0 {
		return false, shared.ErrInvalidQuantity
	}
	result := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		Updates(map[string]any{
			"stock":      gorm.Expr("stock - ?", quantity),
			"version":    gorm.Expr("version + 1"),
			"updated_at": r.now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)
