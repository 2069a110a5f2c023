package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/ordering"
	"github.com/swiftora/marketplace/internal/domain/shared"
	"github.com/swiftora/marketplace/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormOrderRepository implements ordering.Repository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "Order")
	}
	return model.ToDomain(), nil
}

// FindBySupplier lists orders addressed to a supplier, newest first
func (r *GormOrderRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]ordering.Order, error) {
	return r.find(r.db.WithContext(ctx).Where("supplier_id = ?", supplierID))
}

// FindBySupermarket lists orders placed by a supermarket, newest first
func (r *GormOrderRepository) FindBySupermarket(ctx context.Context, supermarketID uuid.UUID) ([]ordering.Order, error) {
	return r.find(r.db.WithContext(ctx).Where("supermarket_id = ?", supermarketID))
}

func (r *GormOrderRepository) find(query *gorm.DB) ([]ordering.Order, error) {
	var rows []models.OrderModel
	if err := query.Order("order_date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ordering.Order, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Save creates or updates an order
func (r *GormOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	return r.db.WithContext(ctx).Save(models.OrderModelFromDomain(order)).Error
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormOrderRepository) SaveWithLock(ctx context.Context, o *ordering.Order) error {
	result := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ? AND version = ?", o.ID, o.Version-1).
		Updates(map[string]any{
			"order_status":  o.Status.String(),
			"delivery_date": o.DeliveryDate,
			"version":       o.Version,
			"updated_at":    o.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict.WithMessage("Order was modified by another request")
	}
	return nil
}

var _ ordering.Repository = (*GormOrderRepository)(nil)
