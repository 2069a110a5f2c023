package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/partner"
	"github.com/swiftora/marketplace/internal/domain/shared"
	"github.com/swiftora/marketplace/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSupplierRepository implements partner.SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// FindByID finds a supplier by ID
func (r *GormSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	var model models.SupplierModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "Supplier")
	}
	return model.ToDomain(), nil
}

// FindByUserID finds the supplier bound to a user account
func (r *GormSupplierRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*partner.Supplier, error) {
	var model models.SupplierModel
	if err := r.db.WithContext(ctx).First(&model, "user_id = ?", userID).Error; err != nil {
		return nil, notFound(err, "Supplier")
	}
	return model.ToDomain(), nil
}

// FindAll lists every supplier ordered by name
func (r *GormSupplierRepository) FindAll(ctx context.Context) ([]partner.Supplier, error) {
	var rows []models.SupplierModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return suppliersToDomain(rows), nil
}

// FindByIDs loads suppliers by ID; missing IDs are skipped
func (r *GormSupplierRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]partner.Supplier, error) {
	if len(ids) == 0 {
		return []partner.Supplier{}, nil
	}
	var rows []models.SupplierModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return suppliersToDomain(rows), nil
}

// Save creates or updates a supplier
func (r *GormSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	return r.db.WithContext(ctx).Save(models.SupplierModelFromDomain(supplier)).Error
}

func suppliersToDomain(rows []models.SupplierModel) []partner.Supplier {
	out := make([]partner.Supplier, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out
}

// GormSupermarketRepository implements partner.SupermarketRepository using GORM
type GormSupermarketRepository struct {
	db *gorm.DB
}

// NewGormSupermarketRepository creates a new GormSupermarketRepository
func NewGormSupermarketRepository(db *gorm.DB) *GormSupermarketRepository {
	return &GormSupermarketRepository{db: db}
}

// FindByID finds a supermarket by ID
func (r *GormSupermarketRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supermarket, error) {
	var model models.SupermarketModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "Supermarket")
	}
	return model.ToDomain(), nil
}

// FindByUserID finds the supermarket bound to a user account
func (r *GormSupermarketRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*partner.Supermarket, error) {
	var model models.SupermarketModel
	if err := r.db.WithContext(ctx).First(&model, "user_id = ?", userID).Error; err != nil {
		return nil, notFound(err, "Supermarket")
	}
	return model.ToDomain(), nil
}

// FindByIDs loads supermarkets by ID; missing IDs are skipped
func (r *GormSupermarketRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]partner.Supermarket, error) {
	if len(ids) == 0 {
		return []partner.Supermarket{}, nil
	}
	var rows []models.SupermarketModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]partner.Supermarket, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Save creates or updates a supermarket
func (r *GormSupermarketRepository) Save(ctx context.Context, supermarket *partner.Supermarket) error {
	return r.db.WithContext(ctx).Save(models.SupermarketModelFromDomain(supermarket)).Error
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormSupermarketRepository) SaveWithLock(ctx context.Context, s *partner.Supermarket) error {
	result := r.db.WithContext(ctx).
		Model(&models.SupermarketModel{}).
		Where("id = ? AND version = ?", s.ID, s.Version-1).
		Updates(map[string]any{
			"name":       s.Name,
			"contact":    s.Contact,
			"address":    s.Address,
			"latitude":   s.Location.Lat,
			"longitude":  s.Location.Lng,
			"version":    s.Version,
			"updated_at": s.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict.WithMessage("Supermarket was modified by another request")
	}
	return nil
}

var (
	_ partner.SupplierRepository    = (*GormSupplierRepository)(nil)
	_ partner.SupermarketRepository = (*GormSupermarketRepository)(nil)
)
