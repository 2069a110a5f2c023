package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/shared"
	"github.com/swiftora/marketplace/internal/domain/tieup"
	"github.com/swiftora/marketplace/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTieUpRepository implements tieup.Repository using GORM
type GormTieUpRepository struct {
	db *gorm.DB
}

// NewGormTieUpRepository creates a new GormTieUpRepository
func NewGormTieUpRepository(db *gorm.DB) *GormTieUpRepository {
	return &GormTieUpRepository{db: db}
}

// FindByPair finds the tie-up between a supermarket and a supplier
func (r *GormTieUpRepository) FindByPair(ctx context.Context, supermarketID, supplierID uuid.UUID) (*tieup.TieUp, error) {
	var model models.TieUpModel
	err := r.db.WithContext(ctx).
		Where("supermarket_id = ? AND supplier_id = ?", supermarketID, supplierID).
		First(&model).Error
	if err != nil {
		return nil, notFound(err, "Tie-up")
	}
	return model.ToDomain(), nil
}

// CreateIfAbsent inserts with ON CONFLICT DO NOTHING on the pair index, so
// of any number of concurrent requests exactly one row is written.
func (r *GormTieUpRepository) CreateIfAbsent(ctx context.Context, t *tieup.TieUp) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "supplier_id"}, {Name: "supermarket_id"}},
			DoNothing: true,
		}).
		Create(models.TieUpModelFromDomain(t))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormTieUpRepository) SaveWithLock(ctx context.Context, t *tieup.TieUp) error {
	result := r.db.WithContext(ctx).
		Model(&models.TieUpModel{}).
		Where("id = ? AND version = ?", t.ID, t.Version-1).
		Updates(map[string]any{
			"status":      t.Status.String(),
			"accepted_at": t.AcceptedAt,
			"version":     t.Version,
			"updated_at":  t.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict.WithMessage("Tie-up was modified by another request")
	}
	return nil
}

// FindAcceptedBySupermarket lists accepted tie-ups of a supermarket
func (r *GormTieUpRepository) FindAcceptedBySupermarket(ctx context.Context, supermarketID uuid.UUID) ([]tieup.TieUp, error) {
	return r.find(r.db.WithContext(ctx).
		Where("supermarket_id = ? AND status = ?", supermarketID, tieup.WireAccepted).
		Order("accepted_at DESC"))
}

// FindBySupplier lists every tie-up addressed to a supplier, newest first
func (r *GormTieUpRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]tieup.TieUp, error) {
	return r.find(r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("requested_at DESC"))
}

func (r *GormTieUpRepository) find(query *gorm.DB) ([]tieup.TieUp, error) {
	var rows []models.TieUpModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]tieup.TieUp, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

var _ tieup.Repository = (*GormTieUpRepository)(nil)
