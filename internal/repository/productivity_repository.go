package repository

import (
	"context"

	"github.com/yukikurage/campus-wellness-api/internal/database"
	"github.com/yukikurage/campus-wellness-api/internal/models"
	"gorm.io/gorm"
)

// GormProductivityRepository is a GORM implementation of ProductivityRepository
type GormProductivityRepository struct {
	db *gorm.DB
}

// NewProductivityRepository creates a new ProductivityRepository
func NewProductivityRepository(db *gorm.DB) ProductivityRepository {
	return &GormProductivityRepository{db: db}
}

func (r *GormProductivityRepository) Create(ctx context.Context, entry *models.ProductivityEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *GormProductivityRepository) ListByUsername(ctx context.Context, username string) ([]models.ProductivityEntry, error) {
	var entries []models.ProductivityEntry
	if err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(username), database.NewestFirst).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *GormProductivityRepository) ListPage(ctx context.Context, username string, p Page) ([]models.ProductivityEntry, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ProductivityEntry{}).Scopes(database.OwnedBy(username)).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.ProductivityEntry
	if err := query.
		Scopes(database.NewestFirst, database.Paginate(p.Offset, p.Limit)).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
