package repository

import (
	"context"

	"github.com/yukikurage/campus-wellness-api/internal/database"
	"github.com/yukikurage/campus-wellness-api/internal/models"
	"gorm.io/gorm"
)

// GormMoodRepository is a GORM implementation of MoodRepository
type GormMoodRepository struct {
	db *gorm.DB
}

// NewMoodRepository creates a new MoodRepository
func NewMoodRepository(db *gorm.DB) MoodRepository {
	return &GormMoodRepository{db: db}
}

func (r *GormMoodRepository) Create(ctx context.Context, entry *models.MoodEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *GormMoodRepository) ListByUsername(ctx context.Context, username string) ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	if err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(username), database.NewestFirst).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *GormMoodRepository) ListInRange(ctx context.Context, username string, dr DateRange) ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	if err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(username), database.DateBetween(dr.From, dr.To)).
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *GormMoodRepository) ListPage(ctx context.Context, username string, p Page) ([]models.MoodEntry, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.MoodEntry{}).Scopes(database.OwnedBy(username)).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.MoodEntry
	if err := query.
		Scopes(database.NewestFirst, database.Paginate(p.Offset, p.Limit)).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
