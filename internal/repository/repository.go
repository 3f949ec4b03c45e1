package repository

import (
	"context"

	"github.com/yukikurage/campus-wellness-api/internal/models"
)

// DateRange bounds entry dates, both ends inclusive, as YYYY-MM-DD strings.
type DateRange struct {
	From string
	To   string
}

// Page selects a window of entries ordered newest first.
type Page struct {
	Offset int
	Limit  int
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// MoodRepository defines the interface for mood entry data access.
// Entries are append-only, so there is no update or delete.
type MoodRepository interface {
	// Create inserts a mood entry
	Create(ctx context.Context, entry *models.MoodEntry) error

	// ListByUsername returns all entries of a user, newest date first and,
	// within a date, most recently inserted first
	ListByUsername(ctx context.Context, username string) ([]models.MoodEntry, error)

	// ListInRange returns a user's entries within the date range in insertion order
	ListInRange(ctx context.Context, username string, r DateRange) ([]models.MoodEntry, error)

	// ListPage returns one page of a user's entries plus the total count
	ListPage(ctx context.Context, username string, p Page) ([]models.MoodEntry, int64, error)
}

// ProductivityRepository defines the interface for productivity entry data access
type ProductivityRepository interface {
	// Create inserts a productivity entry
	Create(ctx context.Context, entry *models.ProductivityEntry) error

	// ListByUsername returns all entries of a user, newest first
	ListByUsername(ctx context.Context, username string) ([]models.ProductivityEntry, error)

	// ListPage returns one page of a user's entries plus the total count
	ListPage(ctx context.Context, username string, p Page) ([]models.ProductivityEntry, int64, error)
}
