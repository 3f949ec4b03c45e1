package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/campus-wellness-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.MoodEntry{}, &models.ProductivityEntry{}))
	return db
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	require.NoError(t, repo.Create(ctx, &models.User{Username: "amy", PasswordHash: "x"}))

	user, err := repo.FindByUsername(ctx, "amy")
	require.NoError(t, err)
	assert.Equal(t, "amy", user.Username)

	_, err = repo.FindByUsername(ctx, "bob")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	require.NoError(t, repo.Create(ctx, &models.User{Username: "amy", PasswordHash: "x"}))
	err := repo.Create(ctx, &models.User{Username: "amy", PasswordHash: "y"})
	assert.Error(t, err)
}

func TestMoodRepository_Ordering(t *testing.T) {
	ctx := context.Background()
	repo := NewMoodRepository(setupTestDB(t))

	entries := []models.MoodEntry{
		{Username: "amy", Date: "2026-10-01", Mood: models.MoodSad, Intensity: 2, Trigger: models.TriggerExams},
		{Username: "amy", Date: "2026-10-03", Mood: models.MoodCalm, Intensity: 6, Trigger: models.TriggerFamily},
		{Username: "amy", Date: "2026-10-03", Mood: models.MoodHappy, Intensity: 8, Trigger: models.TriggerFriends},
		{Username: "bob", Date: "2026-10-05", Mood: models.MoodAngry, Intensity: 9, Trigger: models.TriggerOther},
	}
	for i := range entries {
		require.NoError(t, repo.Create(ctx, &entries[i]))
	}

	got, err := repo.ListByUsername(ctx, "amy")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, models.MoodHappy, got[0].Mood, "later insert wins within the same date")
	assert.Equal(t, models.MoodCalm, got[1].Mood)
	assert.Equal(t, models.MoodSad, got[2].Mood)
}

func TestMoodRepository_ListInRange(t *testing.T) {
	ctx := context.Background()
	repo := NewMoodRepository(setupTestDB(t))

	for _, date := range []string{"2026-09-30", "2026-10-01", "2026-10-31", "2026-11-01"} {
		require.NoError(t, repo.Create(ctx, &models.MoodEntry{
			Username: "amy", Date: date, Mood: models.MoodCalm, Intensity: 5, Trigger: models.TriggerOther,
		}))
	}

	got, err := repo.ListInRange(ctx, "amy", DateRange{From: "2026-10-01", To: "2026-10-31"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2026-10-01", got[0].Date)
	assert.Equal(t, "2026-10-31", got[1].Date)
}

func TestMoodRepository_ListPage(t *testing.T) {
	ctx := context.Background()
	repo := NewMoodRepository(setupTestDB(t))

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Create(ctx, &models.MoodEntry{
			Username: "amy", Date: "2026-10-0" + string(rune('0'+i)), Mood: models.MoodCalm, Intensity: i, Trigger: models.TriggerOther,
		}))
	}

	page, total, err := repo.ListPage(ctx, "amy", Page{Offset: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)
	assert.Equal(t, 3, page[0].Intensity)
	assert.Equal(t, 2, page[1].Intensity)
}

func TestProductivityRepository_ListByUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewProductivityRepository(setupTestDB(t))

	require.NoError(t, repo.Create(ctx, &models.ProductivityEntry{Username: "amy", Date: "2026-10-02", StudyHours: 4, EnergyLevel: 6}))
	require.NoError(t, repo.Create(ctx, &models.ProductivityEntry{Username: "amy", Date: "2026-10-01", StudyHours: 1, EnergyLevel: 3}))

	got, err := repo.ListByUsername(ctx, "amy")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 4, got[0].StudyHours)

	page, total, err := repo.ListPage(ctx, "amy", Page{Offset: 0, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, page, 2)
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func TestMoodRepository_CreateCommitsEachWrite(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMoodRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `moods`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	entry := &models.MoodEntry{Username: "amy", Date: "2026-10-15", Mood: models.MoodHappy, Intensity: 7, Trigger: models.TriggerExams}
	require.NoError(t, repo.Create(context.Background(), entry))
	assert.Equal(t, uint64(1), entry.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoodRepository_ListByUsernameQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMoodRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "date", "mood", "intensity", "trigger", "note"}).
		AddRow(2, "amy", "2026-10-15", "Happy", 7, "Exams", "").
		AddRow(1, "amy", "2026-10-14", "Sad", 3, "Burnout", "long day")
	mock.ExpectQuery("SELECT \\* FROM `moods` WHERE username = \\? ORDER BY date DESC,\\s*id DESC").
		WithArgs("amy").
		WillReturnRows(rows)

	got, err := repo.ListByUsername(context.Background(), "amy")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.MoodHappy, got[0].Mood)
	assert.Equal(t, "long day", got[1].Note)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductivityRepository_StoreFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductivityRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `productivity`")).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.ProductivityEntry{Username: "amy", Date: "2026-10-15"})
	assert.EqualError(t, err, "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}
