package services

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/yukikurage/campus-wellness-api/internal/constants"
	"github.com/yukikurage/campus-wellness-api/internal/models"
	"github.com/yukikurage/campus-wellness-api/internal/repository"
	"github.com/yukikurage/campus-wellness-api/internal/utils"
)

var (
	ErrInvalidMood         = errors.New("unknown mood")
	ErrInvalidTrigger      = errors.New("unknown trigger")
	ErrIntensityOutOfRange = fmt.Errorf("intensity must be between %d and %d", constants.MinIntensity, constants.MaxIntensity)
	ErrNoteTooLong         = fmt.Errorf("note must be at most %d characters", constants.MaxNoteLength)
)

// MoodService records and lists mood entries.
type MoodService struct {
	moodRepo repository.MoodRepository
	now      utils.Clock
}

func NewMoodService(moodRepo repository.MoodRepository, now utils.Clock) *MoodService {
	if now == nil {
		now = time.Now
	}
	return &MoodService{
		moodRepo: moodRepo,
		now:      now,
	}
}

// LogMoodInput is the Log Mood form.
type LogMoodInput struct {
	Username  string
	Mood      models.Mood
	Intensity int
	Trigger   models.Trigger
	Note      string
}

// MoodOptions describes the choices offered by the Log Mood form.
type MoodOptions struct {
	Moods            []models.Mood
	Triggers         []models.Trigger
	MinIntensity     int
	MaxIntensity     int
	DefaultIntensity int
}

// Options returns the Log Mood form choices.
func (s *MoodService) Options() MoodOptions {
	return MoodOptions{
		Moods:            models.Moods,
		Triggers:         models.Triggers,
		MinIntensity:     constants.MinIntensity,
		MaxIntensity:     constants.MaxIntensity,
		DefaultIntensity: constants.DefaultIntensity,
	}
}

// LogMood stores one mood entry dated today.
func (s *MoodService) LogMood(ctx context.Context, input LogMoodInput) (*models.MoodEntry, error) {
	if !input.Mood.Valid() {
		return nil, ErrInvalidMood
	}
	if !input.Trigger.Valid() {
		return nil, ErrInvalidTrigger
	}
	if input.Intensity < constants.MinIntensity || input.Intensity > constants.MaxIntensity {
		return nil, ErrIntensityOutOfRange
	}
	if utf8.RuneCountInString(input.Note) > constants.MaxNoteLength {
		return nil, ErrNoteTooLong
	}

	entry := &models.MoodEntry{
		Username:  input.Username,
		Date:      utils.FormatDate(s.now()),
		Mood:      input.Mood,
		Intensity: input.Intensity,
		Trigger:   input.Trigger,
		Note:      input.Note,
	}

	if err := s.moodRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save mood entry: %w", err)
	}

	return entry, nil
}

// ListMoods returns one page of the user's mood history, newest first.
func (s *MoodService) ListMoods(ctx context.Context, username string, params utils.PaginationParams) ([]models.MoodEntry, int64, error) {
	entries, total, err := s.moodRepo.ListPage(ctx, username, repository.Page{
		Offset: params.Offset,
		Limit:  params.Limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list mood entries: %w", err)
	}
	return entries, total, nil
}
