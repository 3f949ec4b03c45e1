package services

import (
	"context"
	"fmt"
	"math"

	"github.com/yukikurage/campus-wellness-api/internal/models"
	"github.com/yukikurage/campus-wellness-api/internal/repository"
)

// MotivationMessage is shown under the dashboard metrics.
const MotivationMessage = "You don't have to do everything today. Small progress still counts 💛"

// DashboardSummary holds the derived dashboard metrics. Nil fields mean the
// user has no entries of that kind yet.
type DashboardSummary struct {
	LatestMood       *models.Mood
	AverageIntensity *float64
	LatestStudyHours *int
	MoodEntries      int
	StudyEntries     int
}

// DashboardService computes the read-only dashboard summary.
type DashboardService struct {
	moodRepo         repository.MoodRepository
	productivityRepo repository.ProductivityRepository
}

func NewDashboardService(moodRepo repository.MoodRepository, productivityRepo repository.ProductivityRepository) *DashboardService {
	return &DashboardService{
		moodRepo:         moodRepo,
		productivityRepo: productivityRepo,
	}
}

func (s *DashboardService) Summary(ctx context.Context, username string) (*DashboardSummary, error) {
	moods, err := s.moodRepo.ListByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood entries: %w", err)
	}

	study, err := s.productivityRepo.ListByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load productivity entries: %w", err)
	}

	summary := &DashboardSummary{
		MoodEntries:  len(moods),
		StudyEntries: len(study),
	}

	if len(moods) > 0 {
		latest := moods[0].Mood
		summary.LatestMood = &latest

		avg := averageIntensity(moods)
		summary.AverageIntensity = &avg
	}

	if len(study) > 0 {
		hours := study[0].StudyHours
		summary.LatestStudyHours = &hours
	}

	return summary, nil
}

// averageIntensity returns the mean intensity rounded to one decimal.
func averageIntensity(entries []models.MoodEntry) float64 {
	sum := 0
	for _, e := range entries {
		sum += e.Intensity
	}
	mean := float64(sum) / float64(len(entries))
	return math.Round(mean*10) / 10
}
