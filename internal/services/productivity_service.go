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
	ErrStudyHoursOutOfRange  = fmt.Errorf("study hours must be between %d and %d", constants.MinStudyHours, constants.MaxStudyHours)
	ErrEnergyLevelOutOfRange = fmt.Errorf("energy level must be between %d and %d", constants.MinEnergyLevel, constants.MaxEnergyLevel)
	ErrCommentTooLong        = errors.New("comment too long")
)

// ProductivityService records study and energy check-ins.
type ProductivityService struct {
	productivityRepo repository.ProductivityRepository
	now              utils.Clock
}

func NewProductivityService(productivityRepo repository.ProductivityRepository, now utils.Clock) *ProductivityService {
	if now == nil {
		now = time.Now
	}
	return &ProductivityService{
		productivityRepo: productivityRepo,
		now:              now,
	}
}

type LogProductivityInput struct {
	Username    string
	StudyHours  int
	EnergyLevel int
	Comment     string
}

type ProductivityOptions struct {
	MinStudyHours      int
	MaxStudyHours      int
	DefaultStudyHours  int
	MinEnergyLevel     int
	MaxEnergyLevel     int
	DefaultEnergyLevel int
}

func (s *ProductivityService) Options() ProductivityOptions {
	return ProductivityOptions{
		MinStudyHours:      constants.MinStudyHours,
		MaxStudyHours:      constants.MaxStudyHours,
		DefaultStudyHours:  constants.DefaultStudyHours,
		MinEnergyLevel:     constants.MinEnergyLevel,
		MaxEnergyLevel:     constants.MaxEnergyLevel,
		DefaultEnergyLevel: constants.DefaultEnergyLevel,
	}
}

// LogProductivity stores one check-in dated today.
func (s *ProductivityService) LogProductivity(ctx context.Context, input LogProductivityInput) (*models.ProductivityEntry, error) {
	if input.StudyHours < constants.MinStudyHours || input.StudyHours > constants.MaxStudyHours {
		return nil, ErrStudyHoursOutOfRange
	}
	if input.EnergyLevel < constants.MinEnergyLevel || input.EnergyLevel > constants.MaxEnergyLevel {
		return nil, ErrEnergyLevelOutOfRange
	}
	if utf8.RuneCountInString(input.Comment) > constants.MaxNoteLength {
		return nil, ErrCommentTooLong
	}

	entry := &models.ProductivityEntry{
		Username:    input.Username,
		Date:        utils.FormatDate(s.now()),
		StudyHours:  input.StudyHours,
		EnergyLevel: input.EnergyLevel,
		Comment:     input.Comment,
	}

	if err := s.productivityRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save productivity entry: %w", err)
	}

	return entry, nil
}

func (s *ProductivityService) ListProductivity(ctx context.Context, username string, params utils.PaginationParams) ([]models.ProductivityEntry, int64, error) {
	entries, total, err := s.productivityRepo.ListPage(ctx, username, repository.Page{
		Offset: params.Offset,
		Limit:  params.Limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list productivity entries: %w", err)
	}
	return entries, total, nil
}
