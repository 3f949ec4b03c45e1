package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/campus-wellness-api/internal/models"
	"github.com/yukikurage/campus-wellness-api/internal/repository"
)

var (
	ErrAIServiceNotConfigured = errors.New("AI service is not configured")
	ErrNoMoodEntries          = errors.New("no mood entries logged yet")
)

// SupportContent is the static Support Hub page.
type SupportContent struct {
	Title          string
	Heading        string
	Reassurance    string
	SupportOptions []string
	SelfCareTips   []string
}

var supportContent = SupportContent{
	Title:       "Campus Support Hub",
	Heading:     "You are not alone.",
	Reassurance: "If school feels overwhelming, please reach out to someone 💛",
	SupportOptions: []string{
		"Talk to a trusted friend",
		"Reach out to your school counselor",
		"Join a campus community group",
		"Take breaks, burnout is real",
	},
	SelfCareTips: []string{
		"Drink water + take 5 deep breaths 🌱",
		"Step outside for fresh air ☀️",
		"Rest is productive too 💛",
	},
}

// Reflector produces a supportive message for a mood entry.
type Reflector interface {
	SupportiveMessage(ctx context.Context, entry models.MoodEntry) (string, error)
}

// SupportService serves the Support Hub. The optional reflector adds a
// generated message on top of the static content.
type SupportService struct {
	moodRepo  repository.MoodRepository
	reflector Reflector
}

func NewSupportService(moodRepo repository.MoodRepository, reflector Reflector) *SupportService {
	return &SupportService{
		moodRepo:  moodRepo,
		reflector: reflector,
	}
}

// Content returns the static Support Hub content.
func (s *SupportService) Content() SupportContent {
	c := supportContent
	c.SupportOptions = append([]string(nil), supportContent.SupportOptions...)
	c.SelfCareTips = append([]string(nil), supportContent.SelfCareTips...)
	return c
}

// Reflect returns a supportive message about the user's latest mood entry.
func (s *SupportService) Reflect(ctx context.Context, username string) (string, error) {
	if s.reflector == nil {
		return "", ErrAIServiceNotConfigured
	}

	entries, _, err := s.moodRepo.ListPage(ctx, username, repository.Page{Limit: 1})
	if err != nil {
		return "", fmt.Errorf("failed to load latest mood: %w", err)
	}
	if len(entries) == 0 {
		return "", ErrNoMoodEntries
	}

	msg, err := s.reflector.SupportiveMessage(ctx, entries[0])
	if err != nil {
		return "", fmt.Errorf("failed to generate reflection: %w", err)
	}
	return msg, nil
}
