package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/campus-wellness-api/internal/models"
	"github.com/yukikurage/campus-wellness-api/internal/repository"
	"github.com/yukikurage/campus-wellness-api/internal/utils"
)

var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// CalendarEmptyHint is shown when the user has never logged a mood.
const CalendarEmptyHint = "Log moods to see your calendar 🌱"

// CalendarDay is one slot of the grid. Day is 0 for padding slots outside the month.
type CalendarDay struct {
	Day    int
	Mood   *models.Mood
	Marker string
}

// MoodCalendar is a month grid of Monday-first weeks.
type MoodCalendar struct {
	Year   int
	Month  time.Month
	Weeks  [][7]CalendarDay
	Legend []models.Mood
	Empty  bool
}

type CalendarService struct {
	moodRepo repository.MoodRepository
	now      utils.Clock
}

func NewCalendarService(moodRepo repository.MoodRepository, now utils.Clock) *CalendarService {
	if now == nil {
		now = time.Now
	}
	return &CalendarService{
		moodRepo: moodRepo,
		now:      now,
	}
}

// CurrentMonth returns the calendar for the month containing today.
func (s *CalendarService) CurrentMonth(ctx context.Context, username string) (*MoodCalendar, error) {
	today := s.now()
	return s.Month(ctx, username, today.Year(), today.Month())
}

// Month builds the mood calendar for the given month. When several entries
// share a day, the most recently inserted one decides the marker.
func (s *CalendarService) Month(ctx context.Context, username string, year int, month time.Month) (*MoodCalendar, error) {
	if month < time.January || month > time.December {
		return nil, ErrInvalidMonth
	}

	loc := s.now().Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	entries, err := s.moodRepo.ListInRange(ctx, username, repository.DateRange{
		From: utils.FormatDate(first),
		To:   utils.FormatDate(last),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load mood entries: %w", err)
	}

	// Entries arrive in insertion order, so later entries overwrite earlier ones.
	byDay := make(map[int]models.Mood, len(entries))
	for _, e := range entries {
		day, err := utils.ParseDate(e.Date, loc)
		if err != nil {
			utils.Logger.Sugar().Warnw("skipping mood entry with bad date", "id", e.ID, "date", e.Date)
			continue
		}
		byDay[day.Day()] = e.Mood
	}

	empty := len(entries) == 0
	if empty {
		_, total, err := s.moodRepo.ListPage(ctx, username, repository.Page{Limit: 1})
		if err != nil {
			return nil, fmt.Errorf("failed to count mood entries: %w", err)
		}
		empty = total == 0
	}

	return &MoodCalendar{
		Year:   year,
		Month:  month,
		Weeks:  buildWeeks(first, last.Day(), byDay),
		Legend: models.Moods,
		Empty:  empty,
	}, nil
}

func buildWeeks(first time.Time, daysInMonth int, byDay map[int]models.Mood) [][7]CalendarDay {
	// Monday is column 0.
	offset := (int(first.Weekday()) + 6) % 7

	var weeks [][7]CalendarDay
	var week [7]CalendarDay
	col := offset

	for day := 1; day <= daysInMonth; day++ {
		slot := CalendarDay{Day: day, Marker: models.NeutralMarker}
		if mood, ok := byDay[day]; ok {
			m := mood
			slot.Mood = &m
			slot.Marker = mood.Marker()
		}
		week[col] = slot
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]CalendarDay{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}

	return weeks
}
