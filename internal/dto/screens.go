package dto

import (
	"fmt"

	"github.com/yukikurage/campus-wellness-api/internal/models"
	"github.com/yukikurage/campus-wellness-api/internal/services"
)

// Dashboard placeholders shown before any entry exists.
const (
	PlaceholderNoMood      = "No logs yet"
	PlaceholderNoAverage   = "-"
	PlaceholderNoStudyLogs = "No logs"
)

// MetricDTO is one dashboard tile. Value is a string so placeholders and
// numbers render the same way.
type MetricDTO struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	HasData bool   `json:"has_data"`
}

type DashboardDTO struct {
	Title            string    `json:"title"`
	LatestMood       MetricDTO `json:"latest_mood"`
	AverageIntensity MetricDTO `json:"average_intensity"`
	LatestStudyHours MetricDTO `json:"latest_study_hours"`
	Motivation       string    `json:"motivation"`
}

func ToDashboardDTO(s services.DashboardSummary) DashboardDTO {
	d := DashboardDTO{
		Title:            "Student Wellness Dashboard",
		LatestMood:       MetricDTO{Label: "Latest Mood", Value: PlaceholderNoMood},
		AverageIntensity: MetricDTO{Label: "Avg Mood Intensity", Value: PlaceholderNoAverage},
		LatestStudyHours: MetricDTO{Label: "Latest Study Hours", Value: PlaceholderNoStudyLogs},
		Motivation:       services.MotivationMessage,
	}

	if s.LatestMood != nil {
		d.LatestMood.Value = s.LatestMood.Label()
		d.LatestMood.HasData = true
	}
	if s.AverageIntensity != nil {
		d.AverageIntensity.Value = fmt.Sprintf("%.1f", *s.AverageIntensity)
		d.AverageIntensity.HasData = true
	}
	if s.LatestStudyHours != nil {
		d.LatestStudyHours.Value = fmt.Sprintf("%d", *s.LatestStudyHours)
		d.LatestStudyHours.HasData = true
	}

	return d
}

type CalendarDayDTO struct {
	Day    int          `json:"day"`
	Mood   *models.Mood `json:"mood,omitempty"`
	Marker string       `json:"marker"`
}

type LegendDTO struct {
	Mood   models.Mood `json:"mood"`
	Marker string      `json:"marker"`
}

type CalendarDTO struct {
	Title  string             `json:"title"`
	Year   int                `json:"year"`
	Month  int                `json:"month"`
	Weeks  [][]CalendarDayDTO `json:"weeks"`
	Legend []LegendDTO        `json:"legend"`
	Empty  bool               `json:"empty"`
	Hint   string             `json:"hint,omitempty"`
}

func ToCalendarDTO(c services.MoodCalendar) CalendarDTO {
	weeks := make([][]CalendarDayDTO, len(c.Weeks))
	for i, week := range c.Weeks {
		row := make([]CalendarDayDTO, len(week))
		for j, slot := range week {
			row[j] = CalendarDayDTO{Day: slot.Day, Mood: slot.Mood, Marker: slot.Marker}
		}
		weeks[i] = row
	}

	legend := make([]LegendDTO, len(c.Legend))
	for i, m := range c.Legend {
		legend[i] = LegendDTO{Mood: m, Marker: m.Marker()}
	}

	d := CalendarDTO{
		Title:  fmt.Sprintf("%s %d", c.Month, c.Year),
		Year:   c.Year,
		Month:  int(c.Month),
		Weeks:  weeks,
		Legend: legend,
		Empty:  c.Empty,
	}
	if c.Empty {
		d.Hint = services.CalendarEmptyHint
	}
	return d
}

type SupportDTO struct {
	Title          string   `json:"title"`
	Heading        string   `json:"heading"`
	Reassurance    string   `json:"reassurance"`
	SupportOptions []string `json:"support_options"`
	SelfCareTips   []string `json:"self_care_tips"`
}

func ToSupportDTO(c services.SupportContent) SupportDTO {
	return SupportDTO{
		Title:          c.Title,
		Heading:        c.Heading,
		Reassurance:    c.Reassurance,
		SupportOptions: c.SupportOptions,
		SelfCareTips:   c.SelfCareTips,
	}
}
