package dto

import (
	"time"

	"github.com/yukikurage/campus-wellness-api/internal/models"
	"github.com/yukikurage/campus-wellness-api/internal/services"
	"github.com/yukikurage/campus-wellness-api/internal/utils"
)

// MoodEntryDTO represents a mood entry in API responses
type MoodEntryDTO struct {
	ID           uint64         `json:"id"`
	Date         string         `json:"date"`
	Mood         models.Mood    `json:"mood"`
	MoodLabel    string         `json:"mood_label"`
	Intensity    int            `json:"intensity"`
	Trigger      models.Trigger `json:"trigger"`
	TriggerLabel string         `json:"trigger_label"`
	Note         string         `json:"note"`
	CreatedAt    time.Time      `json:"created_at"`
}

// ProductivityEntryDTO represents a productivity entry in API responses
type ProductivityEntryDTO struct {
	ID          uint64    `json:"id"`
	Date        string    `json:"date"`
	StudyHours  int       `json:"study_hours"`
	EnergyLevel int       `json:"energy_level"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

type MoodListResponse struct {
	Entries    []MoodEntryDTO           `json:"entries"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

type ProductivityListResponse struct {
	Entries    []ProductivityEntryDTO   `json:"entries"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ChoiceDTO is one option of a single-choice form field
type ChoiceDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// RangeDTO describes a slider field
type RangeDTO struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

type MoodOptionsDTO struct {
	Moods     []ChoiceDTO `json:"moods"`
	Triggers  []ChoiceDTO `json:"triggers"`
	Intensity RangeDTO    `json:"intensity"`
}

type ProductivityOptionsDTO struct {
	StudyHours  RangeDTO `json:"study_hours"`
	EnergyLevel RangeDTO `json:"energy_level"`
}

func ToMoodEntryDTO(e models.MoodEntry) MoodEntryDTO {
	return MoodEntryDTO{
		ID:           e.ID,
		Date:         e.Date,
		Mood:         e.Mood,
		MoodLabel:    e.Mood.Label(),
		Intensity:    e.Intensity,
		Trigger:      e.Trigger,
		TriggerLabel: e.Trigger.Label(),
		Note:         e.Note,
		CreatedAt:    e.CreatedAt,
	}
}

func ToMoodEntryDTOs(entries []models.MoodEntry) []MoodEntryDTO {
	out := make([]MoodEntryDTO, len(entries))
	for i, e := range entries {
		out[i] = ToMoodEntryDTO(e)
	}
	return out
}

func ToProductivityEntryDTO(e models.ProductivityEntry) ProductivityEntryDTO {
	return ProductivityEntryDTO{
		ID:          e.ID,
		Date:        e.Date,
		StudyHours:  e.StudyHours,
		EnergyLevel: e.EnergyLevel,
		Comment:     e.Comment,
		CreatedAt:   e.CreatedAt,
	}
}

func ToProductivityEntryDTOs(entries []models.ProductivityEntry) []ProductivityEntryDTO {
	out := make([]ProductivityEntryDTO, len(entries))
	for i, e := range entries {
		out[i] = ToProductivityEntryDTO(e)
	}
	return out
}

func ToMoodOptionsDTO(o services.MoodOptions) MoodOptionsDTO {
	moods := make([]ChoiceDTO, len(o.Moods))
	for i, m := range o.Moods {
		moods[i] = ChoiceDTO{Value: string(m), Label: m.Label()}
	}
	triggers := make([]ChoiceDTO, len(o.Triggers))
	for i, t := range o.Triggers {
		triggers[i] = ChoiceDTO{Value: string(t), Label: t.Label()}
	}
	return MoodOptionsDTO{
		Moods:     moods,
		Triggers:  triggers,
		Intensity: RangeDTO{Min: o.MinIntensity, Max: o.MaxIntensity, Default: o.DefaultIntensity},
	}
}

func ToProductivityOptionsDTO(o services.ProductivityOptions) ProductivityOptionsDTO {
	return ProductivityOptionsDTO{
		StudyHours:  RangeDTO{Min: o.MinStudyHours, Max: o.MaxStudyHours, Default: o.DefaultStudyHours},
		EnergyLevel: RangeDTO{Min: o.MinEnergyLevel, Max: o.MaxEnergyLevel, Default: o.DefaultEnergyLevel},
	}
}
