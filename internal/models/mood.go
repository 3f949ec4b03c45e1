package models

import "time"

type Mood string

const (
	MoodHappy   Mood = "Happy"
	MoodCalm    Mood = "Calm"
	MoodNeutral Mood = "Neutral"
	MoodSad     Mood = "Sad"
	MoodAngry   Mood = "Angry"
	MoodAnxious Mood = "Anxious"
)

// Moods lists the selectable moods in form order.
var Moods = []Mood{MoodHappy, MoodCalm, MoodNeutral, MoodSad, MoodAngry, MoodAnxious}

var moodEmoji = map[Mood]string{
	MoodHappy:   "😊",
	MoodCalm:    "😌",
	MoodNeutral: "😐",
	MoodSad:     "😔",
	MoodAngry:   "😡",
	MoodAnxious: "😰",
}

var moodMarkers = map[Mood]string{
	MoodHappy:   "🟩",
	MoodCalm:    "🟦",
	MoodNeutral: "⬜",
	MoodSad:     "🟪",
	MoodAngry:   "🟥",
	MoodAnxious: "🟨",
}

// NeutralMarker is shown on calendar days without a mood entry and for unknown moods.
const NeutralMarker = "⬜"

func (m Mood) Valid() bool {
	_, ok := moodMarkers[m]
	return ok
}

// Emoji returns the face shown next to the mood label.
func (m Mood) Emoji() string {
	return moodEmoji[m]
}

// Label is the mood name followed by its emoji, e.g. "Happy 😊".
func (m Mood) Label() string {
	if e := m.Emoji(); e != "" {
		return string(m) + " " + e
	}
	return string(m)
}

// Marker returns the calendar color square for the mood.
func (m Mood) Marker() string {
	if marker, ok := moodMarkers[m]; ok {
		return marker
	}
	return NeutralMarker
}

type Trigger string

const (
	TriggerExams       Trigger = "Exams"
	TriggerAssignments Trigger = "Assignments"
	TriggerFriends     Trigger = "Friends"
	TriggerFamily      Trigger = "Family"
	TriggerMoneyStress Trigger = "Money Stress"
	TriggerBurnout     Trigger = "Burnout"
	TriggerOther       Trigger = "Other"
)

// Triggers lists the selectable stress triggers in form order.
var Triggers = []Trigger{
	TriggerExams,
	TriggerAssignments,
	TriggerFriends,
	TriggerFamily,
	TriggerMoneyStress,
	TriggerBurnout,
	TriggerOther,
}

var triggerEmoji = map[Trigger]string{
	TriggerExams:       "📚",
	TriggerAssignments: "📝",
	TriggerFriends:     "💛",
	TriggerFamily:      "🏠",
	TriggerMoneyStress: "💸",
	TriggerBurnout:     "😵",
	TriggerOther:       "",
}

func (t Trigger) Valid() bool {
	_, ok := triggerEmoji[t]
	return ok
}

func (t Trigger) Label() string {
	if e := triggerEmoji[t]; e != "" {
		return string(t) + " " + e
	}
	return string(t)
}

// MoodEntry is one submitted mood record. Entries are append-only.
type MoodEntry struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Username  string    `gorm:"type:varchar(50);not null" json:"username"`
	Date      string    `gorm:"type:varchar(10);not null" json:"date"`
	Mood      Mood      `gorm:"type:varchar(20);not null" json:"mood"`
	Intensity int       `gorm:"not null" json:"intensity"`
	Trigger   Trigger   `gorm:"type:varchar(30);not null" json:"trigger"`
	Note      string    `gorm:"type:text" json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

func (MoodEntry) TableName() string {
	return "moods"
}
