package models

import "time"

// ProductivityEntry is one study and energy check-in. Entries are append-only.
type ProductivityEntry struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Username    string    `gorm:"type:varchar(50);not null" json:"username"`
	Date        string    `gorm:"type:varchar(10);not null" json:"date"`
	StudyHours  int       `gorm:"not null" json:"study_hours"`
	EnergyLevel int       `gorm:"not null" json:"energy_level"`
	Comment     string    `gorm:"type:text" json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

func (ProductivityEntry) TableName() string {
	return "productivity"
}
