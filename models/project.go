package models

import (
	"time"

	"gorm.io/datatypes"
)

type ProjectStatus string

const (
	ProjectStatusOpen      ProjectStatus = "open"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusClosed    ProjectStatus = "closed"
)

type Project struct {
	PID              uint           `gorm:"primaryKey;column:p_id" json:"p_id"`
	Title            string         `gorm:"size:100;not null" json:"title"`
	Description      string         `gorm:"type:text" json:"description"`
	TextRequirements string         `gorm:"type:text" json:"text_requirements"`
	Requirements     datatypes.JSON `gorm:"column:json_requirements" json:"json_requirements"`
	HourlyRate       int            `gorm:"not null" json:"hourly_rate"`
	Photo            string         `gorm:"size:300" json:"photo"`
	Category         string         `gorm:"size:100" json:"category"`
	Status           string         `gorm:"size:100" json:"status"`
	AssociatedUserID uint           `gorm:"not null;index" json:"associated_user_id"`
	AssociatedUser   User           `gorm:"foreignKey:AssociatedUserID;constraint:OnDelete:CASCADE" json:"associated_user"`
	StartDate        time.Time      `json:"start_date"`
	EndDate          time.Time      `json:"end_date"`
	Freelancers      []Freelancer   `gorm:"many2many:project_freelancers;" json:"freelancers,omitempty"`
	Documents        []Document     `gorm:"many2many:project_documents;" json:"documents,omitempty"`
	CreatedAt        time.Time      `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt        time.Time      `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}
