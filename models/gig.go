package models

import (
	"time"

	"gorm.io/datatypes"
)

type Gig struct {
	GID                 uint           `gorm:"primaryKey;column:g_id" json:"g_id"`
	ProjectID           uint           `gorm:"not null;index" json:"project_id"`
	Project             Project        `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project"`
	Title               string         `gorm:"size:100;not null" json:"title"`
	Description         string         `gorm:"type:text" json:"description"`
	TextRequirements    string         `gorm:"type:text" json:"text_requirements"`
	Requirements        datatypes.JSON `gorm:"column:json_requirements" json:"json_requirements"`
	Hours               *int           `json:"hours"`
	Status              string         `gorm:"size:100" json:"status"`
	CompanyID           *uint          `json:"company_id"`
	Company             *Company       `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"company,omitempty"`
	Start               time.Time      `json:"start"`
	End                 time.Time      `json:"end"`
	NumberOfFreelancers *int           `json:"number_of_freelancers"`
	Freelancers         []Freelancer   `gorm:"many2many:gig_freelancers;" json:"freelancers,omitempty"`
	Documents           []Document     `gorm:"many2many:gig_documents;" json:"documents,omitempty"`
	CreatedAt           time.Time      `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt           time.Time      `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}
