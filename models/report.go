package models

import (
	"time"

	"gorm.io/datatypes"
)

type ReportStatus string

const (
	ReportStatusSubmitted ReportStatus = "submitted"
	ReportStatusApproved  ReportStatus = "approved"
	ReportStatusRejected  ReportStatus = "rejected"
)

type GigReport struct {
	RID          uint           `gorm:"primaryKey;column:r_id" json:"r_id"`
	FreelancerID uint           `gorm:"not null;index" json:"freelancer_id"`
	Freelancer   Freelancer     `gorm:"foreignKey:FreelancerID;constraint:OnDelete:CASCADE" json:"freelancer"`
	GigID        uint           `gorm:"not null;index" json:"gig_id"`
	Gig          Gig            `gorm:"foreignKey:GigID;constraint:OnDelete:CASCADE" json:"gig"`
	Text         string         `gorm:"type:text" json:"text"`
	StartTime    time.Time      `json:"start_time"`
	EndTime      time.Time      `json:"end_time"`
	Status       string         `gorm:"size:100;default:'submitted';not null" json:"status"`
	ReviewedByID *uint          `json:"reviewed_by_id"`
	ReviewedBy   *User          `gorm:"foreignKey:ReviewedByID;constraint:OnDelete:SET NULL" json:"reviewed_by,omitempty"`
	Review       datatypes.JSON `json:"review"`
	Documents    []Document     `gorm:"many2many:gig_report_documents;" json:"documents,omitempty"`
	SubmittedAt  time.Time      `gorm:"column:submitted_at;autoCreateTime" json:"submitted_at"`
}

// HoursSpent is the reported working duration in hours, zero when either
// endpoint is missing.
func (r *GigReport) HoursSpent() float64 {
	if r.StartTime.IsZero() || r.EndTime.IsZero() {
		return 0
	}
	return r.EndTime.Sub(r.StartTime).Hours()
}

type ProjectReport struct {
	RID        uint      `gorm:"primaryKey;column:r_id" json:"r_id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	ProjectID  uint      `gorm:"not null;index" json:"project_id"`
	Project    Project   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project"`
	DocumentID *uint     `json:"document_id"`
	Document   *Document `gorm:"foreignKey:DocumentID" json:"document,omitempty"`
	Text       string    `gorm:"type:text" json:"text"`
	CreatedAt  time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}
