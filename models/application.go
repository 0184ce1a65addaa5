package models

import "time"

// ApplicationStatus is integer-coded: 0 pending, 1 accepted, 2 rejected.
// Decided applications never transition again.
type ApplicationStatus int

const (
	ApplicationPending  ApplicationStatus = 0
	ApplicationAccepted ApplicationStatus = 1
	ApplicationRejected ApplicationStatus = 2
)

type GigApplication struct {
	AID          uint              `gorm:"primaryKey;column:a_id" json:"a_id"`
	FreelancerID uint              `gorm:"not null;uniqueIndex:idx_gig_app_pair" json:"freelancer_id"`
	Freelancer   Freelancer        `gorm:"foreignKey:FreelancerID;constraint:OnDelete:CASCADE" json:"freelancer"`
	GigID        uint              `gorm:"not null;uniqueIndex:idx_gig_app_pair;index" json:"gig_id"`
	Gig          Gig               `gorm:"foreignKey:GigID;constraint:OnDelete:CASCADE" json:"gig"`
	Status       ApplicationStatus `gorm:"not null;default:0" json:"status"`
	CreatedAt    time.Time         `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}

type ProjectApplication struct {
	AID          uint              `gorm:"primaryKey;column:a_id" json:"a_id"`
	FreelancerID uint              `gorm:"not null;uniqueIndex:idx_project_app_pair" json:"freelancer_id"`
	Freelancer   Freelancer        `gorm:"foreignKey:FreelancerID;constraint:OnDelete:CASCADE" json:"freelancer"`
	ProjectID    uint              `gorm:"not null;uniqueIndex:idx_project_app_pair;index" json:"project_id"`
	Project      Project           `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project"`
	Status       ApplicationStatus `gorm:"not null;default:0" json:"status"`
	CreatedAt    time.Time         `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}
