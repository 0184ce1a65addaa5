package models

import "time"

type TokenPurpose string

const (
	TokenPurposeActivate      TokenPurpose = "activate"
	TokenPurposePasswordReset TokenPurpose = "password_reset"
)

// SecurityToken is a single-use random token mailed to a user for
// account activation or password reset.
type SecurityToken struct {
	TID       uint       `gorm:"primaryKey;column:t_id" json:"t_id"`
	UserID    uint       `gorm:"not null;index" json:"user_id"`
	User      User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Token     string     `gorm:"size:128;not null;uniqueIndex" json:"-"`
	Purpose   string     `gorm:"size:30;not null" json:"purpose"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	UsedAt    *time.Time `json:"used_at"`
	CreatedAt time.Time  `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}
