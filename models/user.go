package models

import "time"

type UserType string

const (
	UserTypeOrigin UserType = "origin"
	UserTypeOauth2 UserType = "oauth2"
)

type User struct {
	UID            uint      `gorm:"primaryKey;column:u_id" json:"u_id"`
	Username       string    `gorm:"size:150;not null;unique" json:"username"`
	Password       string    `gorm:"size:255;not null" json:"-"`
	Email          string    `gorm:"size:254;index" json:"email"`
	FirstName      string    `gorm:"size:150" json:"first_name"`
	LastName       string    `gorm:"size:150" json:"last_name"`
	PhoneNumber    string    `gorm:"size:120" json:"phone_number"`
	Address1       string    `gorm:"size:120" json:"address_1"`
	Address2       string    `gorm:"size:120" json:"address_2"`
	City           string    `gorm:"size:120" json:"city"`
	Province       string    `gorm:"size:120" json:"province"`
	PostCode       string    `gorm:"size:120" json:"post_code"`
	Country        string    `gorm:"size:120" json:"country"`
	ProfilePicture string    `gorm:"size:300" json:"profile_picture"`
	Type           string    `gorm:"size:20;default:'origin';not null" json:"type"`
	IsActive       bool      `gorm:"default:false;not null" json:"is_active"`
	IsStaff        bool      `gorm:"default:false;not null" json:"is_staff"`
	CreatedAt      time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt      time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}
