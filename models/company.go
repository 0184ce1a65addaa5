package models

import (
	"time"

	"gorm.io/datatypes"
)

type Company struct {
	CID          uint           `gorm:"primaryKey;column:c_id" json:"c_id"`
	OwnerID      uint           `gorm:"not null;uniqueIndex" json:"owner_id"`
	Owner        User           `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"owner"`
	Name         string         `gorm:"column:company_name;size:120" json:"company_name"`
	Logo         string         `gorm:"size:300" json:"company_logo"`
	Description  string         `gorm:"type:text" json:"company_description"`
	Website      string         `gorm:"size:200" json:"company_website"`
	Size         string         `gorm:"size:120" json:"company_size"`
	Industry     string         `gorm:"size:120" json:"company_industry"`
	Type         string         `gorm:"size:120" json:"company_type"`
	Founded      *time.Time     `json:"company_founded"`
	Location     string         `gorm:"size:120" json:"company_location"`
	Specialities datatypes.JSON `json:"company_specialities"`
	SocialMedia  datatypes.JSON `json:"company_social_media"`
	Employees    []User         `gorm:"many2many:company_employees;" json:"employees,omitempty"`
}
