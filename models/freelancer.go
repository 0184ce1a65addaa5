package models

import "gorm.io/datatypes"

type Freelancer struct {
	FID           uint           `gorm:"primaryKey;column:f_id" json:"f_id"`
	UserID        uint           `gorm:"not null;uniqueIndex" json:"user_id"`
	User          User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	HourlyRate    float64        `json:"hourly_rate"`
	Rating        *float64       `json:"rating"`
	TotalEarning  *float64       `json:"total_earning"`
	TotalJobs     *int           `gorm:"column:total_job" json:"total_job"`
	Availability  datatypes.JSON `json:"availability"`
	Skills        datatypes.JSON `json:"skills"`
	Languages     datatypes.JSON `json:"languages"`
	Experience    datatypes.JSON `json:"experience"`
	Education     datatypes.JSON `json:"education"`
	Certification datatypes.JSON `json:"certification"`
	Portfolio     datatypes.JSON `json:"portfolio"`
}
