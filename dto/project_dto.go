package dto

import "time"

type CreateProjectInput struct {
	Title            string    `form:"title" json:"title" binding:"required"`
	Description      *string   `form:"description" json:"description"`
	TextRequirements *string   `form:"text_requirements" json:"text_requirements"`
	Requirements     []string  `json:"json_requirements"`
	HourlyRate       int       `form:"hourly_rate" json:"hourly_rate" binding:"required"`
	Category         *string   `form:"category" json:"category"`
	Status           *string   `form:"status" json:"status"`
	StartDate        time.Time `form:"start_date" json:"start_date" binding:"required" time_format:"2006-01-02"`
	EndDate          time.Time `form:"end_date" json:"end_date" binding:"required" time_format:"2006-01-02"`
}

type UpdateProjectInput struct {
	Title            *string    `form:"title" json:"title"`
	Description      *string    `form:"description" json:"description"`
	TextRequirements *string    `form:"text_requirements" json:"text_requirements"`
	Requirements     *[]string  `json:"json_requirements"`
	HourlyRate       *int       `form:"hourly_rate" json:"hourly_rate"`
	Category         *string    `form:"category" json:"category"`
	Status           *string    `form:"status" json:"status"`
	StartDate        *time.Time `form:"start_date" json:"start_date" time_format:"2006-01-02"`
	EndDate          *time.Time `form:"end_date" json:"end_date" time_format:"2006-01-02"`
}
