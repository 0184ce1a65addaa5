package dto

import "time"

type CreateGigInput struct {
	ProjectID           uint      `form:"project_id" json:"project_id" binding:"required"`
	Title               string    `form:"title" json:"title" binding:"required"`
	Description         *string   `form:"description" json:"description"`
	TextRequirements    *string   `form:"text_requirements" json:"text_requirements"`
	Requirements        []string  `json:"json_requirements"`
	Hours               *int      `form:"hours" json:"hours"`
	Status              *string   `form:"status" json:"status"`
	Start               time.Time `form:"start" json:"start" binding:"required"`
	End                 time.Time `form:"end" json:"end" binding:"required"`
	NumberOfFreelancers *int      `form:"number_of_freelancers" json:"number_of_freelancers"`
}

type UpdateGigInput struct {
	Title               *string    `form:"title" json:"title"`
	Description         *string    `form:"description" json:"description"`
	TextRequirements    *string    `form:"text_requirements" json:"text_requirements"`
	Requirements        *[]string  `json:"json_requirements"`
	Hours               *int       `form:"hours" json:"hours"`
	Status              *string    `form:"status" json:"status"`
	Start               *time.Time `form:"start" json:"start"`
	End                 *time.Time `form:"end" json:"end"`
	NumberOfFreelancers *int       `form:"number_of_freelancers" json:"number_of_freelancers"`
}
