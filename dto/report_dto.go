package dto

import "time"

type CreateGigReportInput struct {
	GigID     uint      `form:"gig_id" json:"gig_id" binding:"required"`
	Text      *string   `form:"text" json:"text"`
	StartTime time.Time `form:"start_time" json:"start_time" binding:"required"`
	EndTime   time.Time `form:"end_time" json:"end_time" binding:"required"`
}

type UpdateGigReportInput struct {
	Text      *string    `form:"text" json:"text"`
	StartTime *time.Time `form:"start_time" json:"start_time"`
	EndTime   *time.Time `form:"end_time" json:"end_time"`
}

type ReviewInput struct {
	Comment *string `form:"comment" json:"comment"`
	Score   *int    `form:"score" json:"score" binding:"omitempty,min=1,max=5"`
}

type CreateProjectReportInput struct {
	ProjectID  uint   `form:"project_id" json:"project_id" binding:"required"`
	Text       string `form:"text" json:"text" binding:"required"`
	DocumentID *uint  `form:"document_id" json:"document_id"`
}
