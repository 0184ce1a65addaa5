package dto

type CreateGigApplicationInput struct {
	GigID uint `form:"gig_id" json:"gig_id" binding:"required"`
}

type CreateProjectApplicationInput struct {
	ProjectID uint `form:"project_id" json:"project_id" binding:"required"`
}
