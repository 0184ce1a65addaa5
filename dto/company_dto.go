package dto

type CreateCompanyInput struct {
	Name         string            `form:"company_name" json:"company_name" binding:"required"`
	Description  *string           `form:"company_description" json:"company_description"`
	Website      *string           `form:"company_website" json:"company_website" binding:"omitempty,url"`
	Size         *string           `form:"company_size" json:"company_size"`
	Industry     *string           `form:"company_industry" json:"company_industry"`
	Type         *string           `form:"company_type" json:"company_type"`
	Location     *string           `form:"company_location" json:"company_location"`
	Specialities []string          `json:"company_specialities"`
	SocialMedia  map[string]string `json:"company_social_media"`
}

type UpdateCompanyInput struct {
	Name         *string            `form:"company_name" json:"company_name"`
	Description  *string            `form:"company_description" json:"company_description"`
	Website      *string            `form:"company_website" json:"company_website" binding:"omitempty,url"`
	Size         *string            `form:"company_size" json:"company_size"`
	Industry     *string            `form:"company_industry" json:"company_industry"`
	Type         *string            `form:"company_type" json:"company_type"`
	Location     *string            `form:"company_location" json:"company_location"`
	Specialities *[]string          `json:"company_specialities"`
	SocialMedia  *map[string]string `json:"company_social_media"`
}
