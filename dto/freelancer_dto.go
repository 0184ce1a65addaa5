package dto

// List-shaped profile fields arrive as JSON arrays/objects and are stored
// as JSONB columns.
type CreateFreelancerInput struct {
	HourlyRate    float64  `form:"hourly_rate" json:"hourly_rate" binding:"required"`
	Availability  []string `json:"availability"`
	Skills        []string `json:"skills"`
	Languages     []string `json:"languages"`
	Experience    []string `json:"experience"`
	Education     []string `json:"education"`
	Certification []string `json:"certification"`
	Portfolio     []string `json:"portfolio"`
}

type UpdateFreelancerInput struct {
	HourlyRate    *float64  `form:"hourly_rate" json:"hourly_rate"`
	Availability  *[]string `json:"availability"`
	Skills        *[]string `json:"skills"`
	Languages     *[]string `json:"languages"`
	Experience    *[]string `json:"experience"`
	Education     *[]string `json:"education"`
	Certification *[]string `json:"certification"`
	Portfolio     *[]string `json:"portfolio"`
}
