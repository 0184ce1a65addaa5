package dto

type UpdateUserInput struct {
	OldPassword *string `form:"old_password" json:"old_password"`
	Password    *string `form:"password" json:"password"`
	Email       *string `form:"email" json:"email" binding:"omitempty,email"`
	FirstName   *string `form:"first_name" json:"first_name"`
	LastName    *string `form:"last_name" json:"last_name"`
	PhoneNumber *string `form:"phone_number" json:"phone_number"`
	Address1    *string `form:"address_1" json:"address_1"`
	Address2    *string `form:"address_2" json:"address_2"`
	City        *string `form:"city" json:"city"`
	Province    *string `form:"province" json:"province"`
	PostCode    *string `form:"post_code" json:"post_code"`
	Country     *string `form:"country" json:"country"`
}
