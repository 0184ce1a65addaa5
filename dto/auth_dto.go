package dto

type CreateUserInput struct {
	Username  string  `form:"username" json:"username" binding:"required" example:"johndoe"`
	Password  string  `form:"password" json:"password" binding:"required" example:"password123"`
	Email     string  `form:"email" json:"email" binding:"required,email" example:"user@example.com"`
	FirstName *string `form:"first_name" json:"first_name" example:"John"`
	LastName  *string `form:"last_name" json:"last_name" example:"Doe"`
}

type LoginInput struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type SocialLoginInput struct {
	AccessToken string `form:"access_token" json:"access_token" binding:"required"`
}

type PasswordResetInput struct {
	Email string `form:"email" json:"email" binding:"required,email"`
}

type SetPasswordInput struct {
	Password        string `form:"password" json:"password" binding:"required"`
	PasswordConfirm string `form:"password_confirm" json:"password_confirm" binding:"required"`
}
