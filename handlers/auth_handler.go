package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentbuzz/marketplace-go/dto"
	"github.com/talentbuzz/marketplace-go/response"
	"github.com/talentbuzz/marketplace-go/services"
)

type AuthHandler struct {
	svc *services.AuthService
}

func NewAuthHandler(svc *services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register godoc
// @Summary Register a new account
// @Description Creates an inactive account and sends an activation email.
// @Tags auth
// @Accept json
// @Produce json
// @Param input body dto.CreateUserInput true "Registration payload"
// @Success 201 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Username taken"
// @Failure 500 {object} response.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input dto.CreateUserInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.RegisterUser(input); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.MessageResponse{Message: "check your email to activate the account"})
}

// Activate godoc
// @Summary Activate an account
// @Tags auth
// @Produce json
// @Param token path string true "Activation token"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Invalid or expired token"
// @Router /activate/{token} [post]
func (h *AuthHandler) Activate(c *gin.Context) {
	if err := h.svc.ActivateAccount(c.Param("token")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "account activated"})
}

// Login godoc
// @Summary Log in with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param input body dto.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse "Bad credentials or inactive account"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.svc.LoginUser(input.Username, input.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UID:      user.UID,
		Username: user.Username,
		IsStaff:  user.IsStaff,
	})
}

// GoogleLogin godoc
// @Summary Log in with a Google access token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body dto.SocialLoginInput true "Provider access token"
// @Success 200 {object} response.TokenResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /login/google [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	h.socialLogin(c, services.FetchGoogleUserInfo)
}

// FacebookLogin godoc
// @Summary Log in with a Facebook access token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body dto.SocialLoginInput true "Provider access token"
// @Success 200 {object} response.TokenResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /login/facebook [post]
func (h *AuthHandler) FacebookLogin(c *gin.Context) {
	h.socialLogin(c, services.FetchFacebookUserInfo)
}

func (h *AuthHandler) socialLogin(c *gin.Context, fetch func(string) (services.SocialUserInfo, error)) {
	var input dto.SocialLoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.svc.SocialLogin(fetch, input.AccessToken)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UID:      user.UID,
		Username: user.Username,
		IsStaff:  user.IsStaff,
	})
}

// RequestPasswordReset godoc
// @Summary Send a password reset email
// @Tags auth
// @Accept json
// @Produce json
// @Param input body dto.PasswordResetInput true "Account email"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Unknown email"
// @Router /password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var input dto.PasswordResetInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.RequestPasswordReset(input.Email); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "password reset email sent"})
}

// SetPassword godoc
// @Summary Set a new password with a reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param input body dto.SetPasswordInput true "New password"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Invalid token or password mismatch"
// @Router /set-password/{token} [post]
func (h *AuthHandler) SetPassword(c *gin.Context) {
	var input dto.SetPasswordInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.SetPassword(c.Param("token"), input); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "password updated"})
}
