package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/talentbuzz/marketplace-go/config"
	"github.com/talentbuzz/marketplace-go/dto"
	"github.com/talentbuzz/marketplace-go/mail"
	"github.com/talentbuzz/marketplace-go/middleware"
	"github.com/talentbuzz/marketplace-go/models"
	"github.com/talentbuzz/marketplace-go/repositories"
	"github.com/talentbuzz/marketplace-go/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountNotActive    = errors.New("account is not activated")
	ErrInvalidToken        = errors.New("invalid token")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrEmailNotFound       = errors.New("email not found")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

const (
	tokenTTL   = 48 * time.Hour
	sessionTTL = 24 * time.Hour
)

type AuthService struct {
	Repos  *repositories.Repos
	Mailer mail.Mailer
}

func NewAuthService(repos *repositories.Repos, mailer mail.Mailer) *AuthService {
	return &AuthService{Repos: repos, Mailer: mailer}
}

// RegisterUser creates an inactive account and mails an activation link.
// The mail send is fire-and-forget.
func (s *AuthService) RegisterUser(input dto.CreateUserInput) error {
	_, err := s.Repos.User.GetUserByUsername(input.Username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}

	user := models.User{
		Username: input.Username,
		Password: string(hashed),
		Email:    input.Email,
		Type:     string(models.UserTypeOrigin),
		IsActive: false,
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}

	if err := s.Repos.User.CreateUser(&user); err != nil {
		return err
	}

	token, err := s.issueToken(user.UID, models.TokenPurposeActivate)
	if err != nil {
		return err
	}

	mail.SendAsync(func() error {
		return s.Mailer.SendActivationEmail(user.Email, token)
	})
	return nil
}

func (s *AuthService) issueToken(userID uint, purpose models.TokenPurpose) (string, error) {
	token, err := utils.GenerateSecureToken()
	if err != nil {
		return "", err
	}
	st := models.SecurityToken{
		UserID:    userID,
		Token:     token,
		Purpose:   string(purpose),
		ExpiresAt: time.Now().Add(tokenTTL),
	}
	if err := s.Repos.Token.CreateToken(&st); err != nil {
		return "", err
	}
	return token, nil
}

// ActivateAccount consumes an activation token and activates the user.
func (s *AuthService) ActivateAccount(token string) error {
	st, err := s.Repos.Token.GetValidToken(token, models.TokenPurposeActivate)
	if err != nil {
		return ErrInvalidToken
	}

	user, err := s.Repos.User.GetUserByID(st.UserID)
	if err != nil {
		return ErrInvalidToken
	}
	if user.IsActive {
		return ErrInvalidToken
	}

	user.IsActive = true
	if err := s.Repos.User.SaveUser(&user); err != nil {
		return err
	}
	return s.Repos.Token.MarkTokenUsed(&st)
}

func (s *AuthService) LoginUser(username, password string) (models.User, string, error) {
	user, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return models.User{}, "", ErrAccountNotActive
	}

	token, err := middleware.GenerateToken(user.UID, user.Username, user.IsStaff, sessionTTL)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// RequestPasswordReset mails a reset link when the email is known.
func (s *AuthService) RequestPasswordReset(email string) error {
	user, err := s.Repos.User.GetUserByEmail(email)
	if err != nil {
		return ErrEmailNotFound
	}

	token, err := s.issueToken(user.UID, models.TokenPurposePasswordReset)
	if err != nil {
		return err
	}

	mail.SendAsync(func() error {
		return s.Mailer.SendPasswordResetEmail(user.Email, user.Username, token)
	})
	return nil
}

func (s *AuthService) SetPassword(token string, input dto.SetPasswordInput) error {
	if input.Password != input.PasswordConfirm {
		return ErrPasswordMismatch
	}

	st, err := s.Repos.Token.GetValidToken(token, models.TokenPurposePasswordReset)
	if err != nil {
		return ErrInvalidToken
	}

	user, err := s.Repos.User.GetUserByID(st.UserID)
	if err != nil {
		return ErrInvalidToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}
	user.Password = string(hashed)

	if err := s.Repos.User.SaveUser(&user); err != nil {
		return err
	}
	return s.Repos.Token.MarkTokenUsed(&st)
}

type SocialUserInfo struct {
	Email     string
	FirstName string
	LastName  string
}

// FetchGoogleUserInfo resolves a client-supplied access token against the
// Google userinfo endpoint. Overridable in tests.
var FetchGoogleUserInfo = func(accessToken string) (SocialUserInfo, error) {
	req, err := http.NewRequest(http.MethodGet, config.GoogleUserInfoURL, nil)
	if err != nil {
		return SocialUserInfo{}, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return SocialUserInfo{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return SocialUserInfo{}, fmt.Errorf("google userinfo returned status %d", resp.StatusCode)
	}

	var payload struct {
		Email      string `json:"email"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return SocialUserInfo{}, err
	}
	return SocialUserInfo{Email: payload.Email, FirstName: payload.GivenName, LastName: payload.FamilyName}, nil
}

var FetchFacebookUserInfo = func(accessToken string) (SocialUserInfo, error) {
	url := fmt.Sprintf("%s?fields=id,first_name,last_name,email&access_token=%s",
		config.FacebookUserInfoURL, accessToken)

	resp, err := http.Get(url)
	if err != nil {
		return SocialUserInfo{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return SocialUserInfo{}, fmt.Errorf("facebook userinfo returned status %d", resp.StatusCode)
	}

	var payload struct {
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return SocialUserInfo{}, err
	}
	return SocialUserInfo{Email: payload.Email, FirstName: payload.FirstName, LastName: payload.LastName}, nil
}

// SocialLogin verifies a provider access token, gets or creates an active
// account for the returned email, and issues a session token.
func (s *AuthService) SocialLogin(fetch func(string) (SocialUserInfo, error), accessToken string) (models.User, string, error) {
	info, err := fetch(accessToken)
	if err != nil || info.Email == "" {
		return models.User{}, "", ErrInvalidCredentials
	}

	user, err := s.Repos.User.GetUserByEmail(info.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			Username:  info.Email,
			Email:     info.Email,
			FirstName: info.FirstName,
			LastName:  info.LastName,
			Type:      string(models.UserTypeOauth2),
			IsActive:  true,
		}
		if err := s.Repos.User.CreateUser(&user); err != nil {
			return models.User{}, "", err
		}
	} else if err != nil {
		return models.User{}, "", err
	}

	token, err := middleware.GenerateToken(user.UID, user.Username, user.IsStaff, sessionTTL)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}
