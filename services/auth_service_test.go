package services

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/talentbuzz/marketplace-go/dto"
	"github.com/talentbuzz/marketplace-go/middleware"
	"github.com/talentbuzz/marketplace-go/models"
	"github.com/talentbuzz/marketplace-go/repositories"
	"github.com/talentbuzz/marketplace-go/repositories/mock_repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupAuthServiceMocks(t *testing.T) (*AuthService, *mock_repositories.MockUserRepo, *mock_repositories.MockTokenRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	mockToken := mock_repositories.NewMockTokenRepo(ctrl)
	repos := &repositories.Repos{
		User:  mockUser,
		Token: mockToken,
	}
	svc := NewAuthService(repos, &recordingMailer{})
	return svc, mockUser, mockToken
}

func stubGenerateToken(t *testing.T, token string) {
	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(userID uint, username string, isStaff bool, expireDuration time.Duration) (string, error) {
		return token, nil
	}
	t.Cleanup(func() { middleware.GenerateToken = oldGen })
}

// --------------------- RegisterUser ---------------------
func TestRegisterUser_Success(t *testing.T) {
	svc, mockUser, mockToken := setupAuthServiceMocks(t)

	input := dto.CreateUserInput{
		Username:  "alice",
		Password:  "123456",
		Email:     "alice@test.com",
		FirstName: ptrString("Alice"),
	}

	mockUser.EXPECT().GetUserByUsername("alice").Return(models.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.False(t, u.IsActive)
		assert.Equal(t, string(models.UserTypeOrigin), u.Type)
		assert.NotEqual(t, "123456", u.Password)
		u.UID = 1
		return nil
	})
	mockToken.EXPECT().CreateToken(gomock.Any()).DoAndReturn(func(st *models.SecurityToken) error {
		assert.Equal(t, uint(1), st.UserID)
		assert.Equal(t, string(models.TokenPurposeActivate), st.Purpose)
		assert.NotEmpty(t, st.Token)
		return nil
	})

	err := svc.RegisterUser(input)
	assert.NoError(t, err)
}

func TestRegisterUser_UsernameTaken(t *testing.T) {
	svc, mockUser, _ := setupAuthServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("admin").Return(models.User{UID: 1}, nil)

	err := svc.RegisterUser(dto.CreateUserInput{Username: "admin", Password: "123456", Email: "a@test.com"})
	assert.Equal(t, ErrUsernameTaken, err)
}

// --------------------- ActivateAccount ---------------------
func TestActivateAccount_Success(t *testing.T) {
	svc, mockUser, mockToken := setupAuthServiceMocks(t)

	st := models.SecurityToken{TID: 3, UserID: 7, Token: "tok"}
	mockToken.EXPECT().GetValidToken("tok", models.TokenPurposeActivate).Return(st, nil)
	mockUser.EXPECT().GetUserByID(uint(7)).Return(models.User{UID: 7, IsActive: false}, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.True(t, u.IsActive)
		return nil
	})
	mockToken.EXPECT().MarkTokenUsed(gomock.Any()).Return(nil)

	assert.NoError(t, svc.ActivateAccount("tok"))
}

func TestActivateAccount_InvalidToken(t *testing.T) {
	svc, _, mockToken := setupAuthServiceMocks(t)

	mockToken.EXPECT().GetValidToken("bad", models.TokenPurposeActivate).Return(models.SecurityToken{}, gorm.ErrRecordNotFound)

	assert.Equal(t, ErrInvalidToken, svc.ActivateAccount("bad"))
}

func TestActivateAccount_AlreadyActive(t *testing.T) {
	svc, mockUser, mockToken := setupAuthServiceMocks(t)

	st := models.SecurityToken{TID: 3, UserID: 7, Token: "tok"}
	mockToken.EXPECT().GetValidToken("tok", models.TokenPurposeActivate).Return(st, nil)
	mockUser.EXPECT().GetUserByID(uint(7)).Return(models.User{UID: 7, IsActive: true}, nil)

	assert.Equal(t, ErrInvalidToken, svc.ActivateAccount("tok"))
}

// --------------------- LoginUser ---------------------
func TestLoginUser_Success(t *testing.T) {
	svc, mockUser, _ := setupAuthServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	user := models.User{UID: 1, Username: "bob", Password: string(hashed), IsActive: true}

	mockUser.EXPECT().GetUserByUsername("bob").Return(user, nil)
	stubGenerateToken(t, "token123")

	u, token, err := svc.LoginUser("bob", "123456")
	assert.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.Equal(t, "token123", token)
}

func TestLoginUser_InvalidPassword(t *testing.T) {
	svc, mockUser, _ := setupAuthServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	user := models.User{UID: 1, Username: "bob", Password: string(hashed), IsActive: true}

	mockUser.EXPECT().GetUserByUsername("bob").Return(user, nil)

	_, token, err := svc.LoginUser("bob", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
	assert.Empty(t, token)
}

func TestLoginUser_NotActivated(t *testing.T) {
	svc, mockUser, _ := setupAuthServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	user := models.User{UID: 1, Username: "bob", Password: string(hashed), IsActive: false}

	mockUser.EXPECT().GetUserByUsername("bob").Return(user, nil)

	_, _, err := svc.LoginUser("bob", "123456")
	assert.Equal(t, ErrAccountNotActive, err)
}

func TestLoginUser_UserNotFound(t *testing.T) {
	svc, mockUser, _ := setupAuthServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("ghost").Return(models.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.LoginUser("ghost", "123")
	assert.Equal(t, ErrInvalidCredentials, err)
}

// --------------------- SetPassword ---------------------
func TestSetPassword_Mismatch(t *testing.T) {
	svc, _, _ := setupAuthServiceMocks(t)

	err := svc.SetPassword("tok", dto.SetPasswordInput{Password: "a", PasswordConfirm: "b"})
	assert.Equal(t, ErrPasswordMismatch, err)
}

func TestSetPassword_Success(t *testing.T) {
	svc, mockUser, mockToken := setupAuthServiceMocks(t)

	st := models.SecurityToken{TID: 9, UserID: 4, Token: "tok"}
	mockToken.EXPECT().GetValidToken("tok", models.TokenPurposePasswordReset).Return(st, nil)
	mockUser.EXPECT().GetUserByID(uint(4)).Return(models.User{UID: 4, Password: "old"}, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("newpass")))
		return nil
	})
	mockToken.EXPECT().MarkTokenUsed(gomock.Any()).Return(nil)

	err := svc.SetPassword("tok", dto.SetPasswordInput{Password: "newpass", PasswordConfirm: "newpass"})
	assert.NoError(t, err)
}

// --------------------- RequestPasswordReset ---------------------
func TestRequestPasswordReset_UnknownEmail(t *testing.T) {
	svc, mockUser, _ := setupAuthServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("nobody@test.com").Return(models.User{}, gorm.ErrRecordNotFound)

	assert.Equal(t, ErrEmailNotFound, svc.RequestPasswordReset("nobody@test.com"))
}

// --------------------- SocialLogin ---------------------
func TestSocialLogin_CreatesAccount(t *testing.T) {
	svc, mockUser, _ := setupAuthServiceMocks(t)

	fetch := func(accessToken string) (SocialUserInfo, error) {
		return SocialUserInfo{Email: "carol@test.com", FirstName: "Carol"}, nil
	}

	mockUser.EXPECT().GetUserByEmail("carol@test.com").Return(models.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.True(t, u.IsActive)
		assert.Equal(t, string(models.UserTypeOauth2), u.Type)
		u.UID = 12
		return nil
	})
	stubGenerateToken(t, "social-token")

	user, token, err := svc.SocialLogin(fetch, "provider-token")
	assert.NoError(t, err)
	assert.Equal(t, uint(12), user.UID)
	assert.Equal(t, "social-token", token)
}

func TestSocialLogin_ExistingAccount(t *testing.T) {
	svc, mockUser, _ := setupAuthServiceMocks(t)

	fetch := func(accessToken string) (SocialUserInfo, error) {
		return SocialUserInfo{Email: "carol@test.com"}, nil
	}

	mockUser.EXPECT().GetUserByEmail("carol@test.com").Return(models.User{UID: 12, Username: "carol@test.com"}, nil)
	stubGenerateToken(t, "social-token")

	user, _, err := svc.SocialLogin(fetch, "provider-token")
	assert.NoError(t, err)
	assert.Equal(t, uint(12), user.UID)
}

func TestSocialLogin_BadToken(t *testing.T) {
	svc, _, _ := setupAuthServiceMocks(t)

	fetch := func(accessToken string) (SocialUserInfo, error) {
		return SocialUserInfo{}, assert.AnError
	}

	_, _, err := svc.SocialLogin(fetch, "bad")
	assert.Equal(t, ErrInvalidCredentials, err)
}
