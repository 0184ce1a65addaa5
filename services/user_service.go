package services

import (
	"errors"

	"github.com/talentbuzz/marketplace-go/dto"
	"github.com/talentbuzz/marketplace-go/models"
	"github.com/talentbuzz/marketplace-go/repositories"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrIncorrectPassword  = errors.New("old password is incorrect")
	ErrMissingOldPassword = errors.New("old password is required to change password")
)

type UserService struct {
	Repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) ListUsers() ([]models.User, error) {
	return s.Repos.User.ListUsers()
}

func (s *UserService) FindUserByID(id uint) (models.User, error) {
	user, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) UpdateUser(id uint, input dto.UpdateUserInput) (models.User, error) {
	user, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	if input.Password != nil {
		if input.OldPassword == nil {
			return models.User{}, ErrMissingOldPassword
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(*input.OldPassword)); err != nil {
			return models.User{}, ErrIncorrectPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, ErrPasswordHashFailure
		}
		user.Password = string(hashed)
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = *input.PhoneNumber
	}
	if input.Address1 != nil {
		user.Address1 = *input.Address1
	}
	if input.Address2 != nil {
		user.Address2 = *input.Address2
	}
	if input.City != nil {
		user.City = *input.City
	}
	if input.Province != nil {
		user.Province = *input.Province
	}
	if input.PostCode != nil {
		user.PostCode = *input.PostCode
	}
	if input.Country != nil {
		user.Country = *input.Country
	}

	if err := s.Repos.User.SaveUser(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) RemoveUser(id uint) error {
	return s.Repos.User.DeleteUser(id)
}
