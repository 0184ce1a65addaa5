package repositories

import (
	"github.com/talentbuzz/marketplace-go/db"
	"github.com/talentbuzz/marketplace-go/models"
)

type UserRepo interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (models.User, error)
	GetUserByUsername(username string) (models.User, error)
	GetUserByEmail(email string) (models.User, error)
	SaveUser(user *models.User) error
	DeleteUser(id uint) error
	ListUsers() ([]models.User, error)
}

type DBUserRepo struct{}

func (r *DBUserRepo) CreateUser(user *models.User) error {
	return db.DB.Create(user).Error
}

func (r *DBUserRepo) GetUserByID(id uint) (models.User, error) {
	var user models.User
	err := db.DB.First(&user, id).Error
	return user, err
}

func (r *DBUserRepo) GetUserByUsername(username string) (models.User, error) {
	var user models.User
	err := db.DB.Where("username = ?", username).First(&user).Error
	return user, err
}

func (r *DBUserRepo) GetUserByEmail(email string) (models.User, error) {
	var user models.User
	err := db.DB.Where("email = ?", email).First(&user).Error
	return user, err
}

func (r *DBUserRepo) SaveUser(user *models.User) error {
	return db.DB.Save(user).Error
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return db.DB.Delete(&models.User{}, id).Error
}

func (r *DBUserRepo) ListUsers() ([]models.User, error) {
	var users []models.User
	err := db.DB.Order("u_id").Find(&users).Error
	return users, err
}
