package repositories

import (
	"github.com/talentbuzz/marketplace-go/db"
	"github.com/talentbuzz/marketplace-go/models"
)

type FreelancerRepo interface {
	CreateFreelancer(f *models.Freelancer) error
	GetFreelancerByID(id uint) (models.Freelancer, error)
	GetFreelancerByUserID(userID uint) (models.Freelancer, error)
	SaveFreelancer(f *models.Freelancer) error
	DeleteFreelancer(id uint) error
	ListFreelancers() ([]models.Freelancer, error)
}

type DBFreelancerRepo struct{}

func (r *DBFreelancerRepo) CreateFreelancer(f *models.Freelancer) error {
	return db.DB.Create(f).Error
}

func (r *DBFreelancerRepo) GetFreelancerByID(id uint) (models.Freelancer, error) {
	var f models.Freelancer
	err := db.DB.Preload("User").First(&f, id).Error
	return f, err
}

func (r *DBFreelancerRepo) GetFreelancerByUserID(userID uint) (models.Freelancer, error) {
	var f models.Freelancer
	err := db.DB.Preload("User").Where("user_id = ?", userID).First(&f).Error
	return f, err
}

func (r *DBFreelancerRepo) SaveFreelancer(f *models.Freelancer) error {
	return db.DB.Save(f).Error
}

func (r *DBFreelancerRepo) DeleteFreelancer(id uint) error {
	return db.DB.Delete(&models.Freelancer{}, id).Error
}

func (r *DBFreelancerRepo) ListFreelancers() ([]models.Freelancer, error) {
	var list []models.Freelancer
	err := db.DB.Preload("User").Order("f_id").Find(&list).Error
	return list, err
}
