package repositories

import (
	"github.com/talentbuzz/marketplace-go/db"
	"github.com/talentbuzz/marketplace-go/models"
)

type CompanyRepo interface {
	CreateCompany(c *models.Company) error
	GetCompanyByID(id uint) (models.Company, error)
	GetCompanyByOwnerID(ownerID uint) (models.Company, error)
	SaveCompany(c *models.Company) error
	DeleteCompany(id uint) error
	ListCompanies() ([]models.Company, error)
}

type DBCompanyRepo struct{}

func (r *DBCompanyRepo) CreateCompany(c *models.Company) error {
	return db.DB.Create(c).Error
}

func (r *DBCompanyRepo) GetCompanyByID(id uint) (models.Company, error) {
	var company models.Company
	err := db.DB.Preload("Owner").First(&company, id).Error
	return company, err
}

func (r *DBCompanyRepo) GetCompanyByOwnerID(ownerID uint) (models.Company, error) {
	var company models.Company
	err := db.DB.Preload("Owner").Where("owner_id = ?", ownerID).First(&company).Error
	return company, err
}

func (r *DBCompanyRepo) SaveCompany(c *models.Company) error {
	return db.DB.Save(c).Error
}

func (r *DBCompanyRepo) DeleteCompany(id uint) error {
	return db.DB.Delete(&models.Company{}, id).Error
}

func (r *DBCompanyRepo) ListCompanies() ([]models.Company, error) {
	var list []models.Company
	err := db.DB.Preload("Owner").Order("c_id").Find(&list).Error
	return list, err
}
