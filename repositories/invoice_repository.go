package repositories

import (
	"github.com/talentbuzz/marketplace-go/db"
	"github.com/talentbuzz/marketplace-go/models"
)

type InvoiceRepo interface {
	CreateInvoice(inv *models.Invoice) error
	GetInvoiceByID(id uint) (models.Invoice, error)
	GetInvoiceByReportID(reportID uint) (models.Invoice, error)
	SaveInvoice(inv *models.Invoice) error
	ListInvoicesByCompany(companyID uint) ([]models.Invoice, error)
	ListInvoicesByFreelancer(freelancerID uint) ([]models.Invoice, error)
}

type DBInvoiceRepo struct{}

func (r *DBInvoiceRepo) CreateInvoice(inv *models.Invoice) error {
	return db.DB.Create(inv).Error
}

func (r *DBInvoiceRepo) GetInvoiceByID(id uint) (models.Invoice, error) {
	var inv models.Invoice
	err := db.DB.
		Preload("Company").
		Preload("Freelancer").
		Preload("Project").
		Preload("Gig").
		First(&inv, id).Error
	return inv, err
}

func (r *DBInvoiceRepo) GetInvoiceByReportID(reportID uint) (models.Invoice, error) {
	var inv models.Invoice
	err := db.DB.Where("gig_report_id = ?", reportID).First(&inv).Error
	return inv, err
}

func (r *DBInvoiceRepo) SaveInvoice(inv *models.Invoice) error {
	return db.DB.Save(inv).Error
}

func (r *DBInvoiceRepo) ListInvoicesByCompany(companyID uint) ([]models.Invoice, error) {
	var list []models.Invoice
	err := db.DB.Where("company_id = ?", companyID).Order("i_id").Find(&list).Error
	return list, err
}

func (r *DBInvoiceRepo) ListInvoicesByFreelancer(freelancerID uint) ([]models.Invoice, error) {
	var list []models.Invoice
	err := db.DB.Where("freelancer_id = ?", freelancerID).Order("i_id").Find(&list).Error
	return list, err
}
