package repositories

import (
	"github.com/talentbuzz/marketplace-go/db"
	"github.com/talentbuzz/marketplace-go/models"
	"gorm.io/gorm"
)

type ReportRepo interface {
	CreateGigReport(report *models.GigReport) error
	GetGigReportByID(id uint) (models.GigReport, error)
	SaveGigReport(report *models.GigReport) error
	DeleteGigReport(id uint) error
	ListGigReportsForUser(userID uint) ([]models.GigReport, error)
	// ApproveGigReport persists the approved report and its invoice in
	// one transaction.
	ApproveGigReport(report *models.GigReport, invoice *models.Invoice) error

	CreateProjectReport(report *models.ProjectReport) error
	GetProjectReportByID(id uint) (models.ProjectReport, error)
	DeleteProjectReport(id uint) error
	ListProjectReportsByProject(projectID uint) ([]models.ProjectReport, error)
}

type DBReportRepo struct{}

func (r *DBReportRepo) CreateGigReport(report *models.GigReport) error {
	return db.DB.Create(report).Error
}

func (r *DBReportRepo) GetGigReportByID(id uint) (models.GigReport, error) {
	var report models.GigReport
	err := db.DB.
		Preload("Gig").
		Preload("Gig.Project").
		Preload("Gig.Company").
		Preload("Freelancer").
		Preload("Freelancer.User").
		First(&report, id).Error
	return report, err
}

func (r *DBReportRepo) SaveGigReport(report *models.GigReport) error {
	return db.DB.Save(report).Error
}

func (r *DBReportRepo) DeleteGigReport(id uint) error {
	return db.DB.Delete(&models.GigReport{}, id).Error
}

func (r *DBReportRepo) ListGigReportsForUser(userID uint) ([]models.GigReport, error) {
	var reports []models.GigReport
	err := db.DB.Model(&models.GigReport{}).
		Joins("JOIN gigs ON gigs.g_id = gig_reports.gig_id").
		Joins("JOIN projects ON projects.p_id = gigs.project_id").
		Joins("JOIN freelancers ON freelancers.f_id = gig_reports.freelancer_id").
		Where("projects.associated_user_id = ? OR freelancers.user_id = ?", userID, userID).
		Order("gig_reports.r_id").
		Find(&reports).Error
	return reports, err
}

func (r *DBReportRepo) ApproveGigReport(report *models.GigReport, invoice *models.Invoice) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(report).Error; err != nil {
			return err
		}
		return tx.Create(invoice).Error
	})
}

func (r *DBReportRepo) CreateProjectReport(report *models.ProjectReport) error {
	return db.DB.Create(report).Error
}

func (r *DBReportRepo) GetProjectReportByID(id uint) (models.ProjectReport, error) {
	var report models.ProjectReport
	err := db.DB.Preload("Project").Preload("User").First(&report, id).Error
	return report, err
}

func (r *DBReportRepo) DeleteProjectReport(id uint) error {
	return db.DB.Delete(&models.ProjectReport{}, id).Error
}

func (r *DBReportRepo) ListProjectReportsByProject(projectID uint) ([]models.ProjectReport, error) {
	var reports []models.ProjectReport
	err := db.DB.Where("project_id = ?", projectID).Order("r_id").Find(&reports).Error
	return reports, err
}
