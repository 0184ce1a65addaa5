package repositories

import (
	"github.com/talentbuzz/marketplace-go/db"
	"github.com/talentbuzz/marketplace-go/models"
)

type GigRepo interface {
	CreateGig(g *models.Gig) error
	GetGigByID(id uint) (models.Gig, error)
	SaveGig(g *models.Gig) error
	DeleteGig(id uint) error
	ListGigs() ([]models.Gig, error)
	ListGigsByProject(projectID uint) ([]models.Gig, error)
	// AvailableGigs returns gigs with open headcount (or no cap) that the
	// user has not applied to yet.
	AvailableGigs(userID uint) ([]models.Gig, error)
	// GigsByApplicationStatus returns gigs where the user's own
	// application has the given status.
	GigsByApplicationStatus(userID uint, status models.ApplicationStatus) ([]models.Gig, error)
	CountAcceptedApplications(gigID uint) (int64, error)
}

type DBGigRepo struct{}

func (r *DBGigRepo) CreateGig(g *models.Gig) error {
	return db.DB.Create(g).Error
}

func (r *DBGigRepo) GetGigByID(id uint) (models.Gig, error) {
	var gig models.Gig
	err := db.DB.
		Preload("Project").
		Preload("Project.AssociatedUser").
		Preload("Company").
		First(&gig, id).Error
	return gig, err
}

func (r *DBGigRepo) SaveGig(g *models.Gig) error {
	return db.DB.Save(g).Error
}

func (r *DBGigRepo) DeleteGig(id uint) error {
	return db.DB.Delete(&models.Gig{}, id).Error
}

func (r *DBGigRepo) ListGigs() ([]models.Gig, error) {
	var list []models.Gig
	err := db.DB.Preload("Project").Order("g_id").Find(&list).Error
	return list, err
}

func (r *DBGigRepo) ListGigsByProject(projectID uint) ([]models.Gig, error) {
	var list []models.Gig
	err := db.DB.Where("project_id = ?", projectID).Order("g_id").Find(&list).Error
	return list, err
}

func (r *DBGigRepo) AvailableGigs(userID uint) ([]models.Gig, error) {
	applied := db.DB.Table("gig_applications").
		Select("gig_applications.gig_id").
		Joins("JOIN freelancers ON freelancers.f_id = gig_applications.freelancer_id").
		Where("freelancers.user_id = ?", userID)

	var gigs []models.Gig
	err := db.DB.Model(&models.Gig{}).
		Joins("LEFT JOIN gig_applications accepted ON accepted.gig_id = gigs.g_id AND accepted.status = ?",
			models.ApplicationAccepted).
		Where("gigs.g_id NOT IN (?)", applied).
		Group("gigs.g_id").
		Having("gigs.number_of_freelancers IS NULL OR COUNT(accepted.a_id) < gigs.number_of_freelancers").
		Order("gigs.g_id").
		Find(&gigs).Error
	return gigs, err
}

func (r *DBGigRepo) GigsByApplicationStatus(userID uint, status models.ApplicationStatus) ([]models.Gig, error) {
	var gigs []models.Gig
	err := db.DB.Model(&models.Gig{}).
		Joins("JOIN gig_applications ON gig_applications.gig_id = gigs.g_id").
		Joins("JOIN freelancers ON freelancers.f_id = gig_applications.freelancer_id").
		Where("freelancers.user_id = ? AND gig_applications.status = ?", userID, status).
		Distinct().
		Order("gigs.g_id").
		Find(&gigs).Error
	return gigs, err
}

func (r *DBGigRepo) CountAcceptedApplications(gigID uint) (int64, error) {
	var count int64
	err := db.DB.Model(&models.GigApplication{}).
		Where("gig_id = ? AND status = ?", gigID, models.ApplicationAccepted).
		Count(&count).Error
	return count, err
}
