package repositories

import (
	"errors"

	"github.com/talentbuzz/marketplace-go/db"
	"github.com/talentbuzz/marketplace-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrGigFull means the gig already has number_of_freelancers accepted
	// applications.
	ErrGigFull = errors.New("gig has no open headcount left")
	// ErrApplicationDecided means the application already left the
	// pending state.
	ErrApplicationDecided = errors.New("application already decided")
)

type ApplicationRepo interface {
	CreateGigApplication(app *models.GigApplication) error
	GetGigApplicationByID(id uint) (models.GigApplication, error)
	GetGigApplicationByPair(freelancerID, gigID uint) (models.GigApplication, error)
	ListGigApplicationsForUser(userID uint) ([]models.GigApplication, error)
	// AcceptGigApplication performs the transactional check-and-set:
	// the gig row is locked, the accepted count is re-validated against
	// the cap, and the freelancer is recorded on the gig.
	AcceptGigApplication(appID uint) error
	RejectGigApplication(appID uint) error

	CreateProjectApplication(app *models.ProjectApplication) error
	GetProjectApplicationByID(id uint) (models.ProjectApplication, error)
	GetProjectApplicationByPair(freelancerID, projectID uint) (models.ProjectApplication, error)
	ListProjectApplicationsForUser(userID uint) ([]models.ProjectApplication, error)
	AcceptProjectApplication(appID uint) error
	RejectProjectApplication(appID uint) error
}

type DBApplicationRepo struct{}

func (r *DBApplicationRepo) CreateGigApplication(app *models.GigApplication) error {
	return db.DB.Create(app).Error
}

func (r *DBApplicationRepo) GetGigApplicationByID(id uint) (models.GigApplication, error) {
	var app models.GigApplication
	err := db.DB.
		Preload("Gig").
		Preload("Gig.Project").
		Preload("Freelancer").
		Preload("Freelancer.User").
		First(&app, id).Error
	return app, err
}

func (r *DBApplicationRepo) GetGigApplicationByPair(freelancerID, gigID uint) (models.GigApplication, error) {
	var app models.GigApplication
	err := db.DB.Where("freelancer_id = ? AND gig_id = ?", freelancerID, gigID).First(&app).Error
	return app, err
}

// ListGigApplicationsForUser returns applications visible to the user:
// those on gigs of projects the user owns, and the user's own.
func (r *DBApplicationRepo) ListGigApplicationsForUser(userID uint) ([]models.GigApplication, error) {
	var apps []models.GigApplication
	err := db.DB.Model(&models.GigApplication{}).
		Joins("JOIN gigs ON gigs.g_id = gig_applications.gig_id").
		Joins("JOIN projects ON projects.p_id = gigs.project_id").
		Joins("JOIN freelancers ON freelancers.f_id = gig_applications.freelancer_id").
		Where("projects.associated_user_id = ? OR freelancers.user_id = ?", userID, userID).
		Order("gig_applications.a_id").
		Find(&apps).Error
	return apps, err
}

func (r *DBApplicationRepo) AcceptGigApplication(appID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var app models.GigApplication
		if err := tx.First(&app, appID).Error; err != nil {
			return err
		}
		if app.Status != models.ApplicationPending {
			return ErrApplicationDecided
		}

		var gig models.Gig
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&gig, app.GigID).Error; err != nil {
			return err
		}

		if gig.NumberOfFreelancers != nil {
			var accepted int64
			if err := tx.Model(&models.GigApplication{}).
				Where("gig_id = ? AND status = ?", gig.GID, models.ApplicationAccepted).
				Count(&accepted).Error; err != nil {
				return err
			}
			if accepted >= int64(*gig.NumberOfFreelancers) {
				return ErrGigFull
			}
		}

		if err := tx.Model(&app).Update("status", models.ApplicationAccepted).Error; err != nil {
			return err
		}

		freelancer := models.Freelancer{FID: app.FreelancerID}
		return tx.Model(&gig).Association("Freelancers").Append(&freelancer)
	})
}

func (r *DBApplicationRepo) RejectGigApplication(appID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var app models.GigApplication
		if err := tx.First(&app, appID).Error; err != nil {
			return err
		}
		if app.Status != models.ApplicationPending {
			return ErrApplicationDecided
		}
		return tx.Model(&app).Update("status", models.ApplicationRejected).Error
	})
}

func (r *DBApplicationRepo) CreateProjectApplication(app *models.ProjectApplication) error {
	return db.DB.Create(app).Error
}

func (r *DBApplicationRepo) GetProjectApplicationByID(id uint) (models.ProjectApplication, error) {
	var app models.ProjectApplication
	err := db.DB.
		Preload("Project").
		Preload("Freelancer").
		Preload("Freelancer.User").
		First(&app, id).Error
	return app, err
}

func (r *DBApplicationRepo) GetProjectApplicationByPair(freelancerID, projectID uint) (models.ProjectApplication, error) {
	var app models.ProjectApplication
	err := db.DB.Where("freelancer_id = ? AND project_id = ?", freelancerID, projectID).First(&app).Error
	return app, err
}

func (r *DBApplicationRepo) ListProjectApplicationsForUser(userID uint) ([]models.ProjectApplication, error) {
	var apps []models.ProjectApplication
	err := db.DB.Model(&models.ProjectApplication{}).
		Joins("JOIN projects ON projects.p_id = project_applications.project_id").
		Joins("JOIN freelancers ON freelancers.f_id = project_applications.freelancer_id").
		Where("projects.associated_user_id = ? OR freelancers.user_id = ?", userID, userID).
		Order("project_applications.a_id").
		Find(&apps).Error
	return apps, err
}

func (r *DBApplicationRepo) AcceptProjectApplication(appID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var app models.ProjectApplication
		if err := tx.First(&app, appID).Error; err != nil {
			return err
		}
		if app.Status != models.ApplicationPending {
			return ErrApplicationDecided
		}
		if err := tx.Model(&app).Update("status", models.ApplicationAccepted).Error; err != nil {
			return err
		}
		project := models.Project{PID: app.ProjectID}
		freelancer := models.Freelancer{FID: app.FreelancerID}
		return tx.Model(&project).Association("Freelancers").Append(&freelancer)
	})
}

func (r *DBApplicationRepo) RejectProjectApplication(appID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var app models.ProjectApplication
		if err := tx.First(&app, appID).Error; err != nil {
			return err
		}
		if app.Status != models.ApplicationPending {
			return ErrApplicationDecided
		}
		return tx.Model(&app).Update("status", models.ApplicationRejected).Error
	})
}
