package repositories

import (
	"github.com/talentbuzz/marketplace-go/db"
	"github.com/talentbuzz/marketplace-go/models"
)

type ProjectRepo interface {
	CreateProject(p *models.Project) error
	GetProjectByID(id uint) (models.Project, error)
	SaveProject(p *models.Project) error
	DeleteProject(id uint) error
	ListProjects() ([]models.Project, error)
	ListProjectsByOwner(userID uint) ([]models.Project, error)
	// ProjectsByApplicationStatus returns projects the user owns or has
	// an application with the given status on.
	ProjectsByApplicationStatus(userID uint, status models.ApplicationStatus) ([]models.Project, error)
	AddProjectFreelancer(projectID, freelancerID uint) error
}

type DBProjectRepo struct{}

func (r *DBProjectRepo) CreateProject(p *models.Project) error {
	return db.DB.Create(p).Error
}

func (r *DBProjectRepo) GetProjectByID(id uint) (models.Project, error) {
	var project models.Project
	err := db.DB.Preload("AssociatedUser").Preload("Documents").First(&project, id).Error
	return project, err
}

func (r *DBProjectRepo) SaveProject(p *models.Project) error {
	return db.DB.Save(p).Error
}

func (r *DBProjectRepo) DeleteProject(id uint) error {
	return db.DB.Delete(&models.Project{}, id).Error
}

func (r *DBProjectRepo) ListProjects() ([]models.Project, error) {
	var list []models.Project
	err := db.DB.Order("p_id").Find(&list).Error
	return list, err
}

func (r *DBProjectRepo) ListProjectsByOwner(userID uint) ([]models.Project, error) {
	var list []models.Project
	err := db.DB.Where("associated_user_id = ?", userID).Order("p_id").Find(&list).Error
	return list, err
}

func (r *DBProjectRepo) ProjectsByApplicationStatus(userID uint, status models.ApplicationStatus) ([]models.Project, error) {
	var list []models.Project
	err := db.DB.Model(&models.Project{}).
		Joins("LEFT JOIN project_applications ON project_applications.project_id = projects.p_id").
		Joins("LEFT JOIN freelancers ON freelancers.f_id = project_applications.freelancer_id").
		Where("projects.associated_user_id = ? OR (freelancers.user_id = ? AND project_applications.status = ?)",
			userID, userID, status).
		Distinct().
		Order("projects.p_id").
		Find(&list).Error
	return list, err
}

func (r *DBProjectRepo) AddProjectFreelancer(projectID, freelancerID uint) error {
	project := models.Project{PID: projectID}
	freelancer := models.Freelancer{FID: freelancerID}
	return db.DB.Model(&project).Association("Freelancers").Append(&freelancer)
}
