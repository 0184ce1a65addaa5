package services

import (
	"errors"

	"github.com/talentbuzz/marketplace-go/dto"
	"github.com/talentbuzz/marketplace-go/models"
	"github.com/talentbuzz/marketplace-go/repositories"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectService struct {
	Repos *repositories.Repos
}

func NewProjectService(repos *repositories.Repos) *ProjectService {
	return &ProjectService{Repos: repos}
}

func (s *ProjectService) CreateProject(ownerID uint, input dto.CreateProjectInput) (models.Project, error) {
	project := models.Project{
		Title:            input.Title,
		Requirements:     toJSON(input.Requirements),
		HourlyRate:       input.HourlyRate,
		Status:           string(models.ProjectStatusOpen),
		AssociatedUserID: ownerID,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.TextRequirements != nil {
		project.TextRequirements = *input.TextRequirements
	}
	if input.Category != nil {
		project.Category = *input.Category
	}
	if input.Status != nil {
		project.Status = *input.Status
	}

	if err := s.Repos.Project.CreateProject(&project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (s *ProjectService) GetProject(id uint) (models.Project, error) {
	project, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return models.Project{}, ErrProjectNotFound
	}
	return project, nil
}

func (s *ProjectService) ListProjects() ([]models.Project, error) {
	return s.Repos.Project.ListProjects()
}

func (s *ProjectService) ListOwnProjects(userID uint) ([]models.Project, error) {
	return s.Repos.Project.ListProjectsByOwner(userID)
}

// AcceptedProjects returns projects the user owns or was accepted onto.
func (s *ProjectService) AcceptedProjects(userID uint) ([]models.Project, error) {
	return s.Repos.Project.ProjectsByApplicationStatus(userID, models.ApplicationAccepted)
}

// PendingProjects returns projects the user owns or has an undecided
// application on.
func (s *ProjectService) PendingProjects(userID uint) ([]models.Project, error) {
	return s.Repos.Project.ProjectsByApplicationStatus(userID, models.ApplicationPending)
}

func (s *ProjectService) UpdateProject(id uint, actorID uint, isStaff bool, input dto.UpdateProjectInput) (models.Project, error) {
	project, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return models.Project{}, ErrProjectNotFound
	}
	if project.AssociatedUserID != actorID && !isStaff {
		return models.Project{}, ErrPermissionDenied
	}

	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.TextRequirements != nil {
		project.TextRequirements = *input.TextRequirements
	}
	if input.Requirements != nil {
		project.Requirements = toJSON(*input.Requirements)
	}
	if input.HourlyRate != nil {
		project.HourlyRate = *input.HourlyRate
	}
	if input.Category != nil {
		project.Category = *input.Category
	}
	if input.Status != nil {
		project.Status = *input.Status
	}
	if input.StartDate != nil {
		project.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		project.EndDate = *input.EndDate
	}

	if err := s.Repos.Project.SaveProject(&project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (s *ProjectService) RemoveProject(id uint, actorID uint, isStaff bool) error {
	project, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return ErrProjectNotFound
	}
	if project.AssociatedUserID != actorID && !isStaff {
		return ErrPermissionDenied
	}
	return s.Repos.Project.DeleteProject(id)
}
