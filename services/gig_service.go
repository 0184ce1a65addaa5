package services

import (
	"errors"

	"github.com/talentbuzz/marketplace-go/dto"
	"github.com/talentbuzz/marketplace-go/models"
	"github.com/talentbuzz/marketplace-go/repositories"
)

var ErrGigNotFound = errors.New("gig not found")

type GigService struct {
	Repos *repositories.Repos
}

func NewGigService(repos *repositories.Repos) *GigService {
	return &GigService{Repos: repos}
}

// CreateGig creates a gig under a project the actor owns. The owning
// company, when one exists, is stamped onto the gig so invoicing can
// bill it later.
func (s *GigService) CreateGig(actorID uint, isStaff bool, input dto.CreateGigInput) (models.Gig, error) {
	project, err := s.Repos.Project.GetProjectByID(input.ProjectID)
	if err != nil {
		return models.Gig{}, ErrProjectNotFound
	}
	if project.AssociatedUserID != actorID && !isStaff {
		return models.Gig{}, ErrPermissionDenied
	}

	gig := models.Gig{
		ProjectID:           project.PID,
		Title:               input.Title,
		Requirements:        toJSON(input.Requirements),
		Hours:               input.Hours,
		Start:               input.Start,
		End:                 input.End,
		NumberOfFreelancers: input.NumberOfFreelancers,
	}
	if input.Description != nil {
		gig.Description = *input.Description
	}
	if input.TextRequirements != nil {
		gig.TextRequirements = *input.TextRequirements
	}
	if input.Status != nil {
		gig.Status = *input.Status
	}

	if company, err := s.Repos.Company.GetCompanyByOwnerID(project.AssociatedUserID); err == nil {
		gig.CompanyID = &company.CID
	}

	if err := s.Repos.Gig.CreateGig(&gig); err != nil {
		return models.Gig{}, err
	}
	return gig, nil
}

func (s *GigService) GetGig(id uint) (models.Gig, error) {
	gig, err := s.Repos.Gig.GetGigByID(id)
	if err != nil {
		return models.Gig{}, ErrGigNotFound
	}
	return gig, nil
}

func (s *GigService) ListGigs() ([]models.Gig, error) {
	return s.Repos.Gig.ListGigs()
}

func (s *GigService) ListGigsByProject(projectID uint) ([]models.Gig, error) {
	return s.Repos.Gig.ListGigsByProject(projectID)
}

// AvailableGigs returns gigs with open headcount the user has not
// applied to.
func (s *GigService) AvailableGigs(userID uint) ([]models.Gig, error) {
	return s.Repos.Gig.AvailableGigs(userID)
}

func (s *GigService) AcceptedGigs(userID uint) ([]models.Gig, error) {
	return s.Repos.Gig.GigsByApplicationStatus(userID, models.ApplicationAccepted)
}

func (s *GigService) PendingGigs(userID uint) ([]models.Gig, error) {
	return s.Repos.Gig.GigsByApplicationStatus(userID, models.ApplicationPending)
}

func (s *GigService) UpdateGig(id uint, actorID uint, isStaff bool, input dto.UpdateGigInput) (models.Gig, error) {
	gig, err := s.Repos.Gig.GetGigByID(id)
	if err != nil {
		return models.Gig{}, ErrGigNotFound
	}
	if gig.Project.AssociatedUserID != actorID && !isStaff {
		return models.Gig{}, ErrPermissionDenied
	}

	if input.Title != nil {
		gig.Title = *input.Title
	}
	if input.Description != nil {
		gig.Description = *input.Description
	}
	if input.TextRequirements != nil {
		gig.TextRequirements = *input.TextRequirements
	}
	if input.Requirements != nil {
		gig.Requirements = toJSON(*input.Requirements)
	}
	if input.Hours != nil {
		gig.Hours = input.Hours
	}
	if input.Status != nil {
		gig.Status = *input.Status
	}
	if input.Start != nil {
		gig.Start = *input.Start
	}
	if input.End != nil {
		gig.End = *input.End
	}
	if input.NumberOfFreelancers != nil {
		gig.NumberOfFreelancers = input.NumberOfFreelancers
	}

	if err := s.Repos.Gig.SaveGig(&gig); err != nil {
		return models.Gig{}, err
	}
	return gig, nil
}

func (s *GigService) RemoveGig(id uint, actorID uint, isStaff bool) error {
	gig, err := s.Repos.Gig.GetGigByID(id)
	if err != nil {
		return ErrGigNotFound
	}
	if gig.Project.AssociatedUserID != actorID && !isStaff {
		return ErrPermissionDenied
	}
	return s.Repos.Gig.DeleteGig(id)
}
