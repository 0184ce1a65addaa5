package services

import (
	"errors"
	"fmt"

	"github.com/talentbuzz/marketplace-go/models"
	"github.com/talentbuzz/marketplace-go/repositories"
	"github.com/talentbuzz/marketplace-go/websocket"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied")
	ErrNotFreelancer       = errors.New("user has no freelancer profile")
)

type ApplicationService struct {
	Repos *repositories.Repos
	Hub   *websocket.Hub
}

func NewApplicationService(repos *repositories.Repos, hub *websocket.Hub) *ApplicationService {
	return &ApplicationService{Repos: repos, Hub: hub}
}

// ApplyToGig files a pending application for the actor's freelancer
// profile. One application per freelancer and gig.
func (s *ApplicationService) ApplyToGig(userID uint, gigID uint) (models.GigApplication, error) {
	freelancer, err := s.Repos.Freelancer.GetFreelancerByUserID(userID)
	if err != nil {
		return models.GigApplication{}, ErrNotFreelancer
	}
	if _, err := s.Repos.Gig.GetGigByID(gigID); err != nil {
		return models.GigApplication{}, ErrGigNotFound
	}
	if _, err := s.Repos.Application.GetGigApplicationByPair(freelancer.FID, gigID); err == nil {
		return models.GigApplication{}, ErrAlreadyApplied
	}

	app := models.GigApplication{
		FreelancerID: freelancer.FID,
		GigID:        gigID,
		Status:       models.ApplicationPending,
	}
	if err := s.Repos.Application.CreateGigApplication(&app); err != nil {
		return models.GigApplication{}, err
	}
	return app, nil
}

func (s *ApplicationService) GetGigApplication(id uint, actorID uint, isStaff bool) (models.GigApplication, error) {
	app, err := s.Repos.Application.GetGigApplicationByID(id)
	if err != nil {
		return models.GigApplication{}, ErrApplicationNotFound
	}
	if app.Freelancer.UserID != actorID && app.Gig.Project.AssociatedUserID != actorID && !isStaff {
		return models.GigApplication{}, ErrPermissionDenied
	}
	return app, nil
}

func (s *ApplicationService) ListGigApplications(userID uint) ([]models.GigApplication, error) {
	return s.Repos.Application.ListGigApplicationsForUser(userID)
}

// AcceptGigApplication decides a pending application in favour of the
// freelancer. The capacity check runs inside the repository transaction
// so two concurrent accepts cannot overshoot the headcount.
func (s *ApplicationService) AcceptGigApplication(id uint, actorID uint, isStaff bool) (models.GigApplication, error) {
	app, err := s.Repos.Application.GetGigApplicationByID(id)
	if err != nil {
		return models.GigApplication{}, ErrApplicationNotFound
	}
	if app.Gig.Project.AssociatedUserID != actorID && !isStaff {
		return models.GigApplication{}, ErrPermissionDenied
	}

	if err := s.Repos.Application.AcceptGigApplication(app.AID); err != nil {
		return models.GigApplication{}, err
	}

	app, err = s.Repos.Application.GetGigApplicationByID(id)
	if err != nil {
		return models.GigApplication{}, err
	}

	s.Hub.Notify(app.Freelancer.UserID, websocket.Event{
		Type:    websocket.EventApplicationAccepted,
		Message: fmt.Sprintf("Your application for %q was accepted", app.Gig.Title),
		Payload: app,
	})
	return app, nil
}

func (s *ApplicationService) RejectGigApplication(id uint, actorID uint, isStaff bool) (models.GigApplication, error) {
	app, err := s.Repos.Application.GetGigApplicationByID(id)
	if err != nil {
		return models.GigApplication{}, ErrApplicationNotFound
	}
	if app.Gig.Project.AssociatedUserID != actorID && !isStaff {
		return models.GigApplication{}, ErrPermissionDenied
	}

	if err := s.Repos.Application.RejectGigApplication(app.AID); err != nil {
		return models.GigApplication{}, err
	}

	app, err = s.Repos.Application.GetGigApplicationByID(id)
	if err != nil {
		return models.GigApplication{}, err
	}

	s.Hub.Notify(app.Freelancer.UserID, websocket.Event{
		Type:    websocket.EventApplicationRejected,
		Message: fmt.Sprintf("Your application for %q was rejected", app.Gig.Title),
		Payload: app,
	})
	return app, nil
}

func (s *ApplicationService) ApplyToProject(userID uint, projectID uint) (models.ProjectApplication, error) {
	freelancer, err := s.Repos.Freelancer.GetFreelancerByUserID(userID)
	if err != nil {
		return models.ProjectApplication{}, ErrNotFreelancer
	}
	if _, err := s.Repos.Project.GetProjectByID(projectID); err != nil {
		return models.ProjectApplication{}, ErrProjectNotFound
	}
	if _, err := s.Repos.Application.GetProjectApplicationByPair(freelancer.FID, projectID); err == nil {
		return models.ProjectApplication{}, ErrAlreadyApplied
	}

	app := models.ProjectApplication{
		FreelancerID: freelancer.FID,
		ProjectID:    projectID,
		Status:       models.ApplicationPending,
	}
	if err := s.Repos.Application.CreateProjectApplication(&app); err != nil {
		return models.ProjectApplication{}, err
	}
	return app, nil
}

func (s *ApplicationService) GetProjectApplication(id uint, actorID uint, isStaff bool) (models.ProjectApplication, error) {
	app, err := s.Repos.Application.GetProjectApplicationByID(id)
	if err != nil {
		return models.ProjectApplication{}, ErrApplicationNotFound
	}
	if app.Freelancer.UserID != actorID && app.Project.AssociatedUserID != actorID && !isStaff {
		return models.ProjectApplication{}, ErrPermissionDenied
	}
	return app, nil
}

func (s *ApplicationService) ListProjectApplications(userID uint) ([]models.ProjectApplication, error) {
	return s.Repos.Application.ListProjectApplicationsForUser(userID)
}

func (s *ApplicationService) AcceptProjectApplication(id uint, actorID uint, isStaff bool) (models.ProjectApplication, error) {
	app, err := s.Repos.Application.GetProjectApplicationByID(id)
	if err != nil {
		return models.ProjectApplication{}, ErrApplicationNotFound
	}
	if app.Project.AssociatedUserID != actorID && !isStaff {
		return models.ProjectApplication{}, ErrPermissionDenied
	}

	if err := s.Repos.Application.AcceptProjectApplication(app.AID); err != nil {
		return models.ProjectApplication{}, err
	}

	app, err = s.Repos.Application.GetProjectApplicationByID(id)
	if err != nil {
		return models.ProjectApplication{}, err
	}

	s.Hub.Notify(app.Freelancer.UserID, websocket.Event{
		Type:    websocket.EventApplicationAccepted,
		Message: fmt.Sprintf("Your application for %q was accepted", app.Project.Title),
		Payload: app,
	})
	return app, nil
}

func (s *ApplicationService) RejectProjectApplication(id uint, actorID uint, isStaff bool) (models.ProjectApplication, error) {
	app, err := s.Repos.Application.GetProjectApplicationByID(id)
	if err != nil {
		return models.ProjectApplication{}, ErrApplicationNotFound
	}
	if app.Project.AssociatedUserID != actorID && !isStaff {
		return models.ProjectApplication{}, ErrPermissionDenied
	}

	if err := s.Repos.Application.RejectProjectApplication(app.AID); err != nil {
		return models.ProjectApplication{}, err
	}

	app, err = s.Repos.Application.GetProjectApplicationByID(id)
	if err != nil {
		return models.ProjectApplication{}, err
	}

	s.Hub.Notify(app.Freelancer.UserID, websocket.Event{
		Type:    websocket.EventApplicationRejected,
		Message: fmt.Sprintf("Your application for %q was rejected", app.Project.Title),
		Payload: app,
	})
	return app, nil
}
