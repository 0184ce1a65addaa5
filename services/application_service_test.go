package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/talentbuzz/marketplace-go/models"
	"github.com/talentbuzz/marketplace-go/repositories"
	"github.com/talentbuzz/marketplace-go/repositories/mock_repositories"
	"github.com/talentbuzz/marketplace-go/websocket"
	"gorm.io/gorm"
)

type applicationServiceMocks struct {
	freelancer  *mock_repositories.MockFreelancerRepo
	gig         *mock_repositories.MockGigRepo
	project     *mock_repositories.MockProjectRepo
	application *mock_repositories.MockApplicationRepo
}

func setupApplicationServiceMocks(t *testing.T) (*ApplicationService, applicationServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := applicationServiceMocks{
		freelancer:  mock_repositories.NewMockFreelancerRepo(ctrl),
		gig:         mock_repositories.NewMockGigRepo(ctrl),
		project:     mock_repositories.NewMockProjectRepo(ctrl),
		application: mock_repositories.NewMockApplicationRepo(ctrl),
	}
	repos := &repositories.Repos{
		Freelancer:  m.freelancer,
		Gig:         m.gig,
		Project:     m.project,
		Application: m.application,
	}
	svc := NewApplicationService(repos, websocket.NewHub())
	return svc, m
}

func TestApplyToGig_Success(t *testing.T) {
	svc, m := setupApplicationServiceMocks(t)

	m.freelancer.EXPECT().GetFreelancerByUserID(uint(5)).Return(models.Freelancer{FID: 2, UserID: 5}, nil)
	m.gig.EXPECT().GetGigByID(uint(9)).Return(models.Gig{GID: 9}, nil)
	m.application.EXPECT().GetGigApplicationByPair(uint(2), uint(9)).Return(models.GigApplication{}, gorm.ErrRecordNotFound)
	m.application.EXPECT().CreateGigApplication(gomock.Any()).DoAndReturn(func(app *models.GigApplication) error {
		assert.Equal(t, uint(2), app.FreelancerID)
		assert.Equal(t, uint(9), app.GigID)
		assert.Equal(t, models.ApplicationPending, app.Status)
		app.AID = 1
		return nil
	})

	app, err := svc.ApplyToGig(5, 9)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), app.AID)
}

func TestApplyToGig_NoFreelancerProfile(t *testing.T) {
	svc, m := setupApplicationServiceMocks(t)

	m.freelancer.EXPECT().GetFreelancerByUserID(uint(5)).Return(models.Freelancer{}, gorm.ErrRecordNotFound)

	_, err := svc.ApplyToGig(5, 9)
	assert.Equal(t, ErrNotFreelancer, err)
}

func TestApplyToGig_Duplicate(t *testing.T) {
	svc, m := setupApplicationServiceMocks(t)

	m.freelancer.EXPECT().GetFreelancerByUserID(uint(5)).Return(models.Freelancer{FID: 2, UserID: 5}, nil)
	m.gig.EXPECT().GetGigByID(uint(9)).Return(models.Gig{GID: 9}, nil)
	m.application.EXPECT().GetGigApplicationByPair(uint(2), uint(9)).Return(models.GigApplication{AID: 7}, nil)

	_, err := svc.ApplyToGig(5, 9)
	assert.Equal(t, ErrAlreadyApplied, err)
}

func TestApplyToGig_GigNotFound(t *testing.T) {
	svc, m := setupApplicationServiceMocks(t)

	m.freelancer.EXPECT().GetFreelancerByUserID(uint(5)).Return(models.Freelancer{FID: 2, UserID: 5}, nil)
	m.gig.EXPECT().GetGigByID(uint(9)).Return(models.Gig{}, gorm.ErrRecordNotFound)

	_, err := svc.ApplyToGig(5, 9)
	assert.Equal(t, ErrGigNotFound, err)
}

func TestAcceptGigApplication_Success(t *testing.T) {
	svc, m := setupApplicationServiceMocks(t)

	pending := models.GigApplication{
		AID:        3,
		Freelancer: models.Freelancer{FID: 2, UserID: 5},
		Gig: models.Gig{
			GID:     9,
			Title:   "Backend work",
			Project: models.Project{PID: 1, AssociatedUserID: 10},
		},
		Status: models.ApplicationPending,
	}
	accepted := pending
	accepted.Status = models.ApplicationAccepted

	m.application.EXPECT().GetGigApplicationByID(uint(3)).Return(pending, nil)
	m.application.EXPECT().AcceptGigApplication(uint(3)).Return(nil)
	m.application.EXPECT().GetGigApplicationByID(uint(3)).Return(accepted, nil)

	app, err := svc.AcceptGigApplication(3, 10, false)
	assert.NoError(t, err)
	assert.Equal(t, models.ApplicationAccepted, app.Status)
}

func TestAcceptGigApplication_NotProjectOwner(t *testing.T) {
	svc, m := setupApplicationServiceMocks(t)

	app := models.GigApplication{
		AID: 3,
		Gig: models.Gig{Project: models.Project{AssociatedUserID: 10}},
	}
	m.application.EXPECT().GetGigApplicationByID(uint(3)).Return(app, nil)

	_, err := svc.AcceptGigApplication(3, 99, false)
	assert.Equal(t, ErrPermissionDenied, err)
}

func TestAcceptGigApplication_StaffOverride(t *testing.T) {
	svc, m := setupApplicationServiceMocks(t)

	pending := models.GigApplication{
		AID:        3,
		Freelancer: models.Freelancer{FID: 2, UserID: 5},
		Gig:        models.Gig{Project: models.Project{AssociatedUserID: 10}},
	}
	m.application.EXPECT().GetGigApplicationByID(uint(3)).Return(pending, nil)
	m.application.EXPECT().AcceptGigApplication(uint(3)).Return(nil)
	m.application.EXPECT().GetGigApplicationByID(uint(3)).Return(pending, nil)

	_, err := svc.AcceptGigApplication(3, 99, true)
	assert.NoError(t, err)
}

func TestAcceptGigApplication_GigFull(t *testing.T) {
	svc, m := setupApplicationServiceMocks(t)

	pending := models.GigApplication{
		AID: 3,
		Gig: models.Gig{Project: models.Project{AssociatedUserID: 10}},
	}
	m.application.EXPECT().GetGigApplicationByID(uint(3)).Return(pending, nil)
	m.application.EXPECT().AcceptGigApplication(uint(3)).Return(repositories.ErrGigFull)

	_, err := svc.AcceptGigApplication(3, 10, false)
	assert.Equal(t, repositories.ErrGigFull, err)
}

func TestRejectGigApplication_Success(t *testing.T) {
	svc, m := setupApplicationServiceMocks(t)

	pending := models.GigApplication{
		AID:        3,
		Freelancer: models.Freelancer{FID: 2, UserID: 5},
		Gig:        models.Gig{Project: models.Project{AssociatedUserID: 10}},
	}
	rejected := pending
	rejected.Status = models.ApplicationRejected

	m.application.EXPECT().GetGigApplicationByID(uint(3)).Return(pending, nil)
	m.application.EXPECT().RejectGigApplication(uint(3)).Return(nil)
	m.application.EXPECT().GetGigApplicationByID(uint(3)).Return(rejected, nil)

	app, err := svc.RejectGigApplication(3, 10, false)
	assert.NoError(t, err)
	assert.Equal(t, models.ApplicationRejected, app.Status)
}

func TestGetGigApplication_ParticipantOnly(t *testing.T) {
	svc, m := setupApplicationServiceMocks(t)

	app := models.GigApplication{
		AID:        3,
		Freelancer: models.Freelancer{UserID: 5},
		Gig:        models.Gig{Project: models.Project{AssociatedUserID: 10}},
	}
	m.application.EXPECT().GetGigApplicationByID(uint(3)).Return(app, nil).Times(3)

	_, err := svc.GetGigApplication(3, 5, false)
	assert.NoError(t, err)
	_, err = svc.GetGigApplication(3, 10, false)
	assert.NoError(t, err)
	_, err = svc.GetGigApplication(3, 42, false)
	assert.Equal(t, ErrPermissionDenied, err)
}

func TestApplyToProject_Duplicate(t *testing.T) {
	svc, m := setupApplicationServiceMocks(t)

	m.freelancer.EXPECT().GetFreelancerByUserID(uint(5)).Return(models.Freelancer{FID: 2, UserID: 5}, nil)
	m.project.EXPECT().GetProjectByID(uint(4)).Return(models.Project{PID: 4}, nil)
	m.application.EXPECT().GetProjectApplicationByPair(uint(2), uint(4)).Return(models.ProjectApplication{AID: 8}, nil)

	_, err := svc.ApplyToProject(5, 4)
	assert.Equal(t, ErrAlreadyApplied, err)
}

func TestAcceptProjectApplication_Success(t *testing.T) {
	svc, m := setupApplicationServiceMocks(t)

	pending := models.ProjectApplication{
		AID:        6,
		Freelancer: models.Freelancer{FID: 2, UserID: 5},
		Project:    models.Project{PID: 4, Title: "Site revamp", AssociatedUserID: 10},
	}
	accepted := pending
	accepted.Status = models.ApplicationAccepted

	m.application.EXPECT().GetProjectApplicationByID(uint(6)).Return(pending, nil)
	m.application.EXPECT().AcceptProjectApplication(uint(6)).Return(nil)
	m.application.EXPECT().GetProjectApplicationByID(uint(6)).Return(accepted, nil)

	app, err := svc.AcceptProjectApplication(6, 10, false)
	assert.NoError(t, err)
	assert.Equal(t, models.ApplicationAccepted, app.Status)
}
