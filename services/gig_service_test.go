package services

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/talentbuzz/marketplace-go/dto"
	"github.com/talentbuzz/marketplace-go/models"
	"github.com/talentbuzz/marketplace-go/repositories"
	"github.com/talentbuzz/marketplace-go/repositories/mock_repositories"
	"gorm.io/gorm"
)

type gigServiceMocks struct {
	gig     *mock_repositories.MockGigRepo
	project *mock_repositories.MockProjectRepo
	company *mock_repositories.MockCompanyRepo
}

func setupGigServiceMocks(t *testing.T) (*GigService, gigServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := gigServiceMocks{
		gig:     mock_repositories.NewMockGigRepo(ctrl),
		project: mock_repositories.NewMockProjectRepo(ctrl),
		company: mock_repositories.NewMockCompanyRepo(ctrl),
	}
	repos := &repositories.Repos{
		Gig:     m.gig,
		Project: m.project,
		Company: m.company,
	}
	return NewGigService(repos), m
}

func TestCreateGig_StampsOwnerCompany(t *testing.T) {
	svc, m := setupGigServiceMocks(t)

	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	input := dto.CreateGigInput{
		ProjectID:           4,
		Title:               "Frontend sprint",
		Requirements:        []string{"react", "typescript"},
		Start:               start,
		End:                 start.AddDate(0, 1, 0),
		NumberOfFreelancers: ptrInt(2),
	}

	m.project.EXPECT().GetProjectByID(uint(4)).Return(models.Project{PID: 4, AssociatedUserID: 10}, nil)
	m.company.EXPECT().GetCompanyByOwnerID(uint(10)).Return(models.Company{CID: 30, OwnerID: 10}, nil)
	m.gig.EXPECT().CreateGig(gomock.Any()).DoAndReturn(func(gig *models.Gig) error {
		assert.Equal(t, uint(4), gig.ProjectID)
		assert.Equal(t, uint(30), *gig.CompanyID)
		assert.NotNil(t, gig.Requirements)
		assert.Equal(t, 2, *gig.NumberOfFreelancers)
		gig.GID = 9
		return nil
	})

	gig, err := svc.CreateGig(10, false, input)
	assert.NoError(t, err)
	assert.Equal(t, uint(9), gig.GID)
}

func TestCreateGig_NoCompanyLeavesGigUnstamped(t *testing.T) {
	svc, m := setupGigServiceMocks(t)

	m.project.EXPECT().GetProjectByID(uint(4)).Return(models.Project{PID: 4, AssociatedUserID: 10}, nil)
	m.company.EXPECT().GetCompanyByOwnerID(uint(10)).Return(models.Company{}, gorm.ErrRecordNotFound)
	m.gig.EXPECT().CreateGig(gomock.Any()).DoAndReturn(func(gig *models.Gig) error {
		assert.Nil(t, gig.CompanyID)
		return nil
	})

	_, err := svc.CreateGig(10, false, dto.CreateGigInput{ProjectID: 4, Title: "Gig"})
	assert.NoError(t, err)
}

func TestCreateGig_NotProjectOwner(t *testing.T) {
	svc, m := setupGigServiceMocks(t)

	m.project.EXPECT().GetProjectByID(uint(4)).Return(models.Project{PID: 4, AssociatedUserID: 10}, nil)

	_, err := svc.CreateGig(99, false, dto.CreateGigInput{ProjectID: 4, Title: "Gig"})
	assert.Equal(t, ErrPermissionDenied, err)
}

func TestCreateGig_ProjectNotFound(t *testing.T) {
	svc, m := setupGigServiceMocks(t)

	m.project.EXPECT().GetProjectByID(uint(4)).Return(models.Project{}, gorm.ErrRecordNotFound)

	_, err := svc.CreateGig(10, false, dto.CreateGigInput{ProjectID: 4, Title: "Gig"})
	assert.Equal(t, ErrProjectNotFound, err)
}

func TestUpdateGig_OwnerOnly(t *testing.T) {
	svc, m := setupGigServiceMocks(t)

	gig := models.Gig{GID: 9, Project: models.Project{AssociatedUserID: 10}}
	m.gig.EXPECT().GetGigByID(uint(9)).Return(gig, nil)

	_, err := svc.UpdateGig(9, 99, false, dto.UpdateGigInput{Title: ptrString("renamed")})
	assert.Equal(t, ErrPermissionDenied, err)
}

func TestUpdateGig_StaffOverride(t *testing.T) {
	svc, m := setupGigServiceMocks(t)

	gig := models.Gig{GID: 9, Title: "Old", Project: models.Project{AssociatedUserID: 10}}
	m.gig.EXPECT().GetGigByID(uint(9)).Return(gig, nil)
	m.gig.EXPECT().SaveGig(gomock.Any()).Return(nil)

	updated, err := svc.UpdateGig(9, 99, true, dto.UpdateGigInput{Title: ptrString("New")})
	assert.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
}

func TestRemoveGig_OwnerOnly(t *testing.T) {
	svc, m := setupGigServiceMocks(t)

	gig := models.Gig{GID: 9, Project: models.Project{AssociatedUserID: 10}}
	m.gig.EXPECT().GetGigByID(uint(9)).Return(gig, nil).Times(2)
	m.gig.EXPECT().DeleteGig(uint(9)).Return(nil)

	assert.Equal(t, ErrPermissionDenied, svc.RemoveGig(9, 99, false))
	assert.NoError(t, svc.RemoveGig(9, 10, false))
}
