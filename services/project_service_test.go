package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/talentbuzz/marketplace-go/dto"
	"github.com/talentbuzz/marketplace-go/models"
	"github.com/talentbuzz/marketplace-go/repositories"
	"github.com/talentbuzz/marketplace-go/repositories/mock_repositories"
	"gorm.io/gorm"
)

func setupProjectServiceMocks(t *testing.T) (*ProjectService, *mock_repositories.MockProjectRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProject := mock_repositories.NewMockProjectRepo(ctrl)
	svc := NewProjectService(&repositories.Repos{Project: mockProject})
	return svc, mockProject
}

func TestCreateProject_DefaultsToOpen(t *testing.T) {
	svc, mockProject := setupProjectServiceMocks(t)

	input := dto.CreateProjectInput{
		Title:        "Site revamp",
		HourlyRate:   20,
		Requirements: []string{"go", "react"},
	}

	mockProject.EXPECT().CreateProject(gomock.Any()).DoAndReturn(func(p *models.Project) error {
		assert.Equal(t, uint(10), p.AssociatedUserID)
		assert.Equal(t, string(models.ProjectStatusOpen), p.Status)
		assert.Equal(t, 20, p.HourlyRate)
		p.PID = 4
		return nil
	})

	project, err := svc.CreateProject(10, input)
	assert.NoError(t, err)
	assert.Equal(t, uint(4), project.PID)
}

func TestCreateProject_ExplicitStatusWins(t *testing.T) {
	svc, mockProject := setupProjectServiceMocks(t)

	mockProject.EXPECT().CreateProject(gomock.Any()).DoAndReturn(func(p *models.Project) error {
		assert.Equal(t, string(models.ProjectStatusActive), p.Status)
		return nil
	})

	_, err := svc.CreateProject(10, dto.CreateProjectInput{
		Title:      "Site revamp",
		HourlyRate: 20,
		Status:     ptrString(string(models.ProjectStatusActive)),
	})
	assert.NoError(t, err)
}

func TestUpdateProject_OwnerOrStaff(t *testing.T) {
	svc, mockProject := setupProjectServiceMocks(t)

	project := models.Project{PID: 4, Title: "Old", AssociatedUserID: 10}
	mockProject.EXPECT().GetProjectByID(uint(4)).Return(project, nil).Times(2)
	mockProject.EXPECT().SaveProject(gomock.Any()).Return(nil)

	_, err := svc.UpdateProject(4, 99, false, dto.UpdateProjectInput{Title: ptrString("New")})
	assert.Equal(t, ErrPermissionDenied, err)

	updated, err := svc.UpdateProject(4, 99, true, dto.UpdateProjectInput{Title: ptrString("New")})
	assert.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
}

func TestRemoveProject_NotFound(t *testing.T) {
	svc, mockProject := setupProjectServiceMocks(t)

	mockProject.EXPECT().GetProjectByID(uint(4)).Return(models.Project{}, gorm.ErrRecordNotFound)

	assert.Equal(t, ErrProjectNotFound, svc.RemoveProject(4, 10, false))
}

func TestAcceptedProjects_DelegatesToRepo(t *testing.T) {
	svc, mockProject := setupProjectServiceMocks(t)

	mockProject.EXPECT().ProjectsByApplicationStatus(uint(5), models.ApplicationAccepted).
		Return([]models.Project{{PID: 4}}, nil)

	projects, err := svc.AcceptedProjects(5)
	assert.NoError(t, err)
	assert.Len(t, projects, 1)
}
