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

func setupFreelancerServiceMocks(t *testing.T) (*FreelancerService, *mock_repositories.MockFreelancerRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockFreelancer := mock_repositories.NewMockFreelancerRepo(ctrl)
	svc := NewFreelancerService(&repositories.Repos{Freelancer: mockFreelancer})
	return svc, mockFreelancer
}

func TestCreateFreelancer_Success(t *testing.T) {
	svc, mockFreelancer := setupFreelancerServiceMocks(t)

	input := dto.CreateFreelancerInput{
		HourlyRate: 45.5,
		Skills:     []string{"go", "postgres"},
		Languages:  []string{"english", "norwegian"},
	}

	mockFreelancer.EXPECT().GetFreelancerByUserID(uint(5)).Return(models.Freelancer{}, gorm.ErrRecordNotFound)
	mockFreelancer.EXPECT().CreateFreelancer(gomock.Any()).DoAndReturn(func(f *models.Freelancer) error {
		assert.Equal(t, uint(5), f.UserID)
		assert.Equal(t, 45.5, f.HourlyRate)
		assert.JSONEq(t, `["go","postgres"]`, string(f.Skills))
		f.FID = 2
		return nil
	})

	f, err := svc.CreateFreelancer(5, input)
	assert.NoError(t, err)
	assert.Equal(t, uint(2), f.FID)
}

func TestCreateFreelancer_OnePerUser(t *testing.T) {
	svc, mockFreelancer := setupFreelancerServiceMocks(t)

	mockFreelancer.EXPECT().GetFreelancerByUserID(uint(5)).Return(models.Freelancer{FID: 2}, nil)

	_, err := svc.CreateFreelancer(5, dto.CreateFreelancerInput{HourlyRate: 45.5})
	assert.Equal(t, ErrFreelancerExists, err)
}

func TestUpdateFreelancer_PartialFields(t *testing.T) {
	svc, mockFreelancer := setupFreelancerServiceMocks(t)

	existing := models.Freelancer{FID: 2, UserID: 5, HourlyRate: 45.5, Skills: toJSON([]string{"go"})}
	mockFreelancer.EXPECT().GetFreelancerByID(uint(2)).Return(existing, nil)
	mockFreelancer.EXPECT().SaveFreelancer(gomock.Any()).DoAndReturn(func(f *models.Freelancer) error {
		assert.Equal(t, 60.0, f.HourlyRate)
		assert.JSONEq(t, `["go"]`, string(f.Skills))
		return nil
	})

	f, err := svc.UpdateFreelancer(2, dto.UpdateFreelancerInput{HourlyRate: ptrFloat(60)})
	assert.NoError(t, err)
	assert.Equal(t, 60.0, f.HourlyRate)
}

func TestGetFreelancerByUser_NotFound(t *testing.T) {
	svc, mockFreelancer := setupFreelancerServiceMocks(t)

	mockFreelancer.EXPECT().GetFreelancerByUserID(uint(5)).Return(models.Freelancer{}, gorm.ErrRecordNotFound)

	_, err := svc.GetFreelancerByUser(5)
	assert.Equal(t, ErrFreelancerNotFound, err)
}
