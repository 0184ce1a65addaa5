package services

import (
	"encoding/json"
	"errors"

	"github.com/talentbuzz/marketplace-go/dto"
	"github.com/talentbuzz/marketplace-go/models"
	"github.com/talentbuzz/marketplace-go/repositories"
	"gorm.io/datatypes"
)

var (
	ErrFreelancerNotFound = errors.New("freelancer not found")
	ErrFreelancerExists   = errors.New("freelancer profile already exists")
)

type FreelancerService struct {
	Repos *repositories.Repos
}

func NewFreelancerService(repos *repositories.Repos) *FreelancerService {
	return &FreelancerService{Repos: repos}
}

func toJSON(v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	buf, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(buf)
}

func (s *FreelancerService) CreateFreelancer(userID uint, input dto.CreateFreelancerInput) (models.Freelancer, error) {
	if _, err := s.Repos.Freelancer.GetFreelancerByUserID(userID); err == nil {
		return models.Freelancer{}, ErrFreelancerExists
	}

	f := models.Freelancer{
		UserID:        userID,
		HourlyRate:    input.HourlyRate,
		Availability:  toJSON(input.Availability),
		Skills:        toJSON(input.Skills),
		Languages:     toJSON(input.Languages),
		Experience:    toJSON(input.Experience),
		Education:     toJSON(input.Education),
		Certification: toJSON(input.Certification),
		Portfolio:     toJSON(input.Portfolio),
	}
	if err := s.Repos.Freelancer.CreateFreelancer(&f); err != nil {
		return models.Freelancer{}, err
	}
	return f, nil
}

func (s *FreelancerService) GetFreelancer(id uint) (models.Freelancer, error) {
	f, err := s.Repos.Freelancer.GetFreelancerByID(id)
	if err != nil {
		return models.Freelancer{}, ErrFreelancerNotFound
	}
	return f, nil
}

func (s *FreelancerService) GetFreelancerByUser(userID uint) (models.Freelancer, error) {
	f, err := s.Repos.Freelancer.GetFreelancerByUserID(userID)
	if err != nil {
		return models.Freelancer{}, ErrFreelancerNotFound
	}
	return f, nil
}

func (s *FreelancerService) ListFreelancers() ([]models.Freelancer, error) {
	return s.Repos.Freelancer.ListFreelancers()
}

func (s *FreelancerService) UpdateFreelancer(id uint, input dto.UpdateFreelancerInput) (models.Freelancer, error) {
	f, err := s.Repos.Freelancer.GetFreelancerByID(id)
	if err != nil {
		return models.Freelancer{}, ErrFreelancerNotFound
	}

	if input.HourlyRate != nil {
		f.HourlyRate = *input.HourlyRate
	}
	if input.Availability != nil {
		f.Availability = toJSON(*input.Availability)
	}
	if input.Skills != nil {
		f.Skills = toJSON(*input.Skills)
	}
	if input.Languages != nil {
		f.Languages = toJSON(*input.Languages)
	}
	if input.Experience != nil {
		f.Experience = toJSON(*input.Experience)
	}
	if input.Education != nil {
		f.Education = toJSON(*input.Education)
	}
	if input.Certification != nil {
		f.Certification = toJSON(*input.Certification)
	}
	if input.Portfolio != nil {
		f.Portfolio = toJSON(*input.Portfolio)
	}

	if err := s.Repos.Freelancer.SaveFreelancer(&f); err != nil {
		return models.Freelancer{}, err
	}
	return f, nil
}

func (s *FreelancerService) RemoveFreelancer(id uint) error {
	return s.Repos.Freelancer.DeleteFreelancer(id)
}
