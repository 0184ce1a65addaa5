package services

import (
	"errors"

	"github.com/talentbuzz/marketplace-go/dto"
	"github.com/talentbuzz/marketplace-go/models"
	"github.com/talentbuzz/marketplace-go/repositories"
)

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrCompanyExists   = errors.New("company already exists for this user")
)

type CompanyService struct {
	Repos *repositories.Repos
}

func NewCompanyService(repos *repositories.Repos) *CompanyService {
	return &CompanyService{Repos: repos}
}

func (s *CompanyService) CreateCompany(ownerID uint, input dto.CreateCompanyInput) (models.Company, error) {
	if _, err := s.Repos.Company.GetCompanyByOwnerID(ownerID); err == nil {
		return models.Company{}, ErrCompanyExists
	}

	company := models.Company{
		OwnerID:      ownerID,
		Name:         input.Name,
		Specialities: toJSON(input.Specialities),
		SocialMedia:  toJSON(input.SocialMedia),
	}
	if input.Description != nil {
		company.Description = *input.Description
	}
	if input.Website != nil {
		company.Website = *input.Website
	}
	if input.Size != nil {
		company.Size = *input.Size
	}
	if input.Industry != nil {
		company.Industry = *input.Industry
	}
	if input.Type != nil {
		company.Type = *input.Type
	}
	if input.Location != nil {
		company.Location = *input.Location
	}

	if err := s.Repos.Company.CreateCompany(&company); err != nil {
		return models.Company{}, err
	}
	return company, nil
}

func (s *CompanyService) GetCompany(id uint) (models.Company, error) {
	company, err := s.Repos.Company.GetCompanyByID(id)
	if err != nil {
		return models.Company{}, ErrCompanyNotFound
	}
	return company, nil
}

func (s *CompanyService) ListCompanies() ([]models.Company, error) {
	return s.Repos.Company.ListCompanies()
}

func (s *CompanyService) UpdateCompany(id uint, actorID uint, input dto.UpdateCompanyInput) (models.Company, error) {
	company, err := s.Repos.Company.GetCompanyByID(id)
	if err != nil {
		return models.Company{}, ErrCompanyNotFound
	}
	if company.OwnerID != actorID {
		return models.Company{}, ErrPermissionDenied
	}

	if input.Name != nil {
		company.Name = *input.Name
	}
	if input.Description != nil {
		company.Description = *input.Description
	}
	if input.Website != nil {
		company.Website = *input.Website
	}
	if input.Size != nil {
		company.Size = *input.Size
	}
	if input.Industry != nil {
		company.Industry = *input.Industry
	}
	if input.Type != nil {
		company.Type = *input.Type
	}
	if input.Location != nil {
		company.Location = *input.Location
	}
	if input.Specialities != nil {
		company.Specialities = toJSON(*input.Specialities)
	}
	if input.SocialMedia != nil {
		company.SocialMedia = toJSON(*input.SocialMedia)
	}

	if err := s.Repos.Company.SaveCompany(&company); err != nil {
		return models.Company{}, err
	}
	return company, nil
}

func (s *CompanyService) RemoveCompany(id uint, actorID uint) error {
	company, err := s.Repos.Company.GetCompanyByID(id)
	if err != nil {
		return ErrCompanyNotFound
	}
	if company.OwnerID != actorID {
		return ErrPermissionDenied
	}
	return s.Repos.Company.DeleteCompany(id)
}
