package services

import (
	"errors"
	"time"

	"github.com/talentbuzz/marketplace-go/dto"
	"github.com/talentbuzz/marketplace-go/models"
	"github.com/talentbuzz/marketplace-go/repositories"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

type InvoiceService struct {
	Repos *repositories.Repos
}

func NewInvoiceService(repos *repositories.Repos) *InvoiceService {
	return &InvoiceService{Repos: repos}
}

func (s *InvoiceService) GetInvoice(id uint, actorID uint, isStaff bool) (models.Invoice, error) {
	invoice, err := s.Repos.Invoice.GetInvoiceByID(id)
	if err != nil {
		return models.Invoice{}, ErrInvoiceNotFound
	}
	if invoice.Company.OwnerID != actorID && invoice.Freelancer.UserID != actorID && !isStaff {
		return models.Invoice{}, ErrPermissionDenied
	}
	return invoice, nil
}

// ListInvoices returns the invoices the user is a party to, on either
// side of the billing.
func (s *InvoiceService) ListInvoices(userID uint) ([]models.Invoice, error) {
	var invoices []models.Invoice

	if company, err := s.Repos.Company.GetCompanyByOwnerID(userID); err == nil {
		list, err := s.Repos.Invoice.ListInvoicesByCompany(company.CID)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, list...)
	}

	if freelancer, err := s.Repos.Freelancer.GetFreelancerByUserID(userID); err == nil {
		list, err := s.Repos.Invoice.ListInvoicesByFreelancer(freelancer.FID)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, list...)
	}

	return invoices, nil
}

// UpdateInvoice records payment state. Only the billed company's owner
// (or staff) may touch an invoice.
func (s *InvoiceService) UpdateInvoice(id uint, actorID uint, isStaff bool, input dto.UpdateInvoiceInput) (models.Invoice, error) {
	invoice, err := s.Repos.Invoice.GetInvoiceByID(id)
	if err != nil {
		return models.Invoice{}, ErrInvoiceNotFound
	}
	if invoice.Company.OwnerID != actorID && !isStaff {
		return models.Invoice{}, ErrPermissionDenied
	}

	if input.Status != nil {
		invoice.Status = *input.Status
		if *input.Status == string(models.InvoiceStatusPaid) && invoice.PaidAt == nil {
			now := time.Now()
			invoice.PaidAt = &now
		}
	}
	if input.PaidAmount != nil {
		invoice.PaidAmount = input.PaidAmount
	}
	if input.PaidCurrency != nil {
		invoice.PaidCurrency = *input.PaidCurrency
	}
	if input.Notes != nil {
		invoice.Notes = *input.Notes
	}
	if input.PaidAt != nil {
		invoice.PaidAt = input.PaidAt
	}

	if err := s.Repos.Invoice.SaveInvoice(&invoice); err != nil {
		return models.Invoice{}, err
	}
	return invoice, nil
}
