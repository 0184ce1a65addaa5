package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/talentbuzz/marketplace-go/dto"
	"github.com/talentbuzz/marketplace-go/models"
	"github.com/talentbuzz/marketplace-go/repositories"
	"github.com/talentbuzz/marketplace-go/websocket"
	"gorm.io/gorm"
)

var (
	ErrReportNotFound       = errors.New("report not found")
	ErrReportAlreadyDecided = errors.New("report already decided")
	// ErrMissingCompany means no company could be resolved to bill the
	// invoice to.
	ErrMissingCompany = errors.New("no company to bill")
)

const invoiceDueDays = 30

type ReportService struct {
	Repos *repositories.Repos
	Hub   *websocket.Hub
}

func NewReportService(repos *repositories.Repos, hub *websocket.Hub) *ReportService {
	return &ReportService{Repos: repos, Hub: hub}
}

// SubmitGigReport files a work report against a gig by the actor's
// freelancer profile.
func (s *ReportService) SubmitGigReport(userID uint, input dto.CreateGigReportInput) (models.GigReport, error) {
	freelancer, err := s.Repos.Freelancer.GetFreelancerByUserID(userID)
	if err != nil {
		return models.GigReport{}, ErrNotFreelancer
	}
	if _, err := s.Repos.Gig.GetGigByID(input.GigID); err != nil {
		return models.GigReport{}, ErrGigNotFound
	}

	report := models.GigReport{
		FreelancerID: freelancer.FID,
		GigID:        input.GigID,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		Status:       string(models.ReportStatusSubmitted),
	}
	if input.Text != nil {
		report.Text = *input.Text
	}

	if err := s.Repos.Report.CreateGigReport(&report); err != nil {
		return models.GigReport{}, err
	}
	return report, nil
}

func (s *ReportService) GetGigReport(id uint, actorID uint, isStaff bool) (models.GigReport, error) {
	report, err := s.Repos.Report.GetGigReportByID(id)
	if err != nil {
		return models.GigReport{}, ErrReportNotFound
	}
	if report.Freelancer.UserID != actorID && report.Gig.Project.AssociatedUserID != actorID && !isStaff {
		return models.GigReport{}, ErrPermissionDenied
	}
	return report, nil
}

func (s *ReportService) ListGigReports(userID uint) ([]models.GigReport, error) {
	return s.Repos.Report.ListGigReportsForUser(userID)
}

// UpdateGigReport lets the reporting freelancer amend a report that has
// not been decided yet.
func (s *ReportService) UpdateGigReport(id uint, actorID uint, input dto.UpdateGigReportInput) (models.GigReport, error) {
	report, err := s.Repos.Report.GetGigReportByID(id)
	if err != nil {
		return models.GigReport{}, ErrReportNotFound
	}
	if report.Freelancer.UserID != actorID {
		return models.GigReport{}, ErrPermissionDenied
	}
	if report.Status != string(models.ReportStatusSubmitted) {
		return models.GigReport{}, ErrReportAlreadyDecided
	}

	if input.Text != nil {
		report.Text = *input.Text
	}
	if input.StartTime != nil {
		report.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		report.EndTime = *input.EndTime
	}

	if err := s.Repos.Report.SaveGigReport(&report); err != nil {
		return models.GigReport{}, err
	}
	return report, nil
}

func (s *ReportService) RemoveGigReport(id uint, actorID uint, isStaff bool) error {
	report, err := s.Repos.Report.GetGigReportByID(id)
	if err != nil {
		return ErrReportNotFound
	}
	if report.Freelancer.UserID != actorID && !isStaff {
		return ErrPermissionDenied
	}
	if report.Status != string(models.ReportStatusSubmitted) {
		return ErrReportAlreadyDecided
	}
	return s.Repos.Report.DeleteGigReport(id)
}

// ApproveGigReport marks the report approved and raises an invoice for
// the reported hours at the project's hourly rate, in one transaction.
// Re-approving an approved report returns the existing invoice instead
// of raising a second one.
func (s *ReportService) ApproveGigReport(id uint, actorID uint, isStaff bool, input dto.ReviewInput) (models.GigReport, models.Invoice, error) {
	report, err := s.Repos.Report.GetGigReportByID(id)
	if err != nil {
		return models.GigReport{}, models.Invoice{}, ErrReportNotFound
	}
	if report.Gig.Project.AssociatedUserID != actorID && !isStaff {
		return models.GigReport{}, models.Invoice{}, ErrPermissionDenied
	}

	switch report.Status {
	case string(models.ReportStatusApproved):
		invoice, err := s.Repos.Invoice.GetInvoiceByReportID(report.RID)
		if err != nil {
			return models.GigReport{}, models.Invoice{}, err
		}
		return report, invoice, nil
	case string(models.ReportStatusRejected):
		return models.GigReport{}, models.Invoice{}, ErrReportAlreadyDecided
	}

	companyID, err := s.billableCompany(&report.Gig)
	if err != nil {
		return models.GigReport{}, models.Invoice{}, err
	}

	report.Status = string(models.ReportStatusApproved)
	report.ReviewedByID = &actorID
	if input.Comment != nil || input.Score != nil {
		report.Review = toJSON(map[string]any{
			"comment": input.Comment,
			"score":   input.Score,
		})
	}

	reportID := report.RID
	invoice := models.Invoice{
		CompanyID:     companyID,
		FreelancerID:  report.FreelancerID,
		ProjectID:     report.Gig.ProjectID,
		GigID:         report.GigID,
		GigReportID:   &reportID,
		Amount:        report.HoursSpent() * float64(report.Gig.Project.HourlyRate),
		Status:        string(models.InvoiceStatusPending),
		DueDate:       time.Now().AddDate(0, 0, invoiceDueDays),
		InvoiceNumber: uuid.NewString(),
	}

	if err := s.Repos.Report.ApproveGigReport(&report, &invoice); err != nil {
		// A concurrent approval already raised the invoice; fall back
		// to it.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, lookupErr := s.Repos.Invoice.GetInvoiceByReportID(report.RID)
			if lookupErr == nil {
				return report, existing, nil
			}
		}
		return models.GigReport{}, models.Invoice{}, err
	}

	s.Hub.Notify(report.Freelancer.UserID, websocket.Event{
		Type:    websocket.EventReportApproved,
		Message: fmt.Sprintf("Your report for %q was approved", report.Gig.Title),
		Payload: report,
	})
	s.Hub.Notify(report.Freelancer.UserID, websocket.Event{
		Type:    websocket.EventInvoiceCreated,
		Message: fmt.Sprintf("Invoice %s was raised for %.2f", invoice.InvoiceNumber, invoice.Amount),
		Payload: invoice,
	})
	return report, invoice, nil
}

// billableCompany resolves the company an invoice bills to: the gig's
// own company, or the project owner's.
func (s *ReportService) billableCompany(gig *models.Gig) (uint, error) {
	if gig.CompanyID != nil {
		return *gig.CompanyID, nil
	}
	company, err := s.Repos.Company.GetCompanyByOwnerID(gig.Project.AssociatedUserID)
	if err != nil {
		return 0, ErrMissingCompany
	}
	return company.CID, nil
}

func (s *ReportService) RejectGigReport(id uint, actorID uint, isStaff bool, input dto.ReviewInput) (models.GigReport, error) {
	report, err := s.Repos.Report.GetGigReportByID(id)
	if err != nil {
		return models.GigReport{}, ErrReportNotFound
	}
	if report.Gig.Project.AssociatedUserID != actorID && !isStaff {
		return models.GigReport{}, ErrPermissionDenied
	}
	if report.Status != string(models.ReportStatusSubmitted) {
		return models.GigReport{}, ErrReportAlreadyDecided
	}

	report.Status = string(models.ReportStatusRejected)
	report.ReviewedByID = &actorID
	if input.Comment != nil || input.Score != nil {
		report.Review = toJSON(map[string]any{
			"comment": input.Comment,
			"score":   input.Score,
		})
	}

	if err := s.Repos.Report.SaveGigReport(&report); err != nil {
		return models.GigReport{}, err
	}

	s.Hub.Notify(report.Freelancer.UserID, websocket.Event{
		Type:    websocket.EventReportRejected,
		Message: fmt.Sprintf("Your report for %q was rejected", report.Gig.Title),
		Payload: report,
	})
	return report, nil
}

func (s *ReportService) SubmitProjectReport(userID uint, input dto.CreateProjectReportInput) (models.ProjectReport, error) {
	if _, err := s.Repos.Project.GetProjectByID(input.ProjectID); err != nil {
		return models.ProjectReport{}, ErrProjectNotFound
	}

	report := models.ProjectReport{
		UserID:     userID,
		ProjectID:  input.ProjectID,
		DocumentID: input.DocumentID,
		Text:       input.Text,
	}
	if err := s.Repos.Report.CreateProjectReport(&report); err != nil {
		return models.ProjectReport{}, err
	}
	return report, nil
}

func (s *ReportService) GetProjectReport(id uint) (models.ProjectReport, error) {
	report, err := s.Repos.Report.GetProjectReportByID(id)
	if err != nil {
		return models.ProjectReport{}, ErrReportNotFound
	}
	return report, nil
}

func (s *ReportService) ListProjectReports(projectID uint) ([]models.ProjectReport, error) {
	return s.Repos.Report.ListProjectReportsByProject(projectID)
}

func (s *ReportService) RemoveProjectReport(id uint, actorID uint, isStaff bool) error {
	report, err := s.Repos.Report.GetProjectReportByID(id)
	if err != nil {
		return ErrReportNotFound
	}
	if report.UserID != actorID && !isStaff {
		return ErrPermissionDenied
	}
	return s.Repos.Report.DeleteProjectReport(id)
}
