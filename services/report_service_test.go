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
	"github.com/talentbuzz/marketplace-go/websocket"
	"gorm.io/gorm"
)

type reportServiceMocks struct {
	freelancer *mock_repositories.MockFreelancerRepo
	company    *mock_repositories.MockCompanyRepo
	project    *mock_repositories.MockProjectRepo
	gig        *mock_repositories.MockGigRepo
	report     *mock_repositories.MockReportRepo
	invoice    *mock_repositories.MockInvoiceRepo
}

func setupReportServiceMocks(t *testing.T) (*ReportService, reportServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := reportServiceMocks{
		freelancer: mock_repositories.NewMockFreelancerRepo(ctrl),
		company:    mock_repositories.NewMockCompanyRepo(ctrl),
		project:    mock_repositories.NewMockProjectRepo(ctrl),
		gig:        mock_repositories.NewMockGigRepo(ctrl),
		report:     mock_repositories.NewMockReportRepo(ctrl),
		invoice:    mock_repositories.NewMockInvoiceRepo(ctrl),
	}
	repos := &repositories.Repos{
		Freelancer: m.freelancer,
		Company:    m.company,
		Project:    m.project,
		Gig:        m.gig,
		Report:     m.report,
		Invoice:    m.invoice,
	}
	svc := NewReportService(repos, websocket.NewHub())
	return svc, m
}

// submittedReport builds an 8 hour report against a project billing 20
// per hour, owned by user 10 and reported by freelancer 2 (user 5).
func submittedReport() models.GigReport {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	companyID := uint(30)
	return models.GigReport{
		RID:          1,
		FreelancerID: 2,
		Freelancer:   models.Freelancer{FID: 2, UserID: 5},
		GigID:        9,
		Gig: models.Gig{
			GID:       9,
			ProjectID: 4,
			Title:     "Backend work",
			CompanyID: &companyID,
			Project:   models.Project{PID: 4, AssociatedUserID: 10, HourlyRate: 20},
		},
		StartTime: start,
		EndTime:   start.Add(8 * time.Hour),
		Status:    string(models.ReportStatusSubmitted),
	}
}

func TestSubmitGigReport_Success(t *testing.T) {
	svc, m := setupReportServiceMocks(t)

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	input := dto.CreateGigReportInput{
		GigID:     9,
		StartTime: start,
		EndTime:   start.Add(4 * time.Hour),
		Text:      ptrString("implemented the import pipeline"),
	}

	m.freelancer.EXPECT().GetFreelancerByUserID(uint(5)).Return(models.Freelancer{FID: 2, UserID: 5}, nil)
	m.gig.EXPECT().GetGigByID(uint(9)).Return(models.Gig{GID: 9}, nil)
	m.report.EXPECT().CreateGigReport(gomock.Any()).DoAndReturn(func(r *models.GigReport) error {
		assert.Equal(t, uint(2), r.FreelancerID)
		assert.Equal(t, string(models.ReportStatusSubmitted), r.Status)
		assert.Equal(t, "implemented the import pipeline", r.Text)
		r.RID = 1
		return nil
	})

	report, err := svc.SubmitGigReport(5, input)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), report.RID)
}

func TestSubmitGigReport_NoFreelancerProfile(t *testing.T) {
	svc, m := setupReportServiceMocks(t)

	m.freelancer.EXPECT().GetFreelancerByUserID(uint(5)).Return(models.Freelancer{}, gorm.ErrRecordNotFound)

	_, err := svc.SubmitGigReport(5, dto.CreateGigReportInput{GigID: 9})
	assert.Equal(t, ErrNotFreelancer, err)
}

func TestApproveGigReport_RaisesInvoice(t *testing.T) {
	svc, m := setupReportServiceMocks(t)

	report := submittedReport()
	m.report.EXPECT().GetGigReportByID(uint(1)).Return(report, nil)
	m.report.EXPECT().ApproveGigReport(gomock.Any(), gomock.Any()).DoAndReturn(
		func(r *models.GigReport, inv *models.Invoice) error {
			assert.Equal(t, string(models.ReportStatusApproved), r.Status)
			assert.Equal(t, uint(10), *r.ReviewedByID)

			// 8 hours at rate 20
			assert.Equal(t, 160.0, inv.Amount)
			assert.Equal(t, uint(30), inv.CompanyID)
			assert.Equal(t, uint(2), inv.FreelancerID)
			assert.Equal(t, uint(4), inv.ProjectID)
			assert.Equal(t, uint(9), inv.GigID)
			assert.Equal(t, uint(1), *inv.GigReportID)
			assert.Equal(t, string(models.InvoiceStatusPending), inv.Status)
			assert.NotEmpty(t, inv.InvoiceNumber)
			assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), inv.DueDate, time.Minute)
			inv.IID = 77
			return nil
		})

	_, invoice, err := svc.ApproveGigReport(1, 10, false, dto.ReviewInput{})
	assert.NoError(t, err)
	assert.Equal(t, uint(77), invoice.IID)
}

func TestApproveGigReport_Idempotent(t *testing.T) {
	svc, m := setupReportServiceMocks(t)

	report := submittedReport()
	report.Status = string(models.ReportStatusApproved)
	existing := models.Invoice{IID: 77, Amount: 160}

	m.report.EXPECT().GetGigReportByID(uint(1)).Return(report, nil)
	m.invoice.EXPECT().GetInvoiceByReportID(uint(1)).Return(existing, nil)

	_, invoice, err := svc.ApproveGigReport(1, 10, false, dto.ReviewInput{})
	assert.NoError(t, err)
	assert.Equal(t, uint(77), invoice.IID)
}

func TestApproveGigReport_AlreadyRejected(t *testing.T) {
	svc, m := setupReportServiceMocks(t)

	report := submittedReport()
	report.Status = string(models.ReportStatusRejected)
	m.report.EXPECT().GetGigReportByID(uint(1)).Return(report, nil)

	_, _, err := svc.ApproveGigReport(1, 10, false, dto.ReviewInput{})
	assert.Equal(t, ErrReportAlreadyDecided, err)
}

func TestApproveGigReport_NotProjectOwner(t *testing.T) {
	svc, m := setupReportServiceMocks(t)

	m.report.EXPECT().GetGigReportByID(uint(1)).Return(submittedReport(), nil)

	_, _, err := svc.ApproveGigReport(1, 99, false, dto.ReviewInput{})
	assert.Equal(t, ErrPermissionDenied, err)
}

func TestApproveGigReport_FallsBackToOwnerCompany(t *testing.T) {
	svc, m := setupReportServiceMocks(t)

	report := submittedReport()
	report.Gig.CompanyID = nil
	m.report.EXPECT().GetGigReportByID(uint(1)).Return(report, nil)
	m.company.EXPECT().GetCompanyByOwnerID(uint(10)).Return(models.Company{CID: 55, OwnerID: 10}, nil)
	m.report.EXPECT().ApproveGigReport(gomock.Any(), gomock.Any()).DoAndReturn(
		func(r *models.GigReport, inv *models.Invoice) error {
			assert.Equal(t, uint(55), inv.CompanyID)
			return nil
		})

	_, _, err := svc.ApproveGigReport(1, 10, false, dto.ReviewInput{})
	assert.NoError(t, err)
}

func TestApproveGigReport_NoCompanyToBill(t *testing.T) {
	svc, m := setupReportServiceMocks(t)

	report := submittedReport()
	report.Gig.CompanyID = nil
	m.report.EXPECT().GetGigReportByID(uint(1)).Return(report, nil)
	m.company.EXPECT().GetCompanyByOwnerID(uint(10)).Return(models.Company{}, gorm.ErrRecordNotFound)

	_, _, err := svc.ApproveGigReport(1, 10, false, dto.ReviewInput{})
	assert.Equal(t, ErrMissingCompany, err)
}

func TestApproveGigReport_ConcurrentApprovalFallsBack(t *testing.T) {
	svc, m := setupReportServiceMocks(t)

	report := submittedReport()
	existing := models.Invoice{IID: 77}

	m.report.EXPECT().GetGigReportByID(uint(1)).Return(report, nil)
	m.report.EXPECT().ApproveGigReport(gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey)
	m.invoice.EXPECT().GetInvoiceByReportID(uint(1)).Return(existing, nil)

	_, invoice, err := svc.ApproveGigReport(1, 10, false, dto.ReviewInput{})
	assert.NoError(t, err)
	assert.Equal(t, uint(77), invoice.IID)
}

func TestRejectGigReport_Success(t *testing.T) {
	svc, m := setupReportServiceMocks(t)

	m.report.EXPECT().GetGigReportByID(uint(1)).Return(submittedReport(), nil)
	m.report.EXPECT().SaveGigReport(gomock.Any()).DoAndReturn(func(r *models.GigReport) error {
		assert.Equal(t, string(models.ReportStatusRejected), r.Status)
		assert.NotNil(t, r.Review)
		return nil
	})

	report, err := svc.RejectGigReport(1, 10, false, dto.ReviewInput{Comment: ptrString("hours look inflated")})
	assert.NoError(t, err)
	assert.Equal(t, string(models.ReportStatusRejected), report.Status)
}

func TestRejectGigReport_AlreadyDecided(t *testing.T) {
	svc, m := setupReportServiceMocks(t)

	report := submittedReport()
	report.Status = string(models.ReportStatusApproved)
	m.report.EXPECT().GetGigReportByID(uint(1)).Return(report, nil)

	_, err := svc.RejectGigReport(1, 10, false, dto.ReviewInput{})
	assert.Equal(t, ErrReportAlreadyDecided, err)
}

func TestUpdateGigReport_OnlyWhileSubmitted(t *testing.T) {
	svc, m := setupReportServiceMocks(t)

	report := submittedReport()
	report.Status = string(models.ReportStatusApproved)
	m.report.EXPECT().GetGigReportByID(uint(1)).Return(report, nil)

	_, err := svc.UpdateGigReport(1, 5, dto.UpdateGigReportInput{Text: ptrString("amended")})
	assert.Equal(t, ErrReportAlreadyDecided, err)
}

func TestUpdateGigReport_FreelancerOnly(t *testing.T) {
	svc, m := setupReportServiceMocks(t)

	m.report.EXPECT().GetGigReportByID(uint(1)).Return(submittedReport(), nil)

	_, err := svc.UpdateGigReport(1, 10, dto.UpdateGigReportInput{Text: ptrString("amended")})
	assert.Equal(t, ErrPermissionDenied, err)
}

func TestSubmitProjectReport_Success(t *testing.T) {
	svc, m := setupReportServiceMocks(t)

	m.project.EXPECT().GetProjectByID(uint(4)).Return(models.Project{PID: 4}, nil)
	m.report.EXPECT().CreateProjectReport(gomock.Any()).DoAndReturn(func(r *models.ProjectReport) error {
		assert.Equal(t, uint(10), r.UserID)
		assert.Equal(t, uint(4), r.ProjectID)
		r.RID = 2
		return nil
	})

	report, err := svc.SubmitProjectReport(10, dto.CreateProjectReportInput{ProjectID: 4, Text: "milestone one done"})
	assert.NoError(t, err)
	assert.Equal(t, uint(2), report.RID)
}
