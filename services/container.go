package services

import (
	"github.com/talentbuzz/marketplace-go/mail"
	"github.com/talentbuzz/marketplace-go/repositories"
	"github.com/talentbuzz/marketplace-go/websocket"
)

type Services struct {
	Auth        *AuthService
	User        *UserService
	Freelancer  *FreelancerService
	Company     *CompanyService
	Project     *ProjectService
	Gig         *GigService
	Application *ApplicationService
	Report      *ReportService
	Invoice     *InvoiceService
	Document    *DocumentService
}

func New(repos *repositories.Repos, mailer mail.Mailer, hub *websocket.Hub) *Services {
	return &Services{
		Auth:        NewAuthService(repos, mailer),
		User:        NewUserService(repos),
		Freelancer:  NewFreelancerService(repos),
		Company:     NewCompanyService(repos),
		Project:     NewProjectService(repos),
		Gig:         NewGigService(repos),
		Application: NewApplicationService(repos, hub),
		Report:      NewReportService(repos, hub),
		Invoice:     NewInvoiceService(repos),
		Document:    NewDocumentService(repos),
	}
}
