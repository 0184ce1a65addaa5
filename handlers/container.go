package handlers

import (
	"github.com/talentbuzz/marketplace-go/services"
	"github.com/talentbuzz/marketplace-go/websocket"
)

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Freelancer   *FreelancerHandler
	Company      *CompanyHandler
	Project      *ProjectHandler
	Gig          *GigHandler
	Application  *ApplicationHandler
	Report       *ReportHandler
	Invoice      *InvoiceHandler
	Document     *DocumentHandler
	Notification *NotificationHandler
}

func New(svc *services.Services, hub *websocket.Hub) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(svc.Auth),
		User:         NewUserHandler(svc.User),
		Freelancer:   NewFreelancerHandler(svc.Freelancer),
		Company:      NewCompanyHandler(svc.Company),
		Project:      NewProjectHandler(svc.Project, svc.Gig),
		Gig:          NewGigHandler(svc.Gig),
		Application:  NewApplicationHandler(svc.Application),
		Report:       NewReportHandler(svc.Report),
		Invoice:      NewInvoiceHandler(svc.Invoice),
		Document:     NewDocumentHandler(svc.Document),
		Notification: NewNotificationHandler(hub),
	}
}
