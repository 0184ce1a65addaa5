package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "github.com/talentbuzz/marketplace-go/docs"
	"github.com/talentbuzz/marketplace-go/handlers"
	"github.com/talentbuzz/marketplace-go/mail"
	"github.com/talentbuzz/marketplace-go/middleware"
	"github.com/talentbuzz/marketplace-go/repositories"
	"github.com/talentbuzz/marketplace-go/services"
	"github.com/talentbuzz/marketplace-go/websocket"
)

func RegisterRoutes(r *gin.Engine) {

	// init
	repos := repositories.New()
	hub := websocket.NewHub()
	svc := services.New(repos, mail.NewSMTPMailer(), hub)
	h := handlers.New(svc, hub)

	// public
	r.POST("/register", h.Auth.Register)
	r.POST("/activate/:token", h.Auth.Activate)
	r.POST("/login", h.Auth.Login)
	r.POST("/login/google", h.Auth.GoogleLogin)
	r.POST("/login/facebook", h.Auth.FacebookLogin)
	r.POST("/password-reset", h.Auth.RequestPasswordReset)
	r.POST("/set-password/:token", h.Auth.SetPassword)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws/notifications", h.Notification.Subscribe)

		users := auth.Group("/users")
		{
			users.GET("", middleware.StaffOnly(), h.User.GetUsers)
			users.GET("/me", h.User.GetMe)
			users.GET("/:id", h.User.GetUserByID)
			users.PUT("/:id", middleware.UserOrStaff(), h.User.UpdateUser)
			users.DELETE("/:id", middleware.UserOrStaff(), h.User.DeleteUser)
		}

		freelancers := auth.Group("/freelancers")
		{
			freelancers.GET("", h.Freelancer.GetFreelancers)
			freelancers.GET("/me", h.Freelancer.GetMyFreelancer)
			freelancers.GET("/:id", h.Freelancer.GetFreelancerByID)
			freelancers.POST("", h.Freelancer.CreateFreelancer)
			freelancers.PUT("/:id", h.Freelancer.UpdateFreelancer)
			freelancers.DELETE("/:id", h.Freelancer.DeleteFreelancer)
		}

		companies := auth.Group("/companies")
		{
			companies.GET("", h.Company.GetCompanies)
			companies.GET("/:id", h.Company.GetCompanyByID)
			companies.POST("", h.Company.CreateCompany)
			companies.PUT("/:id", h.Company.UpdateCompany)
			companies.DELETE("/:id", h.Company.DeleteCompany)
		}

		projects := auth.Group("/projects")
		{
			projects.GET("", h.Project.GetProjects)
			projects.GET("/own", h.Project.GetOwnProjects)
			projects.GET("/accepted", h.Project.GetAcceptedProjects)
			projects.GET("/pending", h.Project.GetPendingProjects)
			projects.GET("/:id", h.Project.GetProjectByID)
			projects.GET("/:id/gigs", h.Project.GetProjectGigs)
			projects.GET("/:id/reports", h.Report.GetProjectReports)
			projects.POST("", h.Project.CreateProject)
			projects.PUT("/:id", h.Project.UpdateProject)
			projects.DELETE("/:id", h.Project.DeleteProject)
		}

		gigs := auth.Group("/gigs")
		{
			gigs.GET("", h.Gig.GetGigs)
			gigs.GET("/available", h.Gig.GetAvailableGigs)
			gigs.GET("/accepted", h.Gig.GetAcceptedGigs)
			gigs.GET("/pending", h.Gig.GetPendingGigs)
			gigs.GET("/:id", h.Gig.GetGigByID)
			gigs.POST("", h.Gig.CreateGig)
			gigs.PUT("/:id", h.Gig.UpdateGig)
			gigs.DELETE("/:id", h.Gig.DeleteGig)
		}

		gigApplications := auth.Group("/gig-applications")
		{
			gigApplications.GET("", h.Application.GetGigApplications)
			gigApplications.GET("/:id", h.Application.GetGigApplicationByID)
			gigApplications.POST("", h.Application.ApplyToGig)
			gigApplications.POST("/:id/accept", h.Application.AcceptGigApplication)
			gigApplications.POST("/:id/reject", h.Application.RejectGigApplication)
		}

		projectApplications := auth.Group("/project-applications")
		{
			projectApplications.GET("", h.Application.GetProjectApplications)
			projectApplications.GET("/:id", h.Application.GetProjectApplicationByID)
			projectApplications.POST("", h.Application.ApplyToProject)
			projectApplications.POST("/:id/accept", h.Application.AcceptProjectApplication)
			projectApplications.POST("/:id/reject", h.Application.RejectProjectApplication)
		}

		gigReports := auth.Group("/gig-reports")
		{
			gigReports.GET("", h.Report.GetGigReports)
			gigReports.GET("/:id", h.Report.GetGigReportByID)
			gigReports.POST("", h.Report.CreateGigReport)
			gigReports.PUT("/:id", h.Report.UpdateGigReport)
			gigReports.DELETE("/:id", h.Report.DeleteGigReport)
			gigReports.POST("/:id/approve", h.Report.ApproveGigReport)
			gigReports.POST("/:id/reject", h.Report.RejectGigReport)
		}

		projectReports := auth.Group("/project-reports")
		{
			projectReports.GET("/:id", h.Report.GetProjectReportByID)
			projectReports.POST("", h.Report.CreateProjectReport)
			projectReports.DELETE("/:id", h.Report.DeleteProjectReport)
		}

		invoices := auth.Group("/invoices")
		{
			invoices.GET("", h.Invoice.GetInvoices)
			invoices.GET("/:id", h.Invoice.GetInvoiceByID)
			invoices.PUT("/:id", h.Invoice.UpdateInvoice)
		}

		documents := auth.Group("/documents")
		{
			documents.GET("", h.Document.GetDocuments)
			documents.GET("/:id", h.Document.GetDocumentByID)
			documents.GET("/:id/url", h.Document.GetDocumentURL)
			documents.POST("", h.Document.UploadDocument)
			documents.DELETE("/:id", h.Document.DeleteDocument)
		}
	}
}
