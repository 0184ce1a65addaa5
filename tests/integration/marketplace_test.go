package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/talentbuzz/marketplace-go/db"
	"github.com/talentbuzz/marketplace-go/models"
	"gorm.io/gorm"
)

// TestMarketplaceWorkflow walks the whole hiring loop: a client sets up
// a company, project and gig; freelancers apply; one gets accepted up
// to the gig headcount; the accepted freelancer reports hours; approval
// raises an invoice which the client then pays.
func TestMarketplaceWorkflow(t *testing.T) {
	registerUserForTests("client1", "123456", "client1@test.com")
	registerUserForTests("worker1", "123456", "worker1@test.com")
	registerUserForTests("worker2", "123456", "worker2@test.com")

	clientToken := loginUser(t, "client1", "123456")
	worker1Token := loginUser(t, "worker1", "123456")
	worker2Token := loginUser(t, "worker2", "123456")

	// Client side: company and project
	companyBody := map[string]any{
		"company_name":     "Acme Consulting",
		"company_industry": "software",
	}
	resp := doRequest(t, "POST", "/companies", clientToken, companyBody, http.StatusCreated)
	var company models.Company
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &company))

	// One company per owner
	doRequest(t, "POST", "/companies", clientToken, companyBody, http.StatusConflict)

	projectBody := map[string]any{
		"title":       "Site revamp",
		"hourly_rate": 20,
		"start_date":  "2026-09-01T00:00:00Z",
		"end_date":    "2026-12-01T00:00:00Z",
	}
	resp = doRequest(t, "POST", "/projects", clientToken, projectBody, http.StatusCreated)
	var project models.Project
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &project))
	require.Equal(t, "open", project.Status)

	gigBody := map[string]any{
		"project_id":            project.PID,
		"title":                 "Backend work",
		"start":                 "2026-09-01T00:00:00Z",
		"end":                   "2026-10-01T00:00:00Z",
		"number_of_freelancers": 1,
	}
	resp = doRequest(t, "POST", "/gigs", clientToken, gigBody, http.StatusCreated)
	var gig models.Gig
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &gig))
	require.NotNil(t, gig.CompanyID)
	require.Equal(t, company.CID, *gig.CompanyID)

	// A stranger cannot create gigs under someone else's project
	doRequest(t, "POST", "/gigs", worker1Token, gigBody, http.StatusForbidden)

	// A second gig without a headcount cap
	caplessBody := map[string]any{
		"project_id": project.PID,
		"title":      "Design polish",
		"start":      "2026-09-01T00:00:00Z",
		"end":        "2026-10-01T00:00:00Z",
	}
	resp = doRequest(t, "POST", "/gigs", clientToken, caplessBody, http.StatusCreated)
	var capless models.Gig
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &capless))

	// The gig list can be scoped to a project
	resp = doRequest(t, "GET", fmt.Sprintf("/gigs?project_id=%d", project.PID), clientToken, nil, http.StatusOK)
	var projectGigs []models.Gig
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &projectGigs))
	require.Len(t, projectGigs, 2)
	doRequest(t, "GET", "/gigs?project_id=abc", clientToken, nil, http.StatusBadRequest)

	// Freelancer side: applying needs a profile
	applyBody := map[string]any{"gig_id": gig.GID}
	doRequest(t, "POST", "/gig-applications", worker1Token, applyBody, http.StatusBadRequest)

	doRequest(t, "POST", "/freelancers", worker1Token, map[string]any{"hourly_rate": 45.5}, http.StatusCreated)
	doRequest(t, "POST", "/freelancers", worker2Token, map[string]any{"hourly_rate": 50.0}, http.StatusCreated)

	// Both gigs are open for a freelancer who has not applied yet
	resp = doRequest(t, "GET", "/gigs/available", worker1Token, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "Backend work")
	require.Contains(t, resp.Body.String(), "Design polish")

	resp = doRequest(t, "POST", "/gig-applications", worker1Token, applyBody, http.StatusCreated)
	var app1 models.GigApplication
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &app1))

	// One application per freelancer and gig
	doRequest(t, "POST", "/gig-applications", worker1Token, applyBody, http.StatusConflict)

	// Applying moves the gig from the applicant's available list to the
	// pending one; accepted stays empty until the owner decides
	resp = doRequest(t, "GET", "/gigs/available", worker1Token, nil, http.StatusOK)
	require.NotContains(t, resp.Body.String(), "Backend work")
	require.Contains(t, resp.Body.String(), "Design polish")
	resp = doRequest(t, "GET", "/gigs/pending", worker1Token, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "Backend work")
	resp = doRequest(t, "GET", "/gigs/accepted", worker1Token, nil, http.StatusOK)
	require.NotContains(t, resp.Body.String(), "Backend work")

	resp = doRequest(t, "POST", "/gig-applications", worker2Token, applyBody, http.StatusCreated)
	var app2 models.GigApplication
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &app2))

	// Only the project owner decides applications
	doRequest(t, "POST", fmt.Sprintf("/gig-applications/%d/accept", app1.AID), worker1Token, nil, http.StatusForbidden)

	doRequest(t, "POST", fmt.Sprintf("/gig-applications/%d/accept", app1.AID), clientToken, nil, http.StatusOK)

	// Headcount of 1 is now filled
	doRequest(t, "POST", fmt.Sprintf("/gig-applications/%d/accept", app2.AID), clientToken, nil, http.StatusConflict)
	doRequest(t, "POST", fmt.Sprintf("/gig-applications/%d/reject", app2.AID), clientToken, nil, http.StatusOK)

	// The accepted gig shows up for the freelancer and leaves pending
	resp = doRequest(t, "GET", "/gigs/accepted", worker1Token, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "Backend work")
	resp = doRequest(t, "GET", "/gigs/pending", worker1Token, nil, http.StatusOK)
	require.NotContains(t, resp.Body.String(), "Backend work")

	// For a freelancer who never applied, the filled gig is gone from the
	// available list while the capless one stays
	registerUserForTests("worker4", "123456", "worker4@test.com")
	observerToken := loginUser(t, "worker4", "123456")
	resp = doRequest(t, "GET", "/gigs/available", observerToken, nil, http.StatusOK)
	require.NotContains(t, resp.Body.String(), "Backend work")
	require.Contains(t, resp.Body.String(), "Design polish")

	// An accepted freelancer does not close a gig without a cap
	resp = doRequest(t, "POST", "/gig-applications", worker2Token,
		map[string]any{"gig_id": capless.GID}, http.StatusCreated)
	var app3 models.GigApplication
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &app3))
	doRequest(t, "POST", fmt.Sprintf("/gig-applications/%d/accept", app3.AID), clientToken, nil, http.StatusOK)
	resp = doRequest(t, "GET", "/gigs/available", observerToken, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "Design polish")

	// Report 8 hours of work
	reportBody := map[string]any{
		"gig_id":     gig.GID,
		"text":       "implemented the import pipeline",
		"start_time": "2026-09-02T09:00:00Z",
		"end_time":   "2026-09-02T17:00:00Z",
	}
	resp = doRequest(t, "POST", "/gig-reports", worker1Token, reportBody, http.StatusCreated)
	var report models.GigReport
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &report))

	// The freelancer cannot approve their own report
	doRequest(t, "POST", fmt.Sprintf("/gig-reports/%d/approve", report.RID), worker1Token, nil, http.StatusForbidden)

	// Approval raises an invoice: 8h at rate 20 -> 160
	resp = doRequest(t, "POST", fmt.Sprintf("/gig-reports/%d/approve", report.RID), clientToken,
		map[string]any{"comment": "good work", "score": 5}, http.StatusOK)
	var decision struct {
		Report  models.GigReport `json:"report"`
		Invoice models.Invoice   `json:"invoice"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &decision))
	require.Equal(t, "approved", decision.Report.Status)
	require.Equal(t, 160.0, decision.Invoice.Amount)
	require.Equal(t, company.CID, decision.Invoice.CompanyID)
	require.Equal(t, "pending", decision.Invoice.Status)

	// Re-approving returns the same invoice instead of raising a second
	resp = doRequest(t, "POST", fmt.Sprintf("/gig-reports/%d/approve", report.RID), clientToken, nil, http.StatusOK)
	var again struct {
		Invoice models.Invoice `json:"invoice"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &again))
	require.Equal(t, decision.Invoice.IID, again.Invoice.IID)
	require.Equal(t, decision.Invoice.InvoiceNumber, again.Invoice.InvoiceNumber)

	// The unique report reference is enforced by the database and comes
	// back as gorm's duplicated-key sentinel, which the approval path
	// relies on when two approvals race
	reportID := report.RID
	dup := models.Invoice{
		CompanyID:    company.CID,
		FreelancerID: decision.Invoice.FreelancerID,
		ProjectID:    project.PID,
		GigID:        gig.GID,
		GigReportID:  &reportID,
		Amount:       1,
		DueDate:      time.Now(),
	}
	require.ErrorIs(t, db.DB.Create(&dup).Error, gorm.ErrDuplicatedKey)

	// A decided report can no longer be amended
	doRequest(t, "PUT", fmt.Sprintf("/gig-reports/%d", report.RID), worker1Token,
		map[string]any{"text": "amended"}, http.StatusConflict)

	// Both parties see the invoice
	resp = doRequest(t, "GET", "/invoices", worker1Token, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), decision.Invoice.InvoiceNumber)
	resp = doRequest(t, "GET", "/invoices", clientToken, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), decision.Invoice.InvoiceNumber)

	// Outsiders cannot read it
	doRequest(t, "GET", fmt.Sprintf("/invoices/%d", decision.Invoice.IID), worker2Token, nil, http.StatusForbidden)

	// The freelancer cannot mark it paid; the client can
	doRequest(t, "PUT", fmt.Sprintf("/invoices/%d", decision.Invoice.IID), worker1Token,
		map[string]any{"status": "paid"}, http.StatusForbidden)
	resp = doRequest(t, "PUT", fmt.Sprintf("/invoices/%d", decision.Invoice.IID), clientToken,
		map[string]any{"status": "paid", "paid_amount": 160.0, "paid_currency": "EUR"}, http.StatusOK)
	var paid models.Invoice
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &paid))
	require.Equal(t, "paid", paid.Status)
	require.NotNil(t, paid.PaidAt)
}

func TestProjectApplicationsAndReports(t *testing.T) {
	registerUserForTests("client2", "123456", "client2@test.com")
	registerUserForTests("worker3", "123456", "worker3@test.com")

	clientToken := loginUser(t, "client2", "123456")
	workerToken := loginUser(t, "worker3", "123456")

	projectBody := map[string]any{
		"title":       "Data pipeline",
		"hourly_rate": 30,
		"start_date":  "2026-09-01T00:00:00Z",
		"end_date":    "2027-03-01T00:00:00Z",
	}
	resp := doRequest(t, "POST", "/projects", clientToken, projectBody, http.StatusCreated)
	var project models.Project
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &project))

	doRequest(t, "POST", "/freelancers", workerToken, map[string]any{"hourly_rate": 40.0}, http.StatusCreated)

	resp = doRequest(t, "POST", "/project-applications", workerToken,
		map[string]any{"project_id": project.PID}, http.StatusCreated)
	var app models.ProjectApplication
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &app))

	// While undecided, the project sits in pending and not in accepted
	resp = doRequest(t, "GET", "/projects/pending", workerToken, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "Data pipeline")
	resp = doRequest(t, "GET", "/projects/accepted", workerToken, nil, http.StatusOK)
	require.NotContains(t, resp.Body.String(), "Data pipeline")

	doRequest(t, "POST", fmt.Sprintf("/project-applications/%d/accept", app.AID), clientToken, nil, http.StatusOK)

	// Accepting moves it from the pending list to the accepted one
	resp = doRequest(t, "GET", "/projects/accepted", workerToken, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "Data pipeline")
	resp = doRequest(t, "GET", "/projects/pending", workerToken, nil, http.StatusOK)
	require.NotContains(t, resp.Body.String(), "Data pipeline")

	// Progress report against the project
	resp = doRequest(t, "POST", "/project-reports", workerToken,
		map[string]any{"project_id": project.PID, "text": "milestone one done"}, http.StatusCreated)
	var report models.ProjectReport
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &report))

	resp = doRequest(t, "GET", fmt.Sprintf("/projects/%d/reports", project.PID), clientToken, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "milestone one done")

	// Only the author or staff deletes a report
	doRequest(t, "DELETE", fmt.Sprintf("/project-reports/%d", report.RID), clientToken, nil, http.StatusForbidden)
	doRequest(t, "DELETE", fmt.Sprintf("/project-reports/%d", report.RID), workerToken, nil, http.StatusOK)
}

func TestProjectOwnership(t *testing.T) {
	registerUserForTests("client3", "123456", "client3@test.com")
	registerUserForTests("intruder", "123456", "intruder@test.com")

	ownerToken := loginUser(t, "client3", "123456")
	intruderToken := loginUser(t, "intruder", "123456")

	projectBody := map[string]any{
		"title":       "Mobile app",
		"hourly_rate": 25,
		"start_date":  "2026-09-01T00:00:00Z",
		"end_date":    "2026-11-01T00:00:00Z",
	}
	resp := doRequest(t, "POST", "/projects", ownerToken, projectBody, http.StatusCreated)
	var project models.Project
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &project))

	update := map[string]any{"title": "Hijacked"}
	doRequest(t, "PUT", fmt.Sprintf("/projects/%d", project.PID), intruderToken, update, http.StatusForbidden)
	doRequest(t, "DELETE", fmt.Sprintf("/projects/%d", project.PID), intruderToken, nil, http.StatusForbidden)

	doRequest(t, "PUT", fmt.Sprintf("/projects/%d", project.PID), ownerToken,
		map[string]any{"status": "active"}, http.StatusOK)

	resp = doRequest(t, "GET", "/projects/own", ownerToken, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "Mobile app")

	doRequest(t, "DELETE", fmt.Sprintf("/projects/%d", project.PID), ownerToken, nil, http.StatusOK)
	doRequest(t, "GET", fmt.Sprintf("/projects/%d", project.PID), ownerToken, nil, http.StatusNotFound)
}
