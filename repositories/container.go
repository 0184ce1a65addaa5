package repositories

type Repos struct {
	User        UserRepo
	Token       TokenRepo
	Freelancer  FreelancerRepo
	Company     CompanyRepo
	Project     ProjectRepo
	Gig         GigRepo
	Application ApplicationRepo
	Report      ReportRepo
	Invoice     InvoiceRepo
	Document    DocumentRepo
}

func New() *Repos {
	return &Repos{
		User:        &DBUserRepo{},
		Token:       &DBTokenRepo{},
		Freelancer:  &DBFreelancerRepo{},
		Company:     &DBCompanyRepo{},
		Project:     &DBProjectRepo{},
		Gig:         &DBGigRepo{},
		Application: &DBApplicationRepo{},
		Report:      &DBReportRepo{},
		Invoice:     &DBInvoiceRepo{},
		Document:    &DBDocumentRepo{},
	}
}
