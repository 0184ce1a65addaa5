package models

import "time"

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusVoid    InvoiceStatus = "void"
)

type Invoice struct {
	IID          uint       `gorm:"primaryKey;column:i_id" json:"i_id"`
	CompanyID    uint       `gorm:"not null;index" json:"company_id"`
	Company      Company    `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"company"`
	FreelancerID uint       `gorm:"not null;index" json:"freelancer_id"`
	Freelancer   Freelancer `gorm:"foreignKey:FreelancerID;constraint:OnDelete:CASCADE" json:"freelancer"`
	ProjectID    uint       `gorm:"not null;index" json:"project_id"`
	Project      Project    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project"`
	GigID        uint       `gorm:"not null;index" json:"gig_id"`
	Gig          Gig        `gorm:"foreignKey:GigID;constraint:OnDelete:CASCADE" json:"gig"`

	// One invoice per approved report.
	GigReportID *uint `gorm:"uniqueIndex" json:"gig_report_id"`

	Amount         float64  `gorm:"not null" json:"amount"`
	PaidAmount     *float64 `json:"paid_amount"`
	ReceivedAmount *float64 `json:"received_amount"`
	TransactionFee *float64 `json:"transaction_fee"`
	Tax            *float64 `json:"tax"`

	Status        string    `gorm:"size:100;default:'pending'" json:"status"`
	DueDate       time.Time `gorm:"not null" json:"due_date"`
	Notes         string    `gorm:"type:text" json:"notes"`
	InvoiceNumber string    `gorm:"size:100" json:"invoice_number"`

	PaidCurrency           string `gorm:"size:100" json:"paid_currency"`
	ReceivedCurrency       string `gorm:"size:100" json:"received_currency"`
	TransactionFeeCurrency string `gorm:"size:100" json:"transaction_fee_currency"`

	CreatedAt time.Time  `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt time.Time  `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
	PaidAt    *time.Time `json:"paid_at"`
}
