package dto

import "time"

type UpdateInvoiceInput struct {
	Status         *string    `form:"status" json:"status" binding:"omitempty,oneof=pending paid void"`
	PaidAmount     *float64   `form:"paid_amount" json:"paid_amount"`
	PaidCurrency   *string    `form:"paid_currency" json:"paid_currency"`
	Notes          *string    `form:"notes" json:"notes"`
	PaidAt         *time.Time `form:"paid_at" json:"paid_at"`
}
