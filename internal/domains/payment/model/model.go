package model

import (
	"time"
)

const (
	EntityName = "payment"

	TypeAdvance    = "Advance"
	TypeSettlement = "Settlement"

	MethodCash         = "Cash"
	MethodCard         = "Card"
	MethodUPI          = "UPI"
	MethodBankTransfer = "Bank Transfer"
)

// Payment is one amount received against a booking. Payments only
// accumulate; a booking's derived payment status is recomputed from
// their sum, never stored alongside them.
type Payment struct {
	ID            int64     `json:"id"`
	BookingID     int64     `json:"booking_id"`
	Amount        float64   `json:"amount"`
	PaymentType   string    `json:"payment_type"`
	PaymentMethod string    `json:"payment_method"`
	ReferenceID   string    `json:"reference_id,omitempty"`
	PaymentTime   time.Time `json:"payment_time"`
}

// ValidMethod reports whether m is an accepted payment method.
func ValidMethod(m string) bool {
	switch m {
	case MethodCash, MethodCard, MethodUPI, MethodBankTransfer:
		return true
	}

	return false
}
