package model

import (
	"time"
)

const (
	EntityName = "booking"

	// Derived payment statuses. Pending/Partial/Paid are always
	// recomputed from the payment sum; CheckedOut is the stored terminal
	// state that overrides them once checkout occurs.
	StatusPending    = "Pending"
	StatusPartial    = "Partial"
	StatusPaid       = "Paid"
	StatusCheckedOut = "Checked Out"

	SourceFrontDesk    = "Front Desk"
	SourceQuickBooking = "Quick Booking"
)

// Guest is one occupant on a booking. The first guest is always the
// primary — the registered customer accountable for the booking.
type Guest struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Gender       string `json:"gender"`
	Phone        string `json:"phone,omitempty"`
	Relationship string `json:"relationship"`
	IsPrimary    bool   `json:"is_primary"`
}

// Booking ties a customer to a room for a date range. While it is not
// checked out, the referenced room must be Occupied; a room has at most
// one such active booking because bookings are only ever created against
// vacant rooms.
type Booking struct {
	ID         int64 `json:"id"`
	CustomerID int64 `json:"customer_id"`
	RoomID     int64 `json:"room_id"`

	CheckinTime  time.Time `json:"checkin_time"`
	CheckoutTime time.Time `json:"checkout_time"`

	GuestCount    int     `json:"guest_count"`
	TotalAmount   float64 `json:"total_amount"`
	AdvanceAmount float64 `json:"advance_amount"`

	BookingType   string  `json:"booking_type,omitempty"`
	BookingSource string  `json:"booking_source,omitempty"`
	Guests        []Guest `json:"guests"`

	CheckedOut         bool       `json:"checked_out"`
	ActualCheckoutTime *time.Time `json:"actual_checkout_time,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Active reports whether the booking still holds its room.
func (b *Booking) Active() bool {
	return !b.CheckedOut
}

// StatusFor derives the payment status from the amount paid so far.
// Checked Out wins over any derived value.
func (b *Booking) StatusFor(paid float64) string {
	if b.CheckedOut {
		return StatusCheckedOut
	}

	switch {
	case paid <= 0:
		return StatusPending
	case paid < b.TotalAmount:
		return StatusPartial
	default:
		return StatusPaid
	}
}

// PendingBalance returns the amount still owed given the amount paid so
// far, never below zero.
func (b *Booking) PendingBalance(paid float64) float64 {
	if balance := b.TotalAmount - paid; balance > 0 {
		return balance
	}

	return 0
}
