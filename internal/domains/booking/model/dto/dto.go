package dto

import (
	"time"

	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

type GuestInput struct {
	Name         string `json:"name"         validate:"required,max=100"`
	Age          int    `json:"age"          validate:"required,gte=0,lte=120"`
	Gender       string `json:"gender"       validate:"required,max=20"`
	Phone        string `json:"phone"        validate:"omitempty,phone"`
	Relationship string `json:"relationship" validate:"required,max=30"`
}

type CreateBookingRequest struct {
	CustomerID int64 `json:"customer_id" validate:"required,gt=0"`
	RoomID     int64 `json:"room_id"     validate:"required,gt=0"`

	CheckinDate  string `json:"checkin_date"  validate:"required,datetime=2006-01-02"`
	CheckoutDate string `json:"checkout_date" validate:"required,datetime=2006-01-02"`

	GuestCount    int     `json:"guest_count"    validate:"required,gte=1"`
	TotalAmount   float64 `json:"total_amount"   validate:"required,gt=0"`
	AdvanceAmount float64 `json:"advance_amount" validate:"gte=0"`

	// AdvanceMethod is how the advance was received; defaults to Cash.
	AdvanceMethod string `json:"advance_method" validate:"omitempty,oneof=Cash Card UPI 'Bank Transfer'"`

	BookingType   string       `json:"booking_type"   validate:"omitempty,max=30"`
	BookingSource string       `json:"booking_source" validate:"omitempty,max=30"`
	Guests        []GuestInput `json:"guests"         validate:"required,min=1,dive"`
}

// Times parses the check-in/check-out dates in the application timezone
// and enforces their ordering.
func (r *CreateBookingRequest) Times() (checkin, checkout time.Time, err error) {
	checkin, err = timezone.Parse(constant.DateFormat, r.CheckinDate)
	if err != nil {
		return time.Time{}, time.Time{}, failure.Validation("checkin_date must be a valid date") //nolint:wrapcheck
	}

	checkout, err = timezone.Parse(constant.DateFormat, r.CheckoutDate)
	if err != nil {
		return time.Time{}, time.Time{}, failure.Validation("checkout_date must be a valid date") //nolint:wrapcheck
	}

	if !checkout.After(checkin) {
		return time.Time{}, time.Time{}, failure.Validation("check-out date must be after check-in date") //nolint:wrapcheck
	}

	return checkin, checkout, nil
}

// ToModel builds the booking entity. The id is left unset; the service
// allocates it only after every precondition has passed. The first guest
// is marked primary.
func (r *CreateBookingRequest) ToModel(checkin, checkout time.Time) model.Booking {
	source := r.BookingSource
	if source == "" {
		source = model.SourceFrontDesk
	}

	guests := make([]model.Guest, len(r.Guests))
	for i, g := range r.Guests {
		guests[i] = model.Guest{
			ID:           i + 1,
			Name:         g.Name,
			Age:          g.Age,
			Gender:       g.Gender,
			Phone:        g.Phone,
			Relationship: g.Relationship,
			IsPrimary:    i == 0,
		}
	}

	return model.Booking{
		CustomerID:    r.CustomerID,
		RoomID:        r.RoomID,
		CheckinTime:   checkin,
		CheckoutTime:  checkout,
		GuestCount:    r.GuestCount,
		TotalAmount:   r.TotalAmount,
		AdvanceAmount: r.AdvanceAmount,
		BookingType:   r.BookingType,
		BookingSource: source,
		Guests:        guests,
		CreatedAt:     timezone.Now(),
	}
}

type RecordPaymentRequest struct {
	BookingID int64   `json:"booking_id" validate:"required,gt=0"`
	Amount    float64 `json:"amount"     validate:"required,gt=0"`
	Method    string  `json:"method"     validate:"required,oneof=Cash Card UPI 'Bank Transfer'"`
	// ReferenceID is the external receipt/transaction reference; one is
	// generated when absent.
	ReferenceID string `json:"reference_id" validate:"omitempty,max=64"`
}

// BookingStatus is what the mutating operations hand back to the UI:
// the booking plus its derived payment state.
type BookingStatus struct {
	Booking        model.Booking `json:"booking"`
	PaymentStatus  string        `json:"payment_status"`
	PaidTotal      float64       `json:"paid_total"`
	PendingBalance float64       `json:"pending_balance"`
}
