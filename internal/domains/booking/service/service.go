package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	customerModel "frontdesk/internal/domains/customer/model"
	paymentModel "frontdesk/internal/domains/payment/model"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/internal/persist"
	"frontdesk/internal/store"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
	"frontdesk/shared/validator"
)

// Booking is the consistency module: every operation that touches the
// booking/payment/room relationship goes through here. Operations
// validate everything up front and only then mutate, so a rejected call
// leaves all collections and counters untouched.
type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingStatus, error)
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (dto.BookingStatus, error)
	Checkout(ctx context.Context, bookingID int64) (dto.BookingStatus, error)
	Get(ctx context.Context, bookingID int64) (dto.BookingStatus, error)
	Active(ctx context.Context) []dto.BookingStatus
	PendingBalance(ctx context.Context, bookingID int64) (float64, error)
}

type serviceImpl struct {
	store     *store.Store
	committer *persist.Committer
}

func New(st *store.Store, committer *persist.Committer) Booking {
	return &serviceImpl{
		store:     st,
		committer: committer,
	}
}

// Create books a vacant room for an existing customer. Room vacancy is
// re-validated here rather than trusted from the UI's filtered dropdown.
// On success the booking is appended, an advance payment is recorded if
// one was taken, and the room flips to Occupied.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingStatus, error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return dto.BookingStatus{}, err
	}

	checkin, checkout, err := req.Times()
	if err != nil {
		return dto.BookingStatus{}, err
	}

	if req.AdvanceAmount > req.TotalAmount {
		return dto.BookingStatus{}, failure.Validation("advance amount cannot be greater than total amount") //nolint:wrapcheck
	}

	if len(req.Guests) != req.GuestCount {
		return dto.BookingStatus{}, failure.Validation(fmt.Sprintf("guest list has %d entries for a guest count of %d", len(req.Guests), req.GuestCount)) //nolint:wrapcheck
	}

	if s.store.CustomerByID(req.CustomerID) == nil {
		return dto.BookingStatus{}, failure.NotFound(customerModel.EntityName) //nolint:wrapcheck
	}

	room := s.store.RoomByID(req.RoomID)
	if room == nil {
		return dto.BookingStatus{}, failure.NotFound(roomModel.EntityName) //nolint:wrapcheck
	}

	if room.Status != roomModel.StatusVacant {
		return dto.BookingStatus{}, failure.Validation(fmt.Sprintf("room %d is %s, only vacant rooms can be booked", room.RoomNumber, room.Status)) //nolint:wrapcheck
	}

	// All preconditions hold; mutate. Counters advance only from here on.
	booking := req.ToModel(checkin, checkout)
	booking.ID = s.store.NextBookingID()
	s.store.Bookings = append(s.store.Bookings, booking)

	if req.AdvanceAmount > 0 {
		method := req.AdvanceMethod
		if method == "" {
			method = paymentModel.MethodCash
		}

		s.store.Payments = append(s.store.Payments, paymentModel.Payment{
			ID:            s.store.NextPaymentID(),
			BookingID:     booking.ID,
			Amount:        req.AdvanceAmount,
			PaymentType:   paymentModel.TypeAdvance,
			PaymentMethod: method,
			ReferenceID:   uuid.NewString(),
			PaymentTime:   timezone.Now(),
		})
	}

	room = s.store.RoomByID(req.RoomID)
	room.Status = roomModel.StatusOccupied

	status := s.statusOf(&booking)

	log.Info().
		Int64("bookingID", booking.ID).
		Int("roomNumber", room.RoomNumber).
		Int("guests", booking.GuestCount).
		Float64("total", booking.TotalAmount).
		Float64("advance", booking.AdvanceAmount).
		Str("paymentStatus", status.PaymentStatus).
		Msg("booking created, room occupied")

	if err := s.committer.Commit(ctx); err != nil {
		return status, err
	}

	return status, nil
}

// RecordPayment adds a payment against a not-yet-checked-out booking and
// returns the booking with its recomputed payment status. The terminal
// Checked Out state is never set here.
func (s *serviceImpl) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (dto.BookingStatus, error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return dto.BookingStatus{}, err
	}

	booking := s.store.BookingByID(req.BookingID)
	if booking == nil {
		return dto.BookingStatus{}, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	if booking.CheckedOut {
		return dto.BookingStatus{}, failure.State(fmt.Sprintf("booking %d is checked out, no further payments can be recorded", booking.ID)) //nolint:wrapcheck
	}

	reference := req.ReferenceID
	if reference == "" {
		reference = uuid.NewString()
	}

	payment := paymentModel.Payment{
		ID:            s.store.NextPaymentID(),
		BookingID:     booking.ID,
		Amount:        req.Amount,
		PaymentType:   paymentModel.TypeSettlement,
		PaymentMethod: req.Method,
		ReferenceID:   reference,
		PaymentTime:   timezone.Now(),
	}
	s.store.Payments = append(s.store.Payments, payment)

	status := s.statusOf(booking)

	log.Info().
		Int64("bookingID", booking.ID).
		Float64("amount", req.Amount).
		Str("method", req.Method).
		Str("paymentStatus", status.PaymentStatus).
		Float64("pending", status.PendingBalance).
		Msg("payment recorded")

	if err := s.committer.Commit(ctx); err != nil {
		return status, err
	}

	return status, nil
}

// Checkout ends a booking: the terminal Checked Out flag is set, the
// actual checkout time is recorded, and the room goes back to Vacant.
// The transition is one-way; a second call is rejected so a room that
// may have been re-booked since is never re-vacated.
func (s *serviceImpl) Checkout(ctx context.Context, bookingID int64) (dto.BookingStatus, error) {
	booking := s.store.BookingByID(bookingID)
	if booking == nil {
		return dto.BookingStatus{}, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	if booking.CheckedOut {
		return dto.BookingStatus{}, failure.State(fmt.Sprintf("booking %d is already checked out", booking.ID)) //nolint:wrapcheck
	}

	now := timezone.Now()
	booking.CheckedOut = true
	booking.ActualCheckoutTime = &now

	room := s.store.RoomByID(booking.RoomID)
	if room != nil {
		room.Status = roomModel.StatusVacant
	}

	status := s.statusOf(booking)

	log.Info().
		Int64("bookingID", booking.ID).
		Int64("roomID", booking.RoomID).
		Time("actualCheckout", now).
		Msg("checkout processed, room vacant")

	if err := s.committer.Commit(ctx); err != nil {
		return status, err
	}

	return status, nil
}

func (s *serviceImpl) Get(_ context.Context, bookingID int64) (dto.BookingStatus, error) {
	booking := s.store.BookingByID(bookingID)
	if booking == nil {
		return dto.BookingStatus{}, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	return s.statusOf(booking), nil
}

// Active returns every booking still holding its room.
func (s *serviceImpl) Active(_ context.Context) []dto.BookingStatus {
	out := make([]dto.BookingStatus, 0)
	for i := range s.store.Bookings {
		if s.store.Bookings[i].Active() {
			out = append(out, s.statusOf(&s.store.Bookings[i]))
		}
	}

	return out
}

// PendingBalance returns the amount still owed on a booking.
func (s *serviceImpl) PendingBalance(_ context.Context, bookingID int64) (float64, error) {
	booking := s.store.BookingByID(bookingID)
	if booking == nil {
		return 0, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	return booking.PendingBalance(s.store.PaidTotal(booking.ID)), nil
}

func (s *serviceImpl) statusOf(booking *model.Booking) dto.BookingStatus {
	paid := s.store.PaidTotal(booking.ID)

	return dto.BookingStatus{
		Booking:        *booking,
		PaymentStatus:  booking.StatusFor(paid),
		PaidTotal:      paid,
		PendingBalance: booking.PendingBalance(paid),
	}
}
