package store

import (
	"time"

	bookingModel "frontdesk/internal/domains/booking/model"
	customerModel "frontdesk/internal/domains/customer/model"
	paymentModel "frontdesk/internal/domains/payment/model"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/timezone"
)

// Envelope is the single persisted blob: all four collections plus the
// id counters, written wholesale on every mutation.
type Envelope struct {
	Customers []customerModel.Customer `json:"customers"`
	Rooms     []roomModel.Room         `json:"rooms"`
	Bookings  []bookingModel.Booking   `json:"bookings"`
	Payments  []paymentModel.Payment   `json:"payments"`

	NextCustomerID int64 `json:"nextCustomerId"`
	NextRoomID     int64 `json:"nextRoomId"`
	NextBookingID  int64 `json:"nextBookingId"`
	NextPaymentID  int64 `json:"nextPaymentId"`

	LastSaved string `json:"lastSaved"`
	Version   string `json:"version"`
}

// Snapshot captures the full store state under the given envelope version.
func (s *Store) Snapshot(version string) Envelope {
	return Envelope{
		Customers:      s.Customers,
		Rooms:          s.Rooms,
		Bookings:       s.Bookings,
		Payments:       s.Payments,
		NextCustomerID: s.nextCustomerID,
		NextRoomID:     s.nextRoomID,
		NextBookingID:  s.nextBookingID,
		NextPaymentID:  s.nextPaymentID,
		LastSaved:      timezone.Now().Format(time.RFC3339),
		Version:        version,
	}
}

// Restore replaces the store state with the envelope contents. Missing
// fields default to their initial values (empty collection, counter 1)
// rather than failing, so blobs written by older versions still load.
func (s *Store) Restore(env Envelope) {
	s.Customers = env.Customers
	if s.Customers == nil {
		s.Customers = []customerModel.Customer{}
	}

	s.Rooms = env.Rooms
	if s.Rooms == nil {
		s.Rooms = []roomModel.Room{}
	}

	s.Bookings = env.Bookings
	if s.Bookings == nil {
		s.Bookings = []bookingModel.Booking{}
	}

	s.Payments = env.Payments
	if s.Payments == nil {
		s.Payments = []paymentModel.Payment{}
	}

	s.nextCustomerID = counterOrDefault(env.NextCustomerID)
	s.nextRoomID = counterOrDefault(env.NextRoomID)
	s.nextBookingID = counterOrDefault(env.NextBookingID)
	s.nextPaymentID = counterOrDefault(env.NextPaymentID)
}

func counterOrDefault(v int64) int64 {
	if v < 1 {
		return 1
	}

	return v
}
