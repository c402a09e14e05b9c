package store

import (
	bookingModel "frontdesk/internal/domains/booking/model"
	customerModel "frontdesk/internal/domains/customer/model"
	paymentModel "frontdesk/internal/domains/payment/model"
	roomModel "frontdesk/internal/domains/room/model"
)

// Store holds the four entity collections and their id counters. It is
// owned by the composition root and injected into the services; there
// are no ambient globals. All access is single-threaded by design (one
// UI event at a time drives every mutation).
//
// Collections are append-only: no entity is ever deleted, and ids are
// never reused. Pointers returned by the finders are valid until the
// next append to the same collection.
type Store struct {
	Customers []customerModel.Customer
	Rooms     []roomModel.Room
	Bookings  []bookingModel.Booking
	Payments  []paymentModel.Payment

	nextCustomerID int64
	nextRoomID     int64
	nextBookingID  int64
	nextPaymentID  int64
}

// New returns an empty store with all counters starting at 1.
func New() *Store {
	return &Store{
		nextCustomerID: 1,
		nextRoomID:     1,
		nextBookingID:  1,
		nextPaymentID:  1,
	}
}

// NextCustomerID returns the current counter value and advances it.
func (s *Store) NextCustomerID() int64 {
	id := s.nextCustomerID
	s.nextCustomerID++

	return id
}

// NextRoomID returns the current counter value and advances it.
func (s *Store) NextRoomID() int64 {
	id := s.nextRoomID
	s.nextRoomID++

	return id
}

// NextBookingID returns the current counter value and advances it.
func (s *Store) NextBookingID() int64 {
	id := s.nextBookingID
	s.nextBookingID++

	return id
}

// NextPaymentID returns the current counter value and advances it.
func (s *Store) NextPaymentID() int64 {
	id := s.nextPaymentID
	s.nextPaymentID++

	return id
}

// CustomerByID returns the customer with the given id, or nil.
// Collections stay small enough that a linear scan is fine.
func (s *Store) CustomerByID(id int64) *customerModel.Customer {
	for i := range s.Customers {
		if s.Customers[i].ID == id {
			return &s.Customers[i]
		}
	}

	return nil
}

// CustomerByPhone returns the customer holding the given phone number,
// or nil. Phone is the soft-unique dedup key for registration.
func (s *Store) CustomerByPhone(phone string) *customerModel.Customer {
	for i := range s.Customers {
		if s.Customers[i].Phone == phone {
			return &s.Customers[i]
		}
	}

	return nil
}

// RoomByID returns the room with the given id, or nil.
func (s *Store) RoomByID(id int64) *roomModel.Room {
	for i := range s.Rooms {
		if s.Rooms[i].ID == id {
			return &s.Rooms[i]
		}
	}

	return nil
}

// RoomByNumber returns the room with the given room number, or nil.
func (s *Store) RoomByNumber(number int) *roomModel.Room {
	for i := range s.Rooms {
		if s.Rooms[i].RoomNumber == number {
			return &s.Rooms[i]
		}
	}

	return nil
}

// BookingByID returns the booking with the given id, or nil.
func (s *Store) BookingByID(id int64) *bookingModel.Booking {
	for i := range s.Bookings {
		if s.Bookings[i].ID == id {
			return &s.Bookings[i]
		}
	}

	return nil
}

// ActiveBookingForRoom returns the not-yet-checked-out booking holding
// the room, or nil. At most one such booking can exist because bookings
// are only created against vacant rooms.
func (s *Store) ActiveBookingForRoom(roomID int64) *bookingModel.Booking {
	for i := range s.Bookings {
		if s.Bookings[i].RoomID == roomID && s.Bookings[i].Active() {
			return &s.Bookings[i]
		}
	}

	return nil
}

// PaymentsForBooking returns every payment recorded against a booking,
// in insertion order.
func (s *Store) PaymentsForBooking(bookingID int64) []paymentModel.Payment {
	out := make([]paymentModel.Payment, 0)
	for _, p := range s.Payments {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}

	return out
}

// PaidTotal returns the sum of all payments recorded against a booking.
func (s *Store) PaidTotal(bookingID int64) float64 {
	total := 0.0
	for _, p := range s.Payments {
		if p.BookingID == bookingID {
			total += p.Amount
		}
	}

	return total
}
