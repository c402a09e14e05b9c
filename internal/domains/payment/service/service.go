package service

import (
	"context"

	"frontdesk/internal/domains/payment/model"
	"frontdesk/internal/store"
)

// Payment exposes the read side of the payment ledger. Mutations happen
// in the booking service, which owns the booking/payment/room
// consistency rules.
type Payment interface {
	History(ctx context.Context) []model.Payment
	ForBooking(ctx context.Context, bookingID int64) []model.Payment
}

type serviceImpl struct {
	store *store.Store
}

func New(st *store.Store) Payment {
	return &serviceImpl{store: st}
}

func (s *serviceImpl) History(_ context.Context) []model.Payment {
	out := make([]model.Payment, len(s.store.Payments))
	copy(out, s.store.Payments)

	return out
}

func (s *serviceImpl) ForBooking(_ context.Context, bookingID int64) []model.Payment {
	return s.store.PaymentsForBooking(bookingID)
}
