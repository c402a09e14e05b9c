package service

import (
	"context"
	"math"
	"time"

	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/internal/store"
	"frontdesk/shared/timezone"
)

// Metrics is the dashboard snapshot. Every field is recomputed from the
// raw collections on each call; nothing here is cached or stored.
type Metrics struct {
	VacantRooms      int     `json:"vacant_rooms"`
	OccupiedRooms    int     `json:"occupied_rooms"`
	MaintenanceRooms int     `json:"maintenance_rooms"`
	OccupancyRate    int     `json:"occupancy_rate"`
	TotalRevenue     float64 `json:"total_revenue"`
	PendingPayments  float64 `json:"pending_payments"`
	CheckinsToday    int     `json:"checkins_today"`
	CheckoutsToday   int     `json:"checkouts_today"`
	ActiveGuests     int     `json:"active_guests"`
	TotalCustomers   int     `json:"total_customers"`
}

type Dashboard interface {
	Metrics(ctx context.Context) Metrics
	MetricsAt(ctx context.Context, now time.Time) Metrics
}

type serviceImpl struct {
	store *store.Store
}

func New(st *store.Store) Dashboard {
	return &serviceImpl{store: st}
}

func (s *serviceImpl) Metrics(ctx context.Context) Metrics {
	return s.MetricsAt(ctx, timezone.Now())
}

// MetricsAt computes the dashboard for an arbitrary "today".
func (s *serviceImpl) MetricsAt(_ context.Context, now time.Time) Metrics {
	var m Metrics

	for _, r := range s.store.Rooms {
		switch r.Status {
		case roomModel.StatusVacant:
			m.VacantRooms++
		case roomModel.StatusOccupied:
			m.OccupiedRooms++
		case roomModel.StatusMaintenance:
			m.MaintenanceRooms++
		}
	}

	if len(s.store.Rooms) > 0 {
		m.OccupancyRate = int(math.Round(float64(m.OccupiedRooms) / float64(len(s.store.Rooms)) * 100))
	}

	for _, p := range s.store.Payments {
		m.TotalRevenue += p.Amount
	}

	for i := range s.store.Bookings {
		b := &s.store.Bookings[i]

		if timezone.SameDay(b.CheckinTime, now) {
			m.CheckinsToday++
		}

		// Checked out today means the guest actually left today: the
		// stored actual checkout time counts, never the originally
		// scheduled checkout date.
		if b.CheckedOut && b.ActualCheckoutTime != nil && timezone.SameDay(*b.ActualCheckoutTime, now) {
			m.CheckoutsToday++
		}

		if b.Active() {
			m.PendingPayments += b.PendingBalance(s.store.PaidTotal(b.ID))
			m.ActiveGuests += b.GuestCount
		}
	}

	m.TotalCustomers = len(s.store.Customers)

	return m
}
