package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/persist"
	"frontdesk/internal/store"
	"frontdesk/shared/failure"
)

type Room interface {
	Get(ctx context.Context, id int64) (model.Room, error)
	List(ctx context.Context) []model.Room
	Vacant(ctx context.Context) []model.Room
	UpdatePrice(ctx context.Context, id int64, price float64) (model.Room, error)
	OverrideStatus(ctx context.Context, id int64, status string) (model.Room, error)
}

type serviceImpl struct {
	store     *store.Store
	committer *persist.Committer
}

func New(st *store.Store, committer *persist.Committer) Room {
	return &serviceImpl{
		store:     st,
		committer: committer,
	}
}

func (s *serviceImpl) Get(_ context.Context, id int64) (model.Room, error) {
	room := s.store.RoomByID(id)
	if room == nil {
		return model.Room{}, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	return *room, nil
}

func (s *serviceImpl) List(_ context.Context) []model.Room {
	out := make([]model.Room, len(s.store.Rooms))
	copy(out, s.store.Rooms)

	return out
}

// Vacant returns the rooms currently available for booking. The booking
// service re-validates vacancy itself; this listing is a convenience for
// the UI dropdown, not the guard.
func (s *serviceImpl) Vacant(_ context.Context) []model.Room {
	out := make([]model.Room, 0)
	for _, r := range s.store.Rooms {
		if r.Status == model.StatusVacant {
			out = append(out, r)
		}
	}

	return out
}

// UpdatePrice changes the per-night price. Invalid prices are rejected,
// never clamped.
func (s *serviceImpl) UpdatePrice(ctx context.Context, id int64, price float64) (model.Room, error) {
	if price <= 0 {
		return model.Room{}, failure.Validation("price must be greater than 0") //nolint:wrapcheck
	}

	room := s.store.RoomByID(id)
	if room == nil {
		return model.Room{}, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	room.Price = price

	log.Info().Int("roomNumber", room.RoomNumber).Float64("price", price).Msg("room price updated")

	if err := s.committer.Commit(ctx); err != nil {
		return *room, err
	}

	return *room, nil
}

// OverrideStatus sets a room status manually, e.g. taking a room under
// maintenance. A room referenced by an active booking must stay
// Occupied until that booking checks out.
func (s *serviceImpl) OverrideStatus(ctx context.Context, id int64, status string) (model.Room, error) {
	if !model.ValidStatus(status) {
		return model.Room{}, failure.Validation(fmt.Sprintf("unknown room status %q", status)) //nolint:wrapcheck
	}

	room := s.store.RoomByID(id)
	if room == nil {
		return model.Room{}, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	if active := s.store.ActiveBookingForRoom(id); active != nil && status != model.StatusOccupied {
		return model.Room{}, failure.State(fmt.Sprintf("room %d has active booking %d, check it out first", room.RoomNumber, active.ID)) //nolint:wrapcheck
	}

	room.Status = status

	log.Info().Int("roomNumber", room.RoomNumber).Str("status", status).Msg("room status overridden")

	if err := s.committer.Commit(ctx); err != nil {
		return *room, err
	}

	return *room, nil
}
