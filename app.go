// Package frontdesk is the embeddable core of the hotel front-desk
// application: customer registry, fixed room inventory, the
// booking/payment/checkout consistency module, marketing selectors and
// dashboard aggregates, all persisted as one JSON envelope in a local
// key-value store. The UI layer renders and calls in; this package owns
// the state and the invariants.
package frontdesk

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	bookingService "frontdesk/internal/domains/booking/service"
	customerService "frontdesk/internal/domains/customer/service"
	dashboardService "frontdesk/internal/domains/dashboard/service"
	marketingService "frontdesk/internal/domains/marketing/service"
	paymentService "frontdesk/internal/domains/payment/service"
	roomModel "frontdesk/internal/domains/room/model"
	roomService "frontdesk/internal/domains/room/service"
	"frontdesk/infras/sqlite"
	"frontdesk/internal/persist"
	"frontdesk/internal/store"
	"frontdesk/shared/logger"
)

// App is the assembled front desk. The store is owned here and injected
// into every service; there are no package-level collections.
type App struct {
	Customers customerService.Customer
	Rooms     roomService.Room
	Bookings  bookingService.Booking
	Payments  paymentService.Payment
	Marketing marketingService.Marketing
	Dashboard dashboardService.Dashboard

	storage *sqlite.DB
}

// New opens the local storage, restores the saved state, seeds the room
// inventory on first run, and wires the services together.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logger.InitLogger()
	logger.SetLogLevel(cfg)

	storage, err := sqlite.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	st := store.New()
	committer := persist.NewCommitter(storage, st, cfg.Storage.Key, cfg.Storage.Version)

	if err := committer.Restore(ctx); err != nil {
		// A corrupt or unreadable blob is not fatal: the front desk
		// keeps working in memory and overwrites it on the next save.
		log.Warn().Err(err).Msg("could not restore saved state, starting with an empty store")
	}

	if len(st.Rooms) == 0 {
		seedRooms(st)

		if err := committer.Commit(ctx); err != nil {
			log.Warn().Err(err).Msg("could not persist the initial room inventory")
		}
	}

	app := &App{
		Customers: customerService.New(st, committer),
		Rooms:     roomService.New(st, committer),
		Bookings:  bookingService.New(st, committer),
		Payments:  paymentService.New(st),
		Marketing: marketingService.New(st),
		Dashboard: dashboardService.New(st),
		storage:   storage,
	}

	log.Info().
		Str("app", cfg.App.Name).
		Int("rooms", len(st.Rooms)).
		Int("customers", len(st.Customers)).
		Int("bookings", len(st.Bookings)).
		Msg("front desk ready")

	return app, nil
}

// Close releases the storage handle.
func (a *App) Close() error {
	return a.storage.Close() //nolint:wrapcheck
}

func seedRooms(st *store.Store) {
	for _, room := range roomModel.DefaultInventory() {
		room.ID = st.NextRoomID()
		st.Rooms = append(st.Rooms, room)
	}

	log.Info().Int("rooms", len(st.Rooms)).Msg("room inventory initialized")
}
