package frontdesk_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk"
	"frontdesk/config"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingDto "frontdesk/internal/domains/booking/model/dto"
	customerDto "frontdesk/internal/domains/customer/model/dto"
	roomModel "frontdesk/internal/domains/room/model"
)

func testConfig(path string) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "Crown Inn Front Desk"
	cfg.Storage.Path = path
	cfg.Storage.Key = "crownInnHotelData"
	cfg.Storage.Version = "4.0"

	return cfg
}

func TestNew_SeedsRoomInventoryOnFirstRun(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "frontdesk.db"))
	ctx := context.Background()

	app, err := frontdesk.New(ctx, cfg)
	require.NoError(t, err)
	defer app.Close()

	rooms := app.Rooms.List(ctx)
	require.Len(t, rooms, 24)
	assert.Len(t, app.Rooms.Vacant(ctx), 24)

	m := app.Dashboard.Metrics(ctx)
	assert.Equal(t, 24, m.VacantRooms)
	assert.Equal(t, 0, m.OccupancyRate)
}

func TestFullStay_PersistsAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frontdesk.db")
	ctx := context.Background()

	app, err := frontdesk.New(ctx, testConfig(path))
	require.NoError(t, err)

	customer, err := app.Customers.Register(ctx, customerDto.RegisterCustomerRequest{
		Name:              "Asha Rao",
		Phone:             "9876500001",
		DateOfBirth:       "1990-03-15",
		WhatsAppMarketing: true,
		BirthdayOffers:    true,
	})
	require.NoError(t, err)

	rooms := app.Rooms.Vacant(ctx)
	require.NotEmpty(t, rooms)
	room := rooms[0]

	booking, err := app.Bookings.Create(ctx, bookingDto.CreateBookingRequest{
		CustomerID:    customer.ID,
		RoomID:        room.ID,
		CheckinDate:   "2026-09-01",
		CheckoutDate:  "2026-09-03",
		GuestCount:    1,
		TotalAmount:   3000,
		AdvanceAmount: 1000,
		Guests: []bookingDto.GuestInput{
			{Name: "Asha Rao", Age: 36, Gender: "Female", Relationship: "Self"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, bookingModel.StatusPartial, booking.PaymentStatus)
	assert.Equal(t, 2000.0, booking.PendingBalance)

	occupied, err := app.Rooms.Get(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, roomModel.StatusOccupied, occupied.Status)

	settled, err := app.Bookings.RecordPayment(ctx, bookingDto.RecordPaymentRequest{
		BookingID: booking.Booking.ID,
		Amount:    2000,
		Method:    "UPI",
	})
	require.NoError(t, err)
	assert.Equal(t, bookingModel.StatusPaid, settled.PaymentStatus)

	checkedOut, err := app.Bookings.Checkout(ctx, booking.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, bookingModel.StatusCheckedOut, checkedOut.PaymentStatus)

	require.NoError(t, app.Close())

	// Reopen against the same file: everything survives the restart.
	reopened, err := frontdesk.New(ctx, testConfig(path))
	require.NoError(t, err)
	defer reopened.Close()

	restored, ok := reopened.Customers.FindByPhone(ctx, "9876500001")
	require.True(t, ok)
	assert.Equal(t, customer.ID, restored.ID)

	status, err := reopened.Bookings.Get(ctx, booking.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, bookingModel.StatusCheckedOut, status.PaymentStatus)
	assert.Equal(t, 3000.0, status.PaidTotal)

	vacated, err := reopened.Rooms.Get(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, roomModel.StatusVacant, vacated.Status)

	payments := reopened.Payments.ForBooking(ctx, booking.Booking.ID)
	assert.Len(t, payments, 2)

	// The restored counters keep allocating past the saved ids.
	second, err := reopened.Customers.Register(ctx, customerDto.RegisterCustomerRequest{
		Name:  "Vikram Shah",
		Phone: "9876500002",
	})
	require.NoError(t, err)
	assert.Greater(t, second.ID, customer.ID)
}

func TestNew_DoesNotReseedExistingInventory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frontdesk.db")
	ctx := context.Background()

	app, err := frontdesk.New(ctx, testConfig(path))
	require.NoError(t, err)

	room := app.Rooms.Vacant(ctx)[0]
	_, err = app.Rooms.UpdatePrice(ctx, room.ID, 1800)
	require.NoError(t, err)
	require.NoError(t, app.Close())

	reopened, err := frontdesk.New(ctx, testConfig(path))
	require.NoError(t, err)
	defer reopened.Close()

	require.Len(t, reopened.Rooms.List(ctx), 24)

	kept, err := reopened.Rooms.Get(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, 1800.0, kept.Price)
}
