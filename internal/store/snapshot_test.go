package store_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingModel "frontdesk/internal/domains/booking/model"
	customerModel "frontdesk/internal/domains/customer/model"
	paymentModel "frontdesk/internal/domains/payment/model"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/internal/store"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	st := store.New()

	st.Customers = append(st.Customers, customerModel.Customer{
		ID: st.NextCustomerID(), Name: "Asha Rao", Phone: "9876543210", WhatsApp: "9876543210",
		CustomerType: customerModel.TypeVIP, WhatsAppMarketing: true,
	})
	st.Rooms = append(st.Rooms, roomModel.Room{
		ID: st.NextRoomID(), RoomNumber: 101, Floor: 1, Type: roomModel.TypeSingle,
		Price: 1500, Status: roomModel.StatusOccupied, Capacity: 1,
		Amenities: []string{"AC", "WiFi"},
	})
	st.Bookings = append(st.Bookings, bookingModel.Booking{
		ID: st.NextBookingID(), CustomerID: 1, RoomID: 1,
		CheckinTime:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		CheckoutTime: time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC),
		GuestCount:   2, TotalAmount: 3000, AdvanceAmount: 1000,
		Guests: []bookingModel.Guest{{ID: 1, Name: "Asha Rao", Age: 34, Gender: "Female", Relationship: "Self", IsPrimary: true}},
	})
	st.Payments = append(st.Payments, paymentModel.Payment{
		ID: st.NextPaymentID(), BookingID: 1, Amount: 1000,
		PaymentType: paymentModel.TypeAdvance, PaymentMethod: paymentModel.MethodCash,
	})

	blob, err := json.Marshal(st.Snapshot("4.0"))
	require.NoError(t, err)

	var env store.Envelope
	require.NoError(t, json.Unmarshal(blob, &env))

	restored := store.New()
	restored.Restore(env)

	assert.Equal(t, st.Customers, restored.Customers)
	assert.Equal(t, st.Rooms, restored.Rooms)
	assert.Equal(t, st.Bookings, restored.Bookings)
	assert.Equal(t, st.Payments, restored.Payments)

	// Counters survive the round trip: the next ids continue the sequence.
	assert.Equal(t, int64(2), restored.NextCustomerID())
	assert.Equal(t, int64(2), restored.NextRoomID())
	assert.Equal(t, int64(2), restored.NextBookingID())
	assert.Equal(t, int64(2), restored.NextPaymentID())
}

func TestSnapshot_EnvelopeFieldNames(t *testing.T) {
	st := store.New()

	blob, err := json.Marshal(st.Snapshot("4.0"))
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(blob, &raw))

	for _, field := range []string{
		"customers", "rooms", "bookings", "payments",
		"nextCustomerId", "nextRoomId", "nextBookingId", "nextPaymentId",
		"lastSaved", "version",
	} {
		assert.Contains(t, raw, field)
	}
}

func TestRestore_DefaultsMissingFields(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{name: "empty object", blob: `{}`},
		{name: "older version with partial contents", blob: `{"customers":[{"id":1,"name":"Asha Rao","phone":"9876543210"}],"version":"1.0"}`},
		{name: "counters below one", blob: `{"nextCustomerId":0,"nextBookingId":-3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var env store.Envelope
			require.NoError(t, json.Unmarshal([]byte(tt.blob), &env))

			st := store.New()
			st.Restore(env)

			assert.NotNil(t, st.Customers)
			assert.NotNil(t, st.Rooms)
			assert.NotNil(t, st.Bookings)
			assert.NotNil(t, st.Payments)

			// Counters never restore below their initial value.
			assert.GreaterOrEqual(t, st.NextCustomerID(), int64(1))
			assert.GreaterOrEqual(t, st.NextBookingID(), int64(1))
		})
	}
}
