package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/entities"
)

func validCustomer() entities.Customer {
	return entities.Customer{
		Name:  "John Doe",
		Email: "john.doe@example.com",
		Phone: "+1-555-0123",
	}
}

func TestNewReservation(t *testing.T) {
	checkIn := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)

	reservation, err := entities.NewReservation(validCustomer(), entities.RoomDouble, checkIn, checkOut, 2, "late arrival")
	require.NoError(t, err)

	assert.NotEmpty(t, reservation.ReservationID)
	assert.Equal(t, entities.BookingPending, reservation.BookingStatus)
	assert.Equal(t, entities.PaymentPending, reservation.PaymentStatus)
	assert.Equal(t, 3, reservation.Nights())
	assert.Zero(t, reservation.TotalPrice)
	assert.Equal(t, "late arrival", reservation.SpecialRequests)
	assert.False(t, reservation.CreatedAt.IsZero())
}

func TestNewReservationIDsUniqueWithinRun(t *testing.T) {
	checkIn := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 1)

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		reservation, err := entities.NewReservation(validCustomer(), entities.RoomSingle, checkIn, checkOut, 1, "")
		require.NoError(t, err)
		require.False(t, seen[reservation.ReservationID], "duplicate reservation id %s", reservation.ReservationID)
		seen[reservation.ReservationID] = true
	}
}

func TestNewReservationValidation(t *testing.T) {
	checkIn := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 2)

	testCases := []struct {
		name     string
		customer entities.Customer
		checkIn  time.Time
		checkOut time.Time
		guests   int
	}{
		{"missing name", entities.Customer{Email: "a@b.com", Phone: "1"}, checkIn, checkOut, 2},
		{"missing email", entities.Customer{Name: "A", Phone: "1"}, checkIn, checkOut, 2},
		{"missing phone", entities.Customer{Name: "A", Email: "a@b.com"}, checkIn, checkOut, 2},
		{"check-out before check-in", validCustomer(), checkOut, checkIn, 2},
		{"check-out equals check-in", validCustomer(), checkIn, checkIn, 2},
		{"stay shorter than one night", validCustomer(), checkIn, checkIn.Add(6 * time.Hour), 2},
		{"zero guests", validCustomer(), checkIn, checkOut, 0},
		{"too many guests", validCustomer(), checkIn, checkOut, 11},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := entities.NewReservation(tc.customer, entities.RoomDouble, tc.checkIn, tc.checkOut, tc.guests, "")
			assert.Error(t, err)
		})
	}
}

func TestNights(t *testing.T) {
	checkIn := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)

	for d := 1; d <= 14; d++ {
		assert.Equal(t, d, entities.Nights(checkIn, checkIn.AddDate(0, 0, d)))
	}

	// Whole days only: partial days floor down.
	assert.Equal(t, 2, entities.Nights(checkIn, checkIn.Add(2*24*time.Hour+5*time.Hour)))
}

func TestParseDate(t *testing.T) {
	for _, raw := range []string{
		"2026-09-01T15:00:00Z",
		"2026-09-01T15:00:00",
		"2026-09-01",
	} {
		parsed, err := entities.ParseDate(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, 2026, parsed.Year())
		assert.Equal(t, time.September, parsed.Month())
	}

	_, err := entities.ParseDate("next tuesday")
	assert.Error(t, err)
}
