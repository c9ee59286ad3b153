package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
)

type Customer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IDNumber string `json:"id_number,omitempty"`
}

func (c Customer) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("customer name is required")
	}
	if c.Email == "" {
		return fmt.Errorf("customer email is required")
	}
	if c.Phone == "" {
		return fmt.Errorf("customer phone is required")
	}
	return nil
}

type Reservation struct {
	ReservationID   string        `json:"reservation_id"`
	Customer        Customer      `json:"customer"`
	RoomType        RoomType      `json:"room_type"`
	CheckInDate     time.Time     `json:"check_in_date"`
	CheckOutDate    time.Time     `json:"check_out_date"`
	NumberOfGuests  int           `json:"number_of_guests"`
	TotalPrice      float64       `json:"total_price,omitempty"`
	BookingStatus   BookingStatus `json:"booking_status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

// NewReservation builds a pending reservation with a fresh id.
// The raw timestamp alone is not unique within one second, hence the suffix.
func NewReservation(customer Customer, roomType RoomType, checkIn, checkOut time.Time, guests int, specialRequests string) (Reservation, error) {
	if err := customer.Validate(); err != nil {
		return Reservation{}, err
	}
	if !checkOut.After(checkIn) {
		return Reservation{}, fmt.Errorf("check-out date must be after check-in date")
	}
	if Nights(checkIn, checkOut) < 1 {
		return Reservation{}, fmt.Errorf("stay must be at least one night")
	}
	if guests < 1 || guests > 10 {
		return Reservation{}, fmt.Errorf("number of guests must be between 1 and 10, got %d", guests)
	}

	return Reservation{
		ReservationID:   NewReservationID(),
		Customer:        customer,
		RoomType:        roomType,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  guests,
		BookingStatus:   BookingPending,
		PaymentStatus:   PaymentPending,
		SpecialRequests: specialRequests,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

func NewReservationID() string {
	return fmt.Sprintf("RES%s-%s", time.Now().UTC().Format("20060102150405"), uuid.NewString()[:8])
}

func (r Reservation) Nights() int {
	return Nights(r.CheckInDate, r.CheckOutDate)
}

// Nights counts whole days between check-in and check-out.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn) / (24 * time.Hour))
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate accepts the ISO-8601 forms the booking API uses: RFC3339,
// RFC3339 without a zone, and a plain date.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected ISO-8601", s)
}
