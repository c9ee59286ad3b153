package entities

import "time"

// ConfirmationRecord stores a rendered notice keyed by reservation id.
// Sending twice for the same reservation overwrites the record.
type ConfirmationRecord struct {
	ReservationID string    `json:"reservation_id"`
	SentAt        time.Time `json:"sent_at"`
	Message       string    `json:"confirmation_message"`
	CustomerEmail string    `json:"customer_email"`
}
