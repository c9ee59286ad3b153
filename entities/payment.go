package entities

// PaymentRecord is the Payment agent's record of a processed charge,
// keyed by reservation id. Refunds flip Status in place, records are
// never deleted.
type PaymentRecord struct {
	ReservationID string        `json:"reservation_id"`
	TransactionID string        `json:"transaction_id"`
	Amount        float64       `json:"amount"`
	PaymentMethod string        `json:"payment_method"`
	Status        PaymentStatus `json:"status"`
}
