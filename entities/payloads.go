package entities

// Status values carried in response payloads. Unavailable and
// payment_failed are expected business outcomes, not errors.
const (
	StatusSuccess       = "success"
	StatusError         = "error"
	StatusFailed        = "failed"
	StatusUnavailable   = "unavailable"
	StatusPaymentFailed = "payment_failed"
	StatusNotFound      = "not_found"
)

// BookingDetails is the raw booking half of an incoming request. Dates
// stay strings until the receptionist parses them.
type BookingDetails struct {
	RoomType        string `json:"room_type"`
	CheckInDate     string `json:"check_in_date"`
	CheckOutDate    string `json:"check_out_date"`
	NumberOfGuests  int    `json:"number_of_guests"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

type CreateBookingRequest struct {
	Customer Customer       `json:"customer"`
	Booking  BookingDetails `json:"booking"`
}

type BookingCreated struct {
	Status      string      `json:"status"`
	Reservation Reservation `json:"reservation"`
	Message     string      `json:"message"`
}

type StartBookingRequest struct {
	Customer      Customer       `json:"customer"`
	Booking       BookingDetails `json:"booking"`
	PaymentMethod string         `json:"payment_method,omitempty"`
}

type AvailabilityRequest struct {
	RoomType       string `json:"room_type"`
	CheckInDate    string `json:"check_in_date"`
	CheckOutDate   string `json:"check_out_date"`
	NumberOfGuests int    `json:"number_of_guests,omitempty"`
}

type AvailabilityResult struct {
	Status        string  `json:"status"`
	Available     bool    `json:"available"`
	RoomType      string  `json:"room_type,omitempty"`
	PricePerNight float64 `json:"price_per_night,omitempty"`
	Nights        int     `json:"nights,omitempty"`
	TotalPrice    float64 `json:"total_price,omitempty"`
	Message       string  `json:"message,omitempty"`
}

type PriceQuote struct {
	Status        string  `json:"status"`
	PricePerNight float64 `json:"price_per_night"`
	Nights        int     `json:"nights"`
	TotalPrice    float64 `json:"total_price"`
}

type PaymentRequest struct {
	ReservationID string  `json:"reservation_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method,omitempty"`
}

type PaymentResult struct {
	Status        string        `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	TransactionID string        `json:"transaction_id,omitempty"`
	Amount        float64       `json:"amount,omitempty"`
	Message       string        `json:"message,omitempty"`
}

type RefundRequest struct {
	ReservationID string `json:"reservation_id"`
}

type RefundResult struct {
	Status        string        `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Amount        float64       `json:"amount"`
	Message       string        `json:"message,omitempty"`
}

type ConfirmationRequest struct {
	Reservation Reservation   `json:"reservation"`
	Payment     PaymentResult `json:"payment"`
}

type ConfirmationResult struct {
	Status              string `json:"status"`
	ConfirmationSent    bool   `json:"confirmation_sent"`
	ConfirmationMessage string `json:"confirmation_message,omitempty"`
	Message             string `json:"message,omitempty"`
}

type CancellationRequest struct {
	ReservationID string `json:"reservation_id"`
	CustomerEmail string `json:"customer_email"`
}

type CancellationResult struct {
	Status           string `json:"status"`
	CancellationSent bool   `json:"cancellation_sent"`
	Message          string `json:"message,omitempty"`
}

type InquiryRequest struct {
	InquiryType string `json:"inquiry_type"`
}

type InquiryResult struct {
	Status      string `json:"status"`
	InquiryType string `json:"inquiry_type"`
	Response    string `json:"response"`
}

// BookingWorkflowResult is the coordinator's terminal response for one
// booking workflow. Only the success path fills all fields.
type BookingWorkflowResult struct {
	Status        string              `json:"status"`
	BookingStatus BookingStatus       `json:"booking_status,omitempty"`
	Reservation   *Reservation        `json:"reservation,omitempty"`
	Payment       *PaymentResult      `json:"payment,omitempty"`
	Confirmation  *ConfirmationResult `json:"confirmation,omitempty"`
	Message       string              `json:"message,omitempty"`
}

type CompletedWorkflow struct {
	Reservation Reservation `json:"reservation"`
	Status      string      `json:"status"`
}

type BookingStatusRequest struct {
	ReservationID string `json:"reservation_id"`
}

type BookingStatusResult struct {
	Status  string             `json:"status"`
	Booking *CompletedWorkflow `json:"booking,omitempty"`
	Message string             `json:"message,omitempty"`
}

type WorkflowNotification struct {
	ReservationID string `json:"reservation_id,omitempty"`
	Status        string `json:"status"`
	Message       string `json:"message,omitempty"`
}

type ErrorPayload struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
