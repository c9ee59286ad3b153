package agents

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"hotel/entities"
	"hotel/message"
)

var inquiryResponses = map[string]string{
	"room_types": "We offer Single, Double, Suite, and Deluxe rooms.",
	"amenities":  "All rooms include WiFi, TV, air conditioning, and complimentary breakfast.",
	"policies":   "Check-in: 3 PM, Check-out: 11 AM. Cancellation allowed up to 24 hours before check-in.",
}

const inquiryFallback = "Please contact our support for more information."

// Receptionist validates incoming booking requests and turns them into
// pending reservations. It never checks availability or pricing; the
// coordinator delegates that to the Availability agent.
type Receptionist struct {
	handlers map[string]handlerFunc
	logger   *logrus.Entry
}

func NewReceptionist() *Receptionist {
	r := &Receptionist{
		logger: logrus.WithField("agent", ReceptionistID),
	}
	r.handlers = map[string]handlerFunc{
		ActionCreateBooking: r.createBooking,
		ActionInquiry:       r.inquiry,
	}
	return r
}

func (r *Receptionist) ID() string {
	return ReceptionistID
}

func (r *Receptionist) Handle(ctx context.Context, msg *message.Message) *message.Message {
	return dispatch(ctx, r.handlers, msg)
}

func (r *Receptionist) createBooking(ctx context.Context, msg *message.Message) *message.Message {
	var req entities.CreateBookingRequest
	if err := msg.Decode(&req); err != nil {
		return msg.ErrorReply(fmt.Sprintf("failed to process booking request: %v", err))
	}

	reservation, err := r.buildReservation(req)
	if err != nil {
		return msg.ErrorReply(fmt.Sprintf("failed to process booking request: %v", err))
	}

	r.logger.WithFields(logrus.Fields{
		"reservation_id": reservation.ReservationID,
		"room_type":      reservation.RoomType,
	}).Info("Created pending reservation")

	return reply(msg, entities.BookingCreated{
		Status:      entities.StatusSuccess,
		Reservation: reservation,
		Message:     "Booking request received and processed",
	})
}

func (r *Receptionist) buildReservation(req entities.CreateBookingRequest) (entities.Reservation, error) {
	roomType, err := entities.ParseRoomType(req.Booking.RoomType)
	if err != nil {
		return entities.Reservation{}, err
	}

	checkIn, err := entities.ParseDate(req.Booking.CheckInDate)
	if err != nil {
		return entities.Reservation{}, fmt.Errorf("invalid check-in date: %w", err)
	}

	checkOut, err := entities.ParseDate(req.Booking.CheckOutDate)
	if err != nil {
		return entities.Reservation{}, fmt.Errorf("invalid check-out date: %w", err)
	}

	return entities.NewReservation(
		req.Customer,
		roomType,
		checkIn,
		checkOut,
		req.Booking.NumberOfGuests,
		req.Booking.SpecialRequests,
	)
}

func (r *Receptionist) inquiry(ctx context.Context, msg *message.Message) *message.Message {
	var req entities.InquiryRequest
	if err := msg.Decode(&req); err != nil {
		return msg.ErrorReply(fmt.Sprintf("failed to process inquiry: %v", err))
	}

	response, ok := inquiryResponses[req.InquiryType]
	if !ok {
		response = inquiryFallback
	}

	return reply(msg, entities.InquiryResult{
		Status:      entities.StatusSuccess,
		InquiryType: req.InquiryType,
		Response:    response,
	})
}
