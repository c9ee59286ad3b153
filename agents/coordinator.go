package agents

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"hotel/entities"
	"hotel/message"
	"hotel/metrics"
)

// Coordinator drives the booking workflow:
// receptionist -> availability -> payment -> confirmation,
// short-circuiting on the first failure. Each step is a synchronous
// request/response exchange over the bus.
type Coordinator struct {
	bus      *message.Bus
	notifier *message.Notifier
	handlers map[string]handlerFunc
	logger   *logrus.Entry

	mu        sync.Mutex
	completed map[string]entities.CompletedWorkflow
}

func NewCoordinator(bus *message.Bus, notifier *message.Notifier) *Coordinator {
	if bus == nil {
		panic("bus is required")
	}
	c := &Coordinator{
		bus:       bus,
		notifier:  notifier,
		logger:    logrus.WithField("agent", CoordinatorID),
		completed: map[string]entities.CompletedWorkflow{},
	}
	c.handlers = map[string]handlerFunc{
		ActionStartBooking:  c.startBooking,
		ActionBookingStatus: c.bookingStatus,
	}
	return c
}

func (c *Coordinator) ID() string {
	return CoordinatorID
}

func (c *Coordinator) Handle(ctx context.Context, msg *message.Message) *message.Message {
	return dispatch(ctx, c.handlers, msg)
}

func (c *Coordinator) startBooking(ctx context.Context, msg *message.Message) *message.Message {
	var req entities.StartBookingRequest
	if err := msg.Decode(&req); err != nil {
		return msg.ErrorReply(fmt.Sprintf("booking workflow failed: %v", err))
	}

	// Step 1: the receptionist turns the raw request into a pending
	// reservation. Its failure response is returned verbatim.
	createMsg, err := message.NewRequest(CoordinatorID, ReceptionistID, ActionCreateBooking, entities.CreateBookingRequest{
		Customer: req.Customer,
		Booking:  req.Booking,
	})
	if err != nil {
		return msg.ErrorReply(fmt.Sprintf("booking workflow failed: %v", err))
	}

	createResp := c.bus.Send(ctx, createMsg)

	var created entities.BookingCreated
	if createResp.IsError() || createResp.Decode(&created) != nil || created.Status != entities.StatusSuccess {
		c.terminal("", entities.StatusError, "booking request rejected")
		return createResp
	}
	reservation := created.Reservation

	// Step 2: availability and pricing.
	availMsg, err := message.NewRequest(CoordinatorID, AvailabilityID, ActionCheckAvailability, entities.AvailabilityRequest{
		RoomType:       string(reservation.RoomType),
		CheckInDate:    reservation.CheckInDate.Format(time.RFC3339),
		CheckOutDate:   reservation.CheckOutDate.Format(time.RFC3339),
		NumberOfGuests: reservation.NumberOfGuests,
	})
	if err != nil {
		return msg.ErrorReply(fmt.Sprintf("booking workflow failed: %v", err))
	}

	availResp := c.bus.Send(ctx, availMsg)

	var avail entities.AvailabilityResult
	_ = availResp.Decode(&avail)
	if !avail.Available {
		// The pending reservation is discarded, not recorded anywhere.
		c.terminal(reservation.ReservationID, entities.StatusUnavailable, "room not available")
		return reply(msg, entities.BookingWorkflowResult{
			Status:  entities.StatusUnavailable,
			Message: "Room not available for selected dates",
		})
	}

	// Step 3: attach the computed price.
	reservation.TotalPrice = avail.TotalPrice

	// Step 4: charge the customer. A declined payment is a terminal
	// business outcome; the reservation stays pending and is dropped.
	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "credit_card"
	}
	payMsg, err := message.NewRequest(CoordinatorID, PaymentID, ActionProcessPayment, entities.PaymentRequest{
		ReservationID: reservation.ReservationID,
		Amount:        reservation.TotalPrice,
		PaymentMethod: paymentMethod,
	})
	if err != nil {
		return msg.ErrorReply(fmt.Sprintf("booking workflow failed: %v", err))
	}

	payResp := c.bus.Send(ctx, payMsg)

	var payment entities.PaymentResult
	_ = payResp.Decode(&payment)
	if payment.PaymentStatus != entities.PaymentCompleted {
		c.terminal(reservation.ReservationID, entities.StatusPaymentFailed, "payment declined")
		return reply(msg, entities.BookingWorkflowResult{
			Status:  entities.StatusPaymentFailed,
			Message: "Payment processing failed. Please try again.",
		})
	}

	// Step 5: the booking is confirmed.
	reservation.BookingStatus = entities.BookingConfirmed
	reservation.PaymentStatus = entities.PaymentCompleted

	// Step 6: send the confirmation. A failure here does not fail the
	// workflow: the reservation stays confirmed and the failure is only
	// visible in the confirmation field of the result.
	confirmation := c.sendConfirmation(ctx, reservation, payment)

	// Step 7: record the completed workflow and respond.
	c.mu.Lock()
	c.completed[reservation.ReservationID] = entities.CompletedWorkflow{
		Reservation: reservation,
		Status:      "completed",
	}
	c.mu.Unlock()

	c.terminal(reservation.ReservationID, entities.StatusSuccess, "booking completed")
	c.logger.WithFields(logrus.Fields{
		"reservation_id": reservation.ReservationID,
		"total_price":    reservation.TotalPrice,
	}).Info("Booking workflow completed")

	return reply(msg, entities.BookingWorkflowResult{
		Status:        entities.StatusSuccess,
		BookingStatus: entities.BookingConfirmed,
		Reservation:   &reservation,
		Payment:       &payment,
		Confirmation:  &confirmation,
		Message:       "Booking completed successfully!",
	})
}

func (c *Coordinator) sendConfirmation(ctx context.Context, reservation entities.Reservation, payment entities.PaymentResult) entities.ConfirmationResult {
	confMsg, err := message.NewRequest(CoordinatorID, ConfirmationID, ActionSendConfirmation, entities.ConfirmationRequest{
		Reservation: reservation,
		Payment:     payment,
	})
	if err != nil {
		return entities.ConfirmationResult{Status: entities.StatusError, Message: err.Error()}
	}

	confResp := c.bus.Send(ctx, confMsg)

	// An Error-kind reply decodes into Status/Message here as well.
	var confirmation entities.ConfirmationResult
	if err := confResp.Decode(&confirmation); err != nil {
		return entities.ConfirmationResult{Status: entities.StatusError, Message: err.Error()}
	}
	return confirmation
}

func (c *Coordinator) bookingStatus(ctx context.Context, msg *message.Message) *message.Message {
	var req entities.BookingStatusRequest
	if err := msg.Decode(&req); err != nil {
		return msg.ErrorReply(fmt.Sprintf("failed to look up booking: %v", err))
	}

	c.mu.Lock()
	workflow, ok := c.completed[req.ReservationID]
	c.mu.Unlock()

	if !ok {
		return reply(msg, entities.BookingStatusResult{
			Status:  entities.StatusNotFound,
			Message: "Reservation not found",
		})
	}

	return reply(msg, entities.BookingStatusResult{
		Status:  entities.StatusSuccess,
		Booking: &workflow,
	})
}

// terminal records the workflow outcome in metrics and, when a notifier
// is wired, publishes it for external observers. Observational only.
func (c *Coordinator) terminal(reservationID, status, text string) {
	metrics.WorkflowsCompleted.WithLabelValues(status).Inc()

	if c.notifier == nil {
		return
	}

	notification, err := message.NewNotification(CoordinatorID, "workflow_completed", entities.WorkflowNotification{
		ReservationID: reservationID,
		Status:        status,
		Message:       text,
	})
	if err != nil {
		c.logger.WithError(err).Warn("Failed to build workflow notification")
		return
	}
	if err := c.notifier.Publish(notification); err != nil {
		c.logger.WithError(err).Warn("Failed to publish workflow notification")
	}
}
