package agents

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"hotel/entities"
	"hotel/message"
)

// Confirmation renders booking notices and records that they were sent.
// Delivery itself is out of scope: "sending" means storing the rendered
// text keyed by reservation id.
type Confirmation struct {
	handlers map[string]handlerFunc
	logger   *logrus.Entry

	mu   sync.Mutex
	sent map[string]entities.ConfirmationRecord
}

func NewConfirmation() *Confirmation {
	c := &Confirmation{
		logger: logrus.WithField("agent", ConfirmationID),
		sent:   map[string]entities.ConfirmationRecord{},
	}
	c.handlers = map[string]handlerFunc{
		ActionSendConfirmation: c.sendConfirmation,
		ActionSendCancellation: c.sendCancellation,
	}
	return c
}

func (c *Confirmation) ID() string {
	return ConfirmationID
}

func (c *Confirmation) Handle(ctx context.Context, msg *message.Message) *message.Message {
	return dispatch(ctx, c.handlers, msg)
}

func (c *Confirmation) sendConfirmation(ctx context.Context, msg *message.Message) *message.Message {
	var req entities.ConfirmationRequest
	if err := msg.Decode(&req); err != nil {
		return msg.ErrorReply(fmt.Sprintf("failed to send confirmation: %v", err))
	}
	if req.Reservation.ReservationID == "" {
		return msg.ErrorReply("failed to send confirmation: reservation id is required")
	}
	if req.Reservation.Customer.Name == "" || req.Reservation.Customer.Email == "" {
		return msg.ErrorReply("failed to send confirmation: customer name and email are required")
	}

	rendered := renderConfirmation(req.Reservation, req.Payment)

	// Not idempotent: a second send for the same reservation overwrites
	// the stored record.
	c.mu.Lock()
	c.sent[req.Reservation.ReservationID] = entities.ConfirmationRecord{
		ReservationID: req.Reservation.ReservationID,
		SentAt:        time.Now().UTC(),
		Message:       rendered,
		CustomerEmail: req.Reservation.Customer.Email,
	}
	c.mu.Unlock()

	c.logger.WithFields(logrus.Fields{
		"reservation_id": req.Reservation.ReservationID,
		"customer_email": req.Reservation.Customer.Email,
	}).Info("Confirmation sent")

	return reply(msg, entities.ConfirmationResult{
		Status:              entities.StatusSuccess,
		ConfirmationSent:    true,
		ConfirmationMessage: rendered,
		Message:             "Confirmation email sent successfully",
	})
}

func (c *Confirmation) sendCancellation(ctx context.Context, msg *message.Message) *message.Message {
	var req entities.CancellationRequest
	if err := msg.Decode(&req); err != nil {
		return msg.ErrorReply(fmt.Sprintf("failed to send cancellation notice: %v", err))
	}
	if req.ReservationID == "" || req.CustomerEmail == "" {
		return msg.ErrorReply("failed to send cancellation notice: reservation id and customer email are required")
	}

	c.logger.WithFields(logrus.Fields{
		"reservation_id": req.ReservationID,
		"customer_email": req.CustomerEmail,
	}).Info("Cancellation notice sent")

	return reply(msg, entities.CancellationResult{
		Status:           entities.StatusSuccess,
		CancellationSent: true,
		Message:          "Cancellation notice sent successfully",
	})
}

// Sent returns the stored confirmation record for a reservation.
func (c *Confirmation) Sent(reservationID string) (entities.ConfirmationRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	record, ok := c.sent[reservationID]
	return record, ok
}

func renderConfirmation(reservation entities.Reservation, payment entities.PaymentResult) string {
	transactionID := payment.TransactionID
	if transactionID == "" {
		transactionID = "N/A"
	}

	return fmt.Sprintf(`Dear %s,

Your booking has been confirmed!

Reservation Details:
- Reservation ID: %s
- Room Type: %s
- Check-in: %s
- Check-out: %s
- Number of Guests: %d
- Total Amount: $%.2f
- Transaction ID: %s

We look forward to welcoming you!

Best regards,
Hotel Management
`,
		reservation.Customer.Name,
		reservation.ReservationID,
		reservation.RoomType,
		reservation.CheckInDate.Format(time.RFC3339),
		reservation.CheckOutDate.Format(time.RFC3339),
		reservation.NumberOfGuests,
		reservation.TotalPrice,
		transactionID,
	)
}
