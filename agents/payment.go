package agents

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/sirupsen/logrus"

	"hotel/entities"
	"hotel/message"
	"hotel/metrics"
)

// DefaultSuccessRate models a flaky payment gateway: roughly one in ten
// charges fails.
const DefaultSuccessRate = 0.9

// Payment simulates a payment gateway. The outcome is stochastic on
// purpose; tests inject their own random source to force either path.
type Payment struct {
	successRate float64
	random      func() float64
	handlers    map[string]handlerFunc
	logger      *logrus.Entry

	mu        sync.Mutex
	processed map[string]*entities.PaymentRecord
}

func NewPayment(successRate float64, random func() float64) *Payment {
	if random == nil {
		random = rand.Float64
	}
	p := &Payment{
		successRate: successRate,
		random:      random,
		logger:      logrus.WithField("agent", PaymentID),
		processed:   map[string]*entities.PaymentRecord{},
	}
	p.handlers = map[string]handlerFunc{
		ActionProcessPayment: p.processPayment,
		ActionRefundPayment:  p.refundPayment,
	}
	return p
}

func (p *Payment) ID() string {
	return PaymentID
}

func (p *Payment) Handle(ctx context.Context, msg *message.Message) *message.Message {
	return dispatch(ctx, p.handlers, msg)
}

func (p *Payment) processPayment(ctx context.Context, msg *message.Message) *message.Message {
	var req entities.PaymentRequest
	if err := msg.Decode(&req); err != nil {
		return msg.ErrorReply(fmt.Sprintf("payment processing error: %v", err))
	}
	if req.ReservationID == "" {
		return msg.ErrorReply("payment processing error: reservation id is required")
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "credit_card"
	}

	if p.random() >= p.successRate {
		metrics.PaymentsProcessed.WithLabelValues("failed").Inc()
		p.logger.WithField("reservation_id", req.ReservationID).Warn("Payment declined")

		// A declined charge is an expected outcome, not an error: no
		// record is stored and no transaction id is issued.
		return reply(msg, entities.PaymentResult{
			Status:        entities.StatusFailed,
			PaymentStatus: entities.PaymentFailed,
			Message:       "Payment processing failed. Please try again.",
		})
	}

	transactionID := fmt.Sprintf("TXN%s%04d", req.ReservationID, 1000+int(p.random()*9000))

	p.mu.Lock()
	p.processed[req.ReservationID] = &entities.PaymentRecord{
		ReservationID: req.ReservationID,
		TransactionID: transactionID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Status:        entities.PaymentCompleted,
	}
	p.mu.Unlock()

	metrics.PaymentsProcessed.WithLabelValues("completed").Inc()
	p.logger.WithFields(logrus.Fields{
		"reservation_id": req.ReservationID,
		"transaction_id": transactionID,
		"amount":         req.Amount,
	}).Info("Payment processed")

	return reply(msg, entities.PaymentResult{
		Status:        entities.StatusSuccess,
		PaymentStatus: entities.PaymentCompleted,
		TransactionID: transactionID,
		Amount:        req.Amount,
		Message:       fmt.Sprintf("Payment of $%.2f processed successfully", req.Amount),
	})
}

func (p *Payment) refundPayment(ctx context.Context, msg *message.Message) *message.Message {
	var req entities.RefundRequest
	if err := msg.Decode(&req); err != nil {
		return msg.ErrorReply(fmt.Sprintf("refund processing error: %v", err))
	}

	p.mu.Lock()
	record, ok := p.processed[req.ReservationID]
	if ok {
		record.Status = entities.PaymentRefunded
	}
	p.mu.Unlock()

	if !ok {
		return msg.ErrorReply("no payment found for this reservation")
	}

	metrics.PaymentsProcessed.WithLabelValues("refunded").Inc()
	p.logger.WithFields(logrus.Fields{
		"reservation_id": req.ReservationID,
		"amount":         record.Amount,
	}).Info("Payment refunded")

	return reply(msg, entities.RefundResult{
		Status:        entities.StatusSuccess,
		PaymentStatus: entities.PaymentRefunded,
		Amount:        record.Amount,
		Message:       fmt.Sprintf("Refund of $%.2f processed successfully", record.Amount),
	})
}

// Record returns a copy of the stored payment record for a reservation.
func (p *Payment) Record(reservationID string) (entities.PaymentRecord, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	record, ok := p.processed[reservationID]
	if !ok {
		return entities.PaymentRecord{}, false
	}
	return *record, true
}
