package agents_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/agents"
	"hotel/entities"
	"hotel/message"
)

func alwaysSucceed() float64 { return 0.0 }
func alwaysFail() float64    { return 0.999 }

func TestProcessPaymentSuccess(t *testing.T) {
	payment := agents.NewPayment(agents.DefaultSuccessRate, alwaysSucceed)

	response := sendRequest(t, payment, agents.ActionProcessPayment, entities.PaymentRequest{
		ReservationID: "RES1",
		Amount:        450.0,
		PaymentMethod: "credit_card",
	})
	require.Equal(t, message.KindResponse, response.Kind)

	var result entities.PaymentResult
	require.NoError(t, response.Decode(&result))

	assert.Equal(t, entities.StatusSuccess, result.Status)
	assert.Equal(t, entities.PaymentCompleted, result.PaymentStatus)
	assert.NotEmpty(t, result.TransactionID)
	assert.Equal(t, 450.0, result.Amount)

	record, ok := payment.Record("RES1")
	require.True(t, ok)
	assert.Equal(t, result.TransactionID, record.TransactionID)
	assert.Equal(t, entities.PaymentCompleted, record.Status)
	assert.Equal(t, "credit_card", record.PaymentMethod)
}

func TestProcessPaymentFailure(t *testing.T) {
	payment := agents.NewPayment(agents.DefaultSuccessRate, alwaysFail)

	response := sendRequest(t, payment, agents.ActionProcessPayment, entities.PaymentRequest{
		ReservationID: "RES2",
		Amount:        100.0,
	})

	// A declined charge is a Response, not an Error.
	require.Equal(t, message.KindResponse, response.Kind)

	var result entities.PaymentResult
	require.NoError(t, response.Decode(&result))

	assert.Equal(t, entities.StatusFailed, result.Status)
	assert.Equal(t, entities.PaymentFailed, result.PaymentStatus)
	assert.Empty(t, result.TransactionID)

	_, ok := payment.Record("RES2")
	assert.False(t, ok, "failed charges must not be recorded")
}

func TestProcessPaymentMissingReservationID(t *testing.T) {
	payment := agents.NewPayment(agents.DefaultSuccessRate, alwaysSucceed)

	response := sendRequest(t, payment, agents.ActionProcessPayment, entities.PaymentRequest{Amount: 50.0})
	assert.True(t, response.IsError())
}

func TestProcessPaymentDefaultsMethod(t *testing.T) {
	payment := agents.NewPayment(agents.DefaultSuccessRate, alwaysSucceed)

	sendRequest(t, payment, agents.ActionProcessPayment, entities.PaymentRequest{
		ReservationID: "RES3",
		Amount:        75.0,
	})

	record, ok := payment.Record("RES3")
	require.True(t, ok)
	assert.Equal(t, "credit_card", record.PaymentMethod)
}

func TestRefundPayment(t *testing.T) {
	payment := agents.NewPayment(agents.DefaultSuccessRate, alwaysSucceed)

	sendRequest(t, payment, agents.ActionProcessPayment, entities.PaymentRequest{
		ReservationID: "RES4",
		Amount:        300.0,
	})

	response := sendRequest(t, payment, agents.ActionRefundPayment, entities.RefundRequest{ReservationID: "RES4"})
	require.Equal(t, message.KindResponse, response.Kind)

	var result entities.RefundResult
	require.NoError(t, response.Decode(&result))

	assert.Equal(t, entities.StatusSuccess, result.Status)
	assert.Equal(t, entities.PaymentRefunded, result.PaymentStatus)
	assert.Equal(t, 300.0, result.Amount)

	// The original record flips status in place.
	record, ok := payment.Record("RES4")
	require.True(t, ok)
	assert.Equal(t, entities.PaymentRefunded, record.Status)
}

func TestRefundPaymentUnknownReservation(t *testing.T) {
	payment := agents.NewPayment(agents.DefaultSuccessRate, alwaysSucceed)

	response := sendRequest(t, payment, agents.ActionRefundPayment, entities.RefundRequest{ReservationID: "RES-MISSING"})
	require.True(t, response.IsError())

	var payload entities.ErrorPayload
	require.NoError(t, response.Decode(&payload))
	assert.Contains(t, payload.Message, "no payment found")
}

func TestPaymentOutcomeFollowsSuccessRate(t *testing.T) {
	// The stochastic gateway is the point: a rate of 1 never declines,
	// a rate of 0 always does.
	always := agents.NewPayment(1.0, nil)
	never := agents.NewPayment(0.0, nil)

	for i := 0; i < 20; i++ {
		var result entities.PaymentResult

		response := sendRequest(t, always, agents.ActionProcessPayment, entities.PaymentRequest{ReservationID: "A", Amount: 1})
		require.NoError(t, response.Decode(&result))
		assert.Equal(t, entities.PaymentCompleted, result.PaymentStatus)

		response = sendRequest(t, never, agents.ActionProcessPayment, entities.PaymentRequest{ReservationID: "B", Amount: 1})
		require.NoError(t, response.Decode(&result))
		assert.Equal(t, entities.PaymentFailed, result.PaymentStatus)
	}
}
