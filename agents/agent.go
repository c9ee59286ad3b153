package agents

import (
	"context"
	"fmt"

	"hotel/message"
)

// Agent ids double as bus addresses.
const (
	ReceptionistID = "receptionist"
	AvailabilityID = "availability"
	PaymentID      = "payment"
	ConfirmationID = "confirmation"
	CoordinatorID  = "coordinator"
)

// Actions understood by the agents. The set is small and fixed, so each
// agent routes through an explicit table instead of open dispatch.
const (
	ActionCreateBooking     = "create_booking"
	ActionInquiry           = "inquiry"
	ActionCheckAvailability = "check_availability"
	ActionCalculatePrice    = "calculate_price"
	ActionProcessPayment    = "process_payment"
	ActionRefundPayment     = "refund_payment"
	ActionSendConfirmation  = "send_confirmation"
	ActionSendCancellation  = "send_cancellation"
	ActionStartBooking      = "start_booking"
	ActionBookingStatus     = "get_booking_status"
)

type handlerFunc func(ctx context.Context, msg *message.Message) *message.Message

func dispatch(ctx context.Context, handlers map[string]handlerFunc, msg *message.Message) *message.Message {
	if msg.Kind != message.KindRequest {
		return msg.ErrorReply(fmt.Sprintf("unsupported message kind %q", msg.Kind))
	}

	handler, ok := handlers[msg.Action]
	if !ok {
		return msg.ErrorReply(fmt.Sprintf("unknown action %q", msg.Action))
	}

	return handler(ctx, msg)
}

func reply(msg *message.Message, payload any) *message.Message {
	resp, err := msg.Reply(payload)
	if err != nil {
		return msg.ErrorReply(err.Error())
	}
	return resp
}
