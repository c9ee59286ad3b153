package message

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/lithammer/shortuuid/v3"

	"hotel/metrics"
)

// Endpoint is one addressable agent on the bus.
type Endpoint interface {
	ID() string
	Handle(ctx context.Context, msg *Message) *Message
}

// Bus delivers envelopes to registered endpoints. Delivery is a direct
// synchronous call: Send blocks until the receiver returns its response,
// there is no queueing and no background execution.
type Bus struct {
	logger    watermill.LoggerAdapter
	endpoints map[string]Endpoint
}

func NewBus(logger watermill.LoggerAdapter) *Bus {
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	return &Bus{
		logger:    logger,
		endpoints: map[string]Endpoint{},
	}
}

func (b *Bus) Register(endpoint Endpoint) {
	if endpoint == nil {
		panic("endpoint is required")
	}
	b.endpoints[endpoint.ID()] = endpoint
}

// Send routes msg to its receiver and returns the receiver's response.
// Panics in handlers are recovered here and converted to Error replies;
// this is the single containment point for unexpected faults.
func (b *Bus) Send(ctx context.Context, msg *Message) (resp *Message) {
	if msg.Kind == KindRequest && msg.CorrelationID == "" {
		msg.CorrelationID = shortuuid.New()
	}

	fields := watermill.LogFields{
		"message_id":     msg.ID,
		"sender":         msg.Sender,
		"receiver":       msg.Receiver,
		"kind":           string(msg.Kind),
		"action":         msg.Action,
		"correlation_id": msg.CorrelationID,
	}

	metrics.MessagesSent.WithLabelValues(msg.Receiver, string(msg.Kind)).Inc()
	b.logger.Debug("Sending message", fields)

	endpoint, ok := b.endpoints[msg.Receiver]
	if !ok {
		err := fmt.Errorf("unknown receiver %q", msg.Receiver)
		b.logger.Error("Cannot deliver message", err, fields)
		return msg.ErrorReply(err.Error())
	}

	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Recovered panic in message handler", fmt.Errorf("%v", r), fields)
			resp = msg.ErrorReply(fmt.Sprintf("internal error: %v", r))
		}
		if resp != nil && resp.CorrelationID == "" {
			resp.CorrelationID = msg.ID
		}
		if resp != nil && resp.IsError() {
			b.logger.Info("Message handled with error response", fields)
		}
	}()

	resp = endpoint.Handle(ctx, msg)
	if resp == nil {
		resp = msg.ErrorReply(fmt.Sprintf("no response from %q for action %q", msg.Receiver, msg.Action))
	}

	return resp
}
