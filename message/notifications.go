package message

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	watermillMessage "github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const NotificationsTopic = "booking-notifications"

// Notifier publishes terminal workflow outcomes for external observers
// on an in-process pub/sub. It is fire-and-forget: the booking pipeline
// never waits on a subscriber.
type Notifier struct {
	pubSub *gochannel.GoChannel
}

func NewNotifier(logger watermill.LoggerAdapter) *Notifier {
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	return &Notifier{
		pubSub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 64},
			logger,
		),
	}
}

func (n *Notifier) Publish(msg *Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	wm := watermillMessage.NewMessage(msg.ID, payload)
	wm.Metadata.Set("kind", string(msg.Kind))
	wm.Metadata.Set("action", msg.Action)
	if msg.CorrelationID != "" {
		wm.Metadata.Set("correlation_id", msg.CorrelationID)
	}

	return n.pubSub.Publish(NotificationsTopic, wm)
}

func (n *Notifier) Subscribe(ctx context.Context) (<-chan *watermillMessage.Message, error) {
	return n.pubSub.Subscribe(ctx, NotificationsTopic)
}

func (n *Notifier) Close() error {
	return n.pubSub.Close()
}
