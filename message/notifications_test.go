package message_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/message"
)

func TestNotifierPublishesToSubscribers(t *testing.T) {
	notifier := message.NewNotifier(nil)
	defer notifier.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifications, err := notifier.Subscribe(ctx)
	require.NoError(t, err)

	notification, err := message.NewNotification("coordinator", "workflow_completed", testPayload{Value: "done"})
	require.NoError(t, err)

	require.NoError(t, notifier.Publish(notification))

	select {
	case received := <-notifications:
		assert.Equal(t, notification.ID, received.UUID)
		assert.Equal(t, "notification", received.Metadata.Get("kind"))
		assert.Equal(t, "workflow_completed", received.Metadata.Get("action"))
		received.Ack()
	case <-time.After(time.Second):
		require.Fail(t, "no notification received")
	}
}

func TestNotifierWithoutSubscribersDoesNotBlock(t *testing.T) {
	notifier := message.NewNotifier(nil)
	defer notifier.Close()

	notification, err := message.NewNotification("coordinator", "workflow_completed", nil)
	require.NoError(t, err)

	assert.NoError(t, notifier.Publish(notification))
}
