package message_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/entities"
	"hotel/message"
)

type fakeEndpoint struct {
	id     string
	handle func(ctx context.Context, msg *message.Message) *message.Message

	mu       sync.Mutex
	received []*message.Message
}

func (f *fakeEndpoint) ID() string {
	return f.id
}

func (f *fakeEndpoint) Handle(ctx context.Context, msg *message.Message) *message.Message {
	f.mu.Lock()
	f.received = append(f.received, msg)
	f.mu.Unlock()

	return f.handle(ctx, msg)
}

func TestBusDeliversSynchronously(t *testing.T) {
	bus := message.NewBus(nil)
	endpoint := &fakeEndpoint{
		id: "echo",
		handle: func(ctx context.Context, msg *message.Message) *message.Message {
			resp, err := msg.Reply(testPayload{Value: "pong"})
			require.NoError(t, err)
			return resp
		},
	}
	bus.Register(endpoint)

	request, err := message.NewRequest("system", "echo", "ping", testPayload{Value: "ping"})
	require.NoError(t, err)

	response := bus.Send(context.Background(), request)

	require.Len(t, endpoint.received, 1)
	assert.Equal(t, message.KindResponse, response.Kind)
	assert.Equal(t, request.ID, response.CorrelationID)

	var decoded testPayload
	require.NoError(t, response.Decode(&decoded))
	assert.Equal(t, "pong", decoded.Value)
}

func TestBusAssignsCorrelationIDToRequests(t *testing.T) {
	bus := message.NewBus(nil)
	endpoint := &fakeEndpoint{
		id: "echo",
		handle: func(ctx context.Context, msg *message.Message) *message.Message {
			return msg.ErrorReply("ignored")
		},
	}
	bus.Register(endpoint)

	request, err := message.NewRequest("system", "echo", "ping", nil)
	require.NoError(t, err)
	require.Empty(t, request.CorrelationID)

	bus.Send(context.Background(), request)

	assert.NotEmpty(t, request.CorrelationID)
}

func TestBusUnknownReceiver(t *testing.T) {
	bus := message.NewBus(nil)

	request, err := message.NewRequest("system", "nobody", "ping", nil)
	require.NoError(t, err)

	response := bus.Send(context.Background(), request)

	require.True(t, response.IsError())

	var payload entities.ErrorPayload
	require.NoError(t, response.Decode(&payload))
	assert.Contains(t, payload.Message, "nobody")
}

func TestBusRecoversHandlerPanic(t *testing.T) {
	bus := message.NewBus(nil)
	bus.Register(&fakeEndpoint{
		id: "boom",
		handle: func(ctx context.Context, msg *message.Message) *message.Message {
			panic("handler exploded")
		},
	})

	request, err := message.NewRequest("system", "boom", "ping", nil)
	require.NoError(t, err)

	response := bus.Send(context.Background(), request)

	require.NotNil(t, response)
	require.True(t, response.IsError())
	assert.Equal(t, request.ID, response.CorrelationID)

	var payload entities.ErrorPayload
	require.NoError(t, response.Decode(&payload))
	assert.Contains(t, payload.Message, "handler exploded")
}

func TestBusNilResponseBecomesError(t *testing.T) {
	bus := message.NewBus(nil)
	bus.Register(&fakeEndpoint{
		id: "silent",
		handle: func(ctx context.Context, msg *message.Message) *message.Message {
			return nil
		},
	})

	request, err := message.NewRequest("system", "silent", "ping", nil)
	require.NoError(t, err)

	response := bus.Send(context.Background(), request)

	require.NotNil(t, response)
	assert.True(t, response.IsError())
}
