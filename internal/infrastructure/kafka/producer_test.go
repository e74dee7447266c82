package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DRSN-tech/food-delivery/internal/cfg"
	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/jitter"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	errs     []error
	calls    int
	messages []kafka.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.calls++
	if len(w.errs) > 0 {
		err := w.errs[0]
		w.errs = w.errs[1:]
		if err != nil {
			return err
		}
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func testBackoff() jitter.Backoff {
	return jitter.Backoff{Base: time.Millisecond, Max: 2 * time.Millisecond}
}

func testEvent() *usecase.OrderPlacedEvent {
	return &usecase.OrderPlacedEvent{
		EventID:    "evt-1",
		SessionID:  "sess-1",
		Lines:      []usecase.OrderLine{{Name: "Apple", Category: "Fruits", PriceCents: 1343, Quantity: 1, LineTotalCents: 1343}},
		TotalCents: 1343,
		PlacedAt:   time.Now(),
	}
}

func TestProducer_PublishOrderPlaced(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	p := newProducer(w, logger.NewNopLogger(), &cfg.KafkaCfg{Topic: "orders.placed"}, testBackoff())

	require.NoError(t, p.PublishOrderPlaced(context.Background(), testEvent()))
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, []byte("sess-1"), msg.Key)
	assert.Contains(t, string(msg.Value), `"event_type":"order_placed"`)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "order_placed", string(msg.Headers[0].Value))
}

func TestProducer_RetriesTemporaryErrors(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{errs: []error{errors.New("connection refused"), kafka.LeaderNotAvailable}}
	p := newProducer(w, logger.NewNopLogger(), &cfg.KafkaCfg{}, testBackoff())

	require.NoError(t, p.PublishOrderPlaced(context.Background(), testEvent()))
	assert.Equal(t, 3, w.calls)
	assert.Len(t, w.messages, 1)
}

func TestProducer_PermanentErrorStopsRetry(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{errs: []error{kafka.MessageSizeTooLarge}}
	p := newProducer(w, logger.NewNopLogger(), &cfg.KafkaCfg{}, testBackoff())

	err := p.PublishOrderPlaced(context.Background(), testEvent())
	assert.ErrorIs(t, err, kafka.MessageSizeTooLarge)
	assert.Equal(t, 1, w.calls)
}

func TestProducer_GivesUpAfterAttempts(t *testing.T) {
	t.Parallel()

	refused := errors.New("connection refused")
	w := &fakeWriter{errs: []error{refused, refused, refused, refused}}
	p := newProducer(w, logger.NewNopLogger(), &cfg.KafkaCfg{}, testBackoff())

	err := p.PublishOrderPlaced(context.Background(), testEvent())
	assert.ErrorIs(t, err, refused)
	assert.Equal(t, publishAttempts, w.calls)
}
