package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dheerghayush/naturals/pkg/config"
)

func TestRecorderAndNop(t *testing.T) {
	t.Parallel()

	var _ Publisher = Nop{}
	var _ Publisher = (*Producer)(nil)

	r := &Recorder{}
	require.NoError(t, r.PublishEvent(context.Background(), TopicOrders, "o1", OrderEvent{Type: OrderCreated}))
	require.Len(t, r.Events, 1)
	assert.Equal(t, "o1", r.Events[0].Key)
	assert.NoError(t, Nop{}.PublishEvent(context.Background(), TopicOrders, "o1", nil))
}

func TestProducer_DoesNotBlockOnDeadBroker(t *testing.T) {
	t.Parallel()

	p := NewProducer([]string{"127.0.0.1:1"}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer p.Close()
	require.True(t, p.writer.Async)

	start := time.Now()
	_ = p.PublishEvent(context.Background(), TopicOrders, "o1", OrderEvent{Type: OrderCreated})
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestProducer_Integration(t *testing.T) {
	brokers := config.CSV(os.Getenv("KAFKA_TEST_BROKERS"))
	if len(brokers) == 0 {
		t.Skip("KAFKA_TEST_BROKERS is not set")
	}

	topic := "order_events_test_" + strings.ReplaceAll(uuid.NewString()[:8], "-", "")
	p := NewProducer(brokers, slog.Default())
	p.writer.Async = false
	defer p.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ev := OrderEvent{Type: OrderCreated, OrderID: "o1", OrderStatus: "pending", OccurredAt: time.Now().UTC()}
	require.Eventually(t, func() bool {
		return p.PublishEvent(ctx, topic, "o1", ev) == nil
	}, 20*time.Second, time.Second)

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:   brokers,
		Topic:     topic,
		Partition: 0,
		MinBytes:  1,
		MaxBytes:  1 << 20,
	})
	defer reader.Close()

	msg, err := reader.ReadMessage(ctx)
	require.NoError(t, err)

	var got OrderEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, "o1", string(msg.Key))
	assert.Equal(t, OrderCreated, got.Type)
}
