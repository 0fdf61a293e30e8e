package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEventBus_PublishReachesSubscriber(t *testing.T) {
	bus := NewEventBus(zap.NewNop())

	var got DownloadRecorded
	err := bus.Subscribe(TopicDownloadRecorded, func(e DownloadRecorded) {
		got = e
	})
	require.NoError(t, err)

	sent := DownloadRecorded{
		DownloadID: 7,
		TelegramID: 42,
		SourceURL:  "https://pinterest.com/pin/1/",
		Title:      "Cat video",
		Timestamp:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, bus.Publish(TopicDownloadRecorded, sent))

	// delivery is synchronous
	assert.Equal(t, sent, got)
}

func TestEventBus_TopicsAreIsolated(t *testing.T) {
	bus := NewEventBus(zap.NewNop())

	calls := 0
	require.NoError(t, bus.Subscribe(TopicExtractionFailed, func(ExtractionFailed) {
		calls++
	}))

	require.NoError(t, bus.Publish(TopicDownloadRecorded, DownloadRecorded{}))
	assert.Zero(t, calls)

	require.NoError(t, bus.Publish(TopicExtractionFailed, ExtractionFailed{}))
	assert.Equal(t, 1, calls)
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus(zap.NewNop())

	calls := 0
	handler := func(DownloadRecorded) { calls++ }
	require.NoError(t, bus.Subscribe(TopicDownloadRecorded, handler))
	require.NoError(t, bus.Publish(TopicDownloadRecorded, DownloadRecorded{}))
	require.NoError(t, bus.Unsubscribe(TopicDownloadRecorded, handler))
	require.NoError(t, bus.Publish(TopicDownloadRecorded, DownloadRecorded{}))

	assert.Equal(t, 1, calls)
}

func TestEventBus_ClosedBusRejectsOperations(t *testing.T) {
	bus := NewEventBus(zap.NewNop())
	require.NoError(t, bus.Close())

	assert.Error(t, bus.Publish(TopicDownloadRecorded, DownloadRecorded{}))
	assert.Error(t, bus.Subscribe(TopicDownloadRecorded, func(DownloadRecorded) {}))

	// closing twice is a no-op
	assert.NoError(t, bus.Close())
}
