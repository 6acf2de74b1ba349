package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProcessor struct {
	mu   sync.Mutex
	seen []string
}

func (c *countingProcessor) Reprocess(_ context.Context, messageID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen = append(c.seen, messageID)
	return nil
}

func TestProcessorQueueDrainsOnShutdown(t *testing.T) {
	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, nil, WithWorkers(2), WithQueueSize(8))

	ctx := context.Background()
	require.NoError(t, q.Enqueue(ctx, Job{MessageID: "m1"}))
	require.NoError(t, q.Enqueue(ctx, Job{MessageID: "m2"}))
	require.NoError(t, q.Enqueue(ctx, Job{MessageID: "m3"}))

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	q.Shutdown(shutdownCtx)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.ElementsMatch(t, []string{"m1", "m2", "m3"}, proc.seen)
}

func TestProcessorQueueEnqueueAfterShutdown(t *testing.T) {
	q := NewProcessorQueue(&countingProcessor{}, nil, WithWorkers(1))
	q.Shutdown(context.Background())
	// Must not panic on the closed channel.
	assert.NoError(t, q.Enqueue(context.Background(), Job{MessageID: "late"}))
}
