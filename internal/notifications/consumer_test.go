package notifications

import (
	"context"
	"sync"
	"testing"
	"time"

	"courtly/pkg/logger"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/require"
)

// fakeGroup blocks in Consume until the worker context is cancelled or
// the group is closed, like a real consumer group with no messages.
type fakeGroup struct {
	closed chan struct{}
	errs   chan error
	once   sync.Once
}

func newFakeGroup() *fakeGroup {
	return &fakeGroup{
		closed: make(chan struct{}),
		errs:   make(chan error),
	}
}

func (g *fakeGroup) Consume(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-g.closed:
		return sarama.ErrClosedConsumerGroup
	}
}

func (g *fakeGroup) Errors() <-chan error { return g.errs }

func (g *fakeGroup) Close() error {
	g.once.Do(func() {
		close(g.closed)
		close(g.errs)
	})
	return nil
}

func (g *fakeGroup) Pause(partitions map[string][]int32)  {}
func (g *fakeGroup) Resume(partitions map[string][]int32) {}
func (g *fakeGroup) PauseAll()                            {}
func (g *fakeGroup) ResumeAll()                           {}

func TestStopUnblocksWorkers(t *testing.T) {
	c := &Consumer{
		group:      newFakeGroup(),
		topics:     []string{"booking-events"},
		handler:    NewLogHandler(),
		maxRetries: 3,
		backoff:    time.Millisecond,
		log:        logger.GetDefault(),
	}
	c.Start(context.Background(), 2)

	done := make(chan error, 1)
	go func() { done <- c.Stop() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return, workers are stuck")
	}
}

func TestStopHonorsParentCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Consumer{
		group:      newFakeGroup(),
		topics:     []string{"booking-events"},
		handler:    NewLogHandler(),
		maxRetries: 3,
		backoff:    time.Millisecond,
		log:        logger.GetDefault(),
	}
	c.Start(ctx, 1)
	cancel()

	done := make(chan error, 1)
	go func() { done <- c.Stop() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return after parent cancellation")
	}
}
