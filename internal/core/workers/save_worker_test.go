package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingSaver struct {
	mu    sync.Mutex
	calls int
	err   error
	block chan struct{}
}

func (s *countingSaver) Save(ctx context.Context) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.err
}

func (s *countingSaver) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestSaveWorker_PersistsEnqueuedChanges(t *testing.T) {
	saver := &countingSaver{}
	w := NewSaveWorker(saver, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)

	w.Enqueue()

	assert.Eventually(t, func() bool { return saver.Calls() >= 1 }, time.Second, 5*time.Millisecond)

	cancel()
	<-w.Done()
}

func TestSaveWorker_CoalescesPendingRequests(t *testing.T) {
	saver := &countingSaver{block: make(chan struct{})}
	w := NewSaveWorker(saver, zap.NewNop())

	// Not started: requests pile up in the single-slot queue.
	for i := 0; i < 10; i++ {
		w.Enqueue()
	}
	assert.Len(t, w.jobs, 1)

	close(saver.block)
	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)

	assert.Eventually(t, func() bool { return saver.Calls() == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	<-w.Done()
	assert.Equal(t, 1, saver.Calls())
}

func TestSaveWorker_FlushesOnShutdown(t *testing.T) {
	saver := &countingSaver{}
	w := NewSaveWorker(saver, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.Enqueue()
	w.Start(ctx)

	select {
	case <-w.Done():
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
	assert.Equal(t, 1, saver.Calls())
}

func TestSaveWorker_FlushReturnsError(t *testing.T) {
	boom := errors.New("disk full")
	w := NewSaveWorker(&countingSaver{err: boom}, nil)

	err := w.Flush(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestSaveWorker_ErrorsDoNotStopTheWorker(t *testing.T) {
	saver := &countingSaver{err: errors.New("transient")}
	w := NewSaveWorker(saver, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)

	w.Enqueue()
	assert.Eventually(t, func() bool { return saver.Calls() >= 1 }, time.Second, 5*time.Millisecond)
	w.Enqueue()
	assert.Eventually(t, func() bool { return saver.Calls() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	<-w.Done()
}
