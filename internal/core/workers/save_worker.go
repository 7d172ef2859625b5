package workers

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Saver interface {
	Save(ctx context.Context) error
}

const saveTimeout = 10 * time.Second

// SaveWorker persists the habit store in the background after changes.
// Requests queued while a save is pending are coalesced into it.
type SaveWorker struct {
	store  Saver
	jobs   chan struct{}
	done   chan struct{}
	logger *zap.Logger
}

func NewSaveWorker(store Saver, logger *zap.Logger) *SaveWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SaveWorker{
		store:  store,
		jobs:   make(chan struct{}, 1),
		done:   make(chan struct{}),
		logger: logger.Named("save_worker"),
	}
}

// Start runs the worker until ctx is cancelled. Pending changes are flushed
// before Done is closed.
func (w *SaveWorker) Start(ctx context.Context) {
	go func() {
		defer close(w.done)
		w.logger.Info("save worker started")
		for {
			select {
			case <-w.jobs:
				w.process(context.Background())
			case <-ctx.Done():
				select {
				case <-w.jobs:
					w.process(context.Background())
				default:
				}
				w.logger.Info("save worker stopped")
				return
			}
		}
	}()
}

// Done is closed once the worker has exited.
func (w *SaveWorker) Done() <-chan struct{} {
	return w.done
}

func (w *SaveWorker) Enqueue() {
	select {
	case w.jobs <- struct{}{}:
	default:
		// a save is already pending and will include this change
	}
}

// Flush saves synchronously.
func (w *SaveWorker) Flush(ctx context.Context) error {
	return w.store.Save(ctx)
}

func (w *SaveWorker) process(parent context.Context) {
	ctx, cancel := context.WithTimeout(parent, saveTimeout)
	defer cancel()

	if err := w.store.Save(ctx); err != nil {
		w.logger.Error("failed to persist habits", zap.Error(err))
		return
	}
	w.logger.Debug("habits persisted")
}
