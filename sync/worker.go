package sync

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"vitalog/connectivity"
	"vitalog/repository"
)

// Syncer is one collection's syncing repository as the worker sees it.
type Syncer interface {
	Collection() string
	Pending() int
	SyncPending(ctx context.Context) int
	Status() repository.Status
}

// Worker flushes pending outbox operations to the remote in the background.
// It speeds up while there is work and backs off when the outboxes drain.
type Worker struct {
	syncers         []Syncer
	policy          *connectivity.Policy
	logger          *slog.Logger
	baseInterval    time.Duration
	maxInterval     time.Duration
	currentInterval time.Duration
	running         bool
	mu              sync.Mutex
	stopChan        chan struct{}
}

// NewWorker creates a new sync worker over the given repositories.
func NewWorker(syncers []Syncer, policy *connectivity.Policy, logger *slog.Logger, baseInterval, maxInterval time.Duration) *Worker {
	if baseInterval <= 0 {
		baseInterval = 30 * time.Second
	}
	if maxInterval < baseInterval {
		maxInterval = baseInterval
	}
	return &Worker{
		syncers:         syncers,
		policy:          policy,
		logger:          logger.With("component", "sync_worker"),
		baseInterval:    baseInterval,
		maxInterval:     maxInterval,
		currentInterval: baseInterval,
	}
}

// Start begins the background sync loop. Start after Stop starts a fresh
// loop, so the worker can be cycled with connectivity.
func (w *Worker) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.stopChan = make(chan struct{})
	stop := w.stopChan
	w.mu.Unlock()

	w.logger.Info("starting background sync worker", "base_interval", w.baseInterval, "max_interval", w.maxInterval)

	go w.run(stop)
}

// Stop gracefully stops the background sync loop.
func (w *Worker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}

	w.logger.Info("stopping background sync worker")
	close(w.stopChan)
	w.running = false
}

// run is the main worker loop with adaptive backoff.
func (w *Worker) run(stop <-chan struct{}) {
	ticker := time.NewTicker(w.currentInterval)
	defer ticker.Stop()

	// Run immediately on start
	w.SyncNow(context.Background())

	for {
		select {
		case <-ticker.C:
			flushed := w.SyncNow(context.Background())

			// Speed up while operations are flowing, back off when the
			// outboxes are empty.
			w.mu.Lock()
			if flushed > 0 || w.PendingTotal() > 0 {
				if w.currentInterval != w.baseInterval {
					w.currentInterval = w.baseInterval
					ticker.Reset(w.currentInterval)
					w.logger.Debug("work found, reset interval", "interval", w.currentInterval)
				}
			} else {
				if w.currentInterval < w.maxInterval {
					w.currentInterval = w.maxInterval
					ticker.Reset(w.currentInterval)
					w.logger.Debug("no work, increased interval", "interval", w.currentInterval)
				}
			}
			w.mu.Unlock()
		case <-stop:
			return
		}
	}
}

// SyncNow runs one sync pass over every collection and returns the number of
// operations flushed. Safe to call concurrently with the background loop.
func (w *Worker) SyncNow(ctx context.Context) int {
	if !w.policy.Online() {
		return 0
	}

	total := 0
	for _, s := range w.syncers {
		if s.Pending() == 0 {
			continue
		}
		n := s.SyncPending(ctx)
		if n > 0 {
			w.logger.Info("flushed pending operations", "collection", s.Collection(), "count", n)
		}
		total += n
	}
	return total
}

// PendingTotal sums queued operations across all collections.
func (w *Worker) PendingTotal() int {
	total := 0
	for _, s := range w.syncers {
		total += s.Pending()
	}
	return total
}

// Statuses reports per-collection sync state for the status endpoint.
func (w *Worker) Statuses() []repository.Status {
	statuses := make([]repository.Status, 0, len(w.syncers))
	for _, s := range w.syncers {
		statuses = append(statuses, s.Status())
	}
	return statuses
}
