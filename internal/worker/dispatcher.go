package worker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/attesto/attesto/internal/adapter/notify"
	"github.com/attesto/attesto/internal/domain/model"
)

// Dispatcher fans notifications out to a pool of sender workers. Delivery is
// best effort: a full queue drops the notification rather than blocking the
// request path.
type Dispatcher struct {
	sender  notify.Sender
	workers int
	logger  *slog.Logger

	jobs   chan model.Notification
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewDispatcher constructs a notification worker pool.
func NewDispatcher(sender notify.Sender, workers, queueSize int, logger *slog.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Dispatcher{
		sender:  sender,
		workers: workers,
		logger:  logger,
		jobs:    make(chan model.Notification, queueSize),
	}
}

// Start launches the sender workers.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop drains in-flight sends and waits for all workers to finish.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// Notify enqueues a notification without blocking the caller.
func (d *Dispatcher) Notify(n model.Notification) {
	select {
	case d.jobs <- n:
	default:
		d.logger.Warn("notification queue full, dropping",
			slog.Int64("recipient_id", n.RecipientID),
			slog.String("kind", string(n.Kind)),
			slog.String("order_id", n.OrderID))
	}
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-d.jobs:
			if err := d.sender.Send(ctx, n); err != nil {
				d.logger.Error("notification send failed",
					slog.Int64("recipient_id", n.RecipientID),
					slog.String("kind", string(n.Kind)),
					slog.String("order_id", n.OrderID),
					slog.String("error", err.Error()))
			}
		}
	}
}
