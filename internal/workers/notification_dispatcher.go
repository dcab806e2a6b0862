package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-messagely/internal/adapter"
	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/models"
)

// NotificationDispatcher delivers new-message notifications to the outbound
// notifier from a buffered queue, keeping webhook latency off the request
// path. The dispatcher is idle until Run is called.
type NotificationDispatcher struct {
	notifier adapter.MessageNotifier
	logger   *logger.Logger
	queue    chan models.MessageNotification

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewNotificationDispatcher creates a dispatcher with a queue of the given
// size. A non-positive queueSize defaults to 128.
func NewNotificationDispatcher(notifier adapter.MessageNotifier, queueSize int, log *logger.Logger) *NotificationDispatcher {
	if queueSize <= 0 {
		queueSize = 128
	}

	return &NotificationDispatcher{
		notifier: notifier,
		logger:   log,
		queue:    make(chan models.MessageNotification, queueSize),
	}
}

// Enqueue hands a notification to the dispatcher without blocking the
// caller. When the queue is full the notification is dropped with a warning;
// message delivery to the recipient is never affected.
func (d *NotificationDispatcher) Enqueue(notification models.MessageNotification) {
	select {
	case d.queue <- notification:
	default:
		d.logger.Warn().
			Str("func", "NotificationDispatcher.Enqueue").
			Int64("message_id", notification.MessageID).
			Msg("notification queue is full, dropping notification")
	}
}

// Run implements [Worker]. It stops any previously running loop, then
// launches a background goroutine that drains the queue and pushes each
// notification to the notifier. The goroutine exits when ctx is cancelled
// or Stop is called; the queue is drained before exiting.
func (d *NotificationDispatcher) Run(ctx context.Context) {
	d.Stop()

	d.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()

		for {
			select {
			case <-loopCtx.Done():
				d.drain()
				return
			case notification := <-d.queue:
				d.deliver(loopCtx, notification)
			}
		}
	}()
}

// Stop implements [Worker]. It cancels the dispatch loop and blocks until
// the goroutine has fully exited. Safe to call when the dispatcher is not
// running (no-op in that case).
func (d *NotificationDispatcher) Stop() {
	d.mu.Lock()
	cancel := d.cancel
	d.cancel = nil
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	d.wg.Wait()
}

// drain flushes whatever is left in the queue at shutdown. Deliveries use
// a background context since the loop context is already cancelled.
func (d *NotificationDispatcher) drain() {
	for {
		select {
		case notification := <-d.queue:
			d.deliver(context.Background(), notification)
		default:
			return
		}
	}
}

func (d *NotificationDispatcher) deliver(ctx context.Context, notification models.MessageNotification) {
	if err := d.notifier.NotifyNewMessage(ctx, notification); err != nil {
		d.logger.Err(err).
			Str("func", "NotificationDispatcher.deliver").
			Int64("message_id", notification.MessageID).
			Str("to_username", notification.ToUsername).
			Msg("failed to deliver message notification")
	}
}
