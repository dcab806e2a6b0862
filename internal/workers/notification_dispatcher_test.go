package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/mock"
	"github.com/MKhiriev/go-messagely/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recordingNotifier collects every delivered notification.
type recordingNotifier struct {
	mu        sync.Mutex
	delivered []models.MessageNotification
	notifyErr error
}

func (r *recordingNotifier) NotifyNewMessage(_ context.Context, n models.MessageNotification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.delivered = append(r.delivered, n)
	return r.notifyErr
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.delivered)
}

func TestNotificationDispatcher_DeliversEnqueued(t *testing.T) {
	notifier := &recordingNotifier{}
	dispatcher := NewNotificationDispatcher(notifier, 8, logger.NewLogger("test"))

	dispatcher.Run(context.Background())
	defer dispatcher.Stop()

	dispatcher.Enqueue(models.MessageNotification{MessageID: 1, ToUsername: "bob"})
	dispatcher.Enqueue(models.MessageNotification{MessageID: 2, ToUsername: "bob"})

	require.Eventually(t, func() bool {
		return notifier.count() == 2
	}, time.Second, 10*time.Millisecond)

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	assert.Equal(t, int64(1), notifier.delivered[0].MessageID)
	assert.Equal(t, int64(2), notifier.delivered[1].MessageID)
}

func TestNotificationDispatcher_DrainsQueueOnStop(t *testing.T) {
	notifier := &recordingNotifier{}
	dispatcher := NewNotificationDispatcher(notifier, 8, logger.NewLogger("test"))

	// not running yet: enqueued items sit in the queue
	dispatcher.Enqueue(models.MessageNotification{MessageID: 1})
	dispatcher.Enqueue(models.MessageNotification{MessageID: 2})

	dispatcher.Run(context.Background())
	dispatcher.Stop()

	assert.Equal(t, 2, notifier.count())
}

func TestNotificationDispatcher_DropsWhenQueueFull(t *testing.T) {
	notifier := &recordingNotifier{}
	dispatcher := NewNotificationDispatcher(notifier, 1, logger.NewLogger("test"))

	// dispatcher not running: second enqueue exceeds the buffer and is dropped
	dispatcher.Enqueue(models.MessageNotification{MessageID: 1})
	dispatcher.Enqueue(models.MessageNotification{MessageID: 2})

	dispatcher.Run(context.Background())
	dispatcher.Stop()

	assert.Equal(t, 1, notifier.count())
}

func TestNotificationDispatcher_PassesNotificationThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mock.NewMockMessageNotifier(ctrl)
	notifier.EXPECT().
		NotifyNewMessage(gomock.Any(), models.MessageNotification{MessageID: 7, FromUsername: "joel", ToUsername: "bob"}).
		Return(nil)

	dispatcher := NewNotificationDispatcher(notifier, 1, logger.NewLogger("test"))
	dispatcher.Enqueue(models.MessageNotification{MessageID: 7, FromUsername: "joel", ToUsername: "bob"})

	dispatcher.Run(context.Background())
	dispatcher.Stop()
}

func TestNotificationDispatcher_StopWithoutRun(t *testing.T) {
	dispatcher := NewNotificationDispatcher(&recordingNotifier{}, 1, logger.NewLogger("test"))

	// Should not panic when the dispatcher never ran
	dispatcher.Stop()
}
