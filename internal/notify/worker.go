package notify

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/store"

	"github.com/google/uuid"
)

// Store is the slice of persistence the worker touches.
type Store interface {
	ListOutboxEvents(ctx context.Context, after time.Time, limit int) ([]store.OutboxEvent, error)
	GetLastOffset(ctx context.Context) (time.Time, error)
	UpdateOffset(ctx context.Context, last time.Time) error
	InsertNotification(ctx context.Context, notification store.Notification) error
	MarkNotificationSent(ctx context.Context, notificationID string) error
	MarkNotificationFailed(ctx context.Context, notificationID, reason string) error
	InsertDLQ(ctx context.Context, notificationID, reason string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

// Worker drains the registration outbox and mails the affected user.
// Provider failures are recorded on the notification row and never bubble
// up: registration must not block on email delivery.
type Worker struct {
	store       Store
	provider    Provider
	batchSize   int
	maxAttempts int
}

type Config struct {
	BatchSize   int
	MaxAttempts int
}

type payloadData map[string]string

func NewWorker(st Store, provider Provider, cfg Config) *Worker {
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = 50
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	return &Worker{store: st, provider: provider, batchSize: batch, maxAttempts: maxAttempts}
}

func (w *Worker) Run(ctx context.Context) error {
	last, err := w.store.GetLastOffset(ctx)
	if err != nil {
		return err
	}

	events, err := w.store.ListOutboxEvents(ctx, last, w.batchSize)
	if err != nil {
		return err
	}

	for _, event := range events {
		if err := w.processEvent(ctx, event); err != nil {
			log.Printf("notify process event=%s error: %v", event.EventID, err)
		}
		last = event.CreatedAt
	}

	if !last.IsZero() {
		if err := w.store.UpdateOffset(ctx, last); err != nil {
			return err
		}
	}
	return nil
}

func (w *Worker) processEvent(ctx context.Context, event store.OutboxEvent) error {
	payload := payloadData{}
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return err
	}

	subject, template := templateForEvent(event.Type)
	if template == "" {
		return nil
	}
	recipient := payload["email"]
	if recipient == "" {
		return nil
	}
	body := renderTemplate(template, payload)

	notification := store.Notification{
		NotificationID: uuid.NewString(),
		Recipient:      recipient,
		Subject:        subject,
		Status:         "pending",
		Attempts:       1,
	}
	if err := w.store.InsertNotification(ctx, notification); err != nil {
		return err
	}

	if sendErr := w.provider.Send(ctx, recipient, subject, body); sendErr != nil {
		if err := w.store.MarkNotificationFailed(ctx, notification.NotificationID, sendErr.Error()); err != nil {
			return err
		}
		if notification.Attempts >= w.maxAttempts {
			return w.store.InsertDLQ(ctx, notification.NotificationID, "max attempts reached")
		}
		return nil
	}
	return w.store.MarkNotificationSent(ctx, notification.NotificationID)
}

func templateForEvent(eventType string) (subject, body string) {
	switch eventType {
	case "registration.received":
		return "Registration received",
			"Hi {full_name}, your Research Hub registration was received and is awaiting admin review."
	case "registration.approved":
		return "Registration approved",
			"Hi {full_name}, your Research Hub account has been approved. You can now log in."
	case "registration.rejected":
		return "Registration rejected",
			"Hi {full_name}, your Research Hub registration was rejected. Reason: {rejection_reason}"
	default:
		return "", ""
	}
}

func renderTemplate(template string, payload payloadData) string {
	result := template
	result = strings.ReplaceAll(result, "{full_name}", payload["full_name"])
	result = strings.ReplaceAll(result, "{email}", payload["email"])
	result = strings.ReplaceAll(result, "{rejection_reason}", payload["rejection_reason"])
	return result
}

// Start polls on interval until the context is cancelled. Sweep errors and
// run errors are logged, never fatal.
func Start(ctx context.Context, interval time.Duration, w *Worker) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.Run(ctx); err != nil {
				log.Printf("notify worker error: %v", err)
			}
			if n, err := w.store.DeleteExpiredSessions(ctx); err != nil {
				log.Printf("session sweep error: %v", err)
			} else if n > 0 {
				log.Printf("session sweep removed=%d", n)
			}
		}
	}
}
