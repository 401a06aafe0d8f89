package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/store"
)

type fakeStore struct {
	events        []store.OutboxEvent
	offset        time.Time
	notifications []store.Notification
	sent          []string
	failed        []string
	dlq           []string
}

func (f *fakeStore) ListOutboxEvents(ctx context.Context, after time.Time, limit int) ([]store.OutboxEvent, error) {
	var out []store.OutboxEvent
	for _, event := range f.events {
		if event.CreatedAt.After(after) {
			out = append(out, event)
		}
	}
	return out, nil
}

func (f *fakeStore) GetLastOffset(ctx context.Context) (time.Time, error) { return f.offset, nil }

func (f *fakeStore) UpdateOffset(ctx context.Context, last time.Time) error {
	f.offset = last
	return nil
}

func (f *fakeStore) InsertNotification(ctx context.Context, n store.Notification) error {
	f.notifications = append(f.notifications, n)
	return nil
}

func (f *fakeStore) MarkNotificationSent(ctx context.Context, id string) error {
	f.sent = append(f.sent, id)
	return nil
}

func (f *fakeStore) MarkNotificationFailed(ctx context.Context, id, reason string) error {
	f.failed = append(f.failed, id)
	return nil
}

func (f *fakeStore) InsertDLQ(ctx context.Context, id, reason string) error {
	f.dlq = append(f.dlq, id)
	return nil
}

func (f *fakeStore) DeleteExpiredSessions(ctx context.Context) (int64, error) { return 0, nil }

type recordingProvider struct {
	sent []string
	err  error
}

func (p *recordingProvider) Send(ctx context.Context, recipient, subject, body string) error {
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, recipient)
	return nil
}

func event(eventType string, at time.Time) store.OutboxEvent {
	return store.OutboxEvent{
		EventID:   eventType + "-" + at.Format(time.RFC3339Nano),
		Type:      eventType,
		Payload:   []byte(`{"user_id":"u-1","email":"student@sust.edu","full_name":"Aisha Khan","rejection_reason":"missing student id"}`),
		CreatedAt: at,
	}
}

func TestWorkerSendsApprovalMail(t *testing.T) {
	now := time.Now().UTC()
	st := &fakeStore{events: []store.OutboxEvent{event("registration.approved", now)}}
	provider := &recordingProvider{}

	if err := NewWorker(st, provider, Config{}).Run(context.Background()); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if len(provider.sent) != 1 || provider.sent[0] != "student@sust.edu" {
		t.Fatalf("expected one mail to student@sust.edu, got %v", provider.sent)
	}
	if len(st.sent) != 1 {
		t.Fatalf("expected notification marked sent, got %v", st.sent)
	}
	if !st.offset.Equal(now) {
		t.Fatalf("expected offset advanced to %v, got %v", now, st.offset)
	}
}

func TestWorkerProviderFailureIsSwallowed(t *testing.T) {
	now := time.Now().UTC()
	st := &fakeStore{events: []store.OutboxEvent{event("registration.received", now)}}
	provider := &recordingProvider{err: errors.New("smtp down")}

	if err := NewWorker(st, provider, Config{MaxAttempts: 1}).Run(context.Background()); err != nil {
		t.Fatalf("provider failure must not fail the run: %v", err)
	}
	if len(st.failed) != 1 {
		t.Fatalf("expected one failed notification, got %v", st.failed)
	}
	if len(st.dlq) != 1 {
		t.Fatalf("expected DLQ row at max attempts, got %v", st.dlq)
	}
	if len(st.sent) != 0 {
		t.Fatalf("nothing should be marked sent, got %v", st.sent)
	}
}

func TestWorkerSkipsUnknownEventTypes(t *testing.T) {
	now := time.Now().UTC()
	st := &fakeStore{events: []store.OutboxEvent{event("thesis.published", now)}}
	provider := &recordingProvider{}

	if err := NewWorker(st, provider, Config{}).Run(context.Background()); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if len(provider.sent) != 0 {
		t.Fatalf("unknown event types should send nothing, got %v", provider.sent)
	}
	if !st.offset.Equal(now) {
		t.Fatalf("offset should still advance past skipped events")
	}
}

func TestRenderTemplate(t *testing.T) {
	payload := payloadData{"full_name": "Aisha Khan", "rejection_reason": "missing student id"}
	got := renderTemplate("Hi {full_name}. Reason: {rejection_reason}", payload)
	want := "Hi Aisha Khan. Reason: missing student id"
	if got != want {
		t.Fatalf("unexpected template render: %s", got)
	}
}
