package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/storepulse/insight-api/internal/core/domain"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []domain.MailJob
	fail bool
	done chan struct{}
}

func (m *recordingMailer) Send(_ context.Context, job domain.MailJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		m.signal()
		return errors.New("smtp down")
	}
	m.sent = append(m.sent, job)
	m.signal()
	return nil
}

func (m *recordingMailer) signal() {
	select {
	case m.done <- struct{}{}:
	default:
	}
}

func (m *recordingMailer) jobs() []domain.MailJob {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.MailJob(nil), m.sent...)
}

func waitFor(t *testing.T, mailer *recordingMailer, want int) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if len(mailer.jobs()) >= want {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for %d deliveries, got %d", want, len(mailer.jobs()))
		case <-mailer.done:
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestDispatcher_DeliversJobs(t *testing.T) {
	mailer := &recordingMailer{done: make(chan struct{}, 16)}
	d := NewDispatcher(4, mailer, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(domain.MailJob{To: "a@example.com", Subject: "one"})
	d.Enqueue(domain.MailJob{To: "b@example.com", Subject: "two"})

	waitFor(t, mailer, 2)

	subjects := map[string]bool{}
	for _, j := range mailer.jobs() {
		subjects[j.Subject] = true
	}
	assert.True(t, subjects["one"])
	assert.True(t, subjects["two"])
}

func TestDispatcher_SameRecipientKeepsOrder(t *testing.T) {
	mailer := &recordingMailer{done: make(chan struct{}, 16)}
	d := NewDispatcher(4, mailer, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for _, subject := range []string{"first", "second", "third"} {
		d.Enqueue(domain.MailJob{To: "same@example.com", Subject: subject})
	}

	waitFor(t, mailer, 3)

	jobs := mailer.jobs()
	assert.Equal(t, "first", jobs[0].Subject)
	assert.Equal(t, "second", jobs[1].Subject)
	assert.Equal(t, "third", jobs[2].Subject)
}

func TestDispatcher_FailedSendIsDropped(t *testing.T) {
	mailer := &recordingMailer{done: make(chan struct{}, 16), fail: true}
	d := NewDispatcher(2, mailer, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(domain.MailJob{To: "x@example.com", Subject: "doomed"})

	// Wait for the attempt, then confirm nothing was recorded as sent.
	select {
	case <-mailer.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivery attempt")
	}
	assert.Empty(t, mailer.jobs())
}

func TestDispatcher_ZeroWorkersUsesDefault(t *testing.T) {
	d := NewDispatcher(0, &recordingMailer{done: make(chan struct{}, 1)}, zerolog.Nop())
	assert.Len(t, d.workers, defaultWorkers)
}
