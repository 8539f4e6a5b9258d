package ports

import (
	"context"

	"github.com/storepulse/insight-api/internal/core/domain"
)

// Mailer delivers a single email. Delivery is an external collaborator;
// implementations decide transport (SMTP in production, a recorder in tests).
type Mailer interface {
	Send(ctx context.Context, job domain.MailJob) error
}

// MailDispatcher accepts mail jobs for asynchronous delivery.
type MailDispatcher interface {
	Enqueue(job domain.MailJob)
}
