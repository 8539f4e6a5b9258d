package ports

import (
	"context"
	"time"
)

// VerificationStore holds one-time email verification codes keyed by
// recipient address. Entries expire on their own after ttl; Consume removes
// the entry when the supplied code matches so a code can be used once.
type VerificationStore interface {
	Put(ctx context.Context, email, code string, ttl time.Duration) error
	// Consume returns true and deletes the entry when code matches the
	// stored value; false when absent or mismatched.
	Consume(ctx context.Context, email, code string) (bool, error)
}
