package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/storepulse/insight-api/internal/core/domain"
	"github.com/storepulse/insight-api/internal/core/ports"
)

const verificationTTL = 5 * time.Minute

// MailService implements the email verification-code flow and the
// password-reset mail. Delivery is asynchronous through the dispatcher;
// a send failure is logged by the worker, never surfaced to the caller.
type MailService struct {
	accounts    ports.AccountRepository
	codes       ports.VerificationStore
	dispatcher  ports.MailDispatcher
	tokens      *TokenService
	frontendURL string
	log         zerolog.Logger
}

func NewMailService(
	accounts ports.AccountRepository,
	codes ports.VerificationStore,
	dispatcher ports.MailDispatcher,
	tokens *TokenService,
	frontendURL string,
	log zerolog.Logger,
) *MailService {
	return &MailService{
		accounts:    accounts,
		codes:       codes,
		dispatcher:  dispatcher,
		tokens:      tokens,
		frontendURL: frontendURL,
		log:         log,
	}
}

// SendVerification stores a fresh 6-digit code under the recipient address
// and queues the mail. The stored entry expires on its own after five
// minutes; a successful check deletes it immediately.
func (s *MailService) SendVerification(ctx context.Context, email string) error {
	code := fmt.Sprintf("%06d", 100000+rand.Intn(900000))

	if err := s.codes.Put(ctx, email, code, verificationTTL); err != nil {
		return domain.ErrInternalServer
	}

	s.dispatcher.Enqueue(domain.MailJob{
		To:       email,
		Subject:  "Email verification",
		HTMLBody: "<h3>Your verification code</h3><h1>" + code + "</h1><h3>Thank you.</h3>",
	})
	return nil
}

// CheckVerification consumes the stored code. Absent, expired and mismatched
// codes fail identically.
func (s *MailService) CheckVerification(ctx context.Context, email, code string) error {
	ok, err := s.codes.Consume(ctx, email, code)
	if err != nil {
		return domain.ErrInternalServer
	}
	if !ok {
		return domain.ErrInvalidMailNumber
	}
	return nil
}

// SendPasswordReset mails a reset link carrying a five-minute action token
// for the account behind the address.
func (s *MailService) SendPasswordReset(ctx context.Context, email string) error {
	account, err := s.accounts.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.ErrUserNotFound
	}
	if err != nil {
		return err
	}

	token, err := s.tokens.Issue(account.ID, ActionTokenTTL)
	if err != nil {
		return err
	}

	link := s.frontendURL + "/password/reset?token=" + url.QueryEscape(token)
	s.dispatcher.Enqueue(domain.MailJob{
		To:       email,
		Subject:  "Password reset link",
		HTMLBody: "<h3>Your password reset link</h3><h5>" + link + "</h5><h3>Thank you.</h3>",
	})
	return nil
}
