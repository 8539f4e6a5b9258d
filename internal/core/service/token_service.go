package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/storepulse/insight-api/internal/core/domain"
)

// Named TTL presets. The mechanism is TTL-parametric; these are the two
// lifetimes the product currently uses.
const (
	SessionTokenTTL = 7 * 24 * time.Hour // browser sessions
	ActionTokenTTL  = 5 * time.Minute    // single-purpose links (password reset)
)

// TokenService issues and validates signed bearer tokens carrying a single
// subject claim. It is stateless: no revocation list exists and expiry is
// the only lifecycle bound, so instances are freely shareable.
type TokenService struct {
	secret []byte
	log    zerolog.Logger
	now    func() time.Time
}

func NewTokenService(secret string, log zerolog.Logger) *TokenService {
	return &TokenService{secret: []byte(secret), log: log, now: time.Now}
}

// Issue signs a token whose subject is the internal account id.
func (s *TokenService) Issue(accountID int64, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(accountID, 10),
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", domain.ErrInternalServer
	}
	return signed, nil
}

// Validate checks signature and expiry and returns the subject account id.
// Malformed, tampered and expired tokens all fail identically with
// ErrInvalidToken so callers cannot be used as an oracle; the distinction
// is logged internally.
func (s *TokenService) Validate(token string) (int64, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			s.log.Debug().Msg("token rejected: expired")
		} else {
			s.log.Debug().Msg("token rejected: invalid signature or malformed")
		}
		return 0, domain.ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, domain.ErrInvalidToken
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidToken
	}
	return id, nil
}
