package proxy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/storepulse/insight-api/internal/core/domain"
)

func TestClassification_ResolutionOrder(t *testing.T) {
	cl := classification{
		notFound:      domain.ErrStoreNotFound,
		unprocessable: domain.ErrBusinessVerifyFailed,
		badRequest: []signature{
			{"store name must be at least 2 characters", domain.ErrInvalidStoreName},
			{"business number must be 10 digits", domain.ErrInvalidBusinessNumber},
		},
		processing: []signature{
			{"error while registering store", domain.ErrStoreRegistration},
		},
	}

	cases := []struct {
		name   string
		status int
		body   string
		want   *domain.Error
	}{
		{"404 maps to the resource-specific kind", 404, `{"error":"store not found"}`, domain.ErrStoreNotFound},
		{"422 maps to the unprocessable kind", 422, `{"detail":"verification failed"}`, domain.ErrBusinessVerifyFailed},
		{"4xx with first signature", 400, `{"detail":"store name must be at least 2 characters"}`, domain.ErrInvalidStoreName},
		{"4xx with second signature", 400, `{"detail":"business number must be 10 digits"}`, domain.ErrInvalidBusinessNumber},
		{"4xx with no signature falls back generically", 400, `{"detail":"something else"}`, domain.ErrInvalidRequestField},
		{"5xx with signature", 500, `{"detail":"error while registering store"}`, domain.ErrStoreRegistration},
		{"5xx unrecognized never passes the body through", 500, `{"detail":"panic: stack trace ..."}`, domain.ErrInternalServer},
		{"503 counts as processing class", 503, ``, domain.ErrInternalServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := cl.classify(tc.status, []byte(tc.body))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestClassification_404WithoutSpecificKind(t *testing.T) {
	cl := classification{}
	// No notFound configured: a 404 is still a 4xx and must terminate in
	// the generic bad-request kind, never escape the taxonomy.
	err := cl.classify(404, []byte(`{"error":"X not found"}`))
	assert.ErrorIs(t, err, domain.ErrInvalidRequestField)
}

func TestClassification_BadRequestFallbackOverride(t *testing.T) {
	cl := classification{badRequestFallback: domain.ErrInvalidIDFormat}
	err := cl.classify(400, []byte(`{"detail":"unknown"}`))
	assert.ErrorIs(t, err, domain.ErrInvalidIDFormat)
}
