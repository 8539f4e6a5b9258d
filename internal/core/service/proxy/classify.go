package proxy

import (
	"bytes"

	"github.com/storepulse/insight-api/internal/core/domain"
)

// signature maps a known upstream body phrase to a domain error kind.
type signature struct {
	phrase string
	err    *domain.Error
}

// classification is the per-operation mapping from a failed upstream
// response to the closed error taxonomy. Resolution order:
//
//	404            → notFound (when set)
//	422            → unprocessable (when set)
//	other 4xx      → first matching badRequest signature, else badRequestFallback
//	5xx            → first matching processing signature, else ErrInternalServer
//
// Every non-2xx upstream response terminates in exactly one taxonomy member;
// raw upstream bodies never pass through to the client.
type classification struct {
	notFound           *domain.Error
	unprocessable      *domain.Error
	badRequest         []signature
	badRequestFallback *domain.Error
	processing         []signature
}

func (cl classification) classify(status int, body []byte) error {
	switch {
	case status == 404 && cl.notFound != nil:
		return cl.notFound
	case status == 422 && cl.unprocessable != nil:
		return cl.unprocessable
	case status >= 400 && status < 500:
		for _, sig := range cl.badRequest {
			if bytes.Contains(body, []byte(sig.phrase)) {
				return sig.err
			}
		}
		if cl.badRequestFallback != nil {
			return cl.badRequestFallback
		}
		return domain.ErrInvalidRequestField
	default:
		for _, sig := range cl.processing {
			if bytes.Contains(body, []byte(sig.phrase)) {
				return sig.err
			}
		}
		return domain.ErrInternalServer
	}
}
