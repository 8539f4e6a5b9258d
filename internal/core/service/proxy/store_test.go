package proxy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storepulse/insight-api/internal/core/domain"
	"github.com/storepulse/insight-api/internal/core/idcodec"
	"github.com/storepulse/insight-api/internal/core/ports"
	"github.com/storepulse/insight-api/internal/infrastructure/analytics"
)

type stubStoreLinks struct {
	linked   map[int64]int64
	unlinked []int64
}

func newStubStoreLinks() *stubStoreLinks {
	return &stubStoreLinks{linked: make(map[int64]int64)}
}

func (s *stubStoreLinks) StoreIDsByAccount(_ context.Context, accountID int64) ([]int64, error) {
	var ids []int64
	for storeID, owner := range s.linked {
		if owner == accountID {
			ids = append(ids, storeID)
		}
	}
	return ids, nil
}

func (s *stubStoreLinks) IsOwner(_ context.Context, storeID, accountID int64) (bool, error) {
	return s.linked[storeID] == accountID, nil
}

func (s *stubStoreLinks) Link(_ context.Context, storeID, accountID int64) error {
	s.linked[storeID] = accountID
	return nil
}

func (s *stubStoreLinks) Unlink(_ context.Context, storeID int64) error {
	s.unlinked = append(s.unlinked, storeID)
	delete(s.linked, storeID)
	return nil
}

func newStoreProxy(t *testing.T, upstream http.HandlerFunc) (*StoreProxy, *stubStoreLinks, *idcodec.Codec, func()) {
	t.Helper()
	srv := httptest.NewServer(upstream)

	codec, err := idcodec.New("0123456789abcdef")
	require.NoError(t, err)

	links := newStubStoreLinks()
	client := analytics.NewClient(srv.URL, 5*time.Second, zerolog.Nop())
	return NewStoreProxy(client, codec, links, zerolog.Nop()), links, codec, srv.Close
}

func TestStoreProxy_Register_EncodesIDsAndLinksOwnership(t *testing.T) {
	// Large enough to lose precision as a float64; json.Number must carry it.
	const storeID = int64(9007199254740995)

	p, links, codec, done := newStoreProxy(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/store/register-with-business", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","store_id":9007199254740995,"store_info":{"store_id":9007199254740995,"store_name":"Corner Cafe"}}`))
	})
	defer done()

	result, err := p.RegisterWithBusiness(context.Background(), 42, ports.StoreRegisterInput{
		StoreName:      "Corner Cafe",
		BusinessNumber: "1234567890",
		POSType:        "toss",
		Category:       "cafe",
	})
	require.NoError(t, err)

	assert.Equal(t, codec.Encode(storeID), result["store_id"])
	info := result["store_info"].(map[string]any)
	assert.Equal(t, codec.Encode(storeID), info["store_id"])

	owner, ok := links.linked[storeID]
	require.True(t, ok, "ownership link not recorded")
	assert.Equal(t, int64(42), owner)
}

func TestStoreProxy_Register_Classification(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   *domain.Error
	}{
		{"422 business verification", 422, `{"detail":"verification failed"}`, domain.ErrBusinessVerifyFailed},
		{"400 store name signature", 400, `{"detail":"store name must be at least 2 characters"}`, domain.ErrInvalidStoreName},
		{"400 unknown body", 400, `{"detail":"???"}`, domain.ErrInvalidRequestField},
		{"500 registration phrase", 500, `{"detail":"error while registering store"}`, domain.ErrStoreRegistration},
		{"500 unknown body", 500, `{"detail":"raw upstream stack"}`, domain.ErrInternalServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, links, _, done := newStoreProxy(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})
			defer done()

			_, err := p.RegisterWithBusiness(context.Background(), 1, ports.StoreRegisterInput{})
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, links.linked, "no ownership link on failure")
		})
	}
}

func TestStoreProxy_List_EncodesEveryStore(t *testing.T) {
	p, _, codec, done := newStoreProxy(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/store/list/7", r.URL.Path)
		w.Write([]byte(`{"stores":[{"store_id":1,"store_name":"a"},{"store_id":2,"store_name":"b"}],"count":2}`))
	})
	defer done()

	result, err := p.List(context.Background(), 7)
	require.NoError(t, err)

	stores := result["stores"].([]any)
	require.Len(t, stores, 2)
	assert.Equal(t, codec.Encode(1), stores[0].(map[string]any)["store_id"])
	assert.Equal(t, codec.Encode(2), stores[1].(map[string]any)["store_id"])
}

func TestStoreProxy_Detail_NotFound(t *testing.T) {
	p, _, _, done := newStoreProxy(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"store not found"}`))
	})
	defer done()

	_, err := p.Detail(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

func TestStoreProxy_Detail_BadRequestFallsBackToIDFormat(t *testing.T) {
	p, _, _, done := newStoreProxy(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"whatever"}`))
	})
	defer done()

	_, err := p.Detail(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrInvalidIDFormat)
}

func TestStoreProxy_Delete_Unlinks(t *testing.T) {
	p, links, _, done := newStoreProxy(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.Write([]byte(`{"status":"success"}`))
	})
	defer done()

	links.linked[55] = 42
	_, err := p.Delete(context.Background(), 55)
	require.NoError(t, err)
	assert.Contains(t, links.unlinked, int64(55))
}

func TestStoreProxy_TransportErrorIsInternal(t *testing.T) {
	p, _, _, done := newStoreProxy(t, func(w http.ResponseWriter, r *http.Request) {})
	done() // close immediately so the call fails at the transport level

	_, err := p.List(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrInternalServer)
}
