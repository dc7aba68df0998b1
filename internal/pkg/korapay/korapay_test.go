package korapay

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Path          string
	Authorization string
	Body          []byte
}

// fakeKorapay answers every request with the next queued reply and records what it got
type fakeKorapay struct {
	t        *testing.T
	mu       sync.Mutex
	replies  []fakeReply
	requests []recordedRequest
	server   *httptest.Server
}

type fakeReply struct {
	status int
	body   string
}

func newFakeKorapay(t *testing.T, replies ...fakeReply) *fakeKorapay {
	f := &fakeKorapay{t: t, replies: replies}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			Body:          body,
		})
		reply := fakeReply{status: http.StatusOK, body: `{"status":true}`}
		if len(f.replies) > 0 {
			reply = f.replies[0]
			f.replies = f.replies[1:]
		}
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(reply.status)
		_, _ = w.Write([]byte(reply.body))
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeKorapay) calls() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func (f *fakeKorapay) lastPayload(t *testing.T) map[string]interface{} {
	calls := f.calls()
	require.NotEmpty(t, calls)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(calls[len(calls)-1].Body, &payload))
	return payload
}

func testConfig(baseURL, env string) *models.Config {
	return &models.Config{
		App: models.AppConfig{Environment: env},
		Korapay: models.KorapayConfig{
			BaseURL:   baseURL,
			SecretKey: "sk_test_secret",
			Timeout:   2 * time.Second,
		},
		Platform: models.PlatformConfig{
			Name:     "DuesPay",
			Email:    "payments@duespay.app",
			Currency: "NGN",
		},
	}
}

func newTestClient(f *fakeKorapay, env string, opts ...Option) *Client {
	return NewClient(testConfig(f.server.URL, env), nil, opts...)
}
