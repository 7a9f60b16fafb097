package fbbotw

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturedRequest records one request seen by the test server.
type capturedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   map[string]any
}

// requestRecorder captures requests for later assertions.
type requestRecorder struct {
	mu       sync.Mutex
	requests []capturedRequest

	status int
	body   string
}

func (r *requestRecorder) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var body map[string]any
		if data, _ := io.ReadAll(req.Body); len(data) > 0 {
			json.Unmarshal(data, &body)
		}

		r.mu.Lock()
		r.requests = append(r.requests, capturedRequest{
			Method: req.Method,
			Path:   req.URL.Path,
			Query:  req.URL.Query(),
			Body:   body,
		})
		r.mu.Unlock()

		status := r.status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		if r.body != "" {
			w.Write([]byte(r.body))
		} else {
			w.Write([]byte(`{"recipient_id":"123","message_id":"mid.1"}`))
		}
	})
}

func (r *requestRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

func (r *requestRecorder) request(i int) capturedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.requests[i]
}

// newTestClient points a client with a static token at a recording server.
func newTestClient(t *testing.T, rec *requestRecorder, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(rec.handler())
	t.Cleanup(server.Close)
	opts = append([]Option{
		WithBaseURL(server.URL),
		WithAccessToken("test-token"),
	}, opts...)
	return New(opts...)
}

func TestNew_Defaults(t *testing.T) {
	client := New()
	assert.Equal(t, "v3.1", client.Version())
}

func TestNew_WithVersion(t *testing.T) {
	rec := &requestRecorder{}
	client := newTestClient(t, rec, WithVersion("v12.0"))

	_, err := client.SendTextMessage(context.Background(), "123", "hi")
	require.NoError(t, err)
	assert.Equal(t, "/v12.0/me/messages", rec.request(0).Path)
}

func TestClient_TokenInQueryString(t *testing.T) {
	rec := &requestRecorder{}
	client := newTestClient(t, rec)

	_, err := client.SendTextMessage(context.Background(), "123", "hi")
	require.NoError(t, err)
	assert.Equal(t, "test-token", rec.request(0).Query.Get("access_token"))
}

func TestClient_MissingTokenFailsBeforeNetwork(t *testing.T) {
	t.Setenv(EnvAccessToken, "")
	rec := &requestRecorder{}
	server := httptest.NewServer(rec.handler())
	t.Cleanup(server.Close)

	client := New(WithBaseURL(server.URL))
	_, err := client.SendTextMessage(context.Background(), "123", "hi")

	require.ErrorIs(t, err, ErrMissingAccessToken)
	assert.Equal(t, 0, rec.count(), "no request may be issued without a token")
}

func TestClient_EnvTokenResolvedPerCall(t *testing.T) {
	rec := &requestRecorder{}
	server := httptest.NewServer(rec.handler())
	t.Cleanup(server.Close)
	client := New(WithBaseURL(server.URL))

	t.Setenv(EnvAccessToken, "first")
	_, err := client.SendTextMessage(context.Background(), "123", "hi")
	require.NoError(t, err)

	t.Setenv(EnvAccessToken, "second")
	_, err = client.SendTextMessage(context.Background(), "123", "hi")
	require.NoError(t, err)

	assert.Equal(t, "first", rec.request(0).Query.Get("access_token"))
	assert.Equal(t, "second", rec.request(1).Query.Get("access_token"))
}

func TestClient_NonSuccessStatusIsNotError(t *testing.T) {
	rec := &requestRecorder{status: http.StatusBadRequest, body: `{"error":{"message":"Invalid parameter"}}`}
	client := newTestClient(t, rec)

	resp, err := client.SendTextMessage(context.Background(), "123", "hi")
	require.NoError(t, err, "non-2xx statuses surface through the response, not the error")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, resp.OK())
	assert.JSONEq(t, `{"error":{"message":"Invalid parameter"}}`, string(resp.Body))
}
