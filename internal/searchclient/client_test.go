package searchclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc, timeout time.Duration) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	hc := &http.Client{
		Timeout:   timeout,
		Transport: &http.Transport{DisableKeepAlives: true},
	}
	return NewClient(srv.URL+"/", WithHTTPClient(hc))
}

func TestClient_Suggest(t *testing.T) {
	t.Run("encodes_query_and_decodes_array", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/suggestions", r.URL.Path)
			assert.Equal(t, "san j&x", r.URL.Query().Get("q"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"city_ascii":"San Jose","country":"Costa Rica","iso2":"CR","flag":"🇨🇷"}]`))
		}, time.Second)

		got, err := c.Suggest(context.Background(), "san j&x")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, Suggestion{Name: "San Jose", Country: "Costa Rica", ISO2: "CR", Flag: "🇨🇷"}, got[0])
	})

	t.Run("null_body_is_empty_list", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`null`))
		}, time.Second)

		got, err := c.Suggest(context.Background(), "x")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("api_error_becomes_status_error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":{"code":"unavailable","message":"catalog not loaded"}}`))
		}, time.Second)

		_, err := c.Suggest(context.Background(), "x")
		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusServiceUnavailable, se.StatusCode)
		assert.Equal(t, "unavailable", se.Code)
		assert.Equal(t, "catalog not loaded", se.Message)
	})

	t.Run("non_json_error_body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}, time.Second)

		_, err := c.Suggest(context.Background(), "x")
		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, "unexpected_status", se.Code)
	})

	t.Run("malformed_body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		}, time.Second)

		_, err := c.Suggest(context.Background(), "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode suggestions")
	})

	t.Run("slow_server_times_out", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}, 50*time.Millisecond)

		_, err := c.Suggest(context.Background(), "x")
		assert.ErrorIs(t, err, ErrTimeout)
	})

	t.Run("canceled_context_is_reported_as_canceled", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}, time.Second)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := c.Suggest(ctx, "x")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("unreachable_server_is_unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		c := NewClient(url, WithHTTPClient(&http.Client{
			Timeout:   time.Second,
			Transport: &http.Transport{DisableKeepAlives: true},
		}))
		_, err := c.Suggest(context.Background(), "x")
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestClient_Random(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cities/random", r.URL.Path)
		_, _ = w.Write([]byte(`{"city_ascii":"Tokyo","country":"Japan","iso2":"JP","flag":"🇯🇵"}`))
	}, time.Second)

	got, err := c.Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", got.Name)
}

func TestClient_DrivesSession(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"city_ascii":"Paris","country":"France","iso2":"FR","flag":"🇫🇷"}]`))
	}, time.Second)

	rec := newRecorder()
	s := NewSession(c, rec.opts()...)
	defer s.Close()

	s.Type("Par")
	res := rec.next(t)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Paris", res.Items[0].Name)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("http://localhost:8080/")
	assert.Equal(t, "http://localhost:8080", c.BaseURL)
	assert.Equal(t, DefaultTimeout, c.HTTPClient.Timeout)
}
