package httpretry

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/nftcom/goledger/base/ctx"
)

func makeGet(t *testing.T, url string) func() (*http.Request, error) {
	t.Helper()
	return func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, url, nil)
	}
}

func TestDoRetryAfterTakesPrecedence(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.Client())
	started := time.Now()
	resp, err := c.Do(ctx, makeGet(t, srv.URL))
	req.NoError(err)
	defer resp.Body.Close()

	req.Equal(http.StatusOK, resp.StatusCode)
	req.EqualValues(2, atomic.LoadInt32(&calls))
	// the header-supplied zero wait overrides the exponential backoff, so
	// the retry fires well before the first backoff step
	req.Less(time.Since(started), defaultBackoffStart)
}

func TestDoRetriesServerErrorOnGet(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.Client())
	resp, err := c.Do(ctx, makeGet(t, srv.URL))
	req.NoError(err)
	defer resp.Body.Close()

	req.Equal(http.StatusOK, resp.StatusCode)
	req.EqualValues(2, atomic.LoadInt32(&calls))
}

func TestDoDoesNotRetryServerErrorOnPost(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.Client())
	resp, err := c.Do(ctx, func() (*http.Request, error) {
		return http.NewRequest(http.MethodPost, srv.URL, nil)
	})
	req.NoError(err)
	defer resp.Body.Close()

	// a 5xx on a non-idempotent request is handed back, not replayed
	req.Equal(http.StatusBadGateway, resp.StatusCode)
	req.EqualValues(1, atomic.LoadInt32(&calls))
}

func TestDoExhaustsAttempts(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(srv.Client())
	_, err := c.Do(ctx, makeGet(t, srv.URL))
	req.ErrorIs(err, ErrAttemptsExhausted)
	req.EqualValues(defaultAttempts, atomic.LoadInt32(&calls))
}
