package httpretry

import (
	"net/http"
	"strconv"
	"time"

	"golang.org/x/xerrors"

	"github.com/nftcom/goledger/base/backoff"
	bCtx "github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/base/log"
)

const (
	defaultAttempts     = 3
	defaultBackoffStart = 500 * time.Millisecond
	defaultBackoffLimit = 8 * time.Second
)

var ErrAttemptsExhausted = xerrors.New("retry attempts exhausted")

// Client wraps an http.Client with bounded retry for transient failures:
// network errors, 5xx on idempotent requests, and 429. A server-supplied
// Retry-After header takes precedence over the exponential backoff.
type Client struct {
	http     *http.Client
	attempts int
}

func New(httpClient *http.Client) *Client {
	return &Client{
		http:     httpClient,
		attempts: defaultAttempts,
	}
}

// Do issues the request built by makeReq, retrying up to the attempt budget.
// makeReq is called once per attempt so request bodies are never reused.
func (c *Client) Do(ctx bCtx.Ctx, makeReq func() (*http.Request, error)) (*http.Response, error) {
	bo := backoff.NewExponential(defaultBackoffStart, defaultBackoffLimit)

	var lastErr error
	for attempt := 0; attempt < c.attempts; attempt++ {
		if attempt > 0 {
			if err := bo.Backoff(ctx); err != nil {
				return nil, err
			}
		}

		req, err := makeReq()
		if err != nil {
			return nil, err
		}
		req = req.WithContext(ctx)

		resp, err := c.http.Do(req)
		if err != nil {
			ctx.WithFields(log.Fields{
				"url":     req.URL.String(),
				"attempt": attempt,
				"err":     err,
			}).Warn("http request failed")
			lastErr = err
			continue
		}

		if !shouldRetry(req, resp) {
			return resp, nil
		}

		ctx.WithFields(log.Fields{
			"url":        req.URL.String(),
			"attempt":    attempt,
			"statusCode": resp.StatusCode,
		}).Warn("retryable status code")
		lastErr = xerrors.Errorf("status code %d: %w", resp.StatusCode, ErrAttemptsExhausted)

		if wait, ok := retryAfter(resp); ok {
			resp.Body.Close()
			sleepCtx, cancel := bCtx.WithTimeout(ctx, wait)
			<-sleepCtx.Done()
			cancel()
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			bo.Reset()
			continue
		}
		resp.Body.Close()
	}

	return nil, lastErr
}

func shouldRetry(req *http.Request, resp *http.Response) bool {
	if resp.StatusCode == http.StatusTooManyRequests {
		return true
	}
	// only idempotent requests are safe to replay on server errors
	if resp.StatusCode >= 500 && (req.Method == http.MethodGet || req.Method == http.MethodHead) {
		return true
	}
	return false
}

func retryAfter(resp *http.Response) (time.Duration, bool) {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(h); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second, true
	}
	if t, err := http.ParseTime(h); err == nil {
		if wait := time.Until(t); wait > 0 {
			return wait, true
		}
	}
	return 0, false
}
