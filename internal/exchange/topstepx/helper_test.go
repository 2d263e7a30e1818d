package topstepx

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/souravmenon1999/topstepx-engine/internal/config"
)

// MockRoundTripper allows us to mock HTTP responses and count calls.
type MockRoundTripper struct {
	Func  func(req *http.Request) (*http.Response, error)
	Calls int
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.Calls++
	return m.Func(req)
}

func httpResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Executor: config.ExecutorConfig{
			BaseURL:   "https://api.topstepx.com/",
			AccountID: 9001,
		},
		Auth: config.AuthConfig{
			Username: "trader",
			APIKey:   "key-123",
		},
		Retry:     config.RetryConfig{MaxRetries: 3, BaseDelayMs: 750},
		RateLimit: config.RateLimitConfig{MaxCalls: 1000, PeriodSeconds: 60},
	}
}

// newTestExecutor builds an executor with an injected transport and a
// no-op backoff sleep that records the requested delays.
func newTestExecutor(fn func(req *http.Request) (*http.Response, error)) (*Executor, *MockRoundTripper, *[]time.Duration) {
	e := NewExecutor(testConfig())

	mock := &MockRoundTripper{Func: fn}
	e.httpClient.Transport = mock

	delays := &[]time.Duration{}
	e.sleep = func(ctx context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	}
	return e, mock, delays
}
