package topstepx

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/souravmenon1999/topstepx-engine/internal/config"
	"github.com/souravmenon1999/topstepx-engine/internal/exchange"
	"github.com/souravmenon1999/topstepx-engine/internal/infra"
	"github.com/souravmenon1999/topstepx-engine/internal/logging"
	"github.com/souravmenon1999/topstepx-engine/internal/session"
	"github.com/souravmenon1999/topstepx-engine/types"
)

// TopstepX REST endpoints.
const (
	placeOrderPath        = "/api/Order/place"
	modifyOrderPath       = "/api/Order/modify"
	cancelOrderPath       = "/api/Order/cancel"
	loginKeyPath          = "/api/Auth/loginKey"
	contractAvailablePath = "/api/Contract/available"
)

// Transport pool settings. The 30s request timeout is the only timeout;
// a timeout surfaces as a transport error and is never retried.
const (
	requestTimeout      = 30 * time.Second
	maxIdleConnsPerHost = 10
	idleConnTimeout     = 90 * time.Second
)

// Executor implements the exchange.OrderExecutor interface for TopstepX
// over its REST API. One long-lived pooled HTTP client serves all calls;
// the session store (credential + contract cache) is shared across every
// operation on the instance.
type Executor struct {
	cfg        *config.Config
	baseURL    string
	httpClient *http.Client
	session    *session.Session
	limiter    *infra.RateLimiter
	logger     zerolog.Logger

	// sleep is the backoff wait between place retries, overridable in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

var _ exchange.OrderExecutor = (*Executor)(nil)

// NewExecutor creates a new TopstepX execution client bound to the
// configured base URL (trailing slashes stripped).
func NewExecutor(cfg *config.Config) *Executor {
	transport := &http.Transport{
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
	}

	return &Executor{
		cfg:     cfg,
		baseURL: strings.TrimRight(cfg.Executor.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   requestTimeout,
			Transport: transport,
		},
		session: session.NewSession(),
		limiter: infra.NewRateLimiter(cfg.RateLimit.MaxCalls,
			time.Duration(cfg.RateLimit.PeriodSeconds)*time.Second),
		logger: logging.GetLogger().With().Str("component", "topstepx_executor").Logger(),
		sleep:  sleepContext,
	}
}

// Session exposes the shared session store.
func (e *Executor) Session() *session.Session {
	return e.session
}

// SetToken replaces the session credential. The write is synchronous:
// an order issued after SetToken returns will observe the new value.
func (e *Executor) SetToken(token string) {
	e.session.SetToken(token)
}

// Token returns the current session credential.
func (e *Executor) Token() (string, bool) {
	return e.session.Token()
}

// SetContractID caches the contract id for a symbol.
func (e *Executor) SetContractID(symbol string, id int64) {
	e.session.SetContractID(symbol, id)
}

// ContractID looks up the cached contract id for a symbol.
func (e *Executor) ContractID(symbol string) (int64, bool) {
	return e.session.ContractID(symbol)
}

// Close releases pooled connections.
func (e *Executor) Close() error {
	e.httpClient.CloseIdleConnections()
	return nil
}

// post sends one JSON POST to the venue and returns the status code and
// raw body. Pure transport: no retries, no interpretation. token may be
// empty for unauthenticated endpoints; acceptPlain adds the venue's
// "accept: text/plain" header used by the order and login endpoints.
func (e *Executor) post(ctx context.Context, path string, payload interface{}, token string, acceptPlain bool) (int, []byte, error) {
	if err := e.limiter.Acquire(ctx); err != nil {
		return 0, nil, types.NewTransportError("rate limit wait aborted", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, types.NewInvalidResponseError("failed to encode request payload: " + err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, nil, types.NewTransportError("failed to create HTTP request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if acceptPlain {
		req.Header.Set("accept", "text/plain")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		e.logger.Error().Err(err).Str("path", path).Msg("HTTP request failed")
		return 0, nil, types.NewTransportError("HTTP request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, types.NewTransportError("failed to read response body", err)
	}

	return resp.StatusCode, respBody, nil
}

// sleepContext waits for d or until the context is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
