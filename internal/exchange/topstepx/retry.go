package topstepx

import (
	"context"
	"net/http"
	"time"

	"github.com/souravmenon1999/topstepx-engine/internal/metrics"
	"github.com/souravmenon1999/topstepx-engine/types"
)

// retryTransient re-issues a place attempt when the upstream answered
// with HTTP 500, backing off exponentially (750ms, 1500ms, 3000ms for up
// to 3 retries by default). Detection is by the recorded status code, not
// by error-message text. Any other outcome — success, a different soft
// failure, or a hard transport error — returns immediately.
func (e *Executor) retryTransient(ctx context.Context, op func() (*types.OrderResponse, error)) (*types.OrderResponse, error) {
	maxRetries := e.cfg.Retry.MaxRetries
	baseDelay := time.Duration(e.cfg.Retry.BaseDelayMs) * time.Millisecond

	retries := 0
	for {
		resp, err := op()
		if err != nil {
			return nil, err
		}

		if !resp.Success && resp.HTTPStatus == http.StatusInternalServerError && retries < maxRetries {
			retries++
			delay := backoffDelay(baseDelay, retries)
			e.logger.Warn().
				Int("attempt", retries).
				Int("max_retries", maxRetries).
				Dur("delay", delay).
				Msg("transient upstream failure, retrying")
			metrics.OrderRetries.Inc()
			if err := e.sleep(ctx, delay); err != nil {
				return nil, types.NewTransportError("retry wait aborted", err)
			}
			continue
		}

		return resp, nil
	}
}

// backoffDelay returns the exponential backoff duration for the given
// 1-based retry attempt: base * 2^(attempt-1).
func backoffDelay(base time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		return base
	}
	return base * time.Duration(1<<(attempt-1))
}
