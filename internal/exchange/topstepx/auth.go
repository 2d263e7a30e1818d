package topstepx

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/souravmenon1999/topstepx-engine/internal/metrics"
	"github.com/souravmenon1999/topstepx-engine/types"
)

// tokenExpiryBuffer is subtracted from the token lifetime so a refresh
// happens before the venue actually rejects the credential.
const tokenExpiryBuffer = 5 * time.Minute

// Authenticate obtains a session token via POST /api/Auth/loginKey and
// stores it in the session synchronously. The token's expiry is read from
// its JWT exp claim when present.
func (e *Executor) Authenticate(ctx context.Context) error {
	if e.cfg.Auth.Username == "" || e.cfg.Auth.APIKey == "" {
		return types.NewAuthRequiredError("API key and username are required")
	}

	payload := &loginKeyRequest{UserName: e.cfg.Auth.Username, APIKey: e.cfg.Auth.APIKey}
	status, body, err := e.post(ctx, loginKeyPath, payload, "", true)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return &types.ExecError{
			Kind:       types.AuthRequiredError,
			Message:    fmt.Sprintf("login failed: HTTP %d: %s", status, string(body)),
			HTTPStatus: status,
		}
	}

	token, err := extractToken(body)
	if err != nil {
		return err
	}

	e.session.SetToken(token)

	if expiry, err := jwtExpiry(token); err == nil {
		e.session.SetTokenExpiry(expiry)
		e.logger.Info().Time("expiry", expiry).Msg("authenticated with TopstepX")
	} else {
		e.logger.Warn().Err(err).Msg("authenticated, but token expiry could not be determined")
	}

	metrics.AuthRefreshes.Inc()
	return nil
}

// EnsureValidToken authenticates only when no token is held, the expiry
// is unknown, or the token expires within the refresh buffer.
func (e *Executor) EnsureValidToken(ctx context.Context) error {
	if !e.tokenExpired() {
		return nil
	}
	return e.Authenticate(ctx)
}

func (e *Executor) tokenExpired() bool {
	if _, ok := e.session.Token(); !ok {
		return true
	}
	expiry, ok := e.session.TokenExpiry()
	if !ok {
		// Unknown expiration: assume expired.
		return true
	}
	return time.Now().Add(tokenExpiryBuffer).After(expiry)
}

// extractToken pulls the session token from a loginKey response. The
// venue returns either a JSON object with a "token" field or the bare
// token as a JSON string.
func extractToken(body []byte) (string, error) {
	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", types.NewInvalidResponseError("failed to parse login response: " + err.Error())
	}

	switch v := decoded.(type) {
	case string:
		if v != "" {
			return v, nil
		}
	case map[string]interface{}:
		if errVal, present := v["error"]; present && errVal != nil {
			return "", types.NewAuthRequiredError(fmt.Sprintf("login failed: %v", errVal))
		}
		if token, ok := v["token"].(string); ok && token != "" {
			return token, nil
		}
		msg := stringField(v, "errorMessage")
		if msg == "" {
			msg = stringField(v, "message")
		}
		if msg != "" {
			return "", types.NewAuthRequiredError("login failed: " + msg)
		}
	}
	return "", types.NewAuthRequiredError("login failed: no token received from API")
}

// jwtExpiry decodes the exp claim of a JWT without verifying the
// signature; the server issued the token, so its claims are trusted.
func jwtExpiry(token string) (time.Time, error) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return time.Time{}, errors.New("token is not a JWT")
	}

	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(parts[1], "="))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to decode JWT payload: %w", err)
	}

	var claims struct {
		Exp int64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse JWT claims: %w", err)
	}
	if claims.Exp == 0 {
		return time.Time{}, errors.New("JWT has no exp claim")
	}

	return time.Unix(claims.Exp, 0).UTC(), nil
}
