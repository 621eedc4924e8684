// Package trackergg implements the stats-provider port against the
// Tracker Network public API.
package trackergg

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riwahl/match-scout/internal/platform/logging"
	"github.com/riwahl/match-scout/internal/platform/ratelimit"
	"github.com/riwahl/match-scout/internal/platform/resilience"
	"github.com/riwahl/match-scout/internal/usecase"
)

const (
	providerName    = "trackergg"
	defaultBaseURL  = "https://public-api.tracker.gg/v2/csgo"
	defaultPlatform = "steam"
	defaultTimeout  = 10 * time.Second
	defaultQueue    = "competitive"

	maxResponseBytes = 4 << 20
)

var errTrackerTransient = crerr.New("trackergg transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Platform       string
	Timeout        time.Duration
	Logger         *logging.Logger
	Limiter        *ratelimit.Limiter
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the provider with request pacing, a bounded timeout, and a
// circuit breaker. Failed calls are never retried here; pacing is the only
// recovery mechanism, and the caller decides on fallback.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	platform       string
	logger         *logging.Logger
	limiter        *ratelimit.Limiter
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	platform := strings.TrimSpace(cfg.Platform)
	if platform == "" {
		platform = defaultPlatform
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		platform:       platform,
		logger:         logger,
		limiter:        cfg.Limiter,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) Provider() string { return providerName }

func (c *Client) FetchProfile(ctx context.Context, playerID string) (usecase.ExternalProfile, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return usecase.ExternalProfile{}, fmt.Errorf("%w: player id is required", usecase.ErrInvalidInput)
	}

	path := fmt.Sprintf("/standard/profile/%s/%s", url.PathEscape(c.platform), url.PathEscape(playerID))
	var envelope profileEnvelope
	if err := c.doJSON(ctx, playerID, path, nil, &envelope); err != nil {
		return usecase.ExternalProfile{}, err
	}

	return flattenProfile(envelope, c.platform, playerID), nil
}

func (c *Client) FetchRecentMatches(ctx context.Context, playerID string, limit int) ([]usecase.ExternalMatch, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", usecase.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = 20
	}

	path := fmt.Sprintf("/standard/profile/%s/%s/segments/match", url.PathEscape(c.platform), url.PathEscape(playerID))
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("queue", defaultQueue)

	var envelope matchesEnvelope
	if err := c.doJSON(ctx, playerID, path, query, &envelope); err != nil {
		return nil, err
	}

	matches := make([]usecase.ExternalMatch, 0, len(envelope.Data))
	for _, row := range envelope.Data {
		matches = append(matches, usecase.ExternalMatch{
			MatchID:     row.Attributes.ID,
			Map:         row.Metadata.MapName,
			Result:      row.Metadata.Result,
			Score:       row.Metadata.Score,
			Kills:       statOf(row.Stats, "kills"),
			Deaths:      statOf(row.Stats, "deaths"),
			Assists:     statOf(row.Stats, "assists"),
			KD:          statOf(row.Stats, "kd"),
			HeadshotPct: statOf(row.Stats, "headshotPct"),
			ADR:         statOf(row.Stats, "damagePerRound"),
			Rating:      statOf(row.Stats, "rating"),
			PlayedAtRaw: row.Metadata.Timestamp,
		})
	}
	return matches, nil
}

// doJSON runs one provider request: limiter gate, breaker gate, a single
// attempt, then decode. Concurrent identical requests collapse through the
// singleflight group so a roster with duplicate ids costs one call.
func (c *Client) doJSON(ctx context.Context, playerID, path string, query url.Values, target any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, providerName); err != nil {
			return &usecase.FetchError{Provider: providerName, PlayerID: playerID, Err: err}
		}
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		// The breaker gate sits inside the flight so that a probe slot is
		// only reserved by the caller that actually executes; collapsed
		// callers share its result without claiming slots of their own.
		if c.circuitEnabled {
			if allowErr := c.breaker.Allow(); allowErr != nil {
				c.logger.WarnContext(ctx, "trackergg circuit breaker rejected request", "state", c.breaker.State())
				return nil, &usecase.FetchError{
					Provider: providerName,
					PlayerID: playerID,
					Err:      fmt.Errorf("%w: stats provider is temporarily unavailable", usecase.ErrDependencyUnavailable),
				}
			}
		}

		raw, status, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && stderrors.Is(reqErr, errTrackerTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		if reqErr != nil {
			return nil, &usecase.FetchError{
				Provider:   providerName,
				PlayerID:   playerID,
				StatusCode: status,
				Err:        reqErr,
			}
		}
		return raw, nil
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return &usecase.ParseError{Provider: providerName, PlayerID: playerID, Err: err}
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("TRN-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, 0, ctx.Err()
		}
		return nil, 0, fmt.Errorf("%w: send request: %v", errTrackerTransient, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: read response body: %v", errTrackerTransient, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reason := fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
		if isTransientStatus(resp.StatusCode) {
			reason = fmt.Errorf("%w: %v", errTrackerTransient, reason)
		}
		c.logger.WarnContext(ctx, "trackergg request failed",
			"url", fullURL,
			"status", resp.StatusCode,
		)
		return nil, resp.StatusCode, reason
	}

	return raw, resp.StatusCode, nil
}

func isTransientStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}
