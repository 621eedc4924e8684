package app

import (
	"fmt"
	"net/http"

	"github.com/riwahl/match-scout/external/trackergg"
	"github.com/riwahl/match-scout/internal/config"
	"github.com/riwahl/match-scout/internal/interfaces/httpapi"
	"github.com/riwahl/match-scout/internal/platform/cache"
	"github.com/riwahl/match-scout/internal/platform/logging"
	"github.com/riwahl/match-scout/internal/platform/ratelimit"
	"github.com/riwahl/match-scout/internal/platform/resilience"
	"github.com/riwahl/match-scout/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	tracker := trackergg.NewClient(trackergg.ClientConfig{
		HTTPClient: &http.Client{
			Timeout:   cfg.TrackerTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		BaseURL:  cfg.TrackerBaseURL,
		APIKey:   cfg.TrackerAPIKey,
		Platform: cfg.TrackerPlatform,
		Timeout:  cfg.TrackerTimeout,
		Logger:   logger,
		Limiter:  ratelimit.NewLimiter(cfg.TrackerRatePerMinute, nil),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.TrackerCircuitEnabled,
			FailureThreshold: cfg.TrackerCircuitFailureCount,
			OpenTimeout:      cfg.TrackerCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.TrackerCircuitHalfOpenMaxReq,
		},
	})

	profileCache := cache.NewStore(cfg.CacheTTL)
	profileSvc := usecase.NewProfileService(tracker, profileCache, logger, cfg.MatchHistoryLimit)
	briefingSvc := usecase.NewBriefingService(profileSvc, logger, cfg.BriefingMaxWorkers)

	handler := httpapi.NewHandler(briefingSvc, profileSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
