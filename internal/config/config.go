package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riwahl/match-scout/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	LogLevel       logging.Level

	CORSAllowedOrigins []string

	CacheTTL time.Duration

	TrackerBaseURL               string
	TrackerAPIKey                string
	TrackerPlatform              string
	TrackerTimeout               time.Duration
	TrackerRatePerMinute         int
	TrackerCircuitEnabled        bool
	TrackerCircuitFailureCount   int
	TrackerCircuitOpenTimeout    time.Duration
	TrackerCircuitHalfOpenMaxReq int

	BriefingMaxWorkers int
	MatchHistoryLimit  int

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled bool
	UptraceDSN     string

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "1h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	trackerTimeout, err := time.ParseDuration(getEnv("TRACKER_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse TRACKER_TIMEOUT: %w", err)
	}
	if trackerTimeout <= 0 {
		return Config{}, fmt.Errorf("TRACKER_TIMEOUT must be > 0")
	}

	trackerRatePerMinute, err := getEnvAsInt("TRACKER_RATE_PER_MINUTE", 30)
	if err != nil {
		return Config{}, fmt.Errorf("parse TRACKER_RATE_PER_MINUTE: %w", err)
	}
	if trackerRatePerMinute < 1 {
		return Config{}, fmt.Errorf("TRACKER_RATE_PER_MINUTE must be >= 1")
	}

	trackerCircuitEnabled, err := strconv.ParseBool(getEnv("TRACKER_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse TRACKER_CIRCUIT_ENABLED: %w", err)
	}
	trackerCircuitFailureCount, err := getEnvAsInt("TRACKER_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse TRACKER_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if trackerCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("TRACKER_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	trackerCircuitOpenTimeout, err := time.ParseDuration(getEnv("TRACKER_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse TRACKER_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if trackerCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("TRACKER_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	trackerCircuitHalfOpenMaxReq, err := getEnvAsInt("TRACKER_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse TRACKER_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if trackerCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("TRACKER_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	briefingMaxWorkers, err := getEnvAsInt("BRIEFING_MAX_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse BRIEFING_MAX_WORKERS: %w", err)
	}
	if briefingMaxWorkers < 1 {
		return Config{}, fmt.Errorf("BRIEFING_MAX_WORKERS must be >= 1")
	}

	matchHistoryLimit, err := getEnvAsInt("MATCH_HISTORY_LIMIT", 20)
	if err != nil {
		return Config{}, fmt.Errorf("parse MATCH_HISTORY_LIMIT: %w", err)
	}
	if matchHistoryLimit < 1 {
		return Config{}, fmt.Errorf("MATCH_HISTORY_LIMIT must be >= 1")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("APP_SERVICE_NAME", "match-scout-api"),
		ServiceVersion: getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:       getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		LogLevel:       logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),

		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		CacheTTL: cacheTTL,

		TrackerBaseURL:               strings.TrimSpace(getEnv("TRACKER_BASE_URL", "https://public-api.tracker.gg/v2/csgo")),
		TrackerAPIKey:                strings.TrimSpace(getEnv("TRACKER_API_KEY", "")),
		TrackerPlatform:              strings.TrimSpace(getEnv("TRACKER_PLATFORM", "steam")),
		TrackerTimeout:               trackerTimeout,
		TrackerRatePerMinute:         trackerRatePerMinute,
		TrackerCircuitEnabled:        trackerCircuitEnabled,
		TrackerCircuitFailureCount:   trackerCircuitFailureCount,
		TrackerCircuitOpenTimeout:    trackerCircuitOpenTimeout,
		TrackerCircuitHalfOpenMaxReq: trackerCircuitHalfOpenMaxReq,

		BriefingMaxWorkers: briefingMaxWorkers,
		MatchHistoryLimit:  matchHistoryLimit,

		PprofEnabled: pprofEnabled,
		PprofAddr:    pprofAddr,

		UptraceEnabled: uptraceEnabled,
		UptraceDSN:     uptraceDSN,

		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
